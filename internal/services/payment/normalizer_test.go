package payment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentv1 "github.com/kevin07696/connector-client/api/proto/payments/v1"
	"github.com/kevin07696/connector-client/internal/domain"
)

func TestStatusFromWire(t *testing.T) {
	tests := []struct {
		name   string
		status paymentv1.PaymentStatus
		want   string
	}{
		{name: "charged", status: paymentv1.PaymentStatus_CHARGED, want: "charged"},
		{name: "pending", status: paymentv1.PaymentStatus_PENDING, want: "pending"},
		{name: "authentication pending", status: paymentv1.PaymentStatus_AUTHENTICATION_PENDING, want: "pending_authentication"},
		{name: "unmapped known status passes through", status: paymentv1.PaymentStatus_AUTHORIZED, want: "authorized"},
		{name: "unmapped numeric status passes through", status: paymentv1.PaymentStatus(99), want: "99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromWire(tt.status))
		})
	}
}

func TestNormalizeAuthorize(t *testing.T) {
	intent := validIntent()

	t.Run("fully populated response", func(t *testing.T) {
		resp := &paymentv1.PaymentsAuthorizeResponse{
			Status: paymentv1.PaymentStatus_AUTHENTICATION_PENDING,
			ResourceId: &paymentv1.ResourceId{
				Id: &paymentv1.ResourceId_ConnectorTransactionId{ConnectorTransactionId: "pay_abc123"},
			},
			RedirectionData: &paymentv1.RedirectionData{
				Form: &paymentv1.RedirectForm{Endpoint: "https://sandbox.example/3ds"},
			},
		}

		result, err := normalizeAuthorize(intent, "ref_1", resp)
		require.NoError(t, err)

		assert.Equal(t, "pending_authentication", result.Status)
		assert.Equal(t, "pay_abc123", result.PaymentID)
		assert.Equal(t, "https://sandbox.example/3ds", result.RedirectURL)
		assert.Equal(t, "ref_1", result.ReferenceID)
		assert.Equal(t, "INR", result.Currency)
		assert.Equal(t, "RAZORPAY", result.Connector)
		assert.True(t, intent.Amount.Equal(result.Amount))
		assert.Nil(t, result.Error)
	})

	t.Run("missing optional substructures", func(t *testing.T) {
		resp := &paymentv1.PaymentsAuthorizeResponse{Status: paymentv1.PaymentStatus_CHARGED}

		result, err := normalizeAuthorize(intent, "ref_2", resp)
		require.NoError(t, err)

		assert.Equal(t, "charged", result.Status)
		assert.Empty(t, result.PaymentID)
		assert.Empty(t, result.RedirectURL)
	})

	t.Run("resource id present without transaction id", func(t *testing.T) {
		resp := &paymentv1.PaymentsAuthorizeResponse{
			Status:     paymentv1.PaymentStatus_PENDING,
			ResourceId: &paymentv1.ResourceId{Id: &paymentv1.ResourceId_NoResponseId{NoResponseId: true}},
		}

		result, err := normalizeAuthorize(intent, "ref_3", resp)
		require.NoError(t, err)
		assert.Empty(t, result.PaymentID)
	})

	t.Run("nil response is malformed", func(t *testing.T) {
		_, err := normalizeAuthorize(intent, "ref_4", nil)

		var malformed *domain.MalformedResponseError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, "authorize", malformed.Operation)
	})
}

func TestNormalizeSync(t *testing.T) {
	syncReq := domain.SyncRequest{PaymentID: "pay_caller", Connector: "STRIPE"}

	t.Run("response id wins over caller id", func(t *testing.T) {
		resp := &paymentv1.PaymentsSyncResponse{
			Status: paymentv1.PaymentStatus_CHARGED,
			ResourceId: &paymentv1.ResourceId{
				Id: &paymentv1.ResourceId_ConnectorTransactionId{ConnectorTransactionId: "pay_server"},
			},
		}

		result, err := normalizeSync(syncReq, "conn_req_1", resp)
		require.NoError(t, err)
		assert.Equal(t, "pay_server", result.PaymentID)
		assert.Equal(t, "charged", result.Status)
	})

	t.Run("caller id echoed when response omits it", func(t *testing.T) {
		resp := &paymentv1.PaymentsSyncResponse{Status: paymentv1.PaymentStatus_PENDING}

		result, err := normalizeSync(syncReq, "conn_req_2", resp)
		require.NoError(t, err)
		assert.Equal(t, "pay_caller", result.PaymentID)
		assert.Equal(t, "STRIPE", result.Connector)
	})

	t.Run("nil response is malformed", func(t *testing.T) {
		_, err := normalizeSync(syncReq, "conn_req_3", nil)

		var malformed *domain.MalformedResponseError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, "sync", malformed.Operation)
	})
}
