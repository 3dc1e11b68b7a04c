package payment

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	paymentv1 "github.com/kevin07696/connector-client/api/proto/payments/v1"
	"github.com/kevin07696/connector-client/internal/domain"
)

func newTestService() *Service {
	return NewService(nil, nil, zap.NewNop())
}

func validIntent() domain.PaymentIntent {
	return domain.PaymentIntent{
		Amount:    decimal.RequireFromString("1000.00"),
		Currency:  "INR",
		Connector: "RAZORPAY",
		Method:    "card",
		Card: domain.CardDetails{
			Number:   "4242424242424242",
			ExpMonth: "12",
			ExpYear:  "2030",
			CVC:      "123",
		},
		Email: "test@example.com",
	}
}

func TestBuildAuthorize(t *testing.T) {
	s := newTestService()

	req, err := s.buildAuthorize(validIntent(), domain.ConnectorCredential{Shape: domain.ShapeBodyKey})
	require.NoError(t, err)

	assert.Equal(t, int64(100000), req.MinorAmount)
	assert.Equal(t, int64(100000), req.Amount)
	assert.Equal(t, paymentv1.Currency_INR, req.Currency)
	assert.Equal(t, paymentv1.Connector_RAZORPAY, req.Connector)
	assert.Equal(t, paymentv1.PaymentMethod_CARD, req.PaymentMethod)
	assert.Equal(t, paymentv1.AuthenticationType_THREE_DS, req.AuthType)
	assert.True(t, req.EnrolledFor_3Ds)
	assert.False(t, req.RequestIncrementalAuthorization)
	assert.Equal(t, "test@example.com", req.Email)

	// Schema-required defaults are always populated.
	require.NotNil(t, req.BrowserInfo)
	assert.Equal(t, "en-US", req.BrowserInfo.Language)
	assert.NotNil(t, req.Address)

	require.NotNil(t, req.PaymentMethodData.GetCard())
	assert.Equal(t, "4242424242424242", req.PaymentMethodData.GetCard().CardNumber)

	assert.True(t, strings.HasPrefix(req.ConnectorRequestReferenceId, "ref_"))
	assert.Greater(t, len(req.ConnectorRequestReferenceId), len("ref_"))
}

func TestBuildAuthorizeMinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		minor  int64
	}{
		{amount: "0.01", minor: 1},
		{amount: "1", minor: 100},
		{amount: "10.50", minor: 1050},
		{amount: "1000.00", minor: 100000},
		{amount: "999999.99", minor: 99999999},
	}

	s := newTestService()
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			intent := validIntent()
			intent.Amount = decimal.RequireFromString(tt.amount)

			req, err := s.buildAuthorize(intent, domain.ConnectorCredential{})
			require.NoError(t, err)
			assert.Equal(t, tt.minor, req.MinorAmount)
		})
	}
}

func TestBuildAuthorizeValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.PaymentIntent)
		wantField string
		wantKind  string
	}{
		{
			name:      "zero amount",
			mutate:    func(i *domain.PaymentIntent) { i.Amount = decimal.Zero },
			wantField: "amount",
		},
		{
			name:      "negative amount",
			mutate:    func(i *domain.PaymentIntent) { i.Amount = decimal.RequireFromString("-5") },
			wantField: "amount",
		},
		{
			name:     "unsupported currency",
			mutate:   func(i *domain.PaymentIntent) { i.Currency = "JPY" },
			wantKind: "currency",
		},
		{
			name:     "unsupported connector",
			mutate:   func(i *domain.PaymentIntent) { i.Connector = "BITCOIN" },
			wantKind: "connector",
		},
		{
			name:      "missing card number",
			mutate:    func(i *domain.PaymentIntent) { i.Card.Number = "" },
			wantField: "card_number",
		},
		{
			name:      "missing expiry month",
			mutate:    func(i *domain.PaymentIntent) { i.Card.ExpMonth = "" },
			wantField: "card_exp_month",
		},
		{
			name:      "missing expiry year",
			mutate:    func(i *domain.PaymentIntent) { i.Card.ExpYear = "" },
			wantField: "card_exp_year",
		},
		{
			name:      "missing cvc",
			mutate:    func(i *domain.PaymentIntent) { i.Card.CVC = "" },
			wantField: "card_cvc",
		},
	}

	s := newTestService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := validIntent()
			tt.mutate(&intent)

			req, err := s.buildAuthorize(intent, domain.ConnectorCredential{})
			require.Error(t, err)
			assert.Nil(t, req)

			if tt.wantKind != "" {
				var unsupported *domain.UnsupportedValueError
				require.True(t, errors.As(err, &unsupported))
				assert.Equal(t, tt.wantKind, unsupported.Kind)
				return
			}
			var validation *domain.ValidationError
			require.True(t, errors.As(err, &validation))
			assert.Equal(t, tt.wantField, validation.Field)
		})
	}
}

func TestBuildAuthorizeReferenceID(t *testing.T) {
	s := newTestService()

	t.Run("explicit reference is preserved", func(t *testing.T) {
		intent := validIntent()
		intent.ReferenceID = "ref_fixed"

		first, err := s.buildAuthorize(intent, domain.ConnectorCredential{})
		require.NoError(t, err)
		second, err := s.buildAuthorize(intent, domain.ConnectorCredential{})
		require.NoError(t, err)

		assert.Equal(t, "ref_fixed", first.ConnectorRequestReferenceId)
		assert.Equal(t, first.ConnectorRequestReferenceId, second.ConnectorRequestReferenceId)
	})

	t.Run("generated references do not collide", func(t *testing.T) {
		seen := make(map[string]struct{}, 10000)
		for i := 0; i < 10000; i++ {
			ref := newReference(authorizeReferencePrefix)
			_, dup := seen[ref]
			require.False(t, dup, "collision after %d references", i)
			seen[ref] = struct{}{}
		}
	})
}

func TestBuildSync(t *testing.T) {
	s := newTestService()

	req, err := s.buildSync(domain.SyncRequest{
		PaymentID: "pay_QHj9Thiy5mCC4Y",
		Connector: "RAZORPAY",
	}, domain.ConnectorCredential{Shape: domain.ShapeBodyKey, APIKey: "k", Key1: "s"})
	require.NoError(t, err)

	assert.Equal(t, "pay_QHj9Thiy5mCC4Y", req.ResourceId)
	assert.Equal(t, paymentv1.Connector_RAZORPAY, req.Connector)
	assert.True(t, strings.HasPrefix(req.ConnectorRequestReferenceId, "conn_req_"))
	require.NotNil(t, req.AuthCreds.GetBodyKey())
	assert.Equal(t, "k", req.AuthCreds.GetBodyKey().ApiKey)
}

func TestBuildSyncValidation(t *testing.T) {
	s := newTestService()

	t.Run("empty payment id", func(t *testing.T) {
		_, err := s.buildSync(domain.SyncRequest{Connector: "RAZORPAY"}, domain.ConnectorCredential{})
		var validation *domain.ValidationError
		require.True(t, errors.As(err, &validation))
		assert.Equal(t, "payment_id", validation.Field)
	})

	t.Run("unknown connector", func(t *testing.T) {
		_, err := s.buildSync(domain.SyncRequest{PaymentID: "pay_1", Connector: "BITCOIN"}, domain.ConnectorCredential{})
		var unsupported *domain.UnsupportedValueError
		require.True(t, errors.As(err, &unsupported))
	})
}

func TestToWireAuthType(t *testing.T) {
	tests := []struct {
		name  string
		cred  domain.ConnectorCredential
		check func(t *testing.T, auth *paymentv1.AuthType)
	}{
		{
			name: "body key",
			cred: domain.ConnectorCredential{Shape: domain.ShapeBodyKey, APIKey: "api", Key1: "k1"},
			check: func(t *testing.T, auth *paymentv1.AuthType) {
				require.NotNil(t, auth.GetBodyKey())
				assert.Equal(t, "api", auth.GetBodyKey().ApiKey)
				assert.Equal(t, "k1", auth.GetBodyKey().Key1)
			},
		},
		{
			name: "header key",
			cred: domain.ConnectorCredential{Shape: domain.ShapeHeaderKey, APIKey: "api"},
			check: func(t *testing.T, auth *paymentv1.AuthType) {
				require.NotNil(t, auth.GetHeaderKey())
				assert.Equal(t, "api", auth.GetHeaderKey().ApiKey)
			},
		},
		{
			name: "signature key",
			cred: domain.ConnectorCredential{Shape: domain.ShapeSignatureKey, APIKey: "api", Key1: "k1", APISecret: "sec"},
			check: func(t *testing.T, auth *paymentv1.AuthType) {
				require.NotNil(t, auth.GetSignatureKey())
				assert.Equal(t, "sec", auth.GetSignatureKey().ApiSecret)
			},
		},
		{
			name: "empty bundle defaults to body key",
			cred: domain.ConnectorCredential{},
			check: func(t *testing.T, auth *paymentv1.AuthType) {
				require.NotNil(t, auth.GetBodyKey())
				assert.Empty(t, auth.GetBodyKey().ApiKey)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, toWireAuthType(tt.cred))
		})
	}
}
