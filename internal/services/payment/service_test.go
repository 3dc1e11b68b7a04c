package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	paymentv1 "github.com/kevin07696/connector-client/api/proto/payments/v1"
	"github.com/kevin07696/connector-client/internal/domain"
)

// mockGateway implements ports.ConnectorGateway and records whether the
// transport was touched.
type mockGateway struct {
	authorizeCalls int
	syncCalls      int

	authorizeReq  *paymentv1.PaymentsAuthorizeRequest
	authorizeResp *paymentv1.PaymentsAuthorizeResponse
	syncResp      *paymentv1.PaymentsSyncResponse
	err           error
}

func (m *mockGateway) Authorize(_ context.Context, req *paymentv1.PaymentsAuthorizeRequest) (*paymentv1.PaymentsAuthorizeResponse, error) {
	m.authorizeCalls++
	m.authorizeReq = req
	return m.authorizeResp, m.err
}

func (m *mockGateway) Sync(_ context.Context, _ *paymentv1.PaymentsSyncRequest) (*paymentv1.PaymentsSyncResponse, error) {
	m.syncCalls++
	return m.syncResp, m.err
}

// staticCredentials implements ports.CredentialSource from a fixed map.
type staticCredentials map[string]string

func (s staticCredentials) GetCredential(_ context.Context, name string) (string, error) {
	return s[name], nil
}

func newServiceWithGateway(gw *mockGateway, creds staticCredentials) *Service {
	return NewService(gw, creds, zap.NewNop())
}

func TestAuthorizeHappyPath(t *testing.T) {
	gw := &mockGateway{
		authorizeResp: &paymentv1.PaymentsAuthorizeResponse{
			Status: paymentv1.PaymentStatus_CHARGED,
			ResourceId: &paymentv1.ResourceId{
				Id: &paymentv1.ResourceId_ConnectorTransactionId{ConnectorTransactionId: "pay_xyz"},
			},
		},
	}
	s := newServiceWithGateway(gw, staticCredentials{"API_KEY": "rzp_test_key", "KEY1": "rzp_test_secret"})

	result := s.Authorize(context.Background(), validIntent())

	require.False(t, result.Failed())
	assert.Equal(t, 1, gw.authorizeCalls)
	assert.Equal(t, "charged", result.Status)
	assert.Equal(t, "pay_xyz", result.PaymentID)
	assert.Equal(t, "RAZORPAY", result.Connector)

	// The environment-sourced sandbox credentials were embedded in the wire
	// request.
	require.NotNil(t, gw.authorizeReq.AuthCreds.GetBodyKey())
	assert.Equal(t, "rzp_test_key", gw.authorizeReq.AuthCreds.GetBodyKey().ApiKey)
	assert.Equal(t, "rzp_test_secret", gw.authorizeReq.AuthCreds.GetBodyKey().Key1)
}

func TestAuthorizeUnsupportedConnectorSkipsTransport(t *testing.T) {
	gw := &mockGateway{}
	s := newServiceWithGateway(gw, staticCredentials{})

	intent := validIntent()
	intent.Connector = "BITCOIN"
	result := s.Authorize(context.Background(), intent)

	require.True(t, result.Failed())
	assert.Equal(t, domain.ErrorTypeUnsupportedValue, result.Error.Type)
	assert.Zero(t, gw.authorizeCalls)
}

func TestAuthorizeInvalidAmountSkipsTransport(t *testing.T) {
	gw := &mockGateway{}
	s := newServiceWithGateway(gw, staticCredentials{})

	intent := validIntent()
	intent.Amount = decimal.Zero
	result := s.Authorize(context.Background(), intent)

	require.True(t, result.Failed())
	assert.Equal(t, domain.ErrorTypeValidation, result.Error.Type)
	assert.Zero(t, gw.authorizeCalls)
}

func TestAuthorizeTransportFailure(t *testing.T) {
	gw := &mockGateway{err: status.Error(codes.Unavailable, "connection refused")}
	s := newServiceWithGateway(gw, staticCredentials{})

	result := s.Authorize(context.Background(), validIntent())

	require.True(t, result.Failed())
	assert.Equal(t, domain.ErrorTypeTransport, result.Error.Type)
	assert.Contains(t, result.Error.Message, "Unavailable")
	assert.Contains(t, result.Error.Message, "connection refused")
}

func TestAuthorizeNilResponseIsMalformed(t *testing.T) {
	gw := &mockGateway{}
	s := newServiceWithGateway(gw, staticCredentials{})

	result := s.Authorize(context.Background(), validIntent())

	require.True(t, result.Failed())
	assert.Equal(t, domain.ErrorTypeMalformedResponse, result.Error.Type)
}

func TestSyncEmptyPaymentIDSkipsTransport(t *testing.T) {
	gw := &mockGateway{}
	s := newServiceWithGateway(gw, staticCredentials{})

	result := s.Sync(context.Background(), domain.SyncRequest{Connector: "RAZORPAY"})

	require.True(t, result.Failed())
	assert.Equal(t, domain.ErrorTypeValidation, result.Error.Type)
	assert.Zero(t, gw.syncCalls)
}

func TestSyncHappyPath(t *testing.T) {
	gw := &mockGateway{
		syncResp: &paymentv1.PaymentsSyncResponse{Status: paymentv1.PaymentStatus_PENDING},
	}
	s := newServiceWithGateway(gw, staticCredentials{})

	result := s.Sync(context.Background(), domain.SyncRequest{
		PaymentID: "pay_123",
		Connector: "STRIPE",
	})

	require.False(t, result.Failed())
	assert.Equal(t, 1, gw.syncCalls)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, "pay_123", result.PaymentID)
}

func TestGetPaymentDetails(t *testing.T) {
	s := newServiceWithGateway(&mockGateway{}, staticCredentials{})

	t.Run("placeholder data is deterministic", func(t *testing.T) {
		first := s.GetPaymentDetails(context.Background(), "pay_42")
		second := s.GetPaymentDetails(context.Background(), "pay_42")

		require.False(t, first.Failed())
		assert.Equal(t, "pay_42", first.PaymentID)
		assert.Equal(t, first, second)
	})

	t.Run("empty payment id is rejected", func(t *testing.T) {
		result := s.GetPaymentDetails(context.Background(), "")
		require.True(t, result.Failed())
		assert.Equal(t, domain.ErrorTypeValidation, result.Error.Type)
	})
}
