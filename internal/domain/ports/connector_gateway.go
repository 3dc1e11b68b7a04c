package ports

import (
	"context"

	paymentv1 "github.com/kevin07696/connector-client/api/proto/payments/v1"
)

// ConnectorGateway is the opaque remote-call capability the dispatcher
// consumes. Implementations own transport acquisition and release for the
// duration of each call; retries and channel security are their concern,
// not the core's.
type ConnectorGateway interface {
	Authorize(ctx context.Context, req *paymentv1.PaymentsAuthorizeRequest) (*paymentv1.PaymentsAuthorizeResponse, error)
	Sync(ctx context.Context, req *paymentv1.PaymentsSyncRequest) (*paymentv1.PaymentsSyncResponse, error)
}
