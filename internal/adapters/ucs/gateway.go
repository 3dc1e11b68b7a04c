// Package ucs provides the gRPC adapter for the connector-service backend.
package ucs

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	paymentv1 "github.com/kevin07696/connector-client/api/proto/payments/v1"
	"github.com/kevin07696/connector-client/internal/domain/ports"
	"github.com/kevin07696/connector-client/pkg/observability"
)

// Gateway implements ports.ConnectorGateway over gRPC. A channel is opened
// per call and closed on every exit path; no connection state survives a
// call. The channel is plaintext: sandbox use only, production deployments
// must layer transport security outside this client.
type Gateway struct {
	addr   string
	logger *zap.Logger
	opts   []grpc.DialOption
}

// NewGateway creates a gateway dialing the given host:port address.
func NewGateway(addr string, logger *zap.Logger) *Gateway {
	return &Gateway{
		addr:   addr,
		logger: logger,
		opts: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithUnaryInterceptor(observability.UnaryClientInterceptor()),
		},
	}
}

// Authorize invokes PaymentService/PaymentAuthorize.
func (g *Gateway) Authorize(ctx context.Context, req *paymentv1.PaymentsAuthorizeRequest) (*paymentv1.PaymentsAuthorizeResponse, error) {
	conn, err := g.dial()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	g.logger.Debug("invoking PaymentAuthorize", zap.String("addr", g.addr))
	return paymentv1.NewPaymentServiceClient(conn).PaymentAuthorize(ctx, req)
}

// Sync invokes PaymentService/PaymentSync.
func (g *Gateway) Sync(ctx context.Context, req *paymentv1.PaymentsSyncRequest) (*paymentv1.PaymentsSyncResponse, error) {
	conn, err := g.dial()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	g.logger.Debug("invoking PaymentSync", zap.String("addr", g.addr))
	return paymentv1.NewPaymentServiceClient(conn).PaymentSync(ctx, req)
}

func (g *Gateway) dial() (*grpc.ClientConn, error) {
	return grpc.NewClient(g.addr, g.opts...)
}

var _ ports.ConnectorGateway = (*Gateway)(nil)
