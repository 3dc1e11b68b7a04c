// Package payment implements the request/response normalization core:
// translation of loosely-typed payment intents into schema-valid wire
// requests, dispatch over the connector-service transport, and translation
// of heterogeneous wire responses into a uniform result shape.
package payment

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/status"

	"github.com/kevin07696/connector-client/internal/domain"
	"github.com/kevin07696/connector-client/internal/domain/ports"
)

// Service is the caller-facing operation surface. Every operation returns a
// NormalizedResult and never an error: validation, transport, and response
// failures are all folded into the result's Error field so batch and
// interactive callers inspect outcomes uniformly.
//
// Service holds no cross-call mutable state; concurrent calls are
// independent.
type Service struct {
	gateway     ports.ConnectorGateway
	credentials ports.CredentialSource
	logger      *zap.Logger
}

// NewService creates a new payment client service.
func NewService(gateway ports.ConnectorGateway, credentials ports.CredentialSource, logger *zap.Logger) *Service {
	return &Service{
		gateway:     gateway,
		credentials: credentials,
		logger:      logger,
	}
}

// Authorize runs the authorize flow: resolve credentials, build the wire
// request, invoke the remote call, normalize the response. No remote call is
// attempted when validation fails.
func (s *Service) Authorize(ctx context.Context, intent domain.PaymentIntent) *domain.NormalizedResult {
	connector, ok := domain.ParseConnector(intent.Connector)
	if !ok {
		return domain.ErrorResult(domain.NewUnsupportedValueError("connector", intent.Connector))
	}

	cred := s.resolveCredential(ctx, connector, intent.Override)

	req, err := s.buildAuthorize(intent, cred)
	if err != nil {
		s.logger.Warn("authorize request rejected", zap.Error(err))
		return domain.ErrorResult(err)
	}

	resp, err := s.gateway.Authorize(ctx, req)
	if err != nil {
		return domain.ErrorResult(wrapTransportError(err))
	}

	result, err := normalizeAuthorize(intent, req.GetConnectorRequestReferenceId(), resp)
	if err != nil {
		return domain.ErrorResult(err)
	}

	s.logger.Info("authorize completed",
		zap.String("connector", intent.Connector),
		zap.String("status", result.Status),
		zap.String("reference_id", result.ReferenceID),
	)
	return result
}

// Sync runs the status sync flow for a previously created payment.
func (s *Service) Sync(ctx context.Context, syncReq domain.SyncRequest) *domain.NormalizedResult {
	if syncReq.PaymentID == "" {
		return domain.ErrorResult(domain.NewMissingFieldError("payment_id"))
	}
	connector, ok := domain.ParseConnector(syncReq.Connector)
	if !ok {
		return domain.ErrorResult(domain.NewUnsupportedValueError("connector", syncReq.Connector))
	}

	cred := s.resolveCredential(ctx, connector, syncReq.Override)

	req, err := s.buildSync(syncReq, cred)
	if err != nil {
		s.logger.Warn("sync request rejected", zap.Error(err))
		return domain.ErrorResult(err)
	}

	resp, err := s.gateway.Sync(ctx, req)
	if err != nil {
		return domain.ErrorResult(wrapTransportError(err))
	}

	result, err := normalizeSync(syncReq, req.GetConnectorRequestReferenceId(), resp)
	if err != nil {
		return domain.ErrorResult(err)
	}

	s.logger.Info("sync completed",
		zap.String("connector", syncReq.Connector),
		zap.String("status", result.Status),
		zap.String("payment_id", result.PaymentID),
	)
	return result
}

// GetPaymentDetails returns details for a payment. The connector-service
// surface has no backing RPC for this yet, so the operation validates its
// input and returns deterministic placeholder data.
//
// TODO: replace with a real PaymentGet call once the server exposes one.
func (s *Service) GetPaymentDetails(_ context.Context, paymentID string) *domain.NormalizedResult {
	if paymentID == "" {
		return domain.ErrorResult(domain.NewMissingFieldError("payment_id"))
	}

	return &domain.NormalizedResult{
		Status:    domain.StatusCharged,
		PaymentID: paymentID,
		Amount:    decimal.NewFromInt(1000),
		Currency:  string(domain.CurrencyUSD),
	}
}

// wrapTransportError converts a gRPC failure into the transport member of
// the error taxonomy. Domain declines never travel this path; they arrive as
// statuses in a well-formed response.
func wrapTransportError(err error) error {
	st, _ := status.FromError(err)
	return domain.NewTransportError(st.Code().String(), st.Message())
}
