package payment

import (
	"context"

	"go.uber.org/zap"

	"github.com/kevin07696/connector-client/internal/domain"
)

// Credential source names for connectors with documented sandbox defaults.
// The env backend reads variables of the same name.
const (
	credentialNameAPIKey = "API_KEY"
	credentialNameKey1   = "KEY1"
)

// resolveCredential produces the credential bundle for a call. A fully
// populated override is used verbatim. Razorpay is the one connector with
// externally documented test credentials, so its missing fields are filled
// from the credential source; other connectors get whatever the caller
// supplied, empty bundle included. Missing credentials are not an error
// here: the request is still built and real rejection happens server-side,
// which keeps anonymous sandbox calls working.
//
// Only presence is ever logged, never values.
func (s *Service) resolveCredential(ctx context.Context, connector domain.Connector, override *domain.ConnectorCredential) domain.ConnectorCredential {
	cred := domain.ConnectorCredential{Shape: domain.ShapeForConnector(connector)}
	if override != nil {
		cred = *override
		if cred.Shape == "" {
			cred.Shape = domain.ShapeForConnector(connector)
		}
	}

	if cred.Complete() {
		return cred
	}

	if connector == domain.ConnectorRazorpay {
		if cred.APIKey == "" {
			cred.APIKey = s.lookupCredential(ctx, credentialNameAPIKey)
		}
		if cred.Key1 == "" {
			cred.Key1 = s.lookupCredential(ctx, credentialNameKey1)
		}
	}

	s.logger.Debug("resolved connector credential",
		zap.String("connector", string(connector)),
		zap.String("shape", string(cred.Shape)),
		zap.Bool("api_key_present", cred.APIKey != ""),
		zap.Bool("key1_present", cred.Key1 != ""),
	)
	return cred
}

func (s *Service) lookupCredential(ctx context.Context, name string) string {
	value, err := s.credentials.GetCredential(ctx, name)
	if err != nil {
		s.logger.Warn("credential lookup failed",
			zap.String("name", name),
			zap.Error(err),
		)
		return ""
	}
	return value
}
