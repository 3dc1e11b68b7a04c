// Package secrets provides CredentialSource adapters over multiple backends.
package secrets

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/kevin07696/connector-client/internal/domain/ports"
)

// envSource implements CredentialSource over process environment variables.
// This is the default backend; the credential names double as the variable
// names (API_KEY, KEY1).
type envSource struct {
	logger *zap.Logger
}

// NewEnvSource creates a new environment-backed credential source.
func NewEnvSource(logger *zap.Logger) ports.CredentialSource {
	return &envSource{logger: logger}
}

// GetCredential reads the named environment variable. Absence yields an
// empty string; the value itself is never logged.
func (s *envSource) GetCredential(_ context.Context, name string) (string, error) {
	value := os.Getenv(name)

	s.logger.Debug("resolved credential from environment",
		zap.String("name", name),
		zap.Bool("present", value != ""),
	)
	return value, nil
}
