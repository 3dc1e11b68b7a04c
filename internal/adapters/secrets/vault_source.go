package secrets

import (
	"context"
	"fmt"
	"strings"

	vault "github.com/hashicorp/vault/api"
	"go.uber.org/zap"

	"github.com/kevin07696/connector-client/internal/domain/ports"
)

// VaultConfig contains configuration for the HashiCorp Vault credential
// source.
type VaultConfig struct {
	// Vault server address (e.g., "https://vault.example.com:8200")
	Address string

	// Token for token authentication
	Token string

	// Vault namespace (Vault Enterprise)
	Namespace string

	// KV v2 secrets engine mount path (default: "secret")
	MountPath string

	// Path of the secret holding the connector credentials, relative to the
	// mount (e.g., "connector-client/sandbox")
	SecretPath string

	// TLS configuration
	TLSSkipVerify bool
}

// DefaultVaultConfig returns default configuration for the Vault source.
func DefaultVaultConfig(address, secretPath string) *VaultConfig {
	return &VaultConfig{
		Address:    address,
		MountPath:  "secret",
		SecretPath: secretPath,
	}
}

// vaultSource implements CredentialSource over a Vault KV v2 secret. Each
// credential name maps to a lower-cased field of the configured secret.
type vaultSource struct {
	client *vault.Client
	config *VaultConfig
	logger *zap.Logger
}

// NewVaultSource creates a new HashiCorp Vault credential source.
func NewVaultSource(cfg *VaultConfig, logger *zap.Logger) (ports.CredentialSource, error) {
	vaultConfig := vault.DefaultConfig()
	vaultConfig.Address = cfg.Address

	if cfg.TLSSkipVerify {
		tlsConfig := &vault.TLSConfig{Insecure: true}
		if err := vaultConfig.ConfigureTLS(tlsConfig); err != nil {
			return nil, fmt.Errorf("failed to configure TLS: %w", err)
		}
	}

	client, err := vault.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vault client: %w", err)
	}

	if cfg.Namespace != "" {
		client.SetNamespace(cfg.Namespace)
	}
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	logger.Info("Vault credential source initialized",
		zap.String("address", cfg.Address),
		zap.String("mount_path", cfg.MountPath),
		zap.String("secret_path", cfg.SecretPath),
	)

	return &vaultSource{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

// GetCredential reads one field of the configured KV v2 secret. A missing
// field yields an empty string; a missing secret is an error.
func (s *vaultSource) GetCredential(ctx context.Context, name string) (string, error) {
	secret, err := s.client.KVv2(s.config.MountPath).Get(ctx, s.config.SecretPath)
	if err != nil {
		return "", fmt.Errorf("failed to read Vault secret %s: %w", s.config.SecretPath, err)
	}

	field := strings.ToLower(name)
	value, _ := secret.Data[field].(string)

	s.logger.Debug("resolved credential from Vault",
		zap.String("name", name),
		zap.Bool("present", value != ""),
	)
	return value, nil
}
