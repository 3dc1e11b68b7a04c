package config

import (
	"fmt"
	"os"
	"strconv"
)

// SecretsBackend selects where default connector credentials come from.
type SecretsBackend string

const (
	SecretsBackendEnv   SecretsBackend = "env"
	SecretsBackendVault SecretsBackend = "vault"
	SecretsBackendAWS   SecretsBackend = "aws"
)

// Config holds all client configuration
type Config struct {
	Server  ServerConfig
	Secrets SecretsConfig
	Logger  LoggerConfig
}

// ServerConfig holds connector-service endpoint configuration
type ServerConfig struct {
	Addr string // host:port of the connector service (e.g. localhost:8000)
}

// SecretsConfig holds credential-source configuration
type SecretsConfig struct {
	Backend SecretsBackend

	// Vault settings (SECRETS_BACKEND=vault)
	VaultAddr       string
	VaultToken      string
	VaultNamespace  string
	VaultMountPath  string
	VaultSecretPath string

	// AWS Secrets Manager settings (SECRETS_BACKEND=aws)
	AWSRegion   string
	AWSProfile  string
	AWSEndpoint string
	AWSSecretID string
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr: getEnv("CONNECTOR_SERVICE_ADDR", "localhost:8000"),
		},
		Secrets: SecretsConfig{
			Backend:         SecretsBackend(getEnv("SECRETS_BACKEND", string(SecretsBackendEnv))),
			VaultAddr:       getEnv("VAULT_ADDR", ""),
			VaultToken:      getEnv("VAULT_TOKEN", ""),
			VaultNamespace:  getEnv("VAULT_NAMESPACE", ""),
			VaultMountPath:  getEnv("VAULT_MOUNT_PATH", "secret"),
			VaultSecretPath: getEnv("VAULT_SECRET_PATH", "connector-client/sandbox"),
			AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
			AWSProfile:      getEnv("AWS_PROFILE", ""),
			AWSEndpoint:     getEnv("AWS_SECRETS_ENDPOINT", ""),
			AWSSecretID:     getEnv("AWS_SECRET_ID", "connector-client/sandbox"),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	switch cfg.Secrets.Backend {
	case SecretsBackendEnv, SecretsBackendVault, SecretsBackendAWS:
	default:
		return nil, fmt.Errorf("unknown SECRETS_BACKEND: %s", cfg.Secrets.Backend)
	}
	if cfg.Secrets.Backend == SecretsBackendVault && cfg.Secrets.VaultAddr == "" {
		return nil, fmt.Errorf("VAULT_ADDR is required when SECRETS_BACKEND=vault")
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
