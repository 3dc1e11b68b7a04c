// Command client is a thin CLI over the connector client library: it parses
// flags, wires the credential source and gRPC gateway, runs one operation,
// and prints the normalized result as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kevin07696/connector-client/internal/adapters/secrets"
	"github.com/kevin07696/connector-client/internal/adapters/ucs"
	"github.com/kevin07696/connector-client/internal/config"
	"github.com/kevin07696/connector-client/internal/domain"
	"github.com/kevin07696/connector-client/internal/domain/ports"
	"github.com/kevin07696/connector-client/internal/services/payment"
)

// Sandbox card used when the caller supplies no instrument.
var defaultCard = domain.CardDetails{
	Number:   "4242424242424242",
	ExpMonth: "12",
	ExpYear:  "2030",
	CVC:      "123",
}

func main() {
	var (
		op        = flag.String("op", "authorize", "operation: authorize, sync, details")
		addr      = flag.String("addr", "", "connector service address (overrides CONNECTOR_SERVICE_ADDR)")
		amount    = flag.String("amount", "10.00", "amount in major currency units")
		currency  = flag.String("currency", "USD", "currency code")
		connector = flag.String("connector", "RAZORPAY", "payment connector")
		method    = flag.String("method", "card", "payment method")
		cardNum   = flag.String("card-number", "", "card number")
		expMonth  = flag.String("card-exp-month", "", "card expiry month")
		expYear   = flag.String("card-exp-year", "", "card expiry year")
		cvc       = flag.String("card-cvc", "", "card verification code")
		email     = flag.String("email", "test@example.com", "customer email")
		reference = flag.String("reference", "", "correlation reference id (generated when empty)")
		paymentID = flag.String("payment-id", "", "payment id (sync/details)")
		apiKey    = flag.String("api-key", "", "connector api key override")
		key1      = flag.String("key1", "", "connector key1 override")
		apiSecret = flag.String("api-secret", "", "connector api secret override")
		timeout   = flag.Duration("timeout", 30*time.Second, "per-call deadline")
	)
	flag.Parse()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger, err := newLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	source, err := newCredentialSource(ctx, cfg.Secrets, logger)
	if err != nil {
		logger.Error("failed to initialize credential source", zap.Error(err))
		os.Exit(1)
	}

	gateway := ucs.NewGateway(cfg.Server.Addr, logger)
	service := payment.NewService(gateway, source, logger)

	override := credentialOverride(*apiKey, *key1, *apiSecret)

	var result *domain.NormalizedResult
	switch *op {
	case "authorize":
		card := defaultCard
		if *cardNum != "" {
			card = domain.CardDetails{
				Number:   *cardNum,
				ExpMonth: *expMonth,
				ExpYear:  *expYear,
				CVC:      *cvc,
			}
		}
		amt, err := decimal.NewFromString(*amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid amount: %v\n", err)
			os.Exit(1)
		}
		result = service.Authorize(ctx, domain.PaymentIntent{
			Amount:      amt,
			Currency:    *currency,
			Connector:   *connector,
			Method:      *method,
			Card:        card,
			Email:       *email,
			ReferenceID: *reference,
			Override:    override,
		})
	case "sync":
		result = service.Sync(ctx, domain.SyncRequest{
			PaymentID:   *paymentID,
			Connector:   *connector,
			Override:    override,
			ReferenceID: *reference,
		})
	case "details":
		result = service.GetPaymentDetails(ctx, *paymentID)
	default:
		fmt.Fprintf(os.Stderr, "unknown operation: %s (use authorize, sync, or details)\n", *op)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Error("failed to encode result", zap.Error(err))
		os.Exit(1)
	}
	fmt.Println(string(out))

	if result.Failed() {
		os.Exit(1)
	}
}

func newLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

func newCredentialSource(ctx context.Context, cfg config.SecretsConfig, logger *zap.Logger) (ports.CredentialSource, error) {
	switch cfg.Backend {
	case config.SecretsBackendVault:
		vaultCfg := secrets.DefaultVaultConfig(cfg.VaultAddr, cfg.VaultSecretPath)
		vaultCfg.Token = cfg.VaultToken
		vaultCfg.Namespace = cfg.VaultNamespace
		vaultCfg.MountPath = cfg.VaultMountPath
		return secrets.NewVaultSource(vaultCfg, logger)
	case config.SecretsBackendAWS:
		return secrets.NewAWSSource(ctx, &secrets.AWSConfig{
			Region:   cfg.AWSRegion,
			Profile:  cfg.AWSProfile,
			Endpoint: cfg.AWSEndpoint,
			SecretID: cfg.AWSSecretID,
		}, logger)
	default:
		return secrets.NewEnvSource(logger), nil
	}
}

// credentialOverride builds a caller override from flags. Shape selection is
// left to the resolver; only populated fields matter here.
func credentialOverride(apiKey, key1, apiSecret string) *domain.ConnectorCredential {
	if apiKey == "" && key1 == "" && apiSecret == "" {
		return nil
	}
	return &domain.ConnectorCredential{
		APIKey:    apiKey,
		Key1:      key1,
		APISecret: apiSecret,
	}
}
