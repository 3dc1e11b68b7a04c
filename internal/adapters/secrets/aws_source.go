package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/kevin07696/connector-client/internal/domain/ports"
)

// AWSConfig contains configuration for the AWS Secrets Manager credential
// source.
type AWSConfig struct {
	// AWS Region (e.g., "us-east-1")
	Region string

	// Optional: AWS profile name (for local development)
	Profile string

	// Optional: Custom endpoint (for LocalStack testing)
	Endpoint string

	// SecretID of the JSON secret holding the connector credentials
	// (e.g., "connector-client/sandbox")
	SecretID string
}

// awsSource implements CredentialSource over an AWS Secrets Manager secret
// stored as a JSON object. Each credential name maps to a lower-cased key of
// that object.
type awsSource struct {
	client *secretsmanager.Client
	config *AWSConfig
	logger *zap.Logger
}

// NewAWSSource creates a new AWS Secrets Manager credential source.
func NewAWSSource(ctx context.Context, cfg *AWSConfig, logger *zap.Logger) (ports.CredentialSource, error) {
	var awsConfig aws.Config
	var err error

	if cfg.Profile != "" {
		awsConfig, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.Region),
			config.WithSharedConfigProfile(cfg.Profile),
		)
	} else {
		awsConfig, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.Region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	clientOptions := []func(*secretsmanager.Options){}
	if cfg.Endpoint != "" {
		clientOptions = append(clientOptions, func(o *secretsmanager.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	client := secretsmanager.NewFromConfig(awsConfig, clientOptions...)

	logger.Info("AWS Secrets Manager credential source initialized",
		zap.String("region", cfg.Region),
		zap.String("secret_id", cfg.SecretID),
	)

	return &awsSource{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

// GetCredential fetches the configured secret and extracts one field. A
// missing field yields an empty string; a missing secret is an error.
func (s *awsSource) GetCredential(ctx context.Context, name string) (string, error) {
	result, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.config.SecretID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to read secret %s: %w", s.config.SecretID, err)
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", s.config.SecretID)
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(*result.SecretString), &fields); err != nil {
		return "", fmt.Errorf("failed to parse secret %s: %w", s.config.SecretID, err)
	}

	value := fields[strings.ToLower(name)]

	s.logger.Debug("resolved credential from AWS Secrets Manager",
		zap.String("name", name),
		zap.Bool("present", value != ""),
	)
	return value, nil
}
