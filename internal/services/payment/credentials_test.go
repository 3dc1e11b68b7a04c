package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevin07696/connector-client/internal/domain"
)

func TestResolveCredential(t *testing.T) {
	source := staticCredentials{"API_KEY": "env_api_key", "KEY1": "env_key1"}

	tests := []struct {
		name      string
		connector domain.Connector
		override  *domain.ConnectorCredential
		want      domain.ConnectorCredential
	}{
		{
			name:      "full override used verbatim",
			connector: domain.ConnectorRazorpay,
			override: &domain.ConnectorCredential{
				Shape:  domain.ShapeBodyKey,
				APIKey: "caller_key",
				Key1:   "caller_key1",
			},
			want: domain.ConnectorCredential{
				Shape:  domain.ShapeBodyKey,
				APIKey: "caller_key",
				Key1:   "caller_key1",
			},
		},
		{
			name:      "razorpay fills missing fields from source",
			connector: domain.ConnectorRazorpay,
			override:  nil,
			want: domain.ConnectorCredential{
				Shape:  domain.ShapeBodyKey,
				APIKey: "env_api_key",
				Key1:   "env_key1",
			},
		},
		{
			name:      "razorpay partial override keeps caller api key",
			connector: domain.ConnectorRazorpay,
			override:  &domain.ConnectorCredential{Shape: domain.ShapeBodyKey, APIKey: "caller_key"},
			want: domain.ConnectorCredential{
				Shape:  domain.ShapeBodyKey,
				APIKey: "caller_key",
				Key1:   "env_key1",
			},
		},
		{
			name:      "stripe has no defaults",
			connector: domain.ConnectorStripe,
			override:  nil,
			want:      domain.ConnectorCredential{Shape: domain.ShapeHeaderKey},
		},
		{
			name:      "adyen has no defaults",
			connector: domain.ConnectorAdyen,
			override:  nil,
			want:      domain.ConnectorCredential{Shape: domain.ShapeSignatureKey},
		},
		{
			name:      "override without shape inherits connector shape",
			connector: domain.ConnectorStripe,
			override:  &domain.ConnectorCredential{APIKey: "sk_test"},
			want: domain.ConnectorCredential{
				Shape:  domain.ShapeHeaderKey,
				APIKey: "sk_test",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServiceWithGateway(&mockGateway{}, source)

			got := s.resolveCredential(context.Background(), tt.connector, tt.override)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveCredentialNeverCachesAcrossCalls(t *testing.T) {
	source := staticCredentials{}
	s := newServiceWithGateway(&mockGateway{}, source)

	first := s.resolveCredential(context.Background(), domain.ConnectorRazorpay, nil)
	assert.True(t, first.Empty())

	source["API_KEY"] = "late_key"
	source["KEY1"] = "late_key1"

	second := s.resolveCredential(context.Background(), domain.ConnectorRazorpay, nil)
	assert.Equal(t, "late_key", second.APIKey)
	assert.Equal(t, "late_key1", second.Key1)
}
