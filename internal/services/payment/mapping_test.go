package payment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentv1 "github.com/kevin07696/connector-client/api/proto/payments/v1"
	"github.com/kevin07696/connector-client/internal/domain"
)

func TestCurrencyMappingRoundTrip(t *testing.T) {
	tokens := []string{"USD", "EUR", "GBP", "INR", "usd", "inr"}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			wire, err := toWireCurrency(token)
			require.NoError(t, err)
			assert.NotEqual(t, paymentv1.Currency_CURRENCY_UNSPECIFIED, wire)

			back, ok := fromWireCurrency(wire)
			require.True(t, ok)

			canonical, _ := domain.ParseCurrency(token)
			assert.Equal(t, canonical, back)
		})
	}
}

func TestConnectorMappingRoundTrip(t *testing.T) {
	tokens := []string{"STRIPE", "RAZORPAY", "ADYEN", "razorpay", "Stripe"}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			wire, err := toWireConnector(token)
			require.NoError(t, err)
			assert.NotEqual(t, paymentv1.Connector_CONNECTOR_UNSPECIFIED, wire)

			back, ok := fromWireConnector(wire)
			require.True(t, ok)

			canonical, _ := domain.ParseConnector(token)
			assert.Equal(t, canonical, back)
		})
	}
}

func TestUnknownTokensAreRejected(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		token string
	}{
		{name: "unknown currency", kind: "currency", token: "XYZ"},
		{name: "empty currency", kind: "currency", token: ""},
		{name: "unknown connector", kind: "connector", token: "BITCOIN"},
		{name: "empty connector", kind: "connector", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.kind == "currency" {
				_, err = toWireCurrency(tt.token)
			} else {
				_, err = toWireConnector(tt.token)
			}

			var unsupported *domain.UnsupportedValueError
			require.True(t, errors.As(err, &unsupported))
			assert.Equal(t, tt.kind, unsupported.Kind)
			assert.Equal(t, tt.token, unsupported.Token)
		})
	}
}

func TestPaymentMethodFallsBackToCard(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "card", token: "card"},
		{name: "uppercase card", token: "CARD"},
		{name: "unknown method", token: "bank_transfer"},
		{name: "empty method", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, paymentv1.PaymentMethod_CARD, toWirePaymentMethod(tt.token))
		})
	}
}
