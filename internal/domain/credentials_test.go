package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialComplete(t *testing.T) {
	tests := []struct {
		name string
		cred ConnectorCredential
		want bool
	}{
		{name: "header key complete", cred: ConnectorCredential{Shape: ShapeHeaderKey, APIKey: "k"}, want: true},
		{name: "header key empty", cred: ConnectorCredential{Shape: ShapeHeaderKey}, want: false},
		{name: "body key complete", cred: ConnectorCredential{Shape: ShapeBodyKey, APIKey: "k", Key1: "k1"}, want: true},
		{name: "body key missing key1", cred: ConnectorCredential{Shape: ShapeBodyKey, APIKey: "k"}, want: false},
		{name: "signature key complete", cred: ConnectorCredential{Shape: ShapeSignatureKey, APIKey: "k", Key1: "k1", APISecret: "s"}, want: true},
		{name: "signature key missing secret", cred: ConnectorCredential{Shape: ShapeSignatureKey, APIKey: "k", Key1: "k1"}, want: false},
		{name: "no shape", cred: ConnectorCredential{APIKey: "k"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cred.Complete())
		})
	}
}

func TestShapeForConnector(t *testing.T) {
	assert.Equal(t, ShapeBodyKey, ShapeForConnector(ConnectorRazorpay))
	assert.Equal(t, ShapeSignatureKey, ShapeForConnector(ConnectorAdyen))
	assert.Equal(t, ShapeHeaderKey, ShapeForConnector(ConnectorStripe))
}

func TestParseTokens(t *testing.T) {
	t.Run("currency is case-insensitive", func(t *testing.T) {
		currency, ok := ParseCurrency("inr")
		assert.True(t, ok)
		assert.Equal(t, CurrencyINR, currency)
	})

	t.Run("unknown currency rejected", func(t *testing.T) {
		_, ok := ParseCurrency("DOGE")
		assert.False(t, ok)
	})

	t.Run("connector is case-insensitive", func(t *testing.T) {
		connector, ok := ParseConnector("Razorpay")
		assert.True(t, ok)
		assert.Equal(t, ConnectorRazorpay, connector)
	})

	t.Run("unknown connector rejected", func(t *testing.T) {
		_, ok := ParseConnector("BITCOIN")
		assert.False(t, ok)
	})
}
