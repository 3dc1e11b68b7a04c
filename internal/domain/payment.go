package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is a supported currency token. The set is closed; anything outside
// it is rejected before a wire request is built.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyINR Currency = "INR"
)

// Connector is a supported payment processor token.
type Connector string

const (
	ConnectorStripe   Connector = "STRIPE"
	ConnectorRazorpay Connector = "RAZORPAY"
	ConnectorAdyen    Connector = "ADYEN"
)

// PaymentMethod is a supported payment method token. Card is the only method
// the connector-service surface carries today.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
)

// ParseCurrency canonicalizes a caller-supplied currency token. Matching is
// case-insensitive; unknown tokens return false.
func ParseCurrency(token string) (Currency, bool) {
	switch Currency(strings.ToUpper(token)) {
	case CurrencyUSD:
		return CurrencyUSD, true
	case CurrencyEUR:
		return CurrencyEUR, true
	case CurrencyGBP:
		return CurrencyGBP, true
	case CurrencyINR:
		return CurrencyINR, true
	}
	return "", false
}

// ParseConnector canonicalizes a caller-supplied connector token.
func ParseConnector(token string) (Connector, bool) {
	switch Connector(strings.ToUpper(token)) {
	case ConnectorStripe:
		return ConnectorStripe, true
	case ConnectorRazorpay:
		return ConnectorRazorpay, true
	case ConnectorAdyen:
		return ConnectorAdyen, true
	}
	return "", false
}

// CardDetails holds the card instrument fields. All four core fields are
// required for an authorize call.
type CardDetails struct {
	Number   string
	ExpMonth string
	ExpYear  string
	CVC      string
	Holder   string
}

// PaymentIntent is the caller's normalized input for an authorize operation.
// Amount is in major currency units. Intents are built per call and never
// retained after the result is returned.
type PaymentIntent struct {
	Amount    decimal.Decimal
	Currency  string
	Connector string
	Method    string
	Card      CardDetails
	Email     string

	// ReferenceID correlates the request with its outcome. Generated when
	// empty.
	ReferenceID string

	// Override carries caller-supplied credentials. When nil or incomplete,
	// the credential resolver fills in defaults where the connector has any.
	Override *ConnectorCredential

	// Optional fields echoed into the wire request when set.
	ConnectorCustomer string
	ReturnURL         string
}

// SyncRequest is the caller's input for a payment status sync.
type SyncRequest struct {
	PaymentID   string
	Connector   string
	Override    *ConnectorCredential
	ReferenceID string
}
