package payment

import (
	"strings"

	paymentv1 "github.com/kevin07696/connector-client/api/proto/payments/v1"
	"github.com/kevin07696/connector-client/internal/domain"
)

// Canonical mapping tables between domain tokens and wire enum values. Each
// table is total over its closed domain set; the inverse tables are derived
// so the two can never drift apart.

var currencyToWire = map[domain.Currency]paymentv1.Currency{
	domain.CurrencyUSD: paymentv1.Currency_USD,
	domain.CurrencyEUR: paymentv1.Currency_EUR,
	domain.CurrencyGBP: paymentv1.Currency_GBP,
	domain.CurrencyINR: paymentv1.Currency_INR,
}

var connectorToWire = map[domain.Connector]paymentv1.Connector{
	domain.ConnectorStripe:   paymentv1.Connector_STRIPE,
	domain.ConnectorRazorpay: paymentv1.Connector_RAZORPAY,
	domain.ConnectorAdyen:    paymentv1.Connector_ADYEN,
}

var methodToWire = map[domain.PaymentMethod]paymentv1.PaymentMethod{
	domain.PaymentMethodCard: paymentv1.PaymentMethod_CARD,
}

var currencyFromWire = invert(currencyToWire)
var connectorFromWire = invert(connectorToWire)

func invert[D comparable, W comparable](m map[D]W) map[W]D {
	out := make(map[W]D, len(m))
	for d, w := range m {
		out[w] = d
	}
	return out
}

// toWireCurrency maps a caller token to the wire currency enum. Unknown
// tokens fail with UnsupportedValue; there is no default currency.
func toWireCurrency(token string) (paymentv1.Currency, error) {
	currency, ok := domain.ParseCurrency(token)
	if !ok {
		return paymentv1.Currency_CURRENCY_UNSPECIFIED, domain.NewUnsupportedValueError("currency", token)
	}
	return currencyToWire[currency], nil
}

// toWireConnector maps a caller token to the wire connector enum. Unknown
// tokens fail with UnsupportedValue; there is no default connector.
func toWireConnector(token string) (paymentv1.Connector, error) {
	connector, ok := domain.ParseConnector(token)
	if !ok {
		return paymentv1.Connector_CONNECTOR_UNSPECIFIED, domain.NewUnsupportedValueError("connector", token)
	}
	return connectorToWire[connector], nil
}

// toWirePaymentMethod maps a caller token to the wire payment method enum.
// Policy: unlike currency and connector, an unrecognized method falls back to
// CARD instead of failing. Card is the only method the backend carries today
// and callers historically pass free-form method strings. Keep this fallback
// distinct from the hard-fail mappings above.
func toWirePaymentMethod(token string) paymentv1.PaymentMethod {
	if method, ok := methodToWire[domain.PaymentMethod(strings.ToLower(token))]; ok {
		return method
	}
	return paymentv1.PaymentMethod_CARD
}

// fromWireCurrency maps a wire currency enum back to its domain token.
func fromWireCurrency(currency paymentv1.Currency) (domain.Currency, bool) {
	token, ok := currencyFromWire[currency]
	return token, ok
}

// fromWireConnector maps a wire connector enum back to its domain token.
func fromWireConnector(connector paymentv1.Connector) (domain.Connector, bool) {
	token, ok := connectorFromWire[connector]
	return token, ok
}
