package payment

import (
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	paymentv1 "github.com/kevin07696/connector-client/api/proto/payments/v1"
	"github.com/kevin07696/connector-client/internal/domain"
)

// Reference prefixes for generated correlation ids.
const (
	authorizeReferencePrefix = "ref_"
	syncReferencePrefix      = "conn_req_"
)

// minorUnitScale fixes the currency exponent at 2: every currency in the
// supported set is a 2-decimal currency, so truncation after scaling is
// exact. Supporting zero- or three-decimal currencies requires a
// per-currency exponent table; until then this is the single place encoding
// the limitation.
var minorUnitScale = decimal.NewFromInt(100)

// Stable browser fingerprint defaults required by the 3-D-Secure block of
// the wire schema. The backend needs the block populated even for
// server-initiated calls with no real browser behind them.
func defaultBrowserInfo() *paymentv1.BrowserInformation {
	return &paymentv1.BrowserInformation{
		UserAgent:    "Mozilla/5.0 (Macintosh; Intel Mac OS X)",
		AcceptHeader: "text/html,application/xhtml+xml",
		Language:     "en-US",
		ColorDepth:   24,
		ScreenHeight: 1080,
		ScreenWidth:  1920,
		JavaEnabled:  false,
	}
}

// buildAuthorize composes a schema-valid authorize request from a payment
// intent. Validation failures return before any wire structure is handed to
// the transport.
func (s *Service) buildAuthorize(intent domain.PaymentIntent, cred domain.ConnectorCredential) (*paymentv1.PaymentsAuthorizeRequest, error) {
	if !intent.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "amount must be greater than zero")
	}

	currency, err := toWireCurrency(intent.Currency)
	if err != nil {
		return nil, err
	}
	connector, err := toWireConnector(intent.Connector)
	if err != nil {
		return nil, err
	}
	method := toWirePaymentMethod(intent.Method)

	if err := validateCard(intent.Card); err != nil {
		return nil, err
	}

	minorAmount := intent.Amount.Mul(minorUnitScale).IntPart()

	referenceID := intent.ReferenceID
	if referenceID == "" {
		referenceID = newReference(authorizeReferencePrefix)
	}

	return &paymentv1.PaymentsAuthorizeRequest{
		Amount:        minorAmount,
		MinorAmount:   minorAmount,
		Currency:      currency,
		Connector:     connector,
		AuthCreds:     toWireAuthType(cred),
		PaymentMethod: method,
		PaymentMethodData: &paymentv1.PaymentMethodData{
			Card: &paymentv1.Card{
				CardNumber:     intent.Card.Number,
				CardExpMonth:   intent.Card.ExpMonth,
				CardExpYear:    intent.Card.ExpYear,
				CardCvc:        intent.Card.CVC,
				CardHolderName: intent.Card.Holder,
			},
		},
		Address:                         &paymentv1.PaymentAddress{},
		AuthType:                        paymentv1.AuthenticationType_THREE_DS,
		ConnectorRequestReferenceId:     referenceID,
		EnrolledFor_3Ds:                 true,
		RequestIncrementalAuthorization: false,
		Email:                           intent.Email,
		BrowserInfo:                     defaultBrowserInfo(),
		ConnectorCustomer:               intent.ConnectorCustomer,
		ReturnUrl:                       intent.ReturnURL,
	}, nil
}

// buildSync composes a schema-valid sync request.
func (s *Service) buildSync(req domain.SyncRequest, cred domain.ConnectorCredential) (*paymentv1.PaymentsSyncRequest, error) {
	if req.PaymentID == "" {
		return nil, domain.NewMissingFieldError("payment_id")
	}

	connector, err := toWireConnector(req.Connector)
	if err != nil {
		return nil, err
	}

	referenceID := req.ReferenceID
	if referenceID == "" {
		referenceID = newReference(syncReferencePrefix)
	}

	return &paymentv1.PaymentsSyncRequest{
		Connector:                   connector,
		AuthCreds:                   toWireAuthType(cred),
		ResourceId:                  req.PaymentID,
		ConnectorRequestReferenceId: referenceID,
	}, nil
}

func validateCard(card domain.CardDetails) error {
	if card.Number == "" {
		return domain.NewMissingFieldError("card_number")
	}
	if card.ExpMonth == "" {
		return domain.NewMissingFieldError("card_exp_month")
	}
	if card.ExpYear == "" {
		return domain.NewMissingFieldError("card_exp_year")
	}
	if card.CVC == "" {
		return domain.NewMissingFieldError("card_cvc")
	}
	return nil
}

// toWireAuthType converts the resolved credential union into the AuthType
// oneof of the wire schema.
func toWireAuthType(cred domain.ConnectorCredential) *paymentv1.AuthType {
	switch cred.Shape {
	case domain.ShapeSignatureKey:
		return &paymentv1.AuthType{
			AuthType: &paymentv1.AuthType_SignatureKey{
				SignatureKey: &paymentv1.SignatureKey{
					ApiKey:    cred.APIKey,
					Key1:      cred.Key1,
					ApiSecret: cred.APISecret,
				},
			},
		}
	case domain.ShapeHeaderKey:
		return &paymentv1.AuthType{
			AuthType: &paymentv1.AuthType_HeaderKey{
				HeaderKey: &paymentv1.HeaderKey{
					ApiKey: cred.APIKey,
				},
			},
		}
	default:
		return &paymentv1.AuthType{
			AuthType: &paymentv1.AuthType_BodyKey{
				BodyKey: &paymentv1.BodyKey{
					ApiKey: cred.APIKey,
					Key1:   cred.Key1,
				},
			},
		}
	}
}

// newReference generates a correlation id: a fixed prefix plus the hex form
// of a fresh random UUID. Collisions within a process lifetime are
// vanishingly unlikely.
func newReference(prefix string) string {
	id := uuid.New()
	return prefix + hex.EncodeToString(id[:])
}
