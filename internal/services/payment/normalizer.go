package payment

import (
	"strings"

	paymentv1 "github.com/kevin07696/connector-client/api/proto/payments/v1"
	"github.com/kevin07696/connector-client/internal/domain"
)

// wireStatusTable maps the wire status enumeration onto the normalized
// status vocabulary. The table is deliberately small: any wire status outside
// it is passed through as its lower-cased string form rather than failing, so
// new connector states surface to callers without a client release.
var wireStatusTable = map[paymentv1.PaymentStatus]string{
	paymentv1.PaymentStatus_PENDING:                domain.StatusPending,
	paymentv1.PaymentStatus_AUTHENTICATION_PENDING: domain.StatusPendingAuthentication,
	paymentv1.PaymentStatus_CHARGED:                domain.StatusCharged,
}

func statusFromWire(status paymentv1.PaymentStatus) string {
	if mapped, ok := wireStatusTable[status]; ok {
		return mapped
	}
	// String() yields the enum member name for known values and the decimal
	// form for values this stub predates.
	return strings.ToLower(status.String())
}

// transactionIDFromWire extracts the processor transaction id when the
// resource-id substructure is present. Absence yields an empty string, never
// an error.
func transactionIDFromWire(resourceID *paymentv1.ResourceId) string {
	if resourceID == nil {
		return ""
	}
	return resourceID.GetConnectorTransactionId()
}

// redirectFromWire extracts the redirect/challenge endpoint when the
// redirection substructure is present. Absence yields an empty string.
func redirectFromWire(redirection *paymentv1.RedirectionData) string {
	if redirection == nil || redirection.GetForm() == nil {
		return ""
	}
	return redirection.GetForm().GetEndpoint()
}

// normalizeAuthorize maps an authorize response, however sparsely populated,
// into the fixed result shape. It is total over optional substructures; only
// a response missing entirely is malformed.
func normalizeAuthorize(intent domain.PaymentIntent, referenceID string, resp *paymentv1.PaymentsAuthorizeResponse) (*domain.NormalizedResult, error) {
	if resp == nil {
		return nil, domain.NewMalformedResponseError("authorize")
	}

	return &domain.NormalizedResult{
		Status:      statusFromWire(resp.GetStatus()),
		PaymentID:   transactionIDFromWire(resp.GetResourceId()),
		Amount:      intent.Amount,
		Currency:    intent.Currency,
		Connector:   intent.Connector,
		ReferenceID: referenceID,
		RedirectURL: redirectFromWire(resp.GetRedirectionData()),
	}, nil
}

// normalizeSync maps a sync response into the fixed result shape. When the
// response omits its resource id, the caller's payment id is echoed back so
// the result stays self-describing.
func normalizeSync(req domain.SyncRequest, referenceID string, resp *paymentv1.PaymentsSyncResponse) (*domain.NormalizedResult, error) {
	if resp == nil {
		return nil, domain.NewMalformedResponseError("sync")
	}

	paymentID := transactionIDFromWire(resp.GetResourceId())
	if paymentID == "" {
		paymentID = req.PaymentID
	}

	return &domain.NormalizedResult{
		Status:      statusFromWire(resp.GetStatus()),
		PaymentID:   paymentID,
		Connector:   req.Connector,
		ReferenceID: referenceID,
	}, nil
}
