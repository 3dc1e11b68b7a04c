package domain

import "github.com/shopspring/decimal"

// Well-known normalized statuses. Wire statuses outside the mapped set are
// passed through as their lower-cased string form, so Status is a string
// rather than a closed Go type.
const (
	StatusPendingAuthentication = "pending_authentication"
	StatusCharged               = "charged"
	StatusPending               = "pending"
	StatusUnknown               = "unknown"
)

// ResultError is the structured error carried by a NormalizedResult. A result
// with a non-nil Error must never be read as a successful operation.
type ResultError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}

// NormalizedResult is the uniform, connector-agnostic outcome returned to the
// caller for every operation. It is the only value that escapes the core.
type NormalizedResult struct {
	Status      string          `json:"status,omitempty"`
	PaymentID   string          `json:"payment_id,omitempty"`
	Amount      decimal.Decimal `json:"amount,omitempty"`
	Currency    string          `json:"currency,omitempty"`
	Connector   string          `json:"connector,omitempty"`
	ReferenceID string          `json:"reference_id,omitempty"`
	RedirectURL string          `json:"redirect_url,omitempty"`
	Error       *ResultError    `json:"error,omitempty"`
}

// ErrorResult builds a result carrying only a structured error.
func ErrorResult(err error) *NormalizedResult {
	return &NormalizedResult{
		Error: &ResultError{
			Type:    ClassifyError(err),
			Message: err.Error(),
		},
	}
}

// Failed reports whether the result carries an error.
func (r *NormalizedResult) Failed() bool {
	return r.Error != nil
}
