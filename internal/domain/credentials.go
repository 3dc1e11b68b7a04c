package domain

// CredentialShape discriminates the credential union. Which shape a connector
// expects is fixed by the connector-service contract.
type CredentialShape string

const (
	// ShapeHeaderKey carries a single API key (api_key).
	ShapeHeaderKey CredentialShape = "header_key"
	// ShapeBodyKey carries an API key plus a secondary key (api_key, key1).
	ShapeBodyKey CredentialShape = "body_key"
	// ShapeSignatureKey carries an API key, a secondary key, and a signing
	// secret (api_key, key1, api_secret).
	ShapeSignatureKey CredentialShape = "signature_key"
)

// ConnectorCredential is the resolved credential bundle embedded in a wire
// request. It is resolved once per call, never cached, never persisted, and
// its values must never appear in logs or results.
type ConnectorCredential struct {
	Shape     CredentialShape
	APIKey    string
	Key1      string
	APISecret string
}

// Complete reports whether every field the shape requires is populated.
func (c ConnectorCredential) Complete() bool {
	switch c.Shape {
	case ShapeHeaderKey:
		return c.APIKey != ""
	case ShapeBodyKey:
		return c.APIKey != "" && c.Key1 != ""
	case ShapeSignatureKey:
		return c.APIKey != "" && c.Key1 != "" && c.APISecret != ""
	}
	return false
}

// Empty reports whether no secret material is present at all.
func (c ConnectorCredential) Empty() bool {
	return c.APIKey == "" && c.Key1 == "" && c.APISecret == ""
}

// ShapeForConnector returns the credential shape a connector expects.
func ShapeForConnector(connector Connector) CredentialShape {
	switch connector {
	case ConnectorRazorpay:
		return ShapeBodyKey
	case ConnectorAdyen:
		return ShapeSignatureKey
	default:
		return ShapeHeaderKey
	}
}
