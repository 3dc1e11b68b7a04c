package ports

import "context"

// CredentialSource supplies default credential material by fixed name
// (e.g. "API_KEY", "KEY1"). Backends: process environment, HashiCorp Vault,
// AWS Secrets Manager. A missing name yields an empty string, not an error;
// credential sufficiency is validated server-side.
type CredentialSource interface {
	GetCredential(ctx context.Context, name string) (string, error)
}
