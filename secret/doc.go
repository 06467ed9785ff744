// Package secret generates random alphanumeric secrets.
//
// It provides:
//   - Generate / Generator: strings drawn uniformly from Alphabet using a
//     cryptographically secure source (crypto/rand by default)
//   - Catalog: an ordered set of named secret definitions
//   - DefaultCatalog: the deployment secrets (JWT_SECRET, WEBHOOK_SECRET,
//     SECRETS_ENCRYPTION_KEY)
//
// Values are never seeded by the caller and never fall back to a weaker
// source: a failing source surfaces as ErrEntropyUnavailable.
package secret
