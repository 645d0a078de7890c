// Package tokenstore persists the single opaque session token in the
// client's device-local database, keyed by a fixed (service, account) pair.
// Absence or emptiness of the token means "not authenticated".
package tokenstore

import "context"

const (
	serviceIdentifier = "com.mmi.ecom.auth"
	accountIdentifier = "authToken"
)

type Store interface {
	// Save stores the token, overwriting any existing entry for the fixed
	// (service, account) key. Repeated saves never duplicate.
	Save(ctx context.Context, token string) error

	// Get returns the stored token, or "" when none is stored.
	Get(ctx context.Context) (string, error)

	// Delete removes the stored token. Deleting an absent token is not an
	// error.
	Delete(ctx context.Context) error

	// IsValid reports whether a non-empty token is currently stored.
	// Storage failures count as "no token".
	IsValid(ctx context.Context) bool
}
