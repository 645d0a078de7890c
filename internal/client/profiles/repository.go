// Package profiles reads and writes the per-user profile document in the
// platform's document store, keyed by user id.
package profiles

import (
	"context"

	"github.com/mmisoft/ecom/internal/client/models"
)

type Repository interface {
	// Get returns the profile for id, or nil when no document exists.
	// Missing fields come back defaulted, never as an error.
	Get(ctx context.Context, id string) (*models.User, error)

	// Save writes the full profile document after sign-up, stamping
	// last_login_at with the current time.
	Save(ctx context.Context, user models.User) error

	// Update merges the updatable fields (username, phone number,
	// verification flag) into the existing document and stamps updated_at.
	Update(ctx context.Context, user models.User) error
}
