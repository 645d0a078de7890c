// Package identity wraps the remote identity provider: email/password
// sign-in, account creation, display-name update, sign-out and the cached
// current session. All provider failures are translated into the package's
// error taxonomy before they reach a caller.
package identity

import "context"

type Client interface {
	// SignIn authenticates with email and password and caches the resulting
	// session.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// SignUp creates an account and caches the resulting session.
	SignUp(ctx context.Context, email, password string) (*Session, error)

	// SetDisplayName updates the display name of the cached session's account.
	SetDisplayName(ctx context.Context, displayName string) error

	// SignOut revokes the current session with the provider. The local cache
	// is cleared only after the provider confirms.
	SignOut(ctx context.Context) error

	// CurrentSession returns the cached session, if any. No network.
	CurrentSession() (*Session, bool)
}
