// Package gateway is the single boundary to the remote data platform: the
// identity provider, the profile document store, profile image storage and
// the analytics sink. Every failure crossing it is one of the identity
// taxonomy errors; nothing platform-specific leaks to callers.
package gateway

import (
	"context"
	"errors"

	"github.com/mmisoft/ecom/internal/analytics"
	"github.com/mmisoft/ecom/internal/client/identity"
	"github.com/mmisoft/ecom/internal/client/images"
	"github.com/mmisoft/ecom/internal/client/models"
	"github.com/mmisoft/ecom/internal/client/profiles"
	"github.com/mmisoft/ecom/internal/logging"
)

type Gateway struct {
	provider identity.Client
	profiles profiles.Repository
	images   images.Uploader
	events   analytics.Recorder
	log      logging.Logger
}

func New(provider identity.Client, profiles profiles.Repository, images images.Uploader, events analytics.Recorder, log logging.Logger) *Gateway {
	return &Gateway{
		provider: provider,
		profiles: profiles,
		images:   images,
		events:   events,
		log:      log,
	}
}

// SignIn authenticates with the provider. Empty inputs fail with
// ErrInvalidCredentials before any remote call. A "login" event is emitted on
// success only.
func (g *Gateway) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, identity.ErrInvalidCredentials
	}

	session, err := g.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, g.taxonomy(ctx, err)
	}

	user := session.User()
	g.events.Event(ctx, "login", map[string]string{"method": "email"})
	return &user, nil
}

// SignUp creates the account, sets the display name and persists the profile
// document. An already-used email fails with ErrSignUpFailed. A "sign_up"
// event is emitted on success only.
func (g *Gateway) SignUp(ctx context.Context, email, password, username string) (*models.User, error) {
	if email == "" || password == "" || username == "" {
		return nil, identity.ErrInvalidCredentials
	}

	session, err := g.provider.SignUp(ctx, email, password)
	if err != nil {
		return nil, g.taxonomy(ctx, err)
	}

	if err := g.provider.SetDisplayName(ctx, username); err != nil {
		return nil, g.taxonomy(ctx, err)
	}

	user := session.User()
	user.Username = username

	if err := g.profiles.Save(ctx, user); err != nil {
		return nil, g.taxonomy(ctx, err)
	}

	g.events.Event(ctx, "sign_up", map[string]string{"method": "email"})
	return &user, nil
}

// SignOut revokes the provider session. On provider failure the error
// propagates and no "logout" event is emitted; the caller must not treat the
// session as ended.
func (g *Gateway) SignOut(ctx context.Context) error {
	if err := g.provider.SignOut(ctx); err != nil {
		return g.taxonomy(ctx, err)
	}
	g.events.Event(ctx, "logout", nil)
	return nil
}

// CurrentUser returns the user for the provider's cached session, or nil
// when there is none. No network.
func (g *Gateway) CurrentUser() *models.User {
	session, ok := g.provider.CurrentSession()
	if !ok {
		return nil
	}
	user := session.User()
	return &user
}

// GetUserProfile reads the profile document for id; nil when absent.
func (g *Gateway) GetUserProfile(ctx context.Context, id string) (*models.User, error) {
	user, err := g.profiles.Get(ctx, id)
	if err != nil {
		return nil, g.taxonomy(ctx, err)
	}
	return user, nil
}

// UpdateUserProfile merges the updatable fields into the stored document.
func (g *Gateway) UpdateUserProfile(ctx context.Context, user models.User) error {
	if user.ID == "" {
		return identity.ErrUserNotFound
	}
	if err := g.profiles.Update(ctx, user); err != nil {
		return g.taxonomy(ctx, err)
	}
	return nil
}

// UploadProfileImage stores the image under the user's deterministic path and
// returns the retrievable URL.
func (g *Gateway) UploadProfileImage(ctx context.Context, userID string, imageData []byte) (string, error) {
	if userID == "" {
		return "", identity.ErrUserNotFound
	}
	url, err := g.images.Upload(ctx, userID, imageData)
	if err != nil {
		return "", g.taxonomy(ctx, err)
	}
	return url, nil
}

// LogEvent forwards a custom analytics event. Fire-and-forget.
func (g *Gateway) LogEvent(ctx context.Context, name string, params map[string]string) {
	g.events.Event(ctx, name, params)
}

// SetUserProperty forwards an analytics user property. Fire-and-forget.
func (g *Gateway) SetUserProperty(ctx context.Context, name, value string) {
	g.events.UserProperty(ctx, name, value)
}

// taxonomy keeps taxonomy errors as-is and collapses everything else into
// ErrUnknown, logging the underlying cause.
func (g *Gateway) taxonomy(ctx context.Context, err error) error {
	for _, known := range []error{
		identity.ErrInvalidCredentials,
		identity.ErrNetwork,
		identity.ErrUserNotFound,
		identity.ErrInvalidOTP,
		identity.ErrSignUpFailed,
		identity.ErrUnknown,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	g.log.Warn(ctx, "unmapped platform error", "error", err)
	return identity.ErrUnknown
}
