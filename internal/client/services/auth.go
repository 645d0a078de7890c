// Package services contains the application services behind the screens.
// This file defines the authentication façade: the single entry point the
// presentation layer calls for sign-in, sign-up, OTP, sign-out, current-user
// resolution and profile maintenance.
package services

import (
	"context"

	"github.com/mmisoft/ecom/internal/client/identity"
	"github.com/mmisoft/ecom/internal/client/models"
	"github.com/mmisoft/ecom/internal/client/otp"
	"github.com/mmisoft/ecom/internal/client/tokenstore"
	"github.com/mmisoft/ecom/internal/logging"
)

// PlatformGateway is the remote-platform surface the façade drives. The
// concrete implementation is gateway.Gateway; tests substitute a fake.
type PlatformGateway interface {
	SignIn(ctx context.Context, email, password string) (*models.User, error)
	SignUp(ctx context.Context, email, password, username string) (*models.User, error)
	SignOut(ctx context.Context) error
	CurrentUser() *models.User
	GetUserProfile(ctx context.Context, id string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, user models.User) error
	UploadProfileImage(ctx context.Context, userID string, imageData []byte) (string, error)
}

// AuthService defines the operations the screens consume.
//
// Contract:
//   - Authenticate / SignUp: resolve to a User and persist the session token.
//   - SendOTP / VerifyOTP: drive the phone challenge step.
//   - SignOut: revoke the provider session, then clear the local token.
//   - CurrentUser: cached provider session, no network.
//   - ResumeUser: the signed-in user even after a process restart — the
//     cached session when there is one, otherwise the stored token (the
//     user id) resolved through the profile store.
//   - Profile / UpdateProfile / UploadProfileImage: profile maintenance.
//   - IsLoggedIn: local token validity, checked at startup to bypass login.
//
// Empty required inputs fail fast with a taxonomy error before any remote
// call. All blocking methods honor context cancellation.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	SignUp(ctx context.Context, email, password, username string) (*models.User, error)
	SendOTP(ctx context.Context, phoneNumber string) (string, error)
	VerifyOTP(ctx context.Context, code, verificationID string) error
	SignOut(ctx context.Context) error
	CurrentUser() *models.User
	ResumeUser(ctx context.Context) (*models.User, error)
	Profile(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, user models.User) error
	UploadProfileImage(ctx context.Context, userID string, imageData []byte) (string, error)
	IsLoggedIn(ctx context.Context) bool
}

type authService struct {
	gateway PlatformGateway
	otp     *otp.Simulator
	tokens  tokenstore.Store
	log     logging.Logger
}

// NewAuthService constructs the façade over the given gateway, OTP simulator
// and token store.
func NewAuthService(gateway PlatformGateway, sim *otp.Simulator, tokens tokenstore.Store, log logging.Logger) AuthService {
	return &authService{gateway: gateway, otp: sim, tokens: tokens, log: log}
}

// Authenticate signs in and persists the user's id as the session token.
// Token persistence is best-effort: a storage failure is logged, not
// surfaced as an authentication failure.
func (a *authService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, identity.ErrInvalidCredentials
	}

	user, err := a.gateway.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	a.saveToken(ctx, user.ID)
	return user, nil
}

// SignUp registers a new account and persists the session token the same way
// Authenticate does.
func (a *authService) SignUp(ctx context.Context, email, password, username string) (*models.User, error) {
	if email == "" || password == "" || username == "" {
		return nil, identity.ErrInvalidCredentials
	}

	user, err := a.gateway.SignUp(ctx, email, password, username)
	if err != nil {
		return nil, err
	}

	a.saveToken(ctx, user.ID)
	return user, nil
}

func (a *authService) saveToken(ctx context.Context, userID string) {
	if err := a.tokens.Save(ctx, userID); err != nil {
		a.log.Warn(ctx, "failed to save session token", "error", err)
	}
}

func (a *authService) SendOTP(ctx context.Context, phoneNumber string) (string, error) {
	if phoneNumber == "" {
		return "", identity.ErrInvalidCredentials
	}
	return a.otp.SendOTP(ctx, phoneNumber)
}

func (a *authService) VerifyOTP(ctx context.Context, code, verificationID string) error {
	if code == "" {
		return identity.ErrInvalidOTP
	}
	return a.otp.VerifyOTP(ctx, code, verificationID)
}

// SignOut revokes the provider session first and clears the local token only
// after the provider confirms, so a failed provider call never produces a
// false "logged out" state.
func (a *authService) SignOut(ctx context.Context) error {
	if err := a.gateway.SignOut(ctx); err != nil {
		return err
	}

	if err := a.tokens.Delete(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session token after sign-out", "error", err)
		return identity.ErrUnknown
	}
	return nil
}

func (a *authService) CurrentUser() *models.User {
	return a.gateway.CurrentUser()
}

// ResumeUser resolves the signed-in user. With a live provider session that
// session wins; after a restart the stored token holds the user id, so the
// profile document is looked up instead. A stored id without a profile
// document still yields a usable user carrying just the id.
func (a *authService) ResumeUser(ctx context.Context) (*models.User, error) {
	if user := a.gateway.CurrentUser(); user != nil {
		return user, nil
	}

	id, err := a.tokens.Get(ctx)
	if err != nil || id == "" {
		return nil, identity.ErrUserNotFound
	}

	user, err := a.gateway.GetUserProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &models.User{ID: id}, nil
	}
	return user, nil
}

func (a *authService) Profile(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, identity.ErrUserNotFound
	}
	return a.gateway.GetUserProfile(ctx, id)
}

func (a *authService) UpdateProfile(ctx context.Context, user models.User) error {
	if user.ID == "" {
		return identity.ErrUserNotFound
	}
	return a.gateway.UpdateUserProfile(ctx, user)
}

func (a *authService) UploadProfileImage(ctx context.Context, userID string, imageData []byte) (string, error) {
	if userID == "" {
		return "", identity.ErrUserNotFound
	}
	if len(imageData) == 0 {
		return "", identity.ErrUnknown
	}
	return a.gateway.UploadProfileImage(ctx, userID, imageData)
}

func (a *authService) IsLoggedIn(ctx context.Context) bool {
	return a.tokens.IsValid(ctx)
}
