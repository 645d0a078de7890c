package cli

import (
	"context"
	"errors"
	"os"

	"github.com/mmisoft/ecom/internal/client/identity"
	"github.com/mmisoft/ecom/internal/client/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// errorMessage maps taxonomy errors to the messages shown to the user.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, identity.ErrNetwork):
		return "Network error. Check your connection and try again"
	case errors.Is(err, identity.ErrUserNotFound):
		return "Account not found"
	case errors.Is(err, identity.ErrInvalidOTP):
		return "Incorrect code. Please try again"
	case errors.Is(err, identity.ErrSignUpFailed):
		return "Could not create the account. The email may already be in use"
	default:
		return "Something went wrong. Please try again"
	}
}

// Login prompts for an email and password, validates them locally and
// authenticates via the AuthService. Invalid input is reported inline and no
// remote call is made. On success the phone verification step runs next.
//
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if !validation.IsValidEmail(email) {
		printlnFn("Please enter a valid email address")
		return identity.ErrInvalidCredentials
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	if !validation.IsValidPassword(string(password)) {
		printlnFn("Password must be at least 6 characters")
		return identity.ErrInvalidCredentials
	}

	user, err := a.auth.Authenticate(ctx, email, string(password))
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	a.loggedIn = true
	a.userName = user.Username
	if a.userName == "" {
		a.userName = user.Email
	}
	printlnFn("Welcome, " + a.userName + "!")

	return a.VerifyPhone(ctx)
}

// SignUp prompts for a username, email and password and attempts to create
// a new account via the AuthService.
//
// On success it prints a greeting and runs the phone verification step. The
// password byte slice is securely wiped before returning.
func (a *App) SignUp(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}
	if username == "" {
		printlnFn("Username must not be empty")
		return identity.ErrInvalidCredentials
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if !validation.IsValidEmail(email) {
		printlnFn("Please enter a valid email address")
		return identity.ErrInvalidCredentials
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	if !validation.IsValidPassword(string(password)) {
		printlnFn("Password must be at least 6 characters")
		return identity.ErrInvalidCredentials
	}

	user, err := a.auth.SignUp(ctx, email, string(password), username)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	a.loggedIn = true
	a.userName = user.Username
	printlnFn("Welcome, " + a.userName + "!")

	return a.VerifyPhone(ctx)
}

// Logout revokes the remote session and clears the stored token. On failure
// the session stays active and the error is reported to the user.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		printlnFn(errorMessage(err))
		return err
	}
	a.loggedIn = false
	a.userName = ""
	printlnFn("Logged out")
	return nil
}
