package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mmisoft/ecom/internal/client/identity"
)

// Whoami prints the profile of the signed-in user: the stored profile
// document when one exists, the provider session otherwise. Works on a
// resumed session too, where the user comes from the stored token.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.auth.ResumeUser(ctx)
	if err != nil {
		printlnFn("Not logged in")
		return identity.ErrUserNotFound
	}

	if stored, err := a.auth.Profile(ctx, user.ID); err == nil && stored != nil {
		user = stored
	}

	printlnFn(fmt.Sprintf("Username: %s", user.Username))
	printlnFn(fmt.Sprintf("Email:    %s", user.Email))
	printlnFn(fmt.Sprintf("Phone:    %s", user.PhoneNumber))
	printlnFn(fmt.Sprintf("Verified: %t", user.IsVerified))
	return nil
}

// UpdateProfile prompts for the updatable profile fields and saves them.
// Leaving a field empty keeps the current value.
func (a *App) UpdateProfile(ctx context.Context) error {
	user, err := a.auth.ResumeUser(ctx)
	if err != nil {
		printlnFn("Not logged in")
		return identity.ErrUserNotFound
	}

	username, err := getSimpleText(a.reader, "New username (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "New phone number (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	if username == "" {
		username = user.Username
	}
	if phone == "" {
		phone = user.PhoneNumber
	}

	updated := user.WithProfile(username, phone, user.IsVerified)
	if err := a.auth.UpdateProfile(ctx, updated); err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	a.userName = username
	printlnFn("Profile updated")
	return nil
}

// UploadImage reads an image file from disk and uploads it as the profile
// picture, printing the URL it can be fetched from.
func (a *App) UploadImage(ctx context.Context) error {
	user, err := a.auth.ResumeUser(ctx)
	if err != nil {
		printlnFn("Not logged in")
		return identity.ErrUserNotFound
	}

	path, err := getSimpleText(a.reader, "Path to image file", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Could not read file: " + err.Error())
		return err
	}

	url, err := a.auth.UploadProfileImage(ctx, user.ID, data)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	printlnFn("Uploaded: " + url)
	return nil
}
