package cli

import (
	"context"
	"os"

	"github.com/mmisoft/ecom/internal/client/identity"
	"github.com/mmisoft/ecom/internal/client/validation"
)

// VerifyPhone runs the one-time-code challenge: prompt for a phone number,
// send the code, prompt for the code and verify it. On success the current
// profile is stamped verified. Skipped with a notice when the user leaves the
// phone number empty.
func (a *App) VerifyPhone(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone number (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if phone == "" {
		printlnFn("Phone verification skipped")
		return nil
	}

	printlnFn("Sending code...")
	verificationID, err := a.auth.SendOTP(ctx, phone)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	code, err := getSimpleText(a.reader, "Enter the 4-digit code", os.Stdout)
	if err != nil {
		return err
	}
	if !validation.IsValidOTP(code) {
		printlnFn("The code must be exactly 4 digits")
		return identity.ErrInvalidOTP
	}

	if err := a.auth.VerifyOTP(ctx, code, verificationID); err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	printlnFn("Phone number verified")

	if user, err := a.auth.ResumeUser(ctx); err == nil {
		updated := user.WithProfile(user.Username, phone, true)
		if err := a.auth.UpdateProfile(ctx, updated); err != nil {
			a.log.Warn(ctx, "failed to persist verification flag", "error", err)
		}
	}
	return nil
}
