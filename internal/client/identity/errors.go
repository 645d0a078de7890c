package identity

import "errors"

// Closed error taxonomy for everything the client surfaces to the user.
// Provider-specific failures are mapped into this set at the gateway boundary
// and nothing provider-specific leaks past it. Match with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNetwork            = errors.New("network error, check your connection")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidOTP         = errors.New("invalid OTP code")
	ErrSignUpFailed       = errors.New("sign up failed")
	ErrUnknown            = errors.New("an unknown error occurred")
)
