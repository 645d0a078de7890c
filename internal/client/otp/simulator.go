// Package otp simulates a phone one-time-code challenge. There is no real
// phone-verification backend behind it: the verification ID is a fixed
// placeholder and codes are checked against a configured expected value.
// It exists to exercise the login → OTP → home flow end to end and must not
// be shipped as a production verification step.
package otp

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/mmisoft/ecom/internal/client/identity"
	"github.com/mmisoft/ecom/internal/logging"
)

const (
	// VerificationID correlates a verify call with a previous send. With no
	// real backend there is only one placeholder value.
	VerificationID = "simulated-verification-id"

	defaultExpectedCode = "1234"
	defaultSendDelay    = time.Second
	defaultVerifyDelay  = 500 * time.Millisecond
)

type Simulator struct {
	expected    string
	sendDelay   time.Duration
	verifyDelay time.Duration
	log         logging.Logger
}

type Option func(*Simulator)

// WithExpectedCode overrides the code VerifyOTP accepts.
func WithExpectedCode(code string) Option {
	return func(s *Simulator) { s.expected = code }
}

// WithDelays overrides the artificial latencies. Tests use tiny values.
func WithDelays(send, verify time.Duration) Option {
	return func(s *Simulator) {
		s.sendDelay = send
		s.verifyDelay = verify
	}
}

func NewSimulator(log logging.Logger, opts ...Option) *Simulator {
	s := &Simulator{
		expected:    defaultExpectedCode,
		sendDelay:   defaultSendDelay,
		verifyDelay: defaultVerifyDelay,
		log:         log,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SendOTP pretends to deliver a code to phoneNumber. An empty number fails
// immediately with identity.ErrInvalidCredentials; otherwise the call resolves
// after the configured delay with the verification ID for the later verify.
func (s *Simulator) SendOTP(ctx context.Context, phoneNumber string) (string, error) {
	if phoneNumber == "" {
		return "", identity.ErrInvalidCredentials
	}

	if err := s.wait(ctx, s.sendDelay); err != nil {
		return "", err
	}

	code := fmt.Sprintf("%04d", 1000+rand.Intn(9000))
	s.log.Debug(ctx, "generated OTP", "code", code, "phone", phoneNumber)

	return VerificationID, nil
}

// VerifyOTP checks code against the expected value. An empty code fails
// immediately with identity.ErrInvalidOTP; a mismatch fails with the same
// error after the configured delay.
func (s *Simulator) VerifyOTP(ctx context.Context, code, verificationID string) error {
	if code == "" {
		return identity.ErrInvalidOTP
	}

	if err := s.wait(ctx, s.verifyDelay); err != nil {
		return err
	}

	if code != s.expected {
		return identity.ErrInvalidOTP
	}
	return nil
}

func (s *Simulator) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
