package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mmisoft/ecom/internal/client/models"
)

// Session is the provider-issued authenticated session. Field values are
// authoritative from the provider.
type Session struct {
	UserID        string
	Email         string
	DisplayName   string
	PhoneNumber   string
	EmailVerified bool
	CreatedAt     time.Time

	IDToken      string
	RefreshToken string
}

// fillFromToken backfills session fields the provider response body omitted
// from the ID-token claims. The token is decoded, not verified: the client
// never validates provider signatures, it only reads what the provider put
// into its own token.
func (s *Session) fillFromToken() {
	if s.IDToken == "" {
		return
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.IDToken, claims); err != nil {
		return
	}

	if s.UserID == "" {
		if v, ok := claims["user_id"].(string); ok {
			s.UserID = v
		}
	}
	if s.Email == "" {
		if v, ok := claims["email"].(string); ok {
			s.Email = v
		}
	}
	if s.PhoneNumber == "" {
		if v, ok := claims["phone_number"].(string); ok {
			s.PhoneNumber = v
		}
	}
	if !s.EmailVerified {
		if v, ok := claims["email_verified"].(bool); ok {
			s.EmailVerified = v
		}
	}
	if s.CreatedAt.IsZero() {
		if v, ok := claims["auth_time"].(float64); ok {
			s.CreatedAt = time.Unix(int64(v), 0)
		}
	}
}

// User builds the client-side User from the session. The display name falls
// back to the email address when the account has none yet, mirroring how the
// home screen addresses the user.
func (s *Session) User() models.User {
	username := s.DisplayName
	if username == "" {
		username = s.Email
	}
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return models.User{
		ID:          s.UserID,
		Username:    username,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		IsVerified:  s.EmailVerified,
		CreatedAt:   createdAt,
	}
}
