package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// HTTPClient talks to the identity provider's REST API. Account operations
// are POSTs to {base}/v1/accounts:{action}?key={apiKey}; errors come back as
//
//	{"error": {"message": "INVALID_PASSWORD"}}
//
// and are mapped into the package taxonomy. The last successful session is
// cached in memory so CurrentSession needs no network.
type HTTPClient struct {
	baseURL string
	apiKey  string
	hc      *http.Client

	session *Session
}

func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: timeout},
	}
}

// sessionResponse is the provider's account payload. createdAt is
// milliseconds since epoch, as a string.
type sessionResponse struct {
	LocalID       string `json:"localId"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	PhoneNumber   string `json:"phoneNumber"`
	EmailVerified bool   `json:"emailVerified"`
	CreatedAt     string `json:"createdAt"`
	IDToken       string `json:"idToken"`
	RefreshToken  string `json:"refreshToken"`
}

func (r *sessionResponse) session() *Session {
	s := &Session{
		UserID:        r.LocalID,
		Email:         r.Email,
		DisplayName:   r.DisplayName,
		PhoneNumber:   r.PhoneNumber,
		EmailVerified: r.EmailVerified,
		IDToken:       r.IDToken,
		RefreshToken:  r.RefreshToken,
	}
	if ms, err := strconv.ParseInt(r.CreatedAt, 10, 64); err == nil && ms > 0 {
		s.CreatedAt = time.UnixMilli(ms)
	}
	s.fillFromToken()
	return s
}

type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var resp sessionResponse
	err := c.post(ctx, "signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	s := resp.session()
	if s.UserID == "" {
		return nil, ErrUserNotFound
	}
	c.session = s
	return s, nil
}

func (c *HTTPClient) SignUp(ctx context.Context, email, password string) (*Session, error) {
	var resp sessionResponse
	err := c.post(ctx, "signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	s := resp.session()
	if s.UserID == "" {
		return nil, ErrSignUpFailed
	}
	c.session = s
	return s, nil
}

func (c *HTTPClient) SetDisplayName(ctx context.Context, displayName string) error {
	s, ok := c.CurrentSession()
	if !ok {
		return ErrUserNotFound
	}

	var resp sessionResponse
	err := c.post(ctx, "update", map[string]any{
		"idToken":     s.IDToken,
		"displayName": displayName,
	}, &resp)
	if err != nil {
		return err
	}

	updated := *s
	updated.DisplayName = displayName
	c.session = &updated
	return nil
}

func (c *HTTPClient) SignOut(ctx context.Context) error {
	s, ok := c.CurrentSession()
	if !ok {
		// nothing to revoke
		return nil
	}

	err := c.post(ctx, "signOut", map[string]any{"idToken": s.IDToken}, nil)
	if err != nil {
		return err
	}

	c.session = nil
	return nil
}

func (c *HTTPClient) CurrentSession() (*Session, bool) {
	if c.session == nil {
		return nil, false
	}
	return c.session, true
}

func (c *HTTPClient) post(ctx context.Context, action string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/accounts:%s?key=%s", c.baseURL, action, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNetwork, err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNetwork, err.Error())
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.mapError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: malformed provider response", ErrUnknown)
		}
	}
	return nil
}

// mapError translates a provider error payload into the local taxonomy.
func (c *HTTPClient) mapError(statusCode int, body []byte) error {
	if statusCode >= http.StatusInternalServerError {
		return ErrNetwork
	}

	var pe providerError
	_ = json.Unmarshal(body, &pe)

	switch code := pe.Error.Message; code {
	case "INVALID_PASSWORD", "INVALID_EMAIL", "EMAIL_NOT_FOUND", "INVALID_LOGIN_CREDENTIALS":
		return ErrInvalidCredentials
	case "EMAIL_EXISTS":
		return ErrSignUpFailed
	case "USER_NOT_FOUND":
		return ErrUserNotFound
	default:
		return ErrUnknown
	}
}
