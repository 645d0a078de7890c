package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmisoft/ecom/internal/analytics"
	"github.com/mmisoft/ecom/internal/client/identity"
	"github.com/mmisoft/ecom/internal/client/models"
	"github.com/mmisoft/ecom/internal/logging"
)

// ---- fakes ----

type fakeProvider struct {
	signInSession *identity.Session
	signInErr     error
	signInCalls   int

	signUpSession *identity.Session
	signUpErr     error

	displayNameSet string
	displayNameErr error

	signOutErr   error
	signOutCalls int

	current *identity.Session
}

func (f *fakeProvider) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	f.signInCalls++
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return f.signInSession, nil
}

func (f *fakeProvider) SignUp(ctx context.Context, email, password string) (*identity.Session, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return f.signUpSession, nil
}

func (f *fakeProvider) SetDisplayName(ctx context.Context, displayName string) error {
	if f.displayNameErr != nil {
		return f.displayNameErr
	}
	f.displayNameSet = displayName
	return nil
}

func (f *fakeProvider) SignOut(ctx context.Context) error {
	f.signOutCalls++
	return f.signOutErr
}

func (f *fakeProvider) CurrentSession() (*identity.Session, bool) {
	if f.current == nil {
		return nil, false
	}
	return f.current, true
}

type fakeProfiles struct {
	getUser *models.User
	getErr  error

	saved   []models.User
	saveErr error

	updated   []models.User
	updateErr error
}

func (f *fakeProfiles) Get(ctx context.Context, id string) (*models.User, error) {
	return f.getUser, f.getErr
}

func (f *fakeProfiles) Save(ctx context.Context, user models.User) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, user)
	return nil
}

func (f *fakeProfiles) Update(ctx context.Context, user models.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, user)
	return nil
}

type fakeUploader struct {
	url       string
	err       error
	lastID    string
	lastBytes []byte
}

func (f *fakeUploader) Upload(ctx context.Context, userID string, imageData []byte) (string, error) {
	f.lastID = userID
	f.lastBytes = append([]byte(nil), imageData...)
	return f.url, f.err
}

type recordingEvents struct {
	events     []string
	params     []map[string]string
	properties map[string]string
}

func (r *recordingEvents) Event(ctx context.Context, name string, params map[string]string) {
	r.events = append(r.events, name)
	r.params = append(r.params, params)
}

func (r *recordingEvents) UserProperty(ctx context.Context, name, value string) {
	if r.properties == nil {
		r.properties = map[string]string{}
	}
	r.properties[name] = value
}

func newGateway(p *fakeProvider, pr *fakeProfiles, up *fakeUploader) (*Gateway, *recordingEvents) {
	ev := &recordingEvents{}
	return New(p, pr, up, ev, logging.NewDiscard()), ev
}

func session(id string) *identity.Session {
	return &identity.Session{
		UserID:    id,
		Email:     "alice@example.org",
		CreatedAt: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		IDToken:   "opaque",
	}
}

// ---- tests ----

func TestSignIn_EmptyInputsSkipProvider(t *testing.T) {
	p := &fakeProvider{}
	g, ev := newGateway(p, &fakeProfiles{}, &fakeUploader{})

	for _, tc := range []struct{ email, password string }{
		{"", "secret1"},
		{"a@b.co", ""},
		{"", ""},
	} {
		_, err := g.SignIn(context.Background(), tc.email, tc.password)
		require.ErrorIs(t, err, identity.ErrInvalidCredentials)
	}
	require.Zero(t, p.signInCalls, "provider must not be called for empty input")
	require.Empty(t, ev.events)
}

func TestSignIn_SuccessEmitsLoginEvent(t *testing.T) {
	p := &fakeProvider{signInSession: session("uid-1")}
	g, ev := newGateway(p, &fakeProfiles{}, &fakeUploader{})

	u, err := g.SignIn(context.Background(), "alice@example.org", "secret1")
	require.NoError(t, err)
	require.Equal(t, "uid-1", u.ID)
	require.NotEmpty(t, u.ID)

	require.Equal(t, []string{"login"}, ev.events)
	require.Equal(t, map[string]string{"method": "email"}, ev.params[0])
}

func TestSignIn_ProviderErrorNoEvent(t *testing.T) {
	p := &fakeProvider{signInErr: identity.ErrInvalidCredentials}
	g, ev := newGateway(p, &fakeProfiles{}, &fakeUploader{})

	_, err := g.SignIn(context.Background(), "alice@example.org", "wrongpw")
	require.ErrorIs(t, err, identity.ErrInvalidCredentials)
	require.Empty(t, ev.events)
}

func TestSignUp_FullFlow(t *testing.T) {
	p := &fakeProvider{signUpSession: session("uid-new")}
	pr := &fakeProfiles{}
	g, ev := newGateway(p, pr, &fakeUploader{})

	u, err := g.SignUp(context.Background(), "new@example.org", "secret1", "newbie")
	require.NoError(t, err)

	require.Equal(t, "newbie", p.displayNameSet)
	require.Equal(t, "newbie", u.Username)

	require.Len(t, pr.saved, 1)
	require.Equal(t, "uid-new", pr.saved[0].ID)
	require.Equal(t, "newbie", pr.saved[0].Username)

	require.Equal(t, []string{"sign_up"}, ev.events)
}

func TestSignUp_EmptyInputs(t *testing.T) {
	g, _ := newGateway(&fakeProvider{}, &fakeProfiles{}, &fakeUploader{})

	for _, tc := range []struct{ email, password, username string }{
		{"", "secret1", "u"},
		{"a@b.co", "", "u"},
		{"a@b.co", "secret1", ""},
	} {
		_, err := g.SignUp(context.Background(), tc.email, tc.password, tc.username)
		require.ErrorIs(t, err, identity.ErrInvalidCredentials)
	}
}

func TestSignUp_EmailExists(t *testing.T) {
	p := &fakeProvider{signUpErr: identity.ErrSignUpFailed}
	g, ev := newGateway(p, &fakeProfiles{}, &fakeUploader{})

	_, err := g.SignUp(context.Background(), "dup@example.org", "secret1", "dup")
	require.ErrorIs(t, err, identity.ErrSignUpFailed)
	require.Empty(t, ev.events)
}

func TestSignUp_ProfileSaveFailureMapsToUnknown(t *testing.T) {
	p := &fakeProvider{signUpSession: session("uid-new")}
	pr := &fakeProfiles{saveErr: errors.New("db down")}
	g, ev := newGateway(p, pr, &fakeUploader{})

	_, err := g.SignUp(context.Background(), "new@example.org", "secret1", "newbie")
	require.ErrorIs(t, err, identity.ErrUnknown)
	require.Empty(t, ev.events)
}

func TestSignOut_SuccessEmitsLogout(t *testing.T) {
	p := &fakeProvider{}
	g, ev := newGateway(p, &fakeProfiles{}, &fakeUploader{})

	require.NoError(t, g.SignOut(context.Background()))
	require.Equal(t, 1, p.signOutCalls)
	require.Equal(t, []string{"logout"}, ev.events)
}

func TestSignOut_FailurePropagatesNoEvent(t *testing.T) {
	p := &fakeProvider{signOutErr: identity.ErrNetwork}
	g, ev := newGateway(p, &fakeProfiles{}, &fakeUploader{})

	require.ErrorIs(t, g.SignOut(context.Background()), identity.ErrNetwork)
	require.Empty(t, ev.events)
}

func TestCurrentUser(t *testing.T) {
	p := &fakeProvider{}
	g, _ := newGateway(p, &fakeProfiles{}, &fakeUploader{})

	require.Nil(t, g.CurrentUser())

	p.current = session("uid-1")
	u := g.CurrentUser()
	require.NotNil(t, u)
	require.Equal(t, "uid-1", u.ID)
}

func TestGetUserProfile(t *testing.T) {
	pr := &fakeProfiles{getUser: &models.User{ID: "uid-1", Username: "alice"}}
	g, _ := newGateway(&fakeProvider{}, pr, &fakeUploader{})

	u, err := g.GetUserProfile(context.Background(), "uid-1")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
}

func TestGetUserProfile_Absent(t *testing.T) {
	g, _ := newGateway(&fakeProvider{}, &fakeProfiles{}, &fakeUploader{})

	u, err := g.GetUserProfile(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestUpdateUserProfile(t *testing.T) {
	pr := &fakeProfiles{}
	g, _ := newGateway(&fakeProvider{}, pr, &fakeUploader{})

	u := models.User{ID: "uid-1", Username: "alice2", PhoneNumber: "+1555111"}
	require.NoError(t, g.UpdateUserProfile(context.Background(), u))
	require.Len(t, pr.updated, 1)

	require.ErrorIs(t,
		g.UpdateUserProfile(context.Background(), models.User{}),
		identity.ErrUserNotFound)
}

func TestUploadProfileImage(t *testing.T) {
	up := &fakeUploader{url: "https://blob.example/profile_images/uid-1.jpg"}
	g, _ := newGateway(&fakeProvider{}, &fakeProfiles{}, up)

	url, err := g.UploadProfileImage(context.Background(), "uid-1", []byte("jpeg"))
	require.NoError(t, err)
	require.Equal(t, up.url, url)
	require.Equal(t, "uid-1", up.lastID)

	_, err = g.UploadProfileImage(context.Background(), "", []byte("jpeg"))
	require.ErrorIs(t, err, identity.ErrUserNotFound)
}

func TestAnalyticsPassThrough(t *testing.T) {
	g, ev := newGateway(&fakeProvider{}, &fakeProfiles{}, &fakeUploader{})

	g.LogEvent(context.Background(), "screen_view", map[string]string{"screen": "home"})
	g.SetUserProperty(context.Background(), "plan", "basic")

	require.Equal(t, []string{"screen_view"}, ev.events)
	require.Equal(t, "basic", ev.properties["plan"])
}

func TestAnalyticsNopRecorder(t *testing.T) {
	p := &fakeProvider{signInSession: session("uid-1")}
	g := New(p, &fakeProfiles{}, &fakeUploader{}, analytics.NopRecorder{}, logging.NewDiscard())

	// nothing to observe, just that the sink accepts the calls
	_, err := g.SignIn(context.Background(), "alice@example.org", "secret1")
	require.NoError(t, err)
	g.LogEvent(context.Background(), "screen_view", nil)
	g.SetUserProperty(context.Background(), "plan", "basic")
}
