package store

import (
	"context"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/client/persist"
	"github.com/dmitrijs2005/eventclient/internal/client/validate"
	"github.com/golang-jwt/jwt/v5"
)

const prefixRehydrate = "Failed to rehydrate persistent storage"

type AuthState struct {
	Token    string
	Hydrated bool
}

func (s AuthState) Clone() AuthState { return s }

// ErrorReporter routes a failure to the user-visible notification channel.
type ErrorReporter interface {
	Handle(ctx context.Context, err error, prefix string)
}

// SnapshotLoader reads the persisted auth snapshot.
type SnapshotLoader interface {
	Load(ctx context.Context) (persist.Snapshot, error)
}

// SnapshotStore reads and writes the persisted auth snapshot.
type SnapshotStore interface {
	SnapshotLoader
	Save(ctx context.Context, s persist.Snapshot) error
}

type AuthStore struct {
	*Store[AuthState]
	api client.Client
	now func() time.Time
}

func NewAuthStore(api client.Client) *AuthStore {
	return &AuthStore{
		Store: New(func() AuthState { return AuthState{} }),
		api:   api,
		now:   time.Now,
	}
}

// SignIn exchanges credentials for a token. On failure the token is left
// unchanged.
func (a *AuthStore) SignIn(ctx context.Context, username, password string) error {
	if err := validate.NotEmpty("username", username); err != nil {
		return err
	}
	if err := validate.NotEmpty("password", password); err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, username, password)
	if err != nil {
		return err
	}
	a.setToken(resp.Token)
	return nil
}

func (a *AuthStore) SignUp(ctx context.Context, username, email, password string) error {
	if err := validate.String("username", username, validate.Username); err != nil {
		return err
	}
	if err := validate.Email("email", email); err != nil {
		return err
	}
	if err := validate.String("password", password, validate.Password); err != nil {
		return err
	}

	resp, err := a.api.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	a.setToken(resp.Token)
	return nil
}

func (a *AuthStore) SignOut() {
	a.setToken("")
}

// ResetPassword requests a password reset e-mail and signs out.
func (a *AuthStore) ResetPassword(ctx context.Context, email string) error {
	if err := validate.Email("email", email); err != nil {
		return err
	}
	if err := a.api.ResetPassword(ctx, email); err != nil {
		return err
	}
	a.SignOut()
	return nil
}

// Hydrate restores the persisted session. Hydrated becomes true whether or
// not loading succeeds; a load failure is reported and leaves the session
// empty. A persisted JWT that has already expired is dropped.
func (a *AuthStore) Hydrate(ctx context.Context, loader SnapshotLoader, errs ErrorReporter) {
	snap, err := loader.Load(ctx)
	if err != nil {
		errs.Handle(ctx, err, prefixRehydrate)
		snap = persist.Snapshot{}
	}

	restored := RestoreAuth(snap)
	if restored.Token != "" && tokenExpired(restored.Token, a.now()) {
		restored.Token = ""
	}

	a.Update(func(s *AuthState) {
		s.Token = restored.Token
		s.Hydrated = true
	})
}

func (a *AuthStore) Token() string {
	return a.Get().Token
}

// RequireToken returns client.ErrNotAuthenticated when nobody is signed in.
func (a *AuthStore) RequireToken() (string, error) {
	token := a.Token()
	if token == "" {
		return "", client.ErrNotAuthenticated
	}
	return token, nil
}

func (a *AuthStore) setToken(token string) {
	a.Update(func(s *AuthState) {
		s.Token = token
	})
}

// tokenExpired reports whether token is a JWT with an exp claim before now.
// Tokens that are not JWTs never expire on the client.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}
