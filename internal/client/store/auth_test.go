package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/client/persist"
	"github.com/dmitrijs2005/eventclient/internal/client/validate"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handled struct {
	err    error
	prefix string
}

type recordingReporter struct {
	handled []handled
}

func (r *recordingReporter) Handle(_ context.Context, err error, prefix string) {
	r.handled = append(r.handled, handled{err: err, prefix: prefix})
}

func signedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestAuthStore_SignIn(t *testing.T) {
	api := newFakeAPI()
	a := NewAuthStore(api)

	require.NoError(t, a.SignIn(context.Background(), "alice", "password1"))
	assert.Equal(t, "tok-alice", a.Token())
}

func TestAuthStore_SignInInvalidCredentialsKeepsToken(t *testing.T) {
	api := newFakeAPI()
	a := NewAuthStore(api)
	a.Update(func(s *AuthState) { s.Token = "previous" })

	err := a.SignIn(context.Background(), "alice", "wrong")

	var se *client.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 401, se.StatusCode)
	assert.Equal(t, "previous", a.Token())
}

func TestAuthStore_SignInEmptyFieldsNoCall(t *testing.T) {
	api := newFakeAPI()
	a := NewAuthStore(api)

	err := a.SignIn(context.Background(), "", "x")
	require.ErrorIs(t, err, validate.ErrValidation)
	assert.Empty(t, api.Calls())
}

func TestAuthStore_SignUpValidates(t *testing.T) {
	api := newFakeAPI()
	a := NewAuthStore(api)
	ctx := context.Background()

	require.ErrorIs(t, a.SignUp(ctx, "bad name", "b@c.lv", "password1"), validate.ErrValidation)
	require.ErrorIs(t, a.SignUp(ctx, "bob", "nope", "password1"), validate.ErrValidation)
	require.ErrorIs(t, a.SignUp(ctx, "bob", "b@c.lv", "short"), validate.ErrValidation)
	assert.Empty(t, api.Calls())

	require.NoError(t, a.SignUp(ctx, "bob", "b@c.lv", "password1"))
	assert.Equal(t, "tok-bob", a.Token())
}

func TestAuthStore_SignOutKeepsHydrated(t *testing.T) {
	a := NewAuthStore(newFakeAPI())
	a.Update(func(s *AuthState) {
		s.Token = "t"
		s.Hydrated = true
	})

	a.SignOut()

	assert.Equal(t, AuthState{Hydrated: true}, a.Get())
}

func TestAuthStore_ResetPasswordClearsToken(t *testing.T) {
	api := newFakeAPI()
	a := NewAuthStore(api)
	a.Update(func(s *AuthState) { s.Token = "t" })

	require.NoError(t, a.ResetPassword(context.Background(), "a@b.lv"))

	assert.Empty(t, a.Token())
	assert.Equal(t, []string{"reset"}, api.Calls())
}

func TestAuthStore_Hydrate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	fresh := signedJWT(t, now.Add(time.Hour))
	expired := signedJWT(t, now.Add(-time.Hour))

	tests := []struct {
		name      string
		snap      persist.Snapshot
		loadErr   error
		wantToken string
		wantToast bool
	}{
		{name: "empty", snap: persist.Snapshot{}},
		{name: "opaque token", snap: persist.Snapshot{Token: "opaque"}, wantToken: "opaque"},
		{name: "valid jwt", snap: persist.Snapshot{Token: fresh}, wantToken: fresh},
		{name: "expired jwt", snap: persist.Snapshot{Token: expired}},
		{name: "load failure", loadErr: errors.New("disk error"), wantToast: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAuthStore(newFakeAPI())
			a.now = func() time.Time { return now }

			mem := &persist.Memory{LoadErr: tt.loadErr}
			require.NoError(t, mem.Save(context.Background(), tt.snap))
			rep := &recordingReporter{}

			a.Hydrate(context.Background(), mem, rep)

			state := a.Get()
			assert.True(t, state.Hydrated)
			assert.Equal(t, tt.wantToken, state.Token)
			if tt.wantToast {
				require.Len(t, rep.handled, 1)
				assert.Equal(t, "Failed to rehydrate persistent storage", rep.handled[0].prefix)
			} else {
				assert.Empty(t, rep.handled)
			}
		})
	}
}

func TestAuthStore_RequireToken(t *testing.T) {
	a := NewAuthStore(newFakeAPI())

	_, err := a.RequireToken()
	require.ErrorIs(t, err, client.ErrNotAuthenticated)

	a.Update(func(s *AuthState) { s.Token = "t" })
	token, err := a.RequireToken()
	require.NoError(t, err)
	assert.Equal(t, "t", token)
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := SnapshotOf(AuthState{Token: "t", Hydrated: true})
	assert.Equal(t, persist.Snapshot{Token: "t"}, snap)
	assert.Equal(t, AuthState{Token: "t"}, RestoreAuth(snap))
}
