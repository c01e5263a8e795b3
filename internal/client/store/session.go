package store

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/eventclient/internal/logging"
)

const prefixUserData = "Failed to retrieve user data"

// Session reacts to token changes: every other store is reset, the new
// snapshot is persisted and, with a token, the current user is fetched. A
// failed fetch signs the user out again.
type Session struct {
	stores    *Stores
	persister SnapshotStore
	errs      ErrorReporter
	log       logging.Logger

	mu          sync.Mutex
	unsubscribe func()
}

func NewSession(stores *Stores, persister SnapshotStore, errs ErrorReporter, log logging.Logger) *Session {
	return &Session{stores: stores, persister: persister, errs: errs, log: log}
}

// Start subscribes to the auth store and hydrates it. ctx is used for every
// request made in reaction to later token changes.
func (s *Session) Start(ctx context.Context) {
	unsubscribe := s.stores.Auth.Subscribe(func(prev, next AuthState) {
		if prev.Token != next.Token {
			s.onTokenChange(ctx, next)
		}
	})

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()

	s.stores.Auth.Hydrate(ctx, s.persister, s.errs)
}

// Close stops reacting to token changes.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Session) onTokenChange(ctx context.Context, state AuthState) {
	s.log.Debug(ctx, "token changed", "signed_in", state.Token != "")

	s.stores.Registry.ResetAll()

	if err := s.persister.Save(ctx, SnapshotOf(state)); err != nil {
		s.log.Warn(ctx, "failed to persist session", "error", err)
	}

	if state.Token == "" {
		return
	}

	if err := s.stores.Users.FetchCurrentUser(ctx); err != nil {
		if errors.Is(err, ErrSessionChanged) {
			return
		}
		s.errs.Handle(ctx, err, prefixUserData)
		if s.stores.Auth.Token() == state.Token {
			s.stores.Auth.SignOut()
		}
	}
}
