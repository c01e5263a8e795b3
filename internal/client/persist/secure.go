package persist

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/repositories/secureitems"
	"github.com/dmitrijs2005/eventclient/internal/cryptox"
	"github.com/dmitrijs2005/eventclient/internal/dbx"
)

const (
	authKey = "auth"
	saltKey = "salt"
)

// SecureStore keeps the snapshot encrypted in the local database.
type SecureStore struct {
	db     *sql.DB
	secret []byte
	now    func() time.Time

	mu  sync.Mutex
	key []byte
}

func NewSecureStore(db *sql.DB, secret string) *SecureStore {
	return &SecureStore{db: db, secret: []byte(secret), now: time.Now}
}

// Load returns an empty snapshot when nothing has been saved yet.
func (s *SecureStore) Load(ctx context.Context) (Snapshot, error) {
	key, err := s.encryptionKey(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	item, err := secureitems.NewSQLiteRepository(s.db).Get(ctx, authKey)
	if err != nil {
		return Snapshot{}, err
	}
	if item == nil {
		return Snapshot{}, nil
	}

	var snap Snapshot
	if err := cryptox.Open(item.Value, item.Nonce, key, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to open auth snapshot: %w", err)
	}
	return snap, nil
}

// Save replaces the stored snapshot. An empty token removes the record.
func (s *SecureStore) Save(ctx context.Context, snap Snapshot) error {
	if snap.Token == "" {
		return secureitems.NewSQLiteRepository(s.db).Delete(ctx, authKey)
	}

	key, err := s.encryptionKey(ctx)
	if err != nil {
		return err
	}

	ciphertext, nonce, err := cryptox.Seal(snap, key)
	if err != nil {
		return fmt.Errorf("failed to seal auth snapshot: %w", err)
	}

	return secureitems.NewSQLiteRepository(s.db).Set(ctx, secureitems.Item{
		Key:       authKey,
		Value:     ciphertext,
		Nonce:     nonce,
		UpdatedAt: s.now(),
	})
}

// encryptionKey derives the key once, creating the device salt on first use.
func (s *SecureStore) encryptionKey(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		return s.key, nil
	}

	var salt []byte
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := secureitems.NewSQLiteRepository(tx)

		item, err := repo.Get(ctx, saltKey)
		if err != nil {
			return err
		}
		if item != nil {
			salt = item.Value
			return nil
		}

		salt, err = cryptox.NewSalt()
		if err != nil {
			return err
		}
		return repo.Set(ctx, secureitems.Item{Key: saltKey, Value: salt, UpdatedAt: s.now()})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load device salt: %w", err)
	}

	s.key = cryptox.DeriveKey(s.secret, salt)
	return s.key, nil
}
