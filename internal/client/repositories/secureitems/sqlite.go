package secureitems

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/eventclient/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository works on a *sql.DB or on a *sql.Tx inside dbx.WithTx.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) (*Item, error) {
	item := Item{Key: key}
	err := r.db.QueryRowContext(ctx,
		`SELECT value, nonce, updated_at FROM secure_items WHERE key = ?`, key,
	).Scan(&item.Value, &item.Nonce, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get secure item[%s]: %w", key, err)
	}
	return &item, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, item Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO secure_items (key, value, nonce, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			nonce = excluded.nonce,
			updated_at = excluded.updated_at
	`, item.Key, item.Value, item.Nonce, item.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to set secure item[%s]: %w", item.Key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM secure_items WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete secure item[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM secure_items`)
	if err != nil {
		return fmt.Errorf("failed to clear secure items: %w", err)
	}
	return nil
}
