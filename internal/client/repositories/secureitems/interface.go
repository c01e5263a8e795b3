// Package secureitems stores small opaque records in the client's local
// SQLite database, one row per fixed key.
package secureitems

import (
	"context"
	"time"
)

// Item is one stored record. Nonce is nil for values stored in the clear.
type Item struct {
	Key       string
	Value     []byte
	Nonce     []byte
	UpdatedAt time.Time
}

type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) (*Item, error)
	Set(ctx context.Context, item Item) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
