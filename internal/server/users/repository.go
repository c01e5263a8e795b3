package users

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// Update applies fn to the stored user under the repository lock.
	Update(ctx context.Context, id string, fn func(u *User) error) (*User, error)
}
