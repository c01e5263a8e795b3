package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/common"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. Returned users are copies.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byLogin map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: map[string]*User{}, byLogin: map[string]string{}}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	login := strings.ToLower(user.UserName)
	if _, ok := r.byLogin[login]; ok {
		return nil, common.ErrorAlreadyExists
	}
	for _, u := range r.byID {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, common.ErrorAlreadyExists
		}
	}

	stored := copyUser(user)
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.byID[stored.ID] = stored
	r.byLogin[login] = stored.ID

	return copyUser(stored), nil
}

func (r *MemoryRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return copyUser(u), nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, login string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byLogin[strings.ToLower(login)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return copyUser(r.byID[id]), nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			return copyUser(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) Update(ctx context.Context, id string, fn func(u *User) error) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	next := copyUser(u)
	if err := fn(next); err != nil {
		return nil, err
	}

	oldLogin, newLogin := strings.ToLower(u.UserName), strings.ToLower(next.UserName)
	if oldLogin != newLogin {
		if _, taken := r.byLogin[newLogin]; taken {
			return nil, common.ErrorAlreadyExists
		}
		delete(r.byLogin, oldLogin)
		r.byLogin[newLogin] = id
	}

	r.byID[id] = next
	return copyUser(next), nil
}

func copyUser(u *User) *User {
	c := *u
	c.FavouriteTags = append([]string(nil), u.FavouriteTags...)
	c.PasswordHash = append([]byte(nil), u.PasswordHash...)
	c.Avatar = append([]byte(nil), u.Avatar...)
	return &c
}
