package users

import "time"

type User struct {
	ID             string
	UserName       string
	Email          string
	PasswordHash   []byte
	DisplayName    string
	Bio            string
	Avatar         []byte
	FavouriteTags  []string
	IsAdmin        bool
	CurrentEventID string
	Followers      int
	Following      int
	CreatedAt      time.Time
}

// Patch lists profile changes; nil fields are left alone.
type Patch struct {
	UserName      *string
	DisplayName   *string
	Bio           *string
	FavouriteTags []string
	Avatar        []byte
}
