package models

// User is a profile as kept in the user store.
type User struct {
	ID            string
	Username      string
	DisplayName   string
	Bio           string
	Avatar        string
	FavouriteTags []string
	IsAdmin       bool
}

// CurrentUser is the signed-in user with the fields only they can see.
type CurrentUser struct {
	User
	Email string
}

// UserDetails holds the profile counters returned by user/details.
type UserDetails struct {
	NumFollowers int
	NumFollowing int
	NumEvents    int
}

// UserPatch is a partial user record. Nil fields were not provided.
type UserPatch struct {
	ID            string
	Username      *string
	DisplayName   *string
	Bio           *string
	Avatar        *string
	FavouriteTags []string
	IsAdmin       *bool
}

// Merge applies every provided field of p over u.
func (u User) Merge(p UserPatch) User {
	u.ID = p.ID
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.FavouriteTags != nil {
		u.FavouriteTags = append([]string(nil), p.FavouriteTags...)
	}
	if p.IsAdmin != nil {
		u.IsAdmin = *p.IsAdmin
	}
	return u
}
