package store

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/client/models"
	"github.com/dmitrijs2005/eventclient/internal/client/validate"
)

// ErrSessionChanged is returned when the token changed while a request for
// the signed-in user was in flight; its result is discarded.
var ErrSessionChanged = errors.New("session changed during request")

// UserState is the user store's state. An empty CurrentUserID means the
// signed-in user is not known yet.
type UserState struct {
	Users         map[string]models.User
	Details       map[string]models.UserDetails
	CurrentUserID string
	Email         string
}

func (s UserState) Clone() UserState {
	s.Users = maps.Clone(s.Users)
	s.Details = maps.Clone(s.Details)
	return s
}

func initialUserState() UserState {
	return UserState{
		Users:   map[string]models.User{},
		Details: map[string]models.UserDetails{},
	}
}

type UserStore struct {
	*Store[UserState]
	api    client.Client
	auth   *AuthStore
	events *EventStore
}

// EditProfile holds the profile fields to change. Nil fields are unchanged.
type EditProfile struct {
	Username      *string
	DisplayName   *string
	Bio           *string
	FavouriteTags []string
	Avatar        []byte
}

// UpsertUsers merges each patch into the stored record with the same ID,
// creating it when absent.
func (u *UserStore) UpsertUsers(patches ...models.UserPatch) {
	if len(patches) == 0 {
		return
	}
	u.Update(func(s *UserState) {
		upsertUsers(s, patches)
	})
}

func upsertUsers(s *UserState, patches []models.UserPatch) {
	for _, p := range patches {
		if p.ID == "" {
			continue
		}
		s.Users[p.ID] = s.Users[p.ID].Merge(p)
	}
}

// FetchCurrentUser loads the signed-in user. The user's current event is
// fetched into the event store first when it is not there yet, so both
// current pointers always reference stored records.
func (u *UserStore) FetchCurrentUser(ctx context.Context) error {
	token, err := u.auth.RequireToken()
	if err != nil {
		return err
	}

	resp, err := u.api.CurrentUser(ctx, token)
	if err != nil {
		return err
	}
	if resp.ID == "" {
		return fmt.Errorf("current user response without id")
	}

	current := models.NoID()
	if resp.CurrentEventID != nil && *resp.CurrentEventID != "" {
		eventID := *resp.CurrentEventID
		if _, ok := u.events.Event(eventID); !ok {
			if _, err := u.events.FetchEvent(ctx, eventID); err != nil {
				return fmt.Errorf("fetch current event %s: %w", eventID, err)
			}
		}
		current = models.SomeID(eventID)
	}

	if u.auth.Token() != token {
		return ErrSessionChanged
	}

	if err := u.events.setCurrent(current); err != nil {
		return err
	}

	patch := userPatch(resp.UserResponse)
	u.Update(func(s *UserState) {
		upsertUsers(s, []models.UserPatch{patch})
		s.CurrentUserID = resp.ID
		s.Email = resp.Email
	})
	return nil
}

// FetchUser loads a profile and, when withDetails is set, its counters.
func (u *UserStore) FetchUser(ctx context.Context, id string, withDetails bool) (models.User, error) {
	token, err := u.auth.RequireToken()
	if err != nil {
		return models.User{}, err
	}

	resp, err := u.api.UserInfo(ctx, token, id)
	if err != nil {
		return models.User{}, err
	}

	var details *client.UserDetailsResponse
	if withDetails {
		details, err = u.api.UserDetails(ctx, token, id)
		if err != nil {
			return models.User{}, err
		}
	}

	patch := userPatch(*resp)
	u.Update(func(s *UserState) {
		upsertUsers(s, []models.UserPatch{patch})
		if details != nil {
			s.Details[patch.ID] = models.UserDetails{
				NumFollowers: details.NumFollowers,
				NumFollowing: details.NumFollowing,
				NumEvents:    details.NumEvents,
			}
		}
	})

	user, _ := u.User(patch.ID)
	return user, nil
}

// EditSelf updates the signed-in user's profile. Changed fields are
// validated before anything is sent.
func (u *UserStore) EditSelf(ctx context.Context, edit EditProfile) error {
	if err := validateProfile(edit); err != nil {
		return err
	}

	token, err := u.auth.RequireToken()
	if err != nil {
		return err
	}
	if _, ok := u.CurrentUser(); !ok {
		return fmt.Errorf("current user: %w", ErrNotFound)
	}

	resp, err := u.api.EditSelf(ctx, token, client.EditSelfRequest{
		Username:      edit.Username,
		DisplayName:   edit.DisplayName,
		Bio:           edit.Bio,
		FavouriteTags: edit.FavouriteTags,
		Avatar:        edit.Avatar,
	})
	if err != nil {
		return err
	}

	u.UpsertUsers(userPatch(*resp))
	return nil
}

func validateProfile(edit EditProfile) error {
	if edit.Username != nil {
		if err := validate.String("username", *edit.Username, validate.Username); err != nil {
			return err
		}
	}
	if edit.DisplayName != nil {
		if err := validate.String("display name", *edit.DisplayName, validate.DisplayName); err != nil {
			return err
		}
	}
	if edit.Bio != nil {
		if err := validate.String("bio", *edit.Bio, validate.Bio); err != nil {
			return err
		}
	}
	return nil
}

func (u *UserStore) User(id string) (models.User, bool) {
	user, ok := u.Get().Users[id]
	return user, ok
}

// Users returns the stored users for ids in order, skipping unknown ones.
func (u *UserStore) Users(ids []string) []models.User {
	state := u.Get()
	out := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := state.Users[id]; ok {
			out = append(out, user)
		}
	}
	return out
}

func (u *UserStore) CurrentUser() (models.CurrentUser, bool) {
	state := u.Get()
	if state.CurrentUserID == "" {
		return models.CurrentUser{}, false
	}
	user, ok := state.Users[state.CurrentUserID]
	if !ok {
		return models.CurrentUser{}, false
	}
	return models.CurrentUser{User: user, Email: state.Email}, true
}

func (u *UserStore) Details(id string) (models.UserDetails, bool) {
	d, ok := u.Get().Details[id]
	return d, ok
}
