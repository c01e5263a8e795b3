package store

import "github.com/dmitrijs2005/eventclient/internal/client/client"

// Stores is the application state shared by every command.
type Stores struct {
	Auth     *AuthStore
	Users    *UserStore
	Events   *EventStore
	Registry *Registry
}

// NewStores builds the stores on top of api and registers them. The auth
// store is registered with skipReset.
func NewStores(api client.Client) *Stores {
	auth := NewAuthStore(api)
	users := &UserStore{
		Store: New(initialUserState),
		api:   api,
		auth:  auth,
	}
	events := &EventStore{
		Store: New(initialEventState),
		api:   api,
		auth:  auth,
		users: users,
	}
	users.events = events

	registry := NewRegistry()
	registry.Register("auth", auth, true)
	registry.Register("user", users, false)
	registry.Register("event", events, false)

	return &Stores{Auth: auth, Users: users, Events: events, Registry: registry}
}

// Nav derives the root navigation state from the current store states.
func (s *Stores) Nav() NavState {
	return RootState(s.Auth.Get(), s.Users.Get(), s.Events.Get())
}
