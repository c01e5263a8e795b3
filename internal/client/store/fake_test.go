package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
)

// fakeAPI is an in-memory client.Client. Unset responses fail with 404.
type fakeAPI struct {
	mu sync.Mutex

	validLogins map[string]string
	token       string

	currentUser *client.CurrentUserResponse
	currentErr  error
	users       map[string]client.UserResponse
	details     map[string]client.UserDetailsResponse
	events      map[string]client.EventResponse
	media       map[string][]client.MediaResponse
	relevant    *client.RelevantEventsResponse
	found       []client.EventResponse
	created     *client.EventResponse
	tags        []client.TagResponse

	joined    []client.JoinEventRequest
	closed    []string
	edits     []client.EditSelfRequest
	findCalls []client.FindEventsParams
	calls     []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		validLogins: map[string]string{"alice": "password1"},
		token:       "tok-alice",
		users:       map[string]client.UserResponse{},
		details:     map[string]client.UserDetailsResponse{},
		events:      map[string]client.EventResponse{},
		media:       map[string][]client.MediaResponse{},
	}
}

var errNotFound = &client.StatusError{StatusCode: http.StatusNotFound}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) BaseURL() string { return "http://backend" }

func (f *fakeAPI) Login(_ context.Context, username, password string) (*client.AuthResponse, error) {
	f.record("login")
	if pw, ok := f.validLogins[username]; !ok || pw != password {
		return nil, &client.StatusError{StatusCode: http.StatusUnauthorized}
	}
	return &client.AuthResponse{Token: f.token}, nil
}

func (f *fakeAPI) Register(_ context.Context, username, _, password string) (*client.AuthResponse, error) {
	f.record("register")
	f.validLogins[username] = password
	return &client.AuthResponse{Token: "tok-" + username}, nil
}

func (f *fakeAPI) ResetPassword(context.Context, string) error {
	f.record("reset")
	return nil
}

func (f *fakeAPI) CurrentUser(context.Context, string) (*client.CurrentUserResponse, error) {
	f.record("user/info")
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	if f.currentUser == nil {
		return nil, errNotFound
	}
	resp := *f.currentUser
	return &resp, nil
}

func (f *fakeAPI) UserInfo(_ context.Context, _, userID string) (*client.UserResponse, error) {
	f.record("user/info/" + userID)
	u, ok := f.users[userID]
	if !ok {
		return nil, errNotFound
	}
	return &u, nil
}

func (f *fakeAPI) UserDetails(_ context.Context, _, userID string) (*client.UserDetailsResponse, error) {
	f.record("user/details/" + userID)
	d, ok := f.details[userID]
	if !ok {
		return nil, errNotFound
	}
	return &d, nil
}

func (f *fakeAPI) EditSelf(_ context.Context, _ string, req client.EditSelfRequest) (*client.UserResponse, error) {
	f.record("user/edit")
	f.edits = append(f.edits, req)
	if f.currentUser == nil {
		return nil, errNotFound
	}
	u := f.currentUser.UserResponse
	if req.Username != nil {
		u.Username = *req.Username
	}
	if req.DisplayName != nil {
		u.DisplayName = req.DisplayName
	}
	if req.Bio != nil {
		u.Bio = req.Bio
	}
	return &u, nil
}

func (f *fakeAPI) EventInfo(_ context.Context, _, eventID string) (*client.EventResponse, error) {
	f.record("event/info/" + eventID)
	ev, ok := f.events[eventID]
	if !ok {
		return nil, errNotFound
	}
	return &ev, nil
}

func (f *fakeAPI) EventMedia(_ context.Context, _, eventID string) ([]client.MediaResponse, error) {
	f.record("event/info/" + eventID + "/media")
	return f.media[eventID], nil
}

func (f *fakeAPI) RelevantEvents(context.Context, string, string) (*client.RelevantEventsResponse, error) {
	f.record("event/relevantEvents")
	if f.relevant == nil {
		return nil, errNotFound
	}
	return f.relevant, nil
}

func (f *fakeAPI) FindEvents(_ context.Context, _ string, params client.FindEventsParams) ([]client.EventResponse, error) {
	f.record("event/find")
	f.findCalls = append(f.findCalls, params)
	return f.found, nil
}

func (f *fakeAPI) CreateEvent(context.Context, string, client.CreateEventRequest) (*client.EventResponse, error) {
	f.record("event/create")
	if f.created == nil {
		return nil, errNotFound
	}
	return f.created, nil
}

func (f *fakeAPI) JoinEvent(_ context.Context, _ string, req client.JoinEventRequest) error {
	f.record("event/join")
	f.joined = append(f.joined, req)
	return nil
}

func (f *fakeAPI) CloseEvent(_ context.Context, _, eventID string) error {
	f.record("event/close")
	f.closed = append(f.closed, eventID)
	return nil
}

func (f *fakeAPI) AllTags(context.Context, string) ([]client.TagResponse, error) {
	f.record("event/tags")
	return f.tags, nil
}

func (f *fakeAPI) AllMedia(context.Context, string) ([]client.MediaResponse, error) {
	f.record("info/all_media")
	return nil, nil
}

func (f *fakeAPI) Messages(context.Context, string, string) ([]client.MessageResponse, error) {
	return nil, nil
}

func (f *fakeAPI) SendMessage(context.Context, string, client.SendMessageRequest) (*client.MessageResponse, error) {
	return nil, errNotFound
}

var _ client.Client = (*fakeAPI)(nil)

func strPtr(s string) *string { return &s }

func eventResponse(id, name string) client.EventResponse {
	return client.EventResponse{
		ID:            id,
		Name:          name,
		Status:        "scheduled",
		Lat:           "56.95",
		Lon:           "24.1",
		HostID:        "u1",
		StartDateTime: "2024-05-01T20:00:00Z",
	}
}

// signedIn returns stores with a token set directly, bypassing the session.
func signedIn(api *fakeAPI) *Stores {
	s := NewStores(api)
	s.Auth.Update(func(a *AuthState) {
		a.Token = api.token
		a.Hydrated = true
	})
	return s
}
