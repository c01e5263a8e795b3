package client

import "context"

// Client is the typed surface of the backend API. Routes marked no-auth take
// no token; all others require the caller's bearer token.
type Client interface {
	BaseURL() string

	Login(ctx context.Context, username, password string) (*AuthResponse, error)
	Register(ctx context.Context, username, email, password string) (*AuthResponse, error)
	ResetPassword(ctx context.Context, email string) error

	CurrentUser(ctx context.Context, token string) (*CurrentUserResponse, error)
	UserInfo(ctx context.Context, token, userID string) (*UserResponse, error)
	UserDetails(ctx context.Context, token, userID string) (*UserDetailsResponse, error)
	EditSelf(ctx context.Context, token string, req EditSelfRequest) (*UserResponse, error)

	EventInfo(ctx context.Context, token, eventID string) (*EventResponse, error)
	EventMedia(ctx context.Context, token, eventID string) ([]MediaResponse, error)
	RelevantEvents(ctx context.Context, token, userID string) (*RelevantEventsResponse, error)
	FindEvents(ctx context.Context, token string, params FindEventsParams) ([]EventResponse, error)
	CreateEvent(ctx context.Context, token string, req CreateEventRequest) (*EventResponse, error)
	JoinEvent(ctx context.Context, token string, req JoinEventRequest) error
	CloseEvent(ctx context.Context, token, eventID string) error
	AllTags(ctx context.Context, token string) ([]TagResponse, error)

	AllMedia(ctx context.Context, token string) ([]MediaResponse, error)

	Messages(ctx context.Context, token, eventID string) ([]MessageResponse, error)
	SendMessage(ctx context.Context, token string, req SendMessageRequest) (*MessageResponse, error)
}

var _ Client = (*HTTPClient)(nil)
