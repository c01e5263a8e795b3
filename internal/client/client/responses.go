package client

// Wire shapes of the backend's JSON. Numeric coordinates arrive as strings
// and timestamps as RFC 3339 strings; normalising them is the stores' job.

type AuthResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	DisplayName   *string  `json:"displayName"`
	Bio           *string  `json:"bio,omitempty"`
	Avatar        *string  `json:"avatar,omitempty"`
	FavouriteTags []string `json:"favouriteTags,omitempty"`
	IsAdmin       *bool    `json:"isAdmin,omitempty"`
}

type CurrentUserResponse struct {
	UserResponse
	Email          string  `json:"email"`
	CurrentEventID *string `json:"currentEventId"`
}

type UserDetailsResponse struct {
	NumFollowers int `json:"numFollowers"`
	NumFollowing int `json:"numFollowing"`
	NumEvents    int `json:"numEvents"`
}

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MediaResponse struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	FileAvailable bool   `json:"fileAvailable"`
	CreatorID     string `json:"creatorId,omitempty"`
	EventID       string `json:"eventId,omitempty"`
}

type AllMediaResponse struct {
	Media []MediaResponse `json:"media"`
}

type EventResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Status           string          `json:"status"`
	Lat              string          `json:"lat"`
	Lon              string          `json:"lon"`
	HostID           string          `json:"hostId"`
	StartDateTime    string          `json:"startDateTime"`
	EndDateTime      *string         `json:"endDateTime"`
	Description      *string         `json:"description,omitempty"`
	Tags             []TagResponse   `json:"tags,omitempty"`
	MusicStyle       *string         `json:"musicStyle,omitempty"`
	Media            []MediaResponse `json:"media"`
	Attendees        []UserResponse  `json:"attendees"`
	CurrentAttendees []UserResponse  `json:"currentAttendees"`
}

type RelevantEventsResponse struct {
	HostedEvents     []EventResponse `json:"hostedEvents"`
	CurrentEvent     *EventResponse  `json:"currentEvent"`
	InterestedEvents []EventResponse `json:"interestedEvents"`
	PastEvents       []EventResponse `json:"pastEvents"`
}

type MessageResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"eventId"`
	UserID    string `json:"userId"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Request payloads.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetRequest struct {
	Email string `json:"email"`
}

type FindEventsParams struct {
	Statuses   []string `json:"statuses,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	LoadUsers  bool     `json:"loadUsers,omitempty"`
	LoadMedia  bool     `json:"loadMedia,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lon        *float64 `json:"lon,omitempty"`
	MaxResults *int     `json:"maxResults,omitempty"`
	MaxRadius  *float64 `json:"maxRadius,omitempty"`
}

type CreateEventRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Tags          []string `json:"tags"`
	Lat           float64  `json:"lat"`
	Lon           float64  `json:"lon"`
	StartDateTime *string  `json:"startDateTime"`
	EndDateTime   *string  `json:"endDateTime"`
}

type JoinEventRequest struct {
	EventID string  `json:"eventId"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type CloseEventRequest struct {
	EventID string `json:"eventId"`
}

type SendMessageRequest struct {
	EventID string `json:"eventId"`
	Text    string `json:"text"`
}

// EditSelfRequest carries only changed fields; nil means unchanged. When
// Avatar is set the request is sent as multipart/form-data.
type EditSelfRequest struct {
	Username      *string  `json:"username,omitempty"`
	DisplayName   *string  `json:"displayName,omitempty"`
	Bio           *string  `json:"bio,omitempty"`
	FavouriteTags []string `json:"favouriteTags,omitempty"`
	Avatar        []byte   `json:"-"`
}
