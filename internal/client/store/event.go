package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/client/models"
	"github.com/dmitrijs2005/eventclient/internal/client/validate"
)

// EventState is the event store's state. Media lives next to the events,
// keyed by event ID, and is never embedded in an event record.
type EventState struct {
	Events         map[string]models.Event
	Media          map[string][]models.Media
	CurrentEventID models.OptionalID
}

func (s EventState) Clone() EventState {
	s.Events = maps.Clone(s.Events)
	s.Media = maps.Clone(s.Media)
	return s
}

func initialEventState() EventState {
	return EventState{
		Events: map[string]models.Event{},
		Media:  map[string][]models.Media{},
	}
}

type EventStore struct {
	*Store[EventState]
	api   client.Client
	auth  *AuthStore
	users *UserStore
}

// RelevantEventIDs groups the events relevant to a user. Interested never
// contains a hosted event.
type RelevantEventIDs struct {
	Hosted     []string
	Current    string
	Interested []string
	Past       []string
}

type FindOptions struct {
	Statuses   []models.EventStatus
	Tags       []string
	LoadUsers  bool
	LoadMedia  bool
	Lat        *float64
	Lon        *float64
	MaxResults *int
	MaxRadius  *float64
}

type CreateEventParams struct {
	Name        string
	Description string
	Tags        []string
	Lat         float64
	Lon         float64
	Start       *time.Time
	End         *time.Time
}

// upsertEvents stores attendees in the user store first, so attendee IDs in
// the events always resolve, then merges the event patches.
func (e *EventStore) upsertEvents(events []normalizedEvent) {
	var attendees []models.UserPatch
	for _, n := range events {
		attendees = append(attendees, n.attendees...)
	}
	e.users.UpsertUsers(attendees...)

	e.Update(func(s *EventState) {
		for _, n := range events {
			if n.hasMedia {
				s.Media[n.patch.ID] = n.media
			}
			s.Events[n.patch.ID] = s.Events[n.patch.ID].Merge(n.patch)
		}
	})
}

func (e *EventStore) baseURL() string {
	return e.api.BaseURL()
}

func (e *EventStore) FetchEvent(ctx context.Context, id string) (models.Event, error) {
	token, err := e.auth.RequireToken()
	if err != nil {
		return models.Event{}, err
	}

	resp, err := e.api.EventInfo(ctx, token, id)
	if err != nil {
		return models.Event{}, err
	}

	n, err := normalizeEvent(e.baseURL(), *resp)
	if err != nil {
		return models.Event{}, err
	}
	e.upsertEvents([]normalizedEvent{n})

	event, _ := e.Event(n.patch.ID)
	return event, nil
}

// FetchMedia replaces the stored media list of an event.
func (e *EventStore) FetchMedia(ctx context.Context, eventID string) ([]models.Media, error) {
	token, err := e.auth.RequireToken()
	if err != nil {
		return nil, err
	}

	resp, err := e.api.EventMedia(ctx, token, eventID)
	if err != nil {
		return nil, err
	}

	media := normalizeMedia(e.baseURL(), resp)
	e.Update(func(s *EventState) {
		s.Media[eventID] = media
	})
	return media, nil
}

// RelevantEvents loads the events relevant to userID (the signed-in user
// when empty) and returns their IDs.
func (e *EventStore) RelevantEvents(ctx context.Context, userID string) (RelevantEventIDs, error) {
	token, err := e.auth.RequireToken()
	if err != nil {
		return RelevantEventIDs{}, err
	}

	resp, err := e.api.RelevantEvents(ctx, token, userID)
	if err != nil {
		return RelevantEventIDs{}, err
	}

	all := append(append(append([]client.EventResponse(nil), resp.HostedEvents...), resp.InterestedEvents...), resp.PastEvents...)
	if resp.CurrentEvent != nil {
		all = append(all, *resp.CurrentEvent)
	}
	normalized, err := normalizeEvents(e.baseURL(), all...)
	if err != nil {
		return RelevantEventIDs{}, err
	}
	e.upsertEvents(normalized)

	ids := RelevantEventIDs{
		Hosted:     eventIDs(resp.HostedEvents),
		Interested: []string{},
		Past:       eventIDs(resp.PastEvents),
	}
	if resp.CurrentEvent != nil {
		ids.Current = resp.CurrentEvent.ID
	}
	for _, ev := range resp.InterestedEvents {
		if !slices.Contains(ids.Hosted, ev.ID) {
			ids.Interested = append(ids.Interested, ev.ID)
		}
	}
	return ids, nil
}

// FindEvents searches events and returns the IDs of the matches in the
// order the backend sent them.
func (e *EventStore) FindEvents(ctx context.Context, opts FindOptions) ([]string, error) {
	token, err := e.auth.RequireToken()
	if err != nil {
		return nil, err
	}

	params := client.FindEventsParams{
		Tags:       opts.Tags,
		LoadUsers:  opts.LoadUsers,
		LoadMedia:  opts.LoadMedia,
		Lat:        opts.Lat,
		Lon:        opts.Lon,
		MaxResults: opts.MaxResults,
		MaxRadius:  opts.MaxRadius,
	}
	for _, s := range opts.Statuses {
		params.Statuses = append(params.Statuses, string(s))
	}

	resp, err := e.api.FindEvents(ctx, token, params)
	if err != nil {
		return nil, err
	}

	normalized, err := normalizeEvents(e.baseURL(), resp...)
	if err != nil {
		return nil, err
	}
	e.upsertEvents(normalized)

	return eventIDs(resp), nil
}

// CreateEvent creates an event hosted by the signed-in user and makes it the
// current event.
func (e *EventStore) CreateEvent(ctx context.Context, p CreateEventParams) (string, error) {
	if err := validate.NotEmpty("name", p.Name); err != nil {
		return "", err
	}
	if err := validateLocation(p.Lat, p.Lon); err != nil {
		return "", err
	}
	if p.Start != nil && p.End != nil && p.End.Before(*p.Start) {
		return "", &validate.Error{Field: "end", Reason: "must not be before start"}
	}

	token, err := e.auth.RequireToken()
	if err != nil {
		return "", err
	}

	req := client.CreateEventRequest{
		Name:          p.Name,
		Description:   p.Description,
		Tags:          p.Tags,
		Lat:           p.Lat,
		Lon:           p.Lon,
		StartDateTime: formatTime(p.Start),
		EndDateTime:   formatTime(p.End),
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	resp, err := e.api.CreateEvent(ctx, token, req)
	if err != nil {
		return "", err
	}

	n, err := normalizeEvent(e.baseURL(), *resp)
	if err != nil {
		return "", err
	}
	e.users.UpsertUsers(n.attendees...)
	e.Update(func(s *EventState) {
		if n.hasMedia {
			s.Media[n.patch.ID] = n.media
		}
		s.Events[n.patch.ID] = s.Events[n.patch.ID].Merge(n.patch)
		s.CurrentEventID = models.SomeID(n.patch.ID)
	})
	return n.patch.ID, nil
}

// JoinEvent checks the user in at (lat, lon) and makes id the current
// event. No other stored event is modified.
func (e *EventStore) JoinEvent(ctx context.Context, id string, lat, lon float64) error {
	if err := validate.NotEmpty("event id", id); err != nil {
		return err
	}
	if err := validateLocation(lat, lon); err != nil {
		return err
	}

	token, err := e.auth.RequireToken()
	if err != nil {
		return err
	}

	if err := e.api.JoinEvent(ctx, token, client.JoinEventRequest{EventID: id, Lat: lat, Lon: lon}); err != nil {
		return err
	}

	if _, ok := e.Event(id); !ok {
		if _, err := e.FetchEvent(ctx, id); err != nil {
			return fmt.Errorf("fetch joined event %s: %w", id, err)
		}
	}
	return e.setCurrent(models.SomeID(id))
}

// CloseEvent marks the event completed and clears the current event when it
// was this one.
func (e *EventStore) CloseEvent(ctx context.Context, id string) error {
	token, err := e.auth.RequireToken()
	if err != nil {
		return err
	}

	if err := e.api.CloseEvent(ctx, token, id); err != nil {
		return err
	}

	e.Update(func(s *EventState) {
		if ev, ok := s.Events[id]; ok {
			ev.Status = models.StatusCompleted
			s.Events[id] = ev
		}
		if cur, ok := s.CurrentEventID.Get(); ok && cur == id {
			s.CurrentEventID = models.NoID()
		}
	})
	return nil
}

func (e *EventStore) AllTags(ctx context.Context) ([]models.Tag, error) {
	token, err := e.auth.RequireToken()
	if err != nil {
		return nil, err
	}

	resp, err := e.api.AllTags(ctx, token)
	if err != nil {
		return nil, err
	}

	tags := make([]models.Tag, len(resp))
	for i, t := range resp {
		tags[i] = models.Tag{ID: t.ID, Name: t.Name}
	}
	return tags, nil
}

// setCurrent points CurrentEventID at a stored event, or at none.
func (e *EventStore) setCurrent(id models.OptionalID) error {
	var err error
	e.Update(func(s *EventState) {
		if eventID, ok := id.Get(); ok {
			if _, stored := s.Events[eventID]; !stored {
				err = fmt.Errorf("event %s: %w", eventID, ErrNotFound)
				return
			}
		}
		s.CurrentEventID = id
	})
	return err
}

func (e *EventStore) Event(id string) (models.Event, bool) {
	ev, ok := e.Get().Events[id]
	return ev, ok
}

// Events returns the stored events for ids in order, skipping unknown ones.
func (e *EventStore) Events(ids []string) []models.Event {
	state := e.Get()
	out := make([]models.Event, 0, len(ids))
	for _, id := range ids {
		if ev, ok := state.Events[id]; ok {
			out = append(out, ev)
		}
	}
	return out
}

func (e *EventStore) Media(eventID string) ([]models.Media, bool) {
	m, ok := e.Get().Media[eventID]
	return m, ok
}

func (e *EventStore) CurrentEvent() (models.Event, bool) {
	state := e.Get()
	id, ok := state.CurrentEventID.Get()
	if !ok {
		return models.Event{}, false
	}
	ev, ok := state.Events[id]
	return ev, ok
}

// Host returns the stored host of ev.
func (e *EventStore) Host(ev models.Event) (models.User, bool) {
	return e.users.User(ev.HostID)
}

func validateLocation(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return &validate.Error{Field: "lat", Reason: "must be between -90 and 90"}
	}
	if lon < -180 || lon > 180 {
		return &validate.Error{Field: "lon", Reason: "must be between -180 and 180"}
	}
	return nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func eventIDs(list []client.EventResponse) []string {
	ids := make([]string, len(list))
	for i, ev := range list {
		ids[i] = ev.ID
	}
	return ids
}
