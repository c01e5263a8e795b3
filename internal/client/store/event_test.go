package store

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/client/models"
	"github.com/dmitrijs2005/eventclient/internal/client/validate"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventStore_FetchEventNormalizes(t *testing.T) {
	api := newFakeAPI()
	resp := eventResponse("e1", "Party")
	resp.EndDateTime = strPtr("2024-05-02T02:00:00Z")
	resp.Attendees = []client.UserResponse{{ID: "u1", Username: "host"}, {ID: "u2", Username: "guest", DisplayName: strPtr("Guest")}}
	resp.CurrentAttendees = []client.UserResponse{{ID: "u2", Username: "guest"}}
	resp.Media = []client.MediaResponse{{ID: "m1", Type: "image", FileAvailable: true}}
	resp.Tags = []client.TagResponse{{ID: "t1", Name: "techno"}}
	api.events["e1"] = resp

	s := signedIn(api)
	ev, err := s.Events.FetchEvent(context.Background(), "e1")
	require.NoError(t, err)

	want := models.Event{
		ID:                 "e1",
		Name:               "Party",
		Status:             models.StatusScheduled,
		Lat:                56.95,
		Lon:                24.1,
		Radius:             5,
		HostID:             "u1",
		Start:              time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC),
		End:                time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC),
		AttendeeIDs:        []string{"u1", "u2"},
		CurrentAttendeeIDs: []string{"u2"},
		Tags:               []models.Tag{{ID: "t1", Name: "techno"}},
	}
	if diff := cmp.Diff(want, ev); diff != "" {
		t.Fatalf("event mismatch (-want +got):\n%s", diff)
	}

	media, ok := s.Events.Media("e1")
	require.True(t, ok)
	require.Len(t, media, 1)
	assert.Equal(t, "http://backend/media/image/m1/high.jpg", media[0].Src)

	host, ok := s.Events.Host(ev)
	require.True(t, ok)
	assert.Equal(t, "host", host.Username)

	guest, ok := s.Users.User("u2")
	require.True(t, ok)
	assert.Equal(t, "Guest", guest.DisplayName)
}

func TestEventStore_PartialResponseKeepsFields(t *testing.T) {
	api := newFakeAPI()
	full := eventResponse("e1", "Party")
	full.Description = strPtr("bring snacks")
	full.Media = []client.MediaResponse{{ID: "m1", Type: "video"}}
	api.events["e1"] = full

	s := signedIn(api)
	ctx := context.Background()
	_, err := s.Events.FetchEvent(ctx, "e1")
	require.NoError(t, err)

	api.found = []client.EventResponse{{ID: "e1", Name: "Party v2", Status: "active"}}
	ids, err := s.Events.FindEvents(ctx, FindOptions{Statuses: []models.EventStatus{models.StatusActive}})
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, ids)

	ev, _ := s.Events.Event("e1")
	assert.Equal(t, "Party v2", ev.Name)
	assert.Equal(t, models.StatusActive, ev.Status)
	assert.Equal(t, "bring snacks", ev.Description)
	assert.Equal(t, 56.95, ev.Lat)

	media, ok := s.Events.Media("e1")
	require.True(t, ok, "media survives a response without media")
	assert.Len(t, media, 1)

	require.Len(t, api.findCalls, 1)
	assert.Equal(t, []string{"active"}, api.findCalls[0].Statuses)
}

func TestEventStore_RelevantEventsExcludesHosted(t *testing.T) {
	api := newFakeAPI()
	cur := eventResponse("cur", "Now")
	api.relevant = &client.RelevantEventsResponse{
		HostedEvents:     []client.EventResponse{eventResponse("h1", "Mine")},
		CurrentEvent:     &cur,
		InterestedEvents: []client.EventResponse{eventResponse("h1", "Mine"), eventResponse("i1", "Theirs")},
		PastEvents:       []client.EventResponse{eventResponse("p1", "Old")},
	}
	s := signedIn(api)

	ids, err := s.Events.RelevantEvents(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, RelevantEventIDs{
		Hosted:     []string{"h1"},
		Current:    "cur",
		Interested: []string{"i1"},
		Past:       []string{"p1"},
	}, ids)
	assert.Len(t, s.Events.Events([]string{"h1", "cur", "i1", "p1", "missing"}), 4)
}

func TestEventStore_JoinEventOnlyMovesCurrent(t *testing.T) {
	api := newFakeAPI()
	api.events["evt1"] = eventResponse("evt1", "Joined")
	s := signedIn(api)
	watchPointers(t, s)
	ctx := context.Background()

	api.found = []client.EventResponse{eventResponse("other", "Other")}
	_, err := s.Events.FindEvents(ctx, FindOptions{})
	require.NoError(t, err)
	before, _ := s.Events.Event("other")

	require.NoError(t, s.Events.JoinEvent(ctx, "evt1", 56.9, 24.1))

	id, ok := s.Events.Get().CurrentEventID.Get()
	require.True(t, ok)
	assert.Equal(t, "evt1", id)

	after, _ := s.Events.Event("other")
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("other event changed (-before +after):\n%s", diff)
	}
	assert.Equal(t, []client.JoinEventRequest{{EventID: "evt1", Lat: 56.9, Lon: 24.1}}, api.joined)
}

func TestEventStore_JoinEventValidatesLocation(t *testing.T) {
	api := newFakeAPI()
	s := signedIn(api)

	err := s.Events.JoinEvent(context.Background(), "evt1", 91, 0)
	require.ErrorIs(t, err, validate.ErrValidation)
	assert.Empty(t, api.joined)
}

func TestEventStore_CloseEvent(t *testing.T) {
	api := newFakeAPI()
	api.events["evt1"] = eventResponse("evt1", "Closing")
	s := signedIn(api)
	watchPointers(t, s)
	ctx := context.Background()

	require.NoError(t, s.Events.JoinEvent(ctx, "evt1", 0, 0))
	require.NoError(t, s.Events.CloseEvent(ctx, "evt1"))

	ev, _ := s.Events.Event("evt1")
	assert.Equal(t, models.StatusCompleted, ev.Status)

	state := s.Events.Get()
	assert.True(t, state.CurrentEventID.Known())
	_, has := state.CurrentEventID.Get()
	assert.False(t, has)
}

func TestEventStore_CreateEventBecomesCurrent(t *testing.T) {
	api := newFakeAPI()
	created := eventResponse("new", "Fresh")
	api.created = &created
	s := signedIn(api)
	watchPointers(t, s)

	start := time.Date(2024, 7, 1, 18, 0, 0, 0, time.UTC)
	id, err := s.Events.CreateEvent(context.Background(), CreateEventParams{
		Name:  "Fresh",
		Lat:   56.95,
		Lon:   24.1,
		Start: &start,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", id)

	cur, ok := s.Events.CurrentEvent()
	require.True(t, ok)
	assert.Equal(t, "Fresh", cur.Name)
}

func TestEventStore_CreateEventValidation(t *testing.T) {
	api := newFakeAPI()
	s := signedIn(api)

	start := time.Date(2024, 7, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err := s.Events.CreateEvent(context.Background(), CreateEventParams{Name: "x", Start: &start, End: &end})
	require.ErrorIs(t, err, validate.ErrValidation)

	_, err = s.Events.CreateEvent(context.Background(), CreateEventParams{})
	require.ErrorIs(t, err, validate.ErrValidation)
	assert.Empty(t, api.Calls())
}

func TestEventStore_FetchMediaReplacesList(t *testing.T) {
	api := newFakeAPI()
	api.media["e1"] = []client.MediaResponse{{ID: "m2", Type: "video", FileAvailable: true}}
	s := signedIn(api)

	media, err := s.Events.FetchMedia(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, media, 1)
	assert.Equal(t, "http://backend/media/video/m2/index.m3u8", media[0].Src)
}

func TestEventStore_AllTags(t *testing.T) {
	api := newFakeAPI()
	api.tags = []client.TagResponse{{ID: "1", Name: "rock"}}
	s := signedIn(api)

	tags, err := s.Events.AllTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Tag{{ID: "1", Name: "rock"}}, tags)
}

func TestEventUpserts_FieldLevelLastWriteWins(t *testing.T) {
	s := NewStores(newFakeAPI())

	first, err := normalizeEvent("http://b", client.EventResponse{ID: "e1", Name: "A", Lat: "1", Lon: "2", Description: strPtr("d")})
	require.NoError(t, err)
	second, err := normalizeEvent("http://b", client.EventResponse{ID: "e1", Name: "B", Status: "active"})
	require.NoError(t, err)
	third, err := normalizeEvent("http://b", client.EventResponse{ID: "e1", Lat: "3"})
	require.NoError(t, err)

	s.Events.upsertEvents([]normalizedEvent{first})
	s.Events.upsertEvents([]normalizedEvent{second})
	s.Events.upsertEvents([]normalizedEvent{third})

	ev, _ := s.Events.Event("e1")
	assert.Equal(t, "B", ev.Name)
	assert.Equal(t, models.StatusActive, ev.Status)
	assert.Equal(t, 3.0, ev.Lat)
	assert.Equal(t, 2.0, ev.Lon)
	assert.Equal(t, "d", ev.Description)
}
