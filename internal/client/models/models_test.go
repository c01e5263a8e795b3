package models

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestEventMerge_FieldLevelLastWriteWins(t *testing.T) {
	start := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	var e Event
	e = e.Merge(EventPatch{ID: "e1", Name: ptr("Party"), Lat: ptr(1.5), Start: &start, Description: ptr("first")})
	e = e.Merge(EventPatch{ID: "e1", Name: ptr("Rave"), Status: ptr(StatusActive)})
	e = e.Merge(EventPatch{ID: "e1", Lat: ptr(2.5)})

	want := Event{
		ID:          "e1",
		Name:        "Rave",
		Status:      StatusActive,
		Lat:         2.5,
		Start:       start,
		Description: "first",
	}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Fatalf("merged event mismatch (-want +got):\n%s", diff)
	}
}

func TestEventMerge_ClearEnd(t *testing.T) {
	end := time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC)
	e := Event{ID: "e1"}.Merge(EventPatch{ID: "e1", End: &end})
	require.True(t, e.HasEnd())

	e = e.Merge(EventPatch{ID: "e1", End: &time.Time{}})
	require.False(t, e.HasEnd())
}

func TestEventMerge_CopiesSlices(t *testing.T) {
	ids := []string{"u1", "u2"}
	e := Event{}.Merge(EventPatch{ID: "e1", AttendeeIDs: ids})
	ids[0] = "changed"
	require.Equal(t, []string{"u1", "u2"}, e.AttendeeIDs)
}

func TestUserMerge_KeepsUnsetFields(t *testing.T) {
	u := User{}.Merge(UserPatch{ID: "u1", Username: ptr("bob"), Bio: ptr("hello")})
	u = u.Merge(UserPatch{ID: "u1", DisplayName: ptr("Bobby")})

	require.Equal(t, User{ID: "u1", Username: "bob", DisplayName: "Bobby", Bio: "hello"}, u)
}

func TestOptionalID(t *testing.T) {
	var unknown OptionalID
	require.False(t, unknown.Known())
	require.Equal(t, UnknownID(), unknown)

	none := NoID()
	require.True(t, none.Known())
	_, ok := none.Get()
	require.False(t, ok)

	some := SomeID("e1")
	id, ok := some.Get()
	require.True(t, ok)
	require.Equal(t, "e1", id)
	require.Equal(t, "e1", some.String())
}

func TestMediaSrc(t *testing.T) {
	require.Equal(t, "http://h/media/image/m1/high.jpg", MediaSrc("http://h/", MediaImage, "m1"))
	require.Equal(t, "http://h/media/video/m2/index.m3u8", MediaSrc("http://h", MediaVideo, "m2"))
}

func TestEventStatusValid(t *testing.T) {
	require.True(t, StatusActive.Valid())
	require.False(t, EventStatus("cancelled").Valid())
}
