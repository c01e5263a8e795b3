package store

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/client/models"
)

// normalizedEvent is an event response split into the parts that go to
// different places: the event patch, its media list and the attendee records.
type normalizedEvent struct {
	patch     models.EventPatch
	media     []models.Media
	hasMedia  bool
	attendees []models.UserPatch
}

func userPatch(r client.UserResponse) models.UserPatch {
	p := models.UserPatch{
		ID:            r.ID,
		Bio:           r.Bio,
		Avatar:        r.Avatar,
		FavouriteTags: r.FavouriteTags,
		IsAdmin:       r.IsAdmin,
	}
	if r.Username != "" {
		username := r.Username
		p.Username = &username
	}

	displayName := r.Username
	if r.DisplayName != nil && *r.DisplayName != "" {
		displayName = *r.DisplayName
	}
	if displayName != "" {
		p.DisplayName = &displayName
	}
	return p
}

// NormalizeMedia converts a media response and computes its Src against
// the backend base URL.
func NormalizeMedia(baseURL string, r client.MediaResponse) models.Media {
	typ := models.MediaType(r.Type)
	return models.Media{
		ID:            r.ID,
		Type:          typ,
		FileAvailable: r.FileAvailable,
		CreatorID:     r.CreatorID,
		EventID:       r.EventID,
		Src:           models.MediaSrc(baseURL, typ, r.ID),
	}
}

func normalizeMedia(baseURL string, list []client.MediaResponse) []models.Media {
	out := make([]models.Media, len(list))
	for i, m := range list {
		out[i] = NormalizeMedia(baseURL, m)
	}
	return out
}

func normalizeEvent(baseURL string, r client.EventResponse) (normalizedEvent, error) {
	if r.ID == "" {
		return normalizedEvent{}, fmt.Errorf("event response without id")
	}

	radius := models.DefaultRadius
	p := models.EventPatch{
		ID:          r.ID,
		Radius:      &radius,
		Description: r.Description,
		MusicStyle:  r.MusicStyle,
	}

	if r.Name != "" {
		p.Name = &r.Name
	}
	if r.Status != "" {
		status := models.EventStatus(r.Status)
		p.Status = &status
	}
	if r.HostID != "" {
		p.HostID = &r.HostID
	}

	var err error
	if p.Lat, err = parseCoordinate("lat", r.Lat); err != nil {
		return normalizedEvent{}, fmt.Errorf("event %s: %w", r.ID, err)
	}
	if p.Lon, err = parseCoordinate("lon", r.Lon); err != nil {
		return normalizedEvent{}, fmt.Errorf("event %s: %w", r.ID, err)
	}

	if r.StartDateTime != "" {
		start, err := time.Parse(time.RFC3339, r.StartDateTime)
		if err != nil {
			return normalizedEvent{}, fmt.Errorf("event %s: invalid startDateTime: %w", r.ID, err)
		}
		p.Start = &start
	}

	end := time.Time{}
	if r.EndDateTime != nil && *r.EndDateTime != "" {
		end, err = time.Parse(time.RFC3339, *r.EndDateTime)
		if err != nil {
			return normalizedEvent{}, fmt.Errorf("event %s: invalid endDateTime: %w", r.ID, err)
		}
	}
	p.End = &end

	if r.Tags != nil {
		p.Tags = make([]models.Tag, len(r.Tags))
		for i, t := range r.Tags {
			p.Tags[i] = models.Tag{ID: t.ID, Name: t.Name}
		}
	}

	n := normalizedEvent{patch: p}

	if r.Attendees != nil {
		n.patch.AttendeeIDs = make([]string, 0, len(r.Attendees))
		for _, u := range r.Attendees {
			n.patch.AttendeeIDs = append(n.patch.AttendeeIDs, u.ID)
			n.attendees = append(n.attendees, userPatch(u))
		}
	}
	if r.CurrentAttendees != nil {
		n.patch.CurrentAttendeeIDs = make([]string, 0, len(r.CurrentAttendees))
		for _, u := range r.CurrentAttendees {
			n.patch.CurrentAttendeeIDs = append(n.patch.CurrentAttendeeIDs, u.ID)
			// current attendees are a subset of attendees; the full record wins
			if !slices.Contains(n.patch.AttendeeIDs, u.ID) {
				n.attendees = append(n.attendees, userPatch(u))
			}
		}
	}

	if r.Media != nil {
		n.media = normalizeMedia(baseURL, r.Media)
		n.hasMedia = true
	}
	return n, nil
}

func normalizeEvents(baseURL string, list ...client.EventResponse) ([]normalizedEvent, error) {
	out := make([]normalizedEvent, 0, len(list))
	for _, r := range list {
		n, err := normalizeEvent(baseURL, r)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// parseCoordinate returns nil for an empty string.
func parseCoordinate(name, s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, s)
	}
	return &v, nil
}
