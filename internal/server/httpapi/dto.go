package httpapi

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/common"
	"github.com/dmitrijs2005/eventclient/internal/server/events"
	"github.com/dmitrijs2005/eventclient/internal/server/users"
	"github.com/labstack/echo/v4"
)

// The server answers with the client's wire types so both sides agree on
// field names by construction.

func avatarURL(c echo.Context, u *users.User) *string {
	if len(u.Avatar) == 0 {
		return nil
	}
	url := c.Scheme() + "://" + c.Request().Host + "/user/avatar/" + u.ID
	return &url
}

func userResponse(c echo.Context, u *users.User) client.UserResponse {
	displayName := u.DisplayName
	isAdmin := u.IsAdmin
	resp := client.UserResponse{
		ID:            u.ID,
		Username:      u.UserName,
		DisplayName:   &displayName,
		Avatar:        avatarURL(c, u),
		FavouriteTags: u.FavouriteTags,
		IsAdmin:       &isAdmin,
	}
	if u.Bio != "" {
		bio := u.Bio
		resp.Bio = &bio
	}
	return resp
}

func currentUserResponse(c echo.Context, u *users.User) client.CurrentUserResponse {
	resp := client.CurrentUserResponse{UserResponse: userResponse(c, u), Email: u.Email}
	if u.CurrentEventID != "" {
		id := u.CurrentEventID
		resp.CurrentEventID = &id
	}
	return resp
}

func mediaResponse(m events.Media) client.MediaResponse {
	return client.MediaResponse{
		ID:            m.ID,
		Type:          m.Type,
		FileAvailable: m.FileAvailable,
		CreatorID:     m.CreatorID,
		EventID:       m.EventID,
	}
}

func mediaResponses(list []events.Media) []client.MediaResponse {
	out := make([]client.MediaResponse, 0, len(list))
	for _, m := range list {
		out = append(out, mediaResponse(m))
	}
	return out
}

func messageResponse(m events.Message) client.MessageResponse {
	return client.MessageResponse{
		ID:        m.ID,
		EventID:   m.EventID,
		UserID:    m.UserID,
		Text:      m.Text,
		Timestamp: m.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

func tagResponses(tags []events.Tag) []client.TagResponse {
	out := make([]client.TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, client.TagResponse{ID: t.ID, Name: t.Name})
	}
	return out
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// eventResponse renders e with its attendees resolved and, when withMedia
// is set, its media list.
func (s *Server) eventResponse(c echo.Context, e *events.Event, withMedia bool) (client.EventResponse, error) {
	ctx := c.Request().Context()

	resp := client.EventResponse{
		ID:            e.ID,
		Name:          e.Name,
		Status:        e.Status,
		Lat:           formatCoordinate(e.Lat),
		Lon:           formatCoordinate(e.Lon),
		HostID:        e.HostID,
		StartDateTime: e.Start.UTC().Format(time.RFC3339),
		Tags:          tagResponses(e.Tags),
		Media:         []client.MediaResponse{},
	}
	if e.End != nil {
		end := e.End.UTC().Format(time.RFC3339)
		resp.EndDateTime = &end
	}
	if e.Description != "" {
		d := e.Description
		resp.Description = &d
	}
	if e.MusicStyle != "" {
		m := e.MusicStyle
		resp.MusicStyle = &m
	}

	var err error
	if resp.Attendees, err = s.userResponses(ctx, c, e.AttendeeIDs); err != nil {
		return client.EventResponse{}, err
	}
	if resp.CurrentAttendees, err = s.userResponses(ctx, c, e.CurrentAttendeeIDs); err != nil {
		return client.EventResponse{}, err
	}

	if withMedia {
		media, err := s.events.Media(ctx, e.ID)
		if err != nil {
			return client.EventResponse{}, err
		}
		resp.Media = mediaResponses(media)
	}
	return resp, nil
}

func (s *Server) eventResponses(c echo.Context, list []*events.Event, withMedia bool) ([]client.EventResponse, error) {
	out := make([]client.EventResponse, 0, len(list))
	for _, e := range list {
		r, err := s.eventResponse(c, e, withMedia)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// userResponses skips users that have gone missing.
func (s *Server) userResponses(ctx context.Context, c echo.Context, ids []string) ([]client.UserResponse, error) {
	out := make([]client.UserResponse, 0, len(ids))
	for _, id := range ids {
		u, err := s.users.Get(ctx, id)
		if errors.Is(err, common.ErrorNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, userResponse(c, u))
	}
	return out, nil
}
