package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/server/events"
	"github.com/labstack/echo/v4"
)

func (s *Server) eventInfo(c echo.Context) error {
	e, err := s.events.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	resp, err := s.eventResponse(c, e, true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) eventMedia(c echo.Context) error {
	media, err := s.events.Media(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mediaResponses(media))
}

func (s *Server) eventMessages(c echo.Context) error {
	msgs, err := s.events.Messages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	out := make([]client.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageResponse(m))
	}
	return c.JSON(http.StatusOK, out)
}

// relevantEvents answers for the userId query parameter, or the caller.
func (s *Server) relevantEvents(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.QueryParam("userId")
	if id == "" {
		id = userID(c)
	}
	u, err := s.users.Get(ctx, id)
	if err != nil {
		return err
	}

	r, err := s.events.Relevant(ctx, u.ID, u.CurrentEventID)
	if err != nil {
		return err
	}

	var resp client.RelevantEventsResponse
	if resp.HostedEvents, err = s.eventResponses(c, r.Hosted, false); err != nil {
		return err
	}
	if resp.InterestedEvents, err = s.eventResponses(c, r.Interested, false); err != nil {
		return err
	}
	if resp.PastEvents, err = s.eventResponses(c, r.Past, false); err != nil {
		return err
	}
	if r.Current != nil {
		current, err := s.eventResponse(c, r.Current, false)
		if err != nil {
			return err
		}
		resp.CurrentEvent = &current
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) findEvents(c echo.Context) error {
	var (
		p         events.FindParams
		loadUsers bool
		loadMedia bool
	)

	b := echo.QueryParamsBinder(c).
		Strings("statuses", &p.Statuses).
		Strings("tags", &p.Tags).
		Bool("loadUsers", &loadUsers).
		Bool("loadMedia", &loadMedia)
	if err := b.BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var err error
	if p.Lat, err = optionalFloat(c, "lat"); err != nil {
		return err
	}
	if p.Lon, err = optionalFloat(c, "lon"); err != nil {
		return err
	}
	if p.MaxRadius, err = optionalFloat(c, "maxRadius"); err != nil {
		return err
	}
	if raw := c.QueryParam("maxResults"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "maxResults must be an integer")
		}
		p.MaxResults = &n
	}

	list, err := s.events.Find(c.Request().Context(), p)
	if err != nil {
		return err
	}

	resp, err := s.eventResponses(c, list, loadMedia)
	if err != nil {
		return err
	}
	if !loadUsers {
		for i := range resp {
			resp[i].Attendees = []client.UserResponse{}
			resp[i].CurrentAttendees = []client.UserResponse{}
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func optionalFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be a number")
	}
	return &v, nil
}

func (s *Server) tags(c echo.Context) error {
	tags, err := s.events.Tags(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tagResponses(tags))
}

func (s *Server) createEvent(c echo.Context) error {
	var req client.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	start, err := optionalTime(req.StartDateTime, "startDateTime")
	if err != nil {
		return err
	}
	end, err := optionalTime(req.EndDateTime, "endDateTime")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	e, err := s.events.Create(ctx, userID(c), events.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		Tags:        req.Tags,
		Lat:         req.Lat,
		Lon:         req.Lon,
		Start:       start,
		End:         end,
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "Event created", "event_id", e.ID, "host", e.HostID)

	resp, err := s.eventResponse(c, e, true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func optionalTime(v *string, name string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *v)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be RFC 3339")
	}
	return &t, nil
}

func (s *Server) joinEvent(c echo.Context) error {
	var req client.JoinEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := s.events.Join(c.Request().Context(), userID(c), req.EventID, req.Lat, req.Lon); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) closeEvent(c echo.Context) error {
	var req client.CloseEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := s.events.Close(c.Request().Context(), userID(c), req.EventID); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) sendMessage(c echo.Context) error {
	var req client.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	m, err := s.events.SendMessage(c.Request().Context(), userID(c), req.EventID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse(m))
}

func (s *Server) allMedia(c echo.Context) error {
	media, err := s.events.AllMedia(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client.AllMediaResponse{Media: mediaResponses(media)})
}
