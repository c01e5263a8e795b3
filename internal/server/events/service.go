package events

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/common"
)

// CurrentEventSetter records which event a user is checked in to.
type CurrentEventSetter interface {
	SetCurrentEvent(ctx context.Context, userID, eventID string) error
}

type Service struct {
	repo  Repository
	users CurrentEventSetter
	now   func() time.Time
}

func NewService(repo Repository, users CurrentEventSetter) *Service {
	return &Service{repo: repo, users: users, now: time.Now}
}

type CreateParams struct {
	Name        string
	Description string
	Tags        []string
	Lat         float64
	Lon         float64
	Start       *time.Time
	End         *time.Time
}

type FindParams struct {
	Statuses   []string
	Tags       []string
	Lat        *float64
	Lon        *float64
	MaxRadius  *float64
	MaxResults *int
}

// Relevant groups a user's events the way the home screen shows them.
type Relevant struct {
	Hosted     []*Event
	Current    *Event
	Interested []*Event
	Past       []*Event
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorInvalidArgument, fmt.Sprintf(format, args...))
}

// Create stores a new event hosted by hostID and checks the host in to it.
// Events starting in the future are scheduled, the rest active.
func (s *Service) Create(ctx context.Context, hostID string, p CreateParams) (*Event, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, invalid("name is required")
	}
	if p.Lat < -90 || p.Lat > 90 || p.Lon < -180 || p.Lon > 180 {
		return nil, invalid("location out of range")
	}

	now := s.now()
	start := now
	if p.Start != nil {
		start = *p.Start
	}
	if p.End != nil && p.End.Before(start) {
		return nil, invalid("end before start")
	}

	status := StatusActive
	if start.After(now) {
		status = StatusScheduled
	}

	tags := make([]Tag, 0, len(p.Tags))
	for _, name := range p.Tags {
		t, err := s.repo.Tag(ctx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	e, err := s.repo.Create(ctx, &Event{
		Name:               p.Name,
		Status:             status,
		Lat:                p.Lat,
		Lon:                p.Lon,
		Radius:             DefaultRadius,
		HostID:             hostID,
		Start:              start,
		End:                p.End,
		Description:        p.Description,
		Tags:               tags,
		AttendeeIDs:        []string{hostID},
		CurrentAttendeeIDs: []string{hostID},
	})
	if err != nil {
		return nil, err
	}

	if err := s.checkIn(ctx, hostID, e.ID); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Event, error) {
	return s.repo.Get(ctx, id)
}

// Join checks userID in to the event. The user must be inside the event's
// radius and the event must not be completed.
func (s *Service) Join(ctx context.Context, userID, eventID string, lat, lon float64) error {
	_, err := s.repo.Update(ctx, eventID, func(e *Event) error {
		if e.Status == StatusCompleted {
			return invalid("event is completed")
		}
		if d := distanceKm(lat, lon, e.Lat, e.Lon); d > e.Radius {
			return invalid("%.1f km away from the event", d)
		}
		if !e.hasAttendee(userID) {
			e.AttendeeIDs = append(e.AttendeeIDs, userID)
		}
		if !contains(e.CurrentAttendeeIDs, userID) {
			e.CurrentAttendeeIDs = append(e.CurrentAttendeeIDs, userID)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.checkIn(ctx, userID, eventID)
}

// checkIn makes eventID the user's only current event.
func (s *Service) checkIn(ctx context.Context, userID, eventID string) error {
	others, err := s.repo.List(ctx, func(e *Event) bool {
		return e.ID != eventID && contains(e.CurrentAttendeeIDs, userID)
	})
	if err != nil {
		return err
	}
	for _, e := range others {
		if _, err := s.repo.Update(ctx, e.ID, func(e *Event) error {
			e.CurrentAttendeeIDs = without(e.CurrentAttendeeIDs, userID)
			return nil
		}); err != nil {
			return err
		}
	}
	return s.users.SetCurrentEvent(ctx, userID, eventID)
}

// Close completes an event. Only the host may close it; everyone checked in
// is checked out.
func (s *Service) Close(ctx context.Context, userID, eventID string) error {
	var checkedIn []string
	_, err := s.repo.Update(ctx, eventID, func(e *Event) error {
		if e.HostID != userID {
			return common.ErrorForbidden
		}
		now := s.now()
		e.Status = StatusCompleted
		if e.End == nil || e.End.After(now) {
			e.End = &now
		}
		checkedIn = e.CurrentAttendeeIDs
		e.CurrentAttendeeIDs = nil
		return nil
	})
	if err != nil {
		return err
	}

	for _, id := range checkedIn {
		if err := s.users.SetCurrentEvent(ctx, id, ""); err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
	}
	return nil
}

// Relevant collects the events hosted or attended by userID. currentEventID
// is the user's check-in, "" when none.
func (s *Service) Relevant(ctx context.Context, userID, currentEventID string) (*Relevant, error) {
	list, err := s.repo.List(ctx, func(e *Event) bool {
		return e.HostID == userID || e.hasAttendee(userID)
	})
	if err != nil {
		return nil, err
	}

	r := &Relevant{Hosted: []*Event{}, Interested: []*Event{}, Past: []*Event{}}
	for _, e := range list {
		switch {
		case e.ID == currentEventID && e.Status != StatusCompleted:
			r.Current = e
		case e.Status == StatusCompleted:
			r.Past = append(r.Past, e)
		case e.HostID == userID:
			r.Hosted = append(r.Hosted, e)
		default:
			r.Interested = append(r.Interested, e)
		}
	}
	return r, nil
}

// Find returns events matching p. With a position the results are ordered
// by distance and limited to MaxRadius (DefaultRadius when unset).
func (s *Service) Find(ctx context.Context, p FindParams) ([]*Event, error) {
	if (p.Lat == nil) != (p.Lon == nil) {
		return nil, invalid("lat and lon go together")
	}
	radius := DefaultRadius
	if p.MaxRadius != nil {
		radius = *p.MaxRadius
	}

	list, err := s.repo.List(ctx, func(e *Event) bool {
		if len(p.Statuses) > 0 && !contains(p.Statuses, e.Status) {
			return false
		}
		for _, t := range p.Tags {
			if !e.hasTag(t) {
				return false
			}
		}
		if p.Lat != nil && distanceKm(*p.Lat, *p.Lon, e.Lat, e.Lon) > radius {
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	if p.Lat != nil {
		sort.SliceStable(list, func(i, j int) bool {
			return distanceKm(*p.Lat, *p.Lon, list[i].Lat, list[i].Lon) <
				distanceKm(*p.Lat, *p.Lon, list[j].Lat, list[j].Lon)
		})
	}
	if p.MaxResults != nil && *p.MaxResults >= 0 && len(list) > *p.MaxResults {
		list = list[:*p.MaxResults]
	}
	return list, nil
}

func (s *Service) Messages(ctx context.Context, eventID string) ([]Message, error) {
	return s.repo.Messages(ctx, eventID)
}

func (s *Service) SendMessage(ctx context.Context, userID, eventID, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, invalid("text is required")
	}
	return s.repo.AddMessage(ctx, Message{
		EventID:   eventID,
		UserID:    userID,
		Text:      text,
		Timestamp: s.now().UTC(),
	})
}

func (s *Service) AddMedia(ctx context.Context, m Media) (Media, error) {
	return s.repo.AddMedia(ctx, m)
}

func (s *Service) Media(ctx context.Context, eventID string) ([]Media, error) {
	return s.repo.Media(ctx, eventID)
}

func (s *Service) AllMedia(ctx context.Context) ([]Media, error) {
	return s.repo.AllMedia(ctx)
}

func (s *Service) Tags(ctx context.Context) ([]Tag, error) {
	return s.repo.Tags(ctx)
}
