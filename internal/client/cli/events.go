package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/models"
	"github.com/dmitrijs2005/eventclient/internal/client/store"
)

// Events lists the events relevant to a user, the signed-in one by default.
func (a *App) Events(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usage("events [userID]")
	}
	var userID string
	if len(args) == 1 {
		userID = args[0]
	}

	ids, err := a.stores.Events.RelevantEvents(ctx, userID)
	if err != nil {
		return err
	}

	var current []string
	if ids.Current != "" {
		current = []string{ids.Current}
	}
	printEvents(a.out, "Current", a.stores.Events.Events(current))
	printEvents(a.out, "Hosted", a.stores.Events.Events(ids.Hosted))
	printEvents(a.out, "Interested", a.stores.Events.Events(ids.Interested))
	printEvents(a.out, "Past", a.stores.Events.Events(ids.Past))
	return nil
}

// Find searches active and scheduled events, optionally around a point.
func (a *App) Find(ctx context.Context, args []string) error {
	opts := store.FindOptions{
		Statuses:  []models.EventStatus{models.StatusActive, models.StatusScheduled},
		LoadUsers: true,
	}

	switch len(args) {
	case 0:
	case 2, 3:
		nums := make([]float64, len(args))
		for i, s := range args {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return usage("find [lat lon [radius]]")
			}
			nums[i] = v
		}
		opts.Lat, opts.Lon = &nums[0], &nums[1]
		if len(nums) == 3 {
			opts.MaxRadius = &nums[2]
		}
	default:
		return usage("find [lat lon [radius]]")
	}

	ids, err := a.stores.Events.FindEvents(ctx, opts)
	if err != nil {
		return err
	}
	printEvents(a.out, "Found", a.stores.Events.Events(ids))
	return nil
}

// Event fetches and shows one event with its host and attendees.
func (a *App) Event(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("event <eventID>")
	}

	ev, err := a.stores.Events.FetchEvent(ctx, args[0])
	if err != nil {
		return err
	}

	var host *models.User
	if h, ok := a.stores.Events.Host(ev); ok {
		host = &h
	}
	printEvent(a.out, ev, host, a.stores.Users.Users(ev.AttendeeIDs))
	return nil
}

func (a *App) Media(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("media <eventID>")
	}

	media, err := a.stores.Events.FetchMedia(ctx, args[0])
	if err != nil {
		return err
	}
	printMedia(a.out, media)
	return nil
}

// Create prompts for the event fields and creates an event hosted by the
// signed-in user, which also becomes their current event.
func (a *App) Create(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Event name", a.out)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	tags, err := getSimpleText(a.reader, "Tags, comma separated", a.out)
	if err != nil {
		return err
	}
	lat, err := a.requireFloat("Latitude")
	if err != nil {
		return err
	}
	lon, err := a.requireFloat("Longitude")
	if err != nil {
		return err
	}
	start, err := a.optionalTime("Start, e.g. 2024-05-01T20:00:00Z (empty for now)")
	if err != nil {
		return err
	}
	end, err := a.optionalTime("End (optional)")
	if err != nil {
		return err
	}

	id, err := a.stores.Events.CreateEvent(ctx, store.CreateEventParams{
		Name:        name,
		Description: description,
		Tags:        splitList(tags),
		Lat:         lat,
		Lon:         lon,
		Start:       start,
		End:         end,
	})
	if err != nil {
		return err
	}
	a.reporter.Success(ctx, fmt.Sprintf("Created event %s", id))
	return nil
}

// Join checks in to an event. Without coordinates the user is asked for
// their location.
func (a *App) Join(ctx context.Context, args []string) error {
	var (
		lat, lon float64
		err      error
	)

	switch len(args) {
	case 1:
		if lat, err = a.requireFloat("Your latitude"); err != nil {
			return err
		}
		if lon, err = a.requireFloat("Your longitude"); err != nil {
			return err
		}
	case 3:
		lat, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return usage("join <eventID> [lat lon]")
		}
		lon, err = strconv.ParseFloat(args[2], 64)
		if err != nil {
			return usage("join <eventID> [lat lon]")
		}
	default:
		return usage("join <eventID> [lat lon]")
	}

	if err := a.stores.Events.JoinEvent(ctx, args[0], lat, lon); err != nil {
		return err
	}
	a.reporter.Success(ctx, fmt.Sprintf("Joined event %s", args[0]))
	return nil
}

func (a *App) CloseEvent(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("close <eventID>")
	}
	if err := a.stores.Events.CloseEvent(ctx, args[0]); err != nil {
		return err
	}
	a.reporter.Success(ctx, fmt.Sprintf("Closed event %s", args[0]))
	return nil
}

func (a *App) Tags(ctx context.Context) error {
	tags, err := a.stores.Events.AllTags(ctx)
	if err != nil {
		return err
	}
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	fmt.Fprintln(a.out, strings.Join(names, ", "))
	return nil
}

func (a *App) requireFloat(prompt string) (float64, error) {
	v, err := GetOptionalFloat(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("%s is required", strings.ToLower(prompt))
	}
	return *v, nil
}

func (a *App) optionalTime(prompt string) (*time.Time, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil || s == "" {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("%q is not an RFC 3339 time", s)
	}
	return &t, nil
}
