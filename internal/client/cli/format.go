package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/models"
)

const timeLayout = "2006-01-02 15:04"

func printUser(w io.Writer, u models.User) {
	fmt.Fprintf(w, "%s (@%s) id=%s\n", u.DisplayName, u.Username, u.ID)
	if u.Bio != "" {
		fmt.Fprintf(w, "  %s\n", u.Bio)
	}
	if len(u.FavouriteTags) > 0 {
		fmt.Fprintf(w, "  tags: %s\n", strings.Join(u.FavouriteTags, ", "))
	}
}

func printEventLine(w io.Writer, e models.Event) {
	fmt.Fprintf(w, "  %-12s %-10s %s  (%s)\n", e.ID, e.Status, e.Name, e.Start.Local().Format(timeLayout))
}

func printEvents(w io.Writer, title string, events []models.Event) {
	fmt.Fprintf(w, "%s:\n", title)
	if len(events) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, e := range events {
		printEventLine(w, e)
	}
}

func printEvent(w io.Writer, e models.Event, host *models.User, attendees []models.User) {
	fmt.Fprintf(w, "%s [%s] id=%s\n", e.Name, e.Status, e.ID)
	fmt.Fprintf(w, "  where: %.5f, %.5f (radius %.0f km)\n", e.Lat, e.Lon, e.Radius)
	fmt.Fprintf(w, "  when:  %s", e.Start.Local().Format(timeLayout))
	if e.HasEnd() {
		fmt.Fprintf(w, " - %s", e.End.Local().Format(timeLayout))
	}
	fmt.Fprintln(w)
	if host != nil {
		fmt.Fprintf(w, "  host:  %s\n", host.DisplayName)
	}
	if e.Description != "" {
		fmt.Fprintf(w, "  %s\n", e.Description)
	}
	if len(e.Tags) > 0 {
		names := make([]string, len(e.Tags))
		for i, t := range e.Tags {
			names[i] = t.Name
		}
		fmt.Fprintf(w, "  tags:  %s\n", strings.Join(names, ", "))
	}
	if len(attendees) > 0 {
		names := make([]string, len(attendees))
		for i, u := range attendees {
			names[i] = u.DisplayName
		}
		fmt.Fprintf(w, "  attendees: %s\n", strings.Join(names, ", "))
	}
}

func printMedia(w io.Writer, media []models.Media) {
	if len(media) == 0 {
		fmt.Fprintln(w, "(no media)")
		return
	}
	for _, m := range media {
		fmt.Fprintf(w, "  %-6s %s\n", m.Type, m.Src)
	}
}

func printMessage(w io.Writer, m models.Message, author string) {
	ts := ""
	if !m.Timestamp.IsZero() {
		ts = m.Timestamp.Local().Format(time.Kitchen) + " "
	}
	fmt.Fprintf(w, "%s%s: %s\n", ts, author, m.Text)
}
