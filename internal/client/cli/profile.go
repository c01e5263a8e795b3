package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/client/store"
)

func (a *App) Whoami(ctx context.Context) error {
	u, ok := a.stores.Users.CurrentUser()
	if !ok {
		return client.ErrNotAuthenticated
	}
	printUser(a.out, u.User)
	fmt.Fprintf(a.out, "  email: %s\n", u.Email)
	if ev, ok := a.stores.Events.CurrentEvent(); ok {
		fmt.Fprintf(a.out, "  at: %s (%s)\n", ev.Name, ev.ID)
	}
	return nil
}

// Profile shows a user with their follower and event counters.
func (a *App) Profile(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("profile <userID>")
	}

	u, err := a.stores.Users.FetchUser(ctx, args[0], true)
	if err != nil {
		return err
	}

	printUser(a.out, u)
	if d, ok := a.stores.Users.Details(u.ID); ok {
		fmt.Fprintf(a.out, "  followers: %d  following: %d  events: %d\n", d.NumFollowers, d.NumFollowing, d.NumEvents)
	}
	return nil
}

// Edit prompts for each profile field; an empty answer keeps the current
// value.
func (a *App) Edit(ctx context.Context) error {
	if _, ok := a.stores.Users.CurrentUser(); !ok {
		return client.ErrNotAuthenticated
	}

	var edit store.EditProfile

	prompts := []struct {
		label string
		dst   **string
	}{
		{"New username (empty to keep)", &edit.Username},
		{"New display name (empty to keep)", &edit.DisplayName},
		{"New bio (empty to keep)", &edit.Bio},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*p.dst = &v
		}
	}

	tags, err := getSimpleText(a.reader, "Favourite tags, comma separated (empty to keep)", a.out)
	if err != nil {
		return err
	}
	edit.FavouriteTags = splitList(tags)

	avatar, err := getSimpleText(a.reader, "Path to avatar JPEG (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if avatar != "" {
		edit.Avatar, err = os.ReadFile(avatar)
		if err != nil {
			return fmt.Errorf("read avatar: %w", err)
		}
	}

	if err := a.stores.Users.EditSelf(ctx, edit); err != nil {
		return err
	}
	a.reporter.Success(ctx, "Profile updated")
	return nil
}
