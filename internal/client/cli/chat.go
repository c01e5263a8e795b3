package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/eventclient/internal/client/models"
)

// Chat opens an event's chat. New messages are printed as they arrive;
// every non-empty line typed is sent, an empty line leaves the chat.
func (a *App) Chat(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("chat <eventID>")
	}
	eventID := args[0]

	if _, err := a.stores.Auth.RequireToken(); err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		seen = map[string]bool{}
	)
	printNew := func(msgs []models.Message) {
		mu.Lock()
		defer mu.Unlock()
		for _, m := range msgs {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			printMessage(a.out, m, a.author(ctx, m.UserID))
		}
	}

	fmt.Fprintf(a.out, "Chat of event %s (empty line to leave)\n", eventID)
	stop := a.poller.Start(ctx, eventID, printNew)
	defer stop()

	for {
		line, err := readLine(a.reader)
		if err != nil || line == "" {
			return nil
		}

		msg, err := a.chat.Send(ctx, eventID, line)
		if err != nil {
			a.handle(ctx, err)
			continue
		}
		printNew([]models.Message{msg})
	}
}

// author names a message's sender, loading users not seen before.
func (a *App) author(ctx context.Context, userID string) string {
	if u, ok := a.stores.Users.User(userID); ok {
		return u.DisplayName
	}
	if u, err := a.stores.Users.FetchUser(ctx, userID, false); err == nil {
		return u.DisplayName
	}
	return userID
}
