package server

import (
	"context"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/server/events"
	"github.com/dmitrijs2005/eventclient/internal/server/users"
)

const (
	DemoUsername = "demo"
	DemoPassword = "password1"
	DemoEmail    = "demo@example.com"
)

// Seed creates the demo user with one active event in Riga, a photo and a
// chat message.
func Seed(ctx context.Context, us *users.Service, es *events.Service) error {
	token, err := us.Register(ctx, DemoUsername, DemoEmail, DemoPassword)
	if err != nil {
		return err
	}
	id, err := us.Authenticate(token)
	if err != nil {
		return err
	}

	end := time.Now().Add(6 * time.Hour)
	e, err := es.Create(ctx, id, events.CreateParams{
		Name:        "Welcome party",
		Description: "Say hi to everyone on the dev server",
		Tags:        []string{"techno", "house"},
		Lat:         56.9496,
		Lon:         24.1052,
		End:         &end,
	})
	if err != nil {
		return err
	}

	if _, err := es.AddMedia(ctx, events.Media{Type: "image", FileAvailable: true, CreatorID: id, EventID: e.ID}); err != nil {
		return err
	}
	if _, err := es.AddMedia(ctx, events.Media{Type: "video", FileAvailable: false, CreatorID: id, EventID: e.ID}); err != nil {
		return err
	}

	_, err = es.SendMessage(ctx, id, e.ID, "Welcome!")
	return err
}
