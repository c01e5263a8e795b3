package events

import "context"

type Repository interface {
	Create(ctx context.Context, e *Event) (*Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	// Update applies fn to the stored event under the repository lock.
	Update(ctx context.Context, id string, fn func(e *Event) error) (*Event, error)
	// List returns the events accepted by keep, oldest start first.
	List(ctx context.Context, keep func(e *Event) bool) ([]*Event, error)

	AddMessage(ctx context.Context, m Message) (Message, error)
	Messages(ctx context.Context, eventID string) ([]Message, error)

	AddMedia(ctx context.Context, m Media) (Media, error)
	Media(ctx context.Context, eventID string) ([]Media, error)
	AllMedia(ctx context.Context) ([]Media, error)

	// Tag returns the tag called name, creating it on first use.
	Tag(ctx context.Context, name string) (Tag, error)
	Tags(ctx context.Context) ([]Tag, error)
}
