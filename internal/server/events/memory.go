package events

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/common"
	"github.com/google/uuid"
)

// MemoryRepository keeps events, chat and media in process memory.
type MemoryRepository struct {
	mu       sync.RWMutex
	events   map[string]*Event
	messages map[string][]Message
	media    []Media
	tags     []Tag
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		events:   map[string]*Event{},
		messages: map[string][]Message{},
	}
}

func (r *MemoryRepository) Create(ctx context.Context, e *Event) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := e.clone()
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()
	r.events[stored.ID] = stored
	return stored.clone(), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return e.clone(), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, fn func(e *Event) error) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	next := e.clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	r.events[id] = next
	return next.clone(), nil
}

func (r *MemoryRepository) List(ctx context.Context, keep func(e *Event) bool) ([]*Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Event
	for _, e := range r.events {
		if keep == nil || keep(e) {
			out = append(out, e.clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

func (r *MemoryRepository) AddMessage(ctx context.Context, m Message) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[m.EventID]; !ok {
		return Message{}, common.ErrorNotFound
	}
	m.ID = uuid.NewString()
	r.messages[m.EventID] = append(r.messages[m.EventID], m)
	return m, nil
}

func (r *MemoryRepository) Messages(ctx context.Context, eventID string) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.events[eventID]; !ok {
		return nil, common.ErrorNotFound
	}
	return append([]Message{}, r.messages[eventID]...), nil
}

func (r *MemoryRepository) AddMedia(ctx context.Context, m Media) (Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[m.EventID]; !ok {
		return Media{}, common.ErrorNotFound
	}
	m.ID = uuid.NewString()
	r.media = append(r.media, m)
	return m, nil
}

func (r *MemoryRepository) Media(ctx context.Context, eventID string) ([]Media, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.events[eventID]; !ok {
		return nil, common.ErrorNotFound
	}
	out := []Media{}
	for _, m := range r.media {
		if m.EventID == eventID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MemoryRepository) AllMedia(ctx context.Context) ([]Media, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Media{}, r.media...), nil
}

func (r *MemoryRepository) Tag(ctx context.Context, name string) (Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tags {
		if t.Name == name {
			return t, nil
		}
	}
	t := Tag{ID: uuid.NewString(), Name: name}
	r.tags = append(r.tags, t)
	return t, nil
}

func (r *MemoryRepository) Tags(ctx context.Context) ([]Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Tag{}, r.tags...), nil
}
