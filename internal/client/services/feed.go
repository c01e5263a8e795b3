package services

import (
	"context"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/client/models"
	"github.com/dmitrijs2005/eventclient/internal/client/store"
)

// FeedService builds the discover feed from every media file on the backend.
type FeedService interface {
	// Discover returns the media whose files are available, each with Src
	// pointing at the playable file.
	Discover(ctx context.Context) ([]models.Media, error)
}

type feedService struct {
	client client.Client
	auth   TokenSource
}

func NewFeedService(c client.Client, auth TokenSource) FeedService {
	return &feedService{client: c, auth: auth}
}

func (s *feedService) Discover(ctx context.Context) ([]models.Media, error) {
	token, err := s.auth.RequireToken()
	if err != nil {
		return nil, err
	}

	resp, err := s.client.AllMedia(ctx, token)
	if err != nil {
		return nil, err
	}

	out := make([]models.Media, 0, len(resp))
	for _, m := range resp {
		if !m.FileAvailable {
			continue
		}
		out = append(out, store.NormalizeMedia(s.client.BaseURL(), m))
	}
	return out, nil
}
