package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/client"
	"github.com/dmitrijs2005/eventclient/internal/client/models"
	"github.com/dmitrijs2005/eventclient/internal/client/validate"
)

// TokenSource yields the signed-in user's token.
type TokenSource interface {
	RequireToken() (string, error)
}

// ErrorReporter routes a failure to the user-visible notification channel.
type ErrorReporter interface {
	Handle(ctx context.Context, err error, prefix string)
}

// ChatService reads and posts messages in an event's chat.
type ChatService interface {
	// Messages returns the chat of an event, oldest first.
	Messages(ctx context.Context, eventID string) ([]models.Message, error)
	Send(ctx context.Context, eventID, text string) (models.Message, error)
}

type chatService struct {
	client client.Client
	auth   TokenSource
}

func NewChatService(c client.Client, auth TokenSource) ChatService {
	return &chatService{client: c, auth: auth}
}

func (s *chatService) Messages(ctx context.Context, eventID string) ([]models.Message, error) {
	token, err := s.auth.RequireToken()
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Messages(ctx, token, eventID)
	if err != nil {
		return nil, err
	}

	msgs := make([]models.Message, 0, len(resp))
	for _, r := range resp {
		m, err := messageFromResponse(r)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})
	return msgs, nil
}

func (s *chatService) Send(ctx context.Context, eventID, text string) (models.Message, error) {
	if err := validate.NotEmpty("message", text); err != nil {
		return models.Message{}, err
	}

	token, err := s.auth.RequireToken()
	if err != nil {
		return models.Message{}, err
	}

	resp, err := s.client.SendMessage(ctx, token, client.SendMessageRequest{EventID: eventID, Text: text})
	if err != nil {
		return models.Message{}, err
	}
	return messageFromResponse(*resp)
}

func messageFromResponse(r client.MessageResponse) (models.Message, error) {
	m := models.Message{ID: r.ID, EventID: r.EventID, UserID: r.UserID, Text: r.Text}
	if r.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, r.Timestamp)
		if err != nil {
			return models.Message{}, fmt.Errorf("message %s: invalid timestamp: %w", r.ID, err)
		}
		m.Timestamp = ts
	}
	return m, nil
}
