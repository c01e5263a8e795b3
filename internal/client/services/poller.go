package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/eventclient/internal/client/models"
)

const prefixLoadMessages = "Failed to load messages"

// DefaultPollInterval is used when a Poller is built with a non-positive
// interval.
const DefaultPollInterval = time.Second

// Poller refreshes an event's chat on a fixed interval.
type Poller struct {
	chat     ChatService
	errs     ErrorReporter
	interval time.Duration
}

func NewPoller(chat ChatService, errs ErrorReporter, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{chat: chat, errs: errs, interval: interval}
}

// Start loads the chat immediately and then on every tick, passing each
// successful result to onUpdate. Polling ends when stop is called or ctx is
// done; stop waits for the polling goroutine and may be called repeatedly.
func (p *Poller) Start(ctx context.Context, eventID string, onUpdate func([]models.Message)) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			p.refresh(ctx, eventID, onUpdate)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

func (p *Poller) refresh(ctx context.Context, eventID string, onUpdate func([]models.Message)) {
	msgs, err := p.chat.Messages(ctx, eventID)
	if err != nil {
		if ctx.Err() == nil {
			p.errs.Handle(ctx, err, prefixLoadMessages)
		}
		return
	}
	onUpdate(msgs)
}
