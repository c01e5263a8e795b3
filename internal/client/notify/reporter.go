package notify

import (
	"context"

	"github.com/dmitrijs2005/eventclient/internal/logging"
)

const genericMessage = "An error occurred"

// Reporter turns errors into danger toasts and log records.
type Reporter struct {
	notifier   Notifier
	log        logging.Logger
	production bool
}

// NewReporter hides error details from the user when production is set.
func NewReporter(notifier Notifier, log logging.Logger, production bool) *Reporter {
	return &Reporter{notifier: notifier, log: log, production: production}
}

// Handle reports err. A nil err is ignored.
func (r *Reporter) Handle(ctx context.Context, err error, prefix string) {
	if err == nil {
		return
	}

	r.log.Error(ctx, "action failed", "prefix", prefix, "error", err)
	r.notifier.Notify(ctx, LevelDanger, Message(err, prefix, r.production))
}

// Guard runs fn and reports its error, so a failing action never escapes to
// the caller.
func (r *Reporter) Guard(ctx context.Context, prefix string, fn func(ctx context.Context) error) {
	r.Handle(ctx, fn(ctx), prefix)
}

// Success shows a confirmation toast.
func (r *Reporter) Success(ctx context.Context, msg string) {
	r.notifier.Notify(ctx, LevelSuccess, msg)
}

// Message renders the toast text for err.
func Message(err error, prefix string, production bool) string {
	msg := genericMessage
	if !production {
		msg = err.Error()
	}
	if prefix != "" {
		msg = prefix + ":\n" + msg
	}
	return msg
}
