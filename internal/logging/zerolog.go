package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type ZerologLogger struct {
	l zerolog.Logger
}

func NewZerologLogger(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{l: l}
}

// New builds a logger writing to w. pretty selects the human-readable console
// writer (development); otherwise JSON lines are written. Unknown levels fall
// back to info.
func New(w io.Writer, level string, pretty bool) *ZerologLogger {
	if w == nil {
		w = os.Stderr
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return NewZerologLogger(zerolog.New(w).Level(lvl).With().Timestamp().Logger())
}

// Nop discards everything.
func Nop() *ZerologLogger {
	return NewZerologLogger(zerolog.Nop())
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	withFields(z.l.Debug().Ctx(ctx), args).Msg(msg)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	withFields(z.l.Info().Ctx(ctx), args).Msg(msg)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	withFields(z.l.Warn().Ctx(ctx), args).Msg(msg)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	withFields(z.l.Error().Ctx(ctx), args).Msg(msg)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.l.With()
	for i := 0; i < len(args); i += 2 {
		key, value := pair(args, i)
		c = c.Interface(key, value)
	}
	return &ZerologLogger{l: c.Logger()}
}

func withFields(e *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i += 2 {
		key, value := pair(args, i)
		if err, ok := value.(error); ok {
			e = e.AnErr(key, err)
			continue
		}
		e = e.Interface(key, value)
	}
	return e
}

// pair reads the key/value at position i; a dangling key gets the !BADKEY
// treatment slog uses.
func pair(args []any, i int) (string, any) {
	if i+1 >= len(args) {
		return "!BADKEY", args[i]
	}
	if key, ok := args[i].(string); ok {
		return key, args[i+1]
	}
	return fmt.Sprint(args[i]), args[i+1]
}
