// Package notify is the user-visible notification channel. Every failure of
// an asynchronous action ends up here as a transient toast.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type Level string

const (
	LevelNormal  Level = "normal"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(ctx context.Context, level Level, msg string)
}

// WriterNotifier prints toasts as lines to w.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(_ context.Context, level Level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if level == LevelNormal {
		fmt.Fprintln(n.w, msg)
		return
	}
	fmt.Fprintf(n.w, "[%s] %s\n", level, msg)
}

type Toast struct {
	Level   Level
	Message string
}

// Recorder keeps every toast in memory.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

func (r *Recorder) Notify(_ context.Context, level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, Toast{Level: level, Message: msg})
}

// Toasts returns a copy of what was recorded so far.
func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Toast(nil), r.toasts...)
}
