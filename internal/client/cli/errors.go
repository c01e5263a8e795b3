package cli

import "errors"

var errUsage = errors.New("wrong arguments")

func usage(text string) error {
	return &usageError{text: text}
}

type usageError struct {
	text string
}

func (e *usageError) Error() string { return "usage: " + e.text }

func (e *usageError) Unwrap() error { return errUsage }
