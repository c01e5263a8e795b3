// Package validate implements the client-side field checks that block a
// submission before any network call is made.
package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"unicode"
	"unicode/utf8"
)

// ErrValidation matches every *Error with errors.Is.
var ErrValidation = errors.New("validation failed")

// Error describes why a single field was rejected.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *Error) Is(target error) bool {
	return target == ErrValidation
}

// Options constrain a string field. Zero values disable a check.
type Options struct {
	MinLength    int
	MaxLength    int
	Alphanumeric bool
}

var (
	Username    = Options{MinLength: 1, MaxLength: 16, Alphanumeric: true}
	DisplayName = Options{MaxLength: 32}
	Bio         = Options{MaxLength: 200}
	Password    = Options{MinLength: 8, MaxLength: 64}
)

// String checks value against opts. Length is counted in runes.
func String(field, value string, opts Options) error {
	n := utf8.RuneCountInString(value)

	if opts.MinLength > 0 && n < opts.MinLength {
		if opts.MinLength == 1 {
			return &Error{Field: field, Reason: "must not be empty"}
		}
		return &Error{Field: field, Reason: fmt.Sprintf("must be at least %d characters", opts.MinLength)}
	}
	if opts.MaxLength > 0 && n > opts.MaxLength {
		return &Error{Field: field, Reason: fmt.Sprintf("must be at most %d characters", opts.MaxLength)}
	}
	if opts.Alphanumeric {
		for _, r := range value {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return &Error{Field: field, Reason: "must contain only letters and digits"}
			}
		}
	}
	return nil
}

// Email checks that value is a bare address such as "a@b.c".
func Email(field, value string) error {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return &Error{Field: field, Reason: "must be a valid email address"}
	}
	return nil
}

// NotEmpty rejects an empty value.
func NotEmpty(field, value string) error {
	if value == "" {
		return &Error{Field: field, Reason: "must not be empty"}
	}
	return nil
}
