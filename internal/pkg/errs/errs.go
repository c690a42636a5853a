package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches reference either through the wrap chain or
// through a mark applied with Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// Classify returns an error that reads as sentinel and matches both sentinel and
// class. cause stays reachable through errors.As, so driver codes survive.
func Classify(sentinel, class, cause error) error {
	var err error = &classified{msg: sentinel.Error(), cause: cause}
	err = cr.WithStackDepth(err, 1)
	return cr.Mark(cr.Mark(err, sentinel), class)
}

// classified replaces the message of cause without dropping it from the chain.
type classified struct {
	msg   string
	cause error
}

func (e *classified) Error() string { return e.msg }
func (e *classified) Unwrap() error { return e.cause }

// Rule returns a new validation error carrying msg, already marked as ErrValidation.
func Rule(msg string) error {
	return cr.Mark(cr.NewWithDepth(1, msg), ErrValidation)
}

// Cause returns the message of the innermost error, which Classify hides from Error.
func Cause(err error) string {
	if err == nil {
		return ""
	}
	return cr.UnwrapAll(err).Error()
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
