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

// marked pairs an error with a sentinel. Both sit in the Unwrap chain, so
// errors.Is matches the sentinel while the message stays the cause's own.
type marked struct {
	cause error
	mark  error
}

func (e *marked) Error() string {
	return e.cause.Error()
}

func (e *marked) Unwrap() []error {
	return []error{e.cause, e.mark}
}

// Mark attaches a classification sentinel to err without changing its
// message.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: err, mark: markErr}
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
