package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg and a captured stack. Returns nil for nil err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches the identity of markErr to err. Both the original cause chain
// and markErr match errors.Is afterwards, so handlers can switch on the
// domain sentinels without losing the underlying failure.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Join(err, markErr)
}

// ExtractStackLines renders the verbose error report for logging, capped at
// maxLines.
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
