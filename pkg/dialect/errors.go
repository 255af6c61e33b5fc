package dialect

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every FormatError via errors.Is.
var ErrFormat = errors.New("invalid format")

// FormatError reports that a kind-specific parser was given text outside its
// sub-grammar.
type FormatError struct {
	Kind Kind

	// Text is the offending paragraph text.
	Text string

	// Reason is an optional detail appended to the message.
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s format: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid %s format", e.Kind)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}
