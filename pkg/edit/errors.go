package edit

import (
	"errors"
	"fmt"
)

// ErrIndex is matched by every IndexError via errors.Is.
var ErrIndex = errors.New("index out of bounds")

// Units an edit addresses.
const (
	UnitSection   = "section"
	UnitParagraph = "paragraph"
)

// IndexError reports an edit at a position outside the document or section.
type IndexError struct {
	// Op is "insert", "replace", or "remove".
	Op string

	// Unit is UnitSection or UnitParagraph.
	Unit string

	Index  int
	Length int
}

func (e *IndexError) Error() string {
	if e.Length == 0 && e.Op != opInsert {
		return fmt.Sprintf("no %ss to %s", e.Unit, e.Op)
	}
	return fmt.Sprintf("%s %s: index %d is out of bounds (%d %ss)", e.Op, e.Unit, e.Index, e.Length, e.Unit)
}

func (e *IndexError) Unwrap() error {
	return ErrIndex
}
