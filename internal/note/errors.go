package note

import (
	"errors"
	"fmt"
)

// ErrEmptyNote is returned by Save when both the draft title and content are
// empty or whitespace-only. The operation is rejected with no state change;
// the draft is preserved so the user can correct it.
var ErrEmptyNote = errors.New("note is empty")

// PersistenceError reports a failed write-through to the store. The
// in-memory collection remains authoritative and usable; the error is a
// warning that data will not survive a reload.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist notes: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
