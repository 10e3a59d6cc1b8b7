package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports an identifier that matched no record.
	ErrNotFound = errors.New("not found")
	// ErrConflict reports an identifier prefix that matched several records.
	ErrConflict = errors.New("conflict")
	// ErrInvalid reports a value outside its allowed set.
	ErrInvalid = errors.New("invalid")
)

// PrefixConflictError carries details when an id prefix matches more than one
// record. It still satisfies errors.Is(err, ErrConflict).
type PrefixConflictError struct {
	Prefix  string
	Matches int
}

func (e *PrefixConflictError) Error() string {
	return fmt.Sprintf("id prefix %q matches %d records, give more characters", e.Prefix, e.Matches)
}

func (e *PrefixConflictError) Is(target error) bool {
	return target == ErrConflict
}
