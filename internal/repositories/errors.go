package repositories

import "errors"

// Typed repository errors. Implementations translate store-level
// failures into these so callers can tell not-found, constraint
// violations and plain store failures apart.
var (
	// ErrNotFound: the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate: a unique constraint (username, email, course code)
	// rejected the write.
	ErrDuplicate = errors.New("duplicate value violates a unique constraint")

	// ErrInvalidReference: a foreign key constraint rejected the write
	// (referenced course/faculty/class/student row does not exist).
	ErrInvalidReference = errors.New("referenced record does not exist")
)
