package services

import "errors"

// Sentinel errors mapped to HTTP responses by the handler layer.
var (
	// ErrNotFound means the addressed record does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists means a uniqueness rule rejected the write.
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrForbidden means the authenticated user's role does not permit
	// the operation or the record is outside their scope.
	ErrForbidden = errors.New("operation not permitted")

	// ErrInvalidReference means a write referenced a missing related
	// record, such as a class pointing at an unknown course.
	ErrInvalidReference = errors.New("referenced resource does not exist")
)
