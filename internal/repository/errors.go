package repository

import "errors"

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique key is already taken.
	ErrDuplicate = errors.New("duplicate key")
	// ErrPhotoLimitReached is returned when an inspection already holds the maximum number of photos.
	ErrPhotoLimitReached = errors.New("photo limit reached")
)

// IsFailure reports whether err is an infrastructure failure that should
// count against a circuit breaker. Domain misses do not.
func IsFailure(err error) bool {
	return err != nil &&
		!errors.Is(err, ErrNotFound) &&
		!errors.Is(err, ErrDuplicate) &&
		!errors.Is(err, ErrPhotoLimitReached)
}
