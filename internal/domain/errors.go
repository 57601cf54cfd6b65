package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrHandleRequired = errors.New("anilist username is required")
)

// NotFoundError is returned by lookups that succeeded but matched nothing.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
