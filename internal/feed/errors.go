package feed

import "errors"

var (
	// ErrPostNotFound means no post exists with the given id.
	ErrPostNotFound = errors.New("post not found")
)
