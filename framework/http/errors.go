package http

import "errors"

var (
	// ErrEmptyBody is returned when a JSON request has no body.
	ErrEmptyBody = errors.New("empty request body")

	// ErrInvalidJSON is returned when a JSON body is not a JSON object.
	ErrInvalidJSON = errors.New("request body must be a JSON object")
)
