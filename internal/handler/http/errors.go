package http

import "errors"

var (
	// ErrInvalidJSON is reported when a request body is not a JSON value of
	// the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrWebsocketUpgrade is logged when a notifications client cannot be
	// upgraded.
	ErrWebsocketUpgrade = errors.New("websocket upgrade failed")
)
