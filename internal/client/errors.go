package client

import "errors"

var (
	// ErrAlreadyRunning is returned when another process holds the lock on
	// the same local store.
	ErrAlreadyRunning = errors.New("another case-sync process is using this store")

	// ErrControlAPIUnavailable is returned when the store is locked and no
	// control API address is configured to reach the running process.
	ErrControlAPIUnavailable = errors.New("store is locked and no control API address is configured")
)
