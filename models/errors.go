package models

import "errors"

var (
	// ErrItemWithoutID is returned when a collection entry has no usable "id".
	ErrItemWithoutID = errors.New("item has no id")
	// ErrItemInvalidID is returned when "id" is neither a string nor a number.
	ErrItemInvalidID = errors.New("item id must be a string or a number")
	// ErrUnknownCollection is returned for a collection name outside
	// timeline, evidence and correspondence.
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrUnknownConflictPolicy is returned by [ParseConflictPolicy].
	ErrUnknownConflictPolicy = errors.New("unknown conflict policy")
)
