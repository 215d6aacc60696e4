package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNullItem                 = errors.New("item is null")
	ErrInvalidItemID            = errors.New("invalid item id")
	ErrDuplicateItemID          = errors.New("duplicate item id")
	ErrInvalidStrategy          = errors.New("invalid strategy")
	ErrInvalidStrategyTimestamp = errors.New("strategy lastModified is not a timestamp")
)
