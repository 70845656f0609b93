package item

import "errors"

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrInvalidType    = errors.New("item type must be lost or found")
	ErrInvalidStatus  = errors.New("invalid item status")
	ErrInvalidPayload = errors.New("invalid payload")
)
