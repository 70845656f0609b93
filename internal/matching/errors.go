package matching

import "errors"

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrMatchNotFound = errors.New("match not found")
	ErrInvalidStatus = errors.New("status must be pending, confirmed or rejected")
)
