package errors

import "errors"

var (
	ErrDuplicateOrder = errors.New("order with this id already exists")
)
