package errors

import "errors"

var (
	ErrDuplicateBooking = errors.New("booking with this id already exists")

	ErrUnknownTable = errors.New("table does not exist")

	ErrInvalidRepeat = errors.New("repeat must be false or daily")
)
