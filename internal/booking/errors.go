package booking

import "errors"

var (
	ErrInvalidHour    = errors.New("hour must be HH:MM on a half-hour boundary")
	ErrInvalidDate    = errors.New("date must be YYYY-MM-DD")
	ErrHourOutOfRange = errors.New("hour is outside opening hours")
	ErrDateOutOfRange = errors.New("date is outside the booking window")
	ErrUnknownTable   = errors.New("no such table")
	ErrTableBooked    = errors.New("table is already booked at this time")
	ErrStaleLoad      = errors.New("availability load superseded by a newer one")
)
