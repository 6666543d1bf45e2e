package calendar

import "errors"

var (
	ErrHolidayNotFound    = errors.New("holiday not found")
	ErrInvalidHolidayType = errors.New("invalid holiday type")
)
