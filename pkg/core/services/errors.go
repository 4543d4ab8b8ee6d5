package services

import "errors"

var (
	// ErrEmployeeNotFound is returned when an operation names an unknown employee id
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDayClosed is returned when a status is set on a closed Monday
	ErrDayClosed = errors.New("day is closed")

	// ErrNotMonday is returned when a Monday opening names another weekday
	ErrNotMonday = errors.New("date is not a Monday")

	// ErrInvalidWeeklyMinutes is returned for weekly targets outside 0..60h or off the 15 minute grid
	ErrInvalidWeeklyMinutes = errors.New("invalid weekly minutes")

	// ErrNotConfigured is returned when publishing or emailing lacks the required config
	ErrNotConfigured = errors.New("not configured")
)
