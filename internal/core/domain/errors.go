package domain

import "errors"

var (
	ErrInvalidTime    = errors.New("invalid time of day")
	ErrInvalidDate    = errors.New("invalid calendar date")
	ErrMethodNotFound = errors.New("delivery method not found")
	ErrPickupDisabled = errors.New("pickup is disabled")
)
