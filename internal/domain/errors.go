package domain

import "errors"

var (
	// ErrSlotUnavailable is returned when a claim races with another booking
	// or targets a slot that no longer exists.
	ErrSlotUnavailable = errors.New("slot is no longer available")

	ErrSlotNotFound    = errors.New("slot not found")
	ErrBookingNotFound = errors.New("booking not found")
)
