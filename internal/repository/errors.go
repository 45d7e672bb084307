// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values allow higher layers such as the
// reservation service to distinguish between failure scenarios: a seat
// that does not exist is NotFound, while a seat whose current state
// disagrees with the requested transition (booking a booked seat,
// cancelling a free one) is a conflict and a legitimate outcome of a
// race, not a fault.
package repository

import "errors"

// ErrScreenNotFound is returned when a screen lookup yields no rows.
var ErrScreenNotFound = errors.New("screen not found")

// ErrShowNotFound is returned when a show lookup yields no rows.
var ErrShowNotFound = errors.New("show not found")

// ErrSeatNotFound is returned when no seat matches a
// (show_id, screen_id, seat_number) key.
var ErrSeatNotFound = errors.New("seat not found")

// ErrSeatAlreadyBooked is returned when a booking attempt targets a seat
// that is already booked, including the losing side of a booking race.
var ErrSeatAlreadyBooked = errors.New("seat already booked")

// ErrSeatNotBooked is returned when a cancellation targets a seat that
// is currently free.
var ErrSeatNotBooked = errors.New("seat not booked")

// ErrInvalidShowTimes is returned when a show is created with an end
// time that is not strictly after its start time.
var ErrInvalidShowTimes = errors.New("show end time must be after start time")
