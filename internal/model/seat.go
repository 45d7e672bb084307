package model

import "time"

// Seat is a bookable unit for one show on one screen.  Seats are
// created once per (show, screen, seat number) combination when the
// catalog is seeded; only the IsBooked flag ever changes afterwards,
// and only through the seat inventory's book/cancel operations.
// Seat numbers run from 1 to the owning screen's capacity with no
// gaps and are unique within a (show, screen) pair.
//
// Fields:
//  ID         – primary key identifier.
//  ShowID     – show this seat belongs to.
//  ScreenID   – screen this seat belongs to.
//  SeatNumber – position within the screen (1-based).
//  IsBooked   – whether the seat is currently booked.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Seat struct {
	ID         uint64    // seats.id
	ShowID     uint64    // seats.show_id
	ScreenID   uint64    // seats.screen_id
	SeatNumber uint32    // seats.seat_number
	IsBooked   bool      // seats.is_booked
	CreatedAt  time.Time // seats.created_at
	UpdatedAt  time.Time // seats.updated_at
}
