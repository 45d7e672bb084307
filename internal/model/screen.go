package model

import "time"

// Screen represents a physical auditorium in the theater.  Screens are
// reference data: they are created once at setup and never mutated or
// deleted during normal operation.  Capacity determines how many seats
// are generated per show for this screen.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the screen (e.g. "Screen 1").
//  Capacity  – number of bookable seats, always positive.
//  CreatedAt – timestamp when the screen was created.
//  UpdatedAt – timestamp of last update.
type Screen struct {
	ID        uint64    // screens.id
	Name      string    // screens.name
	Capacity  uint32    // screens.capacity
	CreatedAt time.Time // screens.created_at
	UpdatedAt time.Time // screens.updated_at
}
