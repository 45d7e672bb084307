package model

import "time"

// Show represents a scheduled screening window.  Shows are reference
// data owned by the catalog store; StartTime must be strictly before
// EndTime, which the repository enforces on insert.  Shows run on
// every screen, so each show contributes capacity seats per screen.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the show (e.g. "Show 2").
//  StartTime – when the show begins (UTC).
//  EndTime   – when the show ends (UTC, after StartTime).
//  CreatedAt – timestamp when the show was created.
//  UpdatedAt – timestamp of last update.
type Show struct {
	ID        uint64    // shows.id
	Name      string    // shows.name
	StartTime time.Time // shows.start_time
	EndTime   time.Time // shows.end_time
	CreatedAt time.Time // shows.created_at
	UpdatedAt time.Time // shows.updated_at
}
