// Package queue defines message payloads exchanged over the message broker
// plus the publisher and background consumer for seat events.
package queue

// SeatEvent is published whenever a seat transitions between free and
// booked.  It carries enough information for downstream consumers to
// log or trigger notifications without querying the primary database.
type SeatEvent struct {
	Action     string `json:"action"` // "booked" or "cancelled"
	ShowID     uint64 `json:"show_id"`
	ScreenID   uint64 `json:"screen_id"`
	SeatNumber uint32 `json:"seat_number"`
	OccurredAt string `json:"occurred_at"` // RFC3339 UTC
}

// Actions for SeatEvent.
const (
	ActionBooked    = "booked"
	ActionCancelled = "cancelled"
)
