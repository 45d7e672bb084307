package service

import (
	"context"
	"errors"

	"github.com/iliyamo/theater-seat-booking/internal/model"
	"github.com/iliyamo/theater-seat-booking/internal/repository"
)

// BookingOutcome is the domain result of a booking request.  Conflicts
// and missing seats are outcomes, not errors: only storage failures are
// reported through the error return.
type BookingOutcome int

const (
	// Booked means the seat transitioned from free to booked.
	Booked BookingOutcome = iota
	// AlreadyBooked means the seat was booked before the request, or
	// the request lost a race against a concurrent booking.
	AlreadyBooked
	// BookingSeatNotFound means no seat matches the requested key.
	BookingSeatNotFound
)

// CancellationOutcome is the domain result of a cancellation request.
type CancellationOutcome int

const (
	// Cancelled means the seat transitioned from booked to free.
	Cancelled CancellationOutcome = iota
	// NotBooked means the seat was already free; state is unchanged and
	// repeated cancellations keep returning this outcome.
	NotBooked
	// CancellationSeatNotFound means no seat matches the requested key.
	CancellationSeatNotFound
)

// Availability is the result of an availability query.  When Seats is
// empty, NextShow carries the temporally nearest show scheduled after
// the queried one, or nil when none exists.
type Availability struct {
	Seats    []model.Seat
	NextShow *model.Show
}

// ReservationService orchestrates booking and cancellation requests
// against the seat inventory.  Every operation is single-shot: a losing
// booking race surfaces as AlreadyBooked and is never retried against
// another seat.
type ReservationService struct {
	inventory    SeatInventory
	availability *AvailabilityEngine
}

// NewReservationService constructs a ReservationService.
func NewReservationService(inventory SeatInventory, availability *AvailabilityEngine) *ReservationService {
	if inventory == nil || availability == nil {
		panic("nil dependency passed to NewReservationService")
	}
	return &ReservationService{inventory: inventory, availability: availability}
}

// RequestBooking books the seat identified by the given key.  The
// inventory's conditional update guarantees that two concurrent
// requests for the same key cannot both succeed.
func (s *ReservationService) RequestBooking(ctx context.Context, showID, screenID uint64, seatNumber uint32) (BookingOutcome, error) {
	err := s.inventory.Book(ctx, showID, screenID, seatNumber)
	switch {
	case err == nil:
		return Booked, nil
	case errors.Is(err, repository.ErrSeatAlreadyBooked):
		return AlreadyBooked, nil
	case errors.Is(err, repository.ErrSeatNotFound):
		return BookingSeatNotFound, nil
	default:
		return 0, err
	}
}

// RequestCancellation frees the seat identified by the given key.
func (s *ReservationService) RequestCancellation(ctx context.Context, showID, screenID uint64, seatNumber uint32) (CancellationOutcome, error) {
	err := s.inventory.Cancel(ctx, showID, screenID, seatNumber)
	switch {
	case err == nil:
		return Cancelled, nil
	case errors.Is(err, repository.ErrSeatNotBooked):
		return NotBooked, nil
	case errors.Is(err, repository.ErrSeatNotFound):
		return CancellationSeatNotFound, nil
	default:
		return 0, err
	}
}

// QueryAvailability lists the free seats of a (show, screen) pair.
// When none remain it consults the availability engine for the next
// show suggestion before returning, so callers get the fallback in the
// same round trip.
func (s *ReservationService) QueryAvailability(ctx context.Context, showID, screenID uint64) (Availability, error) {
	seats, err := s.inventory.List(ctx, showID, screenID, true)
	if err != nil {
		return Availability{}, err
	}
	if len(seats) > 0 {
		return Availability{Seats: seats}, nil
	}
	next, err := s.availability.NextShowAfter(ctx, showID)
	if err != nil {
		return Availability{}, err
	}
	return Availability{NextShow: next}, nil
}

// FindSeat exposes a single-seat lookup for callers that need the
// current booked flag, e.g. the seat listing endpoint.
func (s *ReservationService) FindSeat(ctx context.Context, showID, screenID uint64, seatNumber uint32) (*model.Seat, error) {
	return s.inventory.Find(ctx, showID, screenID, seatNumber)
}

// ListSeats exposes the full (or free-only) seat listing of a
// (show, screen) pair, ordered by seat number.
func (s *ReservationService) ListSeats(ctx context.Context, showID, screenID uint64, freeOnly bool) ([]model.Seat, error) {
	return s.inventory.List(ctx, showID, screenID, freeOnly)
}
