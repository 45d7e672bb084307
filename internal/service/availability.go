// Package service contains the request-facing domain logic: the
// availability query engine and the reservation service.  Both operate
// on small store interfaces satisfied by the repository layer so they
// can be exercised against in-memory fakes in tests.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/iliyamo/theater-seat-booking/internal/model"
	"github.com/iliyamo/theater-seat-booking/internal/repository"
)

// SeatInventory is the slice of the seat repository the services need.
// Book and Cancel must be atomic per seat key: of N concurrent Book
// calls for one key exactly one may succeed, the rest must return
// repository.ErrSeatAlreadyBooked.
type SeatInventory interface {
	Find(ctx context.Context, showID, screenID uint64, seatNumber uint32) (*model.Seat, error)
	List(ctx context.Context, showID, screenID uint64, freeOnly bool) ([]model.Seat, error)
	Book(ctx context.Context, showID, screenID uint64, seatNumber uint32) error
	Cancel(ctx context.Context, showID, screenID uint64, seatNumber uint32) error
}

// ShowCatalog is the slice of the show repository the availability
// engine needs.
type ShowCatalog interface {
	GetByID(ctx context.Context, id uint64) (*model.Show, error)
	ShowsAfter(ctx context.Context, after time.Time) ([]model.Show, error)
}

// AvailabilityEngine answers free-seat queries and computes the
// next-show fallback when a show has sold out.
type AvailabilityEngine struct {
	inventory SeatInventory
	catalog   ShowCatalog
}

// NewAvailabilityEngine constructs an AvailabilityEngine.
func NewAvailabilityEngine(inventory SeatInventory, catalog ShowCatalog) *AvailabilityEngine {
	return &AvailabilityEngine{inventory: inventory, catalog: catalog}
}

// AvailableSeats returns the free seats of a (show, screen) pair in
// ascending seat-number order.
func (e *AvailabilityEngine) AvailableSeats(ctx context.Context, showID, screenID uint64) ([]model.Seat, error) {
	return e.inventory.List(ctx, showID, screenID, true)
}

// NextShowAfter finds the show whose start time is the smallest one
// strictly after the queried show's end time.  Shows sharing that start
// time are tie-broken by smallest ID so the suggestion is deterministic.
// It returns nil without error when the show is unknown or nothing is
// scheduled later.
func (e *AvailabilityEngine) NextShowAfter(ctx context.Context, showID uint64) (*model.Show, error) {
	show, err := e.catalog.GetByID(ctx, showID)
	if err != nil {
		if errors.Is(err, repository.ErrShowNotFound) {
			return nil, nil
		}
		return nil, err
	}
	candidates, err := e.catalog.ShowsAfter(ctx, show.EndTime)
	if err != nil {
		return nil, err
	}
	// The catalog already orders candidates, but the scan keeps the
	// tie-break policy in one place and holds for any ShowCatalog.
	var next *model.Show
	for i := range candidates {
		c := &candidates[i]
		if !c.StartTime.After(show.EndTime) {
			continue
		}
		if next == nil ||
			c.StartTime.Before(next.StartTime) ||
			(c.StartTime.Equal(next.StartTime) && c.ID < next.ID) {
			next = c
		}
	}
	if next == nil {
		return nil, nil
	}
	out := *next
	return &out, nil
}
