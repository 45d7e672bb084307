// Package repository: seat inventory persistence.  This file owns every
// mutation of a seat's booked flag.  Booking and cancellation are single
// conditional UPDATE statements whose WHERE clause includes the current
// is_booked value; the affected-row count tells a successful transition
// apart from a lost race.  A read-then-write sequence would let two
// concurrent bookings both observe a free seat and both succeed, which
// is exactly the bug this layer exists to prevent.
package repository

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel comparisons

	"github.com/iliyamo/theater-seat-booking/internal/model"
)

// SeatRepo provides methods to work with seats in the database.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// CreateBulk inserts multiple seats in a single statement.  The seeder
// calls it once per (show, screen) block with numbers 1..capacity.
func (r *SeatRepo) CreateBulk(ctx context.Context, seats []model.Seat) error {
	if len(seats) == 0 {
		return nil
	}
	query := `INSERT INTO seats (show_id, screen_id, seat_number, is_booked) VALUES `
	args := make([]interface{}, 0, len(seats)*4)
	for i, seat := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, seat.ShowID, seat.ScreenID, seat.SeatNumber, seat.IsBooked)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// Find retrieves the seat identified by the (show, screen, seat number)
// key.  It returns ErrSeatNotFound when no seat matches all three parts,
// which also covers show/screen combinations that were never seeded.
func (r *SeatRepo) Find(ctx context.Context, showID, screenID uint64, seatNumber uint32) (*model.Seat, error) {
	const q = `SELECT id, show_id, screen_id, seat_number, is_booked, created_at, updated_at
	           FROM seats
	           WHERE show_id = ? AND screen_id = ? AND seat_number = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, showID, screenID, seatNumber).
		Scan(&s.ID, &s.ShowID, &s.ScreenID, &s.SeatNumber, &s.IsBooked, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List retrieves the seats of a (show, screen) pair ordered by seat
// number ascending.  When freeOnly is set, booked seats are filtered
// out.  Each call is a fresh query, not a live cursor.
func (r *SeatRepo) List(ctx context.Context, showID, screenID uint64, freeOnly bool) ([]model.Seat, error) {
	q := `SELECT id, show_id, screen_id, seat_number, is_booked, created_at, updated_at
	      FROM seats
	      WHERE show_id = ? AND screen_id = ?`
	if freeOnly {
		q += ` AND is_booked = 0`
	}
	q += ` ORDER BY seat_number`
	rows, err := r.db.QueryContext(ctx, q, showID, screenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.ShowID, &s.ScreenID, &s.SeatNumber, &s.IsBooked, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Book transitions the seat from free to booked.  The UPDATE only
// matches when is_booked is still 0, so of N concurrent calls against
// the same seat key exactly one affects a row; the others fall through
// to the lookup below and report ErrSeatAlreadyBooked (or
// ErrSeatNotFound when the key never existed).  No transaction is
// needed: the single statement is the whole critical section, scoped to
// one seat key, so unrelated bookings never serialize against each other.
func (r *SeatRepo) Book(ctx context.Context, showID, screenID uint64, seatNumber uint32) error {
	const q = `UPDATE seats
	           SET is_booked = 1, updated_at = CURRENT_TIMESTAMP
	           WHERE show_id = ? AND screen_id = ? AND seat_number = ? AND is_booked = 0`
	res, err := r.db.ExecContext(ctx, q, showID, screenID, seatNumber)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	// Zero rows: either the seat does not exist or it was already booked.
	if _, err := r.Find(ctx, showID, screenID, seatNumber); err != nil {
		return err
	}
	return ErrSeatAlreadyBooked
}

// Cancel transitions the seat from booked back to free.  It mirrors
// Book: the conditional UPDATE matches only booked seats, and a zero
// row count is resolved into ErrSeatNotFound or ErrSeatNotBooked.
// Cancelling an already free seat never mutates state, so repeated
// cancellations keep returning ErrSeatNotBooked.
func (r *SeatRepo) Cancel(ctx context.Context, showID, screenID uint64, seatNumber uint32) error {
	const q = `UPDATE seats
	           SET is_booked = 0, updated_at = CURRENT_TIMESTAMP
	           WHERE show_id = ? AND screen_id = ? AND seat_number = ? AND is_booked = 1`
	res, err := r.db.ExecContext(ctx, q, showID, screenID, seatNumber)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	if _, err := r.Find(ctx, showID, screenID, seatNumber); err != nil {
		return err
	}
	return ErrSeatNotBooked
}
