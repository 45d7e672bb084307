// Package repository contains data access logic for the show catalog.
// A Show represents a scheduled screening window; shows run on every
// screen, and the availability engine orders them by start time to find
// the temporally nearest alternative when a show sells out.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel comparisons
	"time"         // time for schedule comparisons

	"github.com/iliyamo/theater-seat-booking/internal/model"
)

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show and assigns the generated ID back to the
// struct.  The schedule invariant start < end is enforced here rather
// than in the DB so callers get a typed error instead of a driver error.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	if !s.StartTime.Before(s.EndTime) {
		return ErrInvalidShowTimes
	}
	const q = `INSERT INTO shows (name, start_time, end_time) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.StartTime.UTC(), s.EndTime.UTC())
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// CreateBulk inserts multiple shows in a single statement.  Each show's
// schedule is validated before anything is written.
func (r *ShowRepo) CreateBulk(ctx context.Context, shows []model.Show) error {
	if len(shows) == 0 {
		return nil
	}
	query := `INSERT INTO shows (name, start_time, end_time) VALUES `
	args := make([]interface{}, 0, len(shows)*3)
	for i, s := range shows {
		if !s.StartTime.Before(s.EndTime) {
			return ErrInvalidShowTimes
		}
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?)"
		args = append(args, s.Name, s.StartTime.UTC(), s.EndTime.UTC())
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// GetByID retrieves a show by its ID.  It returns ErrShowNotFound if
// there is no matching row.
func (r *ShowRepo) GetByID(ctx context.Context, id uint64) (*model.Show, error) {
	const q = `SELECT id, name, start_time, end_time, created_at, updated_at FROM shows WHERE id = ?`
	var s model.Show
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List retrieves all shows ordered by start time, then id.
func (r *ShowRepo) List(ctx context.Context) ([]model.Show, error) {
	const q = `SELECT id, name, start_time, end_time, created_at, updated_at
	           FROM shows
	           ORDER BY start_time, id`
	return r.queryShows(ctx, q)
}

// ShowsAfter retrieves all shows whose start time is strictly after the
// given instant, ordered by start time then id.  The availability
// engine uses it to compute the next show once a show sells out; the
// secondary id ordering keeps the choice deterministic when shows share
// a start time.
func (r *ShowRepo) ShowsAfter(ctx context.Context, after time.Time) ([]model.Show, error) {
	const q = `SELECT id, name, start_time, end_time, created_at, updated_at
	           FROM shows
	           WHERE start_time > ?
	           ORDER BY start_time, id`
	return r.queryShows(ctx, q, after.UTC())
}

func (r *ShowRepo) queryShows(ctx context.Context, q string, args ...interface{}) ([]model.Show, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Show
	for rows.Next() {
		var s model.Show
		if err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
