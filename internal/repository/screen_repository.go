package repository // repository defines data access for screens

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel comparisons

	"github.com/iliyamo/theater-seat-booking/internal/model"
)

// ScreenRepo provides methods to work with screens in the database.
// Screens are read-mostly reference data: created at setup, never
// mutated afterwards.
type ScreenRepo struct {
	db *sql.DB
}

// NewScreenRepo constructs a ScreenRepo with the given DB handle.
func NewScreenRepo(db *sql.DB) *ScreenRepo {
	return &ScreenRepo{db: db}
}

// Create inserts a single screen. On success the screen's ID is populated.
func (r *ScreenRepo) Create(ctx context.Context, s *model.Screen) error {
	const q = `INSERT INTO screens (name, capacity) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Capacity)
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

// CreateBulk inserts multiple screens in a single statement.  It is used
// by the demo seeder; IDs are not populated on the passed structs.
func (r *ScreenRepo) CreateBulk(ctx context.Context, screens []model.Screen) error {
	if len(screens) == 0 {
		return nil
	}
	query := `INSERT INTO screens (name, capacity) VALUES `
	args := make([]interface{}, 0, len(screens)*2)
	for i, s := range screens {
		if i > 0 {
			query += ","
		}
		query += "(?, ?)"
		args = append(args, s.Name, s.Capacity)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// GetByID retrieves a screen by its id.  It returns ErrScreenNotFound
// when no matching row exists.
func (r *ScreenRepo) GetByID(ctx context.Context, id uint64) (*model.Screen, error) {
	const q = `SELECT id, name, capacity, created_at, updated_at FROM screens WHERE id = ?`
	var s model.Screen
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.Name, &s.Capacity, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScreenNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List retrieves all screens ordered by id.
func (r *ScreenRepo) List(ctx context.Context) ([]model.Screen, error) {
	const q = `SELECT id, name, capacity, created_at, updated_at FROM screens ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Screen
	for rows.Next() {
		var s model.Screen
		if err := rows.Scan(&s.ID, &s.Name, &s.Capacity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Count returns the number of screens.  The seeder uses it to decide
// whether the catalog is empty.
func (r *ScreenRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM screens`).Scan(&n)
	return n, err
}
