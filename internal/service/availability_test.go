package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theater-seat-booking/internal/model"
)

func TestAvailableSeats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	inv := newFakeInventory()
	inv.add(1, 1, 2, 4, 1, 3)
	engine := NewAvailabilityEngine(inv, threeShows())

	require.NoError(t, inv.Book(ctx, 1, 1, 2))

	seats, err := engine.AvailableSeats(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, seats, 3)
	assert.Equal(t, []uint32{1, 3, 4}, []uint32{seats[0].SeatNumber, seats[1].SeatNumber, seats[2].SeatNumber})
}

func TestNextShowAfter(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	day := time.Date(2023, time.March, 6, 0, 0, 0, 0, time.UTC)
	inv := newFakeInventory()

	t.Run("picks the temporally nearest show", func(t *testing.T) {
		engine := NewAvailabilityEngine(inv, threeShows())
		next, err := engine.NextShowAfter(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, uint64(2), next.ID)
	})

	t.Run("ties on start time break by smallest id", func(t *testing.T) {
		// Candidates arrive unsorted and two of them share a start time.
		cat := &fakeCatalog{shows: []model.Show{
			{ID: 1, Name: "Matinee", StartTime: day.Add(10 * time.Hour), EndTime: day.Add(12 * time.Hour)},
			{ID: 7, Name: "Evening B", StartTime: day.Add(13 * time.Hour), EndTime: day.Add(15 * time.Hour)},
			{ID: 5, Name: "Evening A", StartTime: day.Add(13 * time.Hour), EndTime: day.Add(15 * time.Hour)},
			{ID: 9, Name: "Late", StartTime: day.Add(16 * time.Hour), EndTime: day.Add(18 * time.Hour)},
		}}
		engine := NewAvailabilityEngine(inv, cat)
		next, err := engine.NextShowAfter(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, uint64(5), next.ID)
		assert.Equal(t, "Evening A", next.Name)
	})

	t.Run("start exactly at end time is not after", func(t *testing.T) {
		cat := &fakeCatalog{shows: []model.Show{
			{ID: 1, Name: "First", StartTime: day.Add(10 * time.Hour), EndTime: day.Add(12 * time.Hour)},
			{ID: 2, Name: "Back to back", StartTime: day.Add(12 * time.Hour), EndTime: day.Add(14 * time.Hour)},
		}}
		engine := NewAvailabilityEngine(inv, cat)
		next, err := engine.NextShowAfter(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("last show has no successor", func(t *testing.T) {
		engine := NewAvailabilityEngine(inv, threeShows())
		next, err := engine.NextShowAfter(ctx, 3)
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("unknown show yields nil", func(t *testing.T) {
		engine := NewAvailabilityEngine(inv, threeShows())
		next, err := engine.NextShowAfter(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, next)
	})
}
