package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/iliyamo/theater-seat-booking/internal/model"
	"github.com/iliyamo/theater-seat-booking/internal/repository"
)

// SeedDemoCatalog populates the demo catalog: three screens, three shows
// and one seat row per (show, screen, 1..capacity).  The dependency
// order screens -> shows -> seats must hold because seats reference both
// parents.  Seeding is skipped when any screen already exists so a
// restart never duplicates the catalog.
func SeedDemoCatalog(ctx context.Context, db *sql.DB) error {
	screenRepo := repository.NewScreenRepo(db)
	showRepo := repository.NewShowRepo(db)
	seatRepo := repository.NewSeatRepo(db)

	n, err := screenRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("seed: catalog already populated, skipping")
		return nil
	}

	screens := []model.Screen{
		{Name: "Screen 1", Capacity: 45},
		{Name: "Screen 2", Capacity: 60},
		{Name: "Screen 3", Capacity: 75},
	}
	for i := range screens {
		if err := screenRepo.Create(ctx, &screens[i]); err != nil {
			return err
		}
	}

	day := time.Date(2023, time.March, 6, 0, 0, 0, 0, time.UTC)
	shows := []model.Show{
		{Name: "Show 1", StartTime: day.Add(10 * time.Hour), EndTime: day.Add(12 * time.Hour)},
		{Name: "Show 2", StartTime: day.Add(13 * time.Hour), EndTime: day.Add(15 * time.Hour)},
		{Name: "Show 3", StartTime: day.Add(16 * time.Hour), EndTime: day.Add(18 * time.Hour)},
	}
	for i := range shows {
		if err := showRepo.Create(ctx, &shows[i]); err != nil {
			return err
		}
	}

	// One bulk insert per (show, screen) block keeps statements bounded.
	total := 0
	for _, show := range shows {
		for _, screen := range screens {
			seats := make([]model.Seat, 0, screen.Capacity)
			for num := uint32(1); num <= screen.Capacity; num++ {
				seats = append(seats, model.Seat{
					ShowID:     show.ID,
					ScreenID:   screen.ID,
					SeatNumber: num,
				})
			}
			if err := seatRepo.CreateBulk(ctx, seats); err != nil {
				return err
			}
			total += len(seats)
		}
	}
	log.Printf("seed: created %d screens, %d shows, %d seats", len(screens), len(shows), total)
	return nil
}
