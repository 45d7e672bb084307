package handler

// Shared test doubles for the handler tests.  The fakes honor the same
// contracts as the MySQL repositories: conditional book/cancel
// transitions and seat listings ordered by seat number.

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/iliyamo/theater-seat-booking/internal/model"
	"github.com/iliyamo/theater-seat-booking/internal/repository"
	"github.com/iliyamo/theater-seat-booking/internal/service"
)

type seatKey struct {
	showID     uint64
	screenID   uint64
	seatNumber uint32
}

type stubInventory struct {
	mu    sync.Mutex
	seats map[seatKey]*model.Seat
}

func newStubInventory() *stubInventory {
	return &stubInventory{seats: make(map[seatKey]*model.Seat)}
}

func (f *stubInventory) add(showID, screenID uint64, numbers ...uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range numbers {
		id := uint64(len(f.seats) + 1)
		f.seats[seatKey{showID, screenID, n}] = &model.Seat{
			ID: id, ShowID: showID, ScreenID: screenID, SeatNumber: n,
		}
	}
}

func (f *stubInventory) Find(_ context.Context, showID, screenID uint64, seatNumber uint32) (*model.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.seats[seatKey{showID, screenID, seatNumber}]
	if !ok {
		return nil, repository.ErrSeatNotFound
	}
	out := *s
	return &out, nil
}

func (f *stubInventory) List(_ context.Context, showID, screenID uint64, freeOnly bool) ([]model.Seat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Seat
	for k, s := range f.seats {
		if k.showID != showID || k.screenID != screenID {
			continue
		}
		if freeOnly && s.IsBooked {
			continue
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SeatNumber < result[j].SeatNumber })
	return result, nil
}

func (f *stubInventory) Book(_ context.Context, showID, screenID uint64, seatNumber uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.seats[seatKey{showID, screenID, seatNumber}]
	if !ok {
		return repository.ErrSeatNotFound
	}
	if s.IsBooked {
		return repository.ErrSeatAlreadyBooked
	}
	s.IsBooked = true
	return nil
}

func (f *stubInventory) Cancel(_ context.Context, showID, screenID uint64, seatNumber uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.seats[seatKey{showID, screenID, seatNumber}]
	if !ok {
		return repository.ErrSeatNotFound
	}
	if !s.IsBooked {
		return repository.ErrSeatNotBooked
	}
	s.IsBooked = false
	return nil
}

type stubCatalog struct {
	shows []model.Show
}

func (f *stubCatalog) GetByID(_ context.Context, id uint64) (*model.Show, error) {
	for _, s := range f.shows {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, repository.ErrShowNotFound
}

func (f *stubCatalog) ShowsAfter(_ context.Context, after time.Time) ([]model.Show, error) {
	var result []model.Show
	for _, s := range f.shows {
		if s.StartTime.After(after) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *stubCatalog) List(_ context.Context) ([]model.Show, error) {
	out := make([]model.Show, len(f.shows))
	copy(out, f.shows)
	return out, nil
}

type stubScreens struct {
	screens []model.Screen
}

func (f *stubScreens) List(_ context.Context) ([]model.Screen, error) {
	out := make([]model.Screen, len(f.screens))
	copy(out, f.screens)
	return out, nil
}

func demoCatalog() *stubCatalog {
	day := time.Date(2023, time.March, 6, 0, 0, 0, 0, time.UTC)
	return &stubCatalog{shows: []model.Show{
		{ID: 1, Name: "Show 1", StartTime: day.Add(10 * time.Hour), EndTime: day.Add(12 * time.Hour)},
		{ID: 2, Name: "Show 2", StartTime: day.Add(13 * time.Hour), EndTime: day.Add(15 * time.Hour)},
		{ID: 3, Name: "Show 3", StartTime: day.Add(16 * time.Hour), EndTime: day.Add(18 * time.Hour)},
	}}
}

func demoService(inv *stubInventory, cat *stubCatalog) *service.ReservationService {
	return service.NewReservationService(inv, service.NewAvailabilityEngine(inv, cat))
}
