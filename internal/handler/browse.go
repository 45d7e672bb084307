// This file defines handlers for the read-only browse API: show,
// screen and seat listings plus the availability query with its
// next-show fallback.  Internal models are not serialized directly;
// each endpoint maps them onto response structs with explicit JSON tags.
package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-seat-booking/internal/model"
	"github.com/iliyamo/theater-seat-booking/internal/repository"
	"github.com/iliyamo/theater-seat-booking/internal/service"
)

// ScreenLister is the slice of the screen repository the browse
// handler needs.
type ScreenLister interface {
	List(ctx context.Context) ([]model.Screen, error)
}

// ShowLister is the slice of the show repository the browse handler
// needs.
type ShowLister interface {
	List(ctx context.Context) ([]model.Show, error)
}

// BrowseHandler aggregates the catalog stores and the reservation
// service needed for unauthenticated browsing.
type BrowseHandler struct {
	Screens      ScreenLister                // screen reference data
	Shows        ShowLister                  // show reference data
	Reservations *service.ReservationService // seat listings and availability queries
}

// NewBrowseHandler constructs a BrowseHandler.
func NewBrowseHandler(screens ScreenLister, shows ShowLister, reservations *service.ReservationService) *BrowseHandler {
	if screens == nil || shows == nil || reservations == nil {
		panic("nil dependency passed to NewBrowseHandler")
	}
	return &BrowseHandler{Screens: screens, Shows: shows, Reservations: reservations}
}

// ScreenResponse represents a screen in list responses.
type ScreenResponse struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Capacity uint32 `json:"capacity"`
}

// ShowResponse represents a show in list responses.
type ShowResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// SeatResponse represents a seat in list responses.
type SeatResponse struct {
	ID         uint64 `json:"id"`
	ShowID     uint64 `json:"show_id"`
	ScreenID   uint64 `json:"screen_id"`
	SeatNumber uint32 `json:"seat_number"`
	IsBooked   bool   `json:"is_booked"`
}

func toSeatResponses(seats []model.Seat) []SeatResponse {
	out := make([]SeatResponse, 0, len(seats))
	for _, s := range seats {
		out = append(out, SeatResponse{
			ID:         s.ID,
			ShowID:     s.ShowID,
			ScreenID:   s.ScreenID,
			SeatNumber: s.SeatNumber,
			IsBooked:   s.IsBooked,
		})
	}
	return out
}

// GetShows handles GET /shows.  It returns every show ordered by start time.
func (h *BrowseHandler) GetShows(c echo.Context) error {
	shows, err := h.Shows.List(c.Request().Context())
	if err != nil {
		return c.String(http.StatusInternalServerError, "Internal server error")
	}
	out := make([]ShowResponse, 0, len(shows))
	for _, s := range shows {
		out = append(out, ShowResponse{ID: s.ID, Name: s.Name, StartTime: s.StartTime, EndTime: s.EndTime})
	}
	return c.JSON(http.StatusOK, out)
}

// GetScreens handles GET /screens.
func (h *BrowseHandler) GetScreens(c echo.Context) error {
	screens, err := h.Screens.List(c.Request().Context())
	if err != nil {
		return c.String(http.StatusInternalServerError, "Internal server error")
	}
	out := make([]ScreenResponse, 0, len(screens))
	for _, s := range screens {
		out = append(out, ScreenResponse{ID: s.ID, Name: s.Name, Capacity: s.Capacity})
	}
	return c.JSON(http.StatusOK, out)
}

// seatQueryParams parses the show_id and screen_id query parameters
// shared by the seat endpoints.
func seatQueryParams(c echo.Context) (showID, screenID uint64, ok bool) {
	showID, err := strconv.ParseUint(c.QueryParam("show_id"), 10, 64)
	if err != nil || showID == 0 {
		return 0, 0, false
	}
	screenID, err = strconv.ParseUint(c.QueryParam("screen_id"), 10, 64)
	if err != nil || screenID == 0 {
		return 0, 0, false
	}
	return showID, screenID, true
}

// GetSeats handles GET /seats?show_id=&screen_id=.  It returns the full
// seat grid of the pair in seat-number order.  With the optional
// seat_number parameter it returns that single seat instead, or 404
// when the key does not exist (including never-seeded pairs).
func (h *BrowseHandler) GetSeats(c echo.Context) error {
	showID, screenID, ok := seatQueryParams(c)
	if !ok {
		return c.String(http.StatusBadRequest, "Invalid show_id or screen_id")
	}
	ctx := c.Request().Context()
	if raw := c.QueryParam("seat_number"); raw != "" {
		num, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || num == 0 {
			return c.String(http.StatusBadRequest, "Invalid seat_number")
		}
		seat, err := h.Reservations.FindSeat(ctx, showID, screenID, uint32(num))
		if err != nil {
			if err == repository.ErrSeatNotFound {
				return c.String(http.StatusNotFound, "Seat not found")
			}
			return c.String(http.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(http.StatusOK, toSeatResponses([]model.Seat{*seat})[0])
	}
	seats, err := h.Reservations.ListSeats(ctx, showID, screenID, false)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, toSeatResponses(seats))
}

// GetAvailableSeats handles GET /available_seats?show_id=&screen_id=.
// With free seats remaining it returns them as JSON.  When the show has
// sold out on that screen it answers 404 with a message naming the next
// show by start time, or stating that nothing is scheduled later.
func (h *BrowseHandler) GetAvailableSeats(c echo.Context) error {
	showID, screenID, ok := seatQueryParams(c)
	if !ok {
		return c.String(http.StatusBadRequest, "Invalid show_id or screen_id")
	}
	avail, err := h.Reservations.QueryAvailability(c.Request().Context(), showID, screenID)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Internal server error")
	}
	if len(avail.Seats) > 0 {
		return c.JSON(http.StatusOK, toSeatResponses(avail.Seats))
	}
	if avail.NextShow != nil {
		msg := fmt.Sprintf("No available seats. Next available show is %s at %s",
			avail.NextShow.Name, avail.NextShow.StartTime.UTC().Format(time.RFC3339))
		return c.String(http.StatusNotFound, msg)
	}
	return c.String(http.StatusNotFound, "No available seats. No shows scheduled after this time")
}
