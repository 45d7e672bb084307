// Package handler exposes the HTTP surface of the booking service.
// This file defines the booking endpoints.  Handlers only parse and
// validate input and translate service outcomes into responses; all
// seat state transitions happen in the service and repository layers.
// Response bodies are plain text and deliberately stable: clients of
// the original theater API match on these exact strings.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-seat-booking/internal/queue"
	"github.com/iliyamo/theater-seat-booking/internal/service"
)

// BookingHandler serves POST /book and POST /cancel.
type BookingHandler struct {
	Reservations *service.ReservationService

	// publish emits seat events; swapped out in tests.
	publish func(ctx context.Context, event queue.SeatEvent) error
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(reservations *service.ReservationService) *BookingHandler {
	if reservations == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Reservations: reservations, publish: queue.PublishSeatEvent}
}

// seatKeyRequest is the body of both booking endpoints.  JSON and form
// encodings are accepted, like the original API.
type seatKeyRequest struct {
	ShowID     uint64 `json:"show_id" form:"show_id"`
	ScreenID   uint64 `json:"screen_id" form:"screen_id"`
	SeatNumber uint32 `json:"seat_number" form:"seat_number"`
}

// bindSeatKey parses and validates the request body.  Malformed or
// missing identifiers are a validation error, reported before any
// lookup happens.
func bindSeatKey(c echo.Context) (seatKeyRequest, bool) {
	var body seatKeyRequest
	if err := c.Bind(&body); err != nil {
		return body, false
	}
	if body.ShowID == 0 || body.ScreenID == 0 || body.SeatNumber == 0 {
		return body, false
	}
	return body, true
}

// Book handles POST /book.  Exactly one of N concurrent requests for
// the same seat key gets "Seat booked successfully"; the rest see
// "Seat is already booked".
func (h *BookingHandler) Book(c echo.Context) error {
	body, ok := bindSeatKey(c)
	if !ok {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}
	outcome, err := h.Reservations.RequestBooking(c.Request().Context(), body.ShowID, body.ScreenID, body.SeatNumber)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Internal server error")
	}
	switch outcome {
	case service.Booked:
		h.publishEvent(queue.ActionBooked, body)
		return c.String(http.StatusOK, "Seat booked successfully")
	case service.AlreadyBooked:
		return c.String(http.StatusBadRequest, "Seat is already booked")
	default:
		return c.String(http.StatusBadRequest, "Seat not found")
	}
}

// Cancel handles POST /cancel, the symmetric transition back to free.
func (h *BookingHandler) Cancel(c echo.Context) error {
	body, ok := bindSeatKey(c)
	if !ok {
		return c.String(http.StatusBadRequest, "Invalid request body")
	}
	outcome, err := h.Reservations.RequestCancellation(c.Request().Context(), body.ShowID, body.ScreenID, body.SeatNumber)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Internal server error")
	}
	switch outcome {
	case service.Cancelled:
		h.publishEvent(queue.ActionCancelled, body)
		return c.String(http.StatusOK, "Seat cancelled successfully")
	case service.NotBooked:
		return c.String(http.StatusBadRequest, "Seat is not booked")
	default:
		return c.String(http.StatusBadRequest, "Seat not found")
	}
}

// publishEvent emits a seat event to the broker.  Failures are logged
// inside the publisher and ignored here: a completed transition must
// not be reported as failed because the broker is unreachable.
func (h *BookingHandler) publishEvent(action string, body seatKeyRequest) {
	_ = h.publish(context.Background(), queue.SeatEvent{
		Action:     action,
		ShowID:     body.ShowID,
		ScreenID:   body.ScreenID,
		SeatNumber: body.SeatNumber,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}
