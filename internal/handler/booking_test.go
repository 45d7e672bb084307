package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theater-seat-booking/internal/queue"
)

// newTestBookingHandler wires the handler with an in-memory event sink
// instead of the AMQP publisher.
func newTestBookingHandler(inv *stubInventory) (*BookingHandler, *[]queue.SeatEvent) {
	h := NewBookingHandler(demoService(inv, demoCatalog()))
	events := &[]queue.SeatEvent{}
	h.publish = func(_ context.Context, ev queue.SeatEvent) error {
		*events = append(*events, ev)
		return nil
	}
	return h, events
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func TestBook(t *testing.T) {
	inv := newStubInventory()
	inv.add(1, 1, 1, 2)
	h, events := newTestBookingHandler(inv)

	t.Run("books a free seat", func(t *testing.T) {
		rec := postJSON(t, h.Book, `{"show_id":1,"screen_id":1,"seat_number":1}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Seat booked successfully", rec.Body.String())

		require.Len(t, *events, 1)
		assert.Equal(t, queue.ActionBooked, (*events)[0].Action)
		assert.Equal(t, uint64(1), (*events)[0].ShowID)
	})

	t.Run("second booking conflicts", func(t *testing.T) {
		rec := postJSON(t, h.Book, `{"show_id":1,"screen_id":1,"seat_number":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Seat is already booked", rec.Body.String())
		assert.Len(t, *events, 1, "no event for a lost booking")
	})

	t.Run("unknown seat", func(t *testing.T) {
		rec := postJSON(t, h.Book, `{"show_id":1,"screen_id":1,"seat_number":99}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Seat not found", rec.Body.String())
	})

	t.Run("unseeded show and screen", func(t *testing.T) {
		rec := postJSON(t, h.Book, `{"show_id":8,"screen_id":9,"seat_number":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Seat not found", rec.Body.String())
	})

	t.Run("malformed body is a validation error", func(t *testing.T) {
		rec := postJSON(t, h.Book, `{"show_id":"abc","screen_id":1,"seat_number":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", rec.Body.String())
	})

	t.Run("missing identifiers are a validation error", func(t *testing.T) {
		rec := postJSON(t, h.Book, `{"show_id":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", rec.Body.String())
	})
}

func TestCancel(t *testing.T) {
	inv := newStubInventory()
	inv.add(1, 1, 1)
	h, _ := newTestBookingHandler(inv)

	t.Run("cancelling a free seat is a conflict", func(t *testing.T) {
		rec := postJSON(t, h.Cancel, `{"show_id":1,"screen_id":1,"seat_number":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Seat is not booked", rec.Body.String())
	})

	t.Run("cancels a booked seat", func(t *testing.T) {
		rec := postJSON(t, h.Book, `{"show_id":1,"screen_id":1,"seat_number":1}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = postJSON(t, h.Cancel, `{"show_id":1,"screen_id":1,"seat_number":1}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Seat cancelled successfully", rec.Body.String())

		// Seat is bookable again after the cancellation.
		rec = postJSON(t, h.Book, `{"show_id":1,"screen_id":1,"seat_number":1}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown seat", func(t *testing.T) {
		rec := postJSON(t, h.Cancel, `{"show_id":1,"screen_id":1,"seat_number":42}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Seat not found", rec.Body.String())
	})
}
