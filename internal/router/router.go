package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/theater-seat-booking/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers all endpoints on the provided Echo instance.
// The optional middlewares are applied selectively: the rate limiter
// guards everything, while the response cache only wraps the read-only
// browse endpoints. Booking responses are never cached.
// Pass nil for either middleware to disable it.
func RegisterRoutes(e *echo.Echo, b *handler.BrowseHandler, k *handler.BookingHandler, rateLimit, cache echo.MiddlewareFunc) {
	if rateLimit != nil {
		e.Use(rateLimit)
	}

	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Read-only browse endpoints.  These are safe to cache briefly;
	// /available_seats intentionally stays uncached so a sold-out
	// answer is never served after a cancellation frees a seat.
	browse := e.Group("")
	if cache != nil {
		browse.Use(cache)
	}
	browse.GET("/shows", b.GetShows)
	browse.GET("/screens", b.GetScreens)
	browse.GET("/seats", b.GetSeats)

	e.GET("/available_seats", b.GetAvailableSeats)

	// Mutating booking endpoints.
	e.POST("/book", k.Book)
	e.POST("/cancel", k.Cancel)
}
