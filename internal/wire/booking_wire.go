package wire

import (
	"movie-booking/internal/adaptor"
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All booking routes require authentication
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/bookings - booking history for the current user
		r.Get("/", bookingHandler.ListBookings)

		// POST /api/bookings - create a new booking
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings/{id} - single booking, owner only
		r.Get("/{id}", bookingHandler.GetBooking)

		// PUT /api/bookings/{id}/cancel - cancel own booking
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)
	})
}
