package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/middleware"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/booking - Submit a booking request (authenticated users only)
		r.Post("/api/booking", bookingHandler.CreateBooking)

		// GET /api/user/bookings - View own booking history
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// GET /api/user/bookings/{id} - View own booking details
		r.Get("/api/user/bookings/{id}", bookingHandler.GetUserBookingByID)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/bookings - List all booking requests (admin)
		r.Get("/", bookingHandler.GetAllBookings)

		// GET /api/admin/bookings/{id} - View any booking details (admin)
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PUT /api/admin/bookings/{id}/status - Approve or reject (admin)
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
