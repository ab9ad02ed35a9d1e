package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/middleware"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVenue(
	r chi.Router,
	venueHandler *adaptor.VenueHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/venues - Browse the venue directory (supports ?category=)
	r.Get("/api/venues", venueHandler.GetVenues)

	// GET /api/venues/{id} - Venue details
	r.Get("/api/venues/{id}", venueHandler.GetVenueByID)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/venues/{id}/save - Add venue to saved list
		r.Post("/api/venues/{id}/save", venueHandler.SaveVenue)

		// DELETE /api/venues/{id}/save - Remove venue from saved list
		r.Delete("/api/venues/{id}/save", venueHandler.UnsaveVenue)

		// GET /api/user/saved-venues - List saved venues
		r.Get("/api/user/saved-venues", venueHandler.GetSavedVenues)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/venues", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// POST /api/admin/venues - Create a venue (admin)
		r.Post("/", venueHandler.CreateVenue)

		// PUT /api/admin/venues/{id} - Update a venue (admin)
		r.Put("/{id}", venueHandler.UpdateVenue)

		// DELETE /api/admin/venues/{id} - Remove a venue (admin)
		r.Delete("/{id}", venueHandler.DeleteVenue)
	})
}
