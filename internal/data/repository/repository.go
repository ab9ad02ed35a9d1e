package repository

import (
	"venue-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Venue      VenueRepository
	Booking    BookingRepository
	SavedVenue SavedVenueRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Venue:      NewVenueRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		SavedVenue: NewSavedVenueRepository(db, log),
	}
}
