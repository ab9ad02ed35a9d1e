package adaptor

import (
	"venue-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Venue   *VenueHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Venue:   NewVenueHandler(service.Venue, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
