package usecase

import (
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Service bundles every usecase behind one value for wiring.
type Service struct {
	Auth    AuthService
	User    UserService
	Venue   VenueService
	Booking BookingService
}

func NewService(repo *repository.Repository, cache *redis.Client, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo, log),
		Venue:   NewVenueService(repo, cache, config, log),
		Booking: NewBookingService(repo, config, log),
	}
}
