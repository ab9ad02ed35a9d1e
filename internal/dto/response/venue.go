package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type VenueResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	PricePerDay int64     `json:"price_per_day"`
	Category    string    `json:"category"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func VenueToResponse(venue *entity.Venue) VenueResponse {
	return VenueResponse{
		ID:          venue.ID.String(),
		Name:        venue.Name,
		Location:    venue.Location,
		Capacity:    venue.Capacity,
		PricePerDay: venue.PricePerDay,
		Category:    venue.Category,
		ImageURL:    venue.ImageURL,
		Description: venue.Description,
		CreatedAt:   venue.CreatedAt,
	}
}
