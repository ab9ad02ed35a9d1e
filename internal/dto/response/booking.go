package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type BookingResponse struct {
	ID           string               `json:"id"`
	UserID       string               `json:"user_id"`
	VenueID      string               `json:"venue_id"`
	VenueName    string               `json:"venue_name,omitempty"`
	EventDate    string               `json:"event_date"`
	EndDate      *string              `json:"end_date,omitempty"`
	GuestCount   int                  `json:"guest_count"`
	TotalCost    int64                `json:"total_cost"`
	Status       entity.BookingStatus `json:"status"`
	ContactEmail string               `json:"contact_email"`
	ContactPhone *string              `json:"contact_phone,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// BookingToResponse converts a booking entity, venueName may be empty when
// the venue lookup was skipped or failed.
func BookingToResponse(booking *entity.Booking, venueName string) BookingResponse {
	var endDate *string
	if booking.EndDate != nil {
		s := booking.EndDate.Format("2006-01-02")
		endDate = &s
	}

	return BookingResponse{
		ID:           booking.ID.String(),
		UserID:       booking.UserID.String(),
		VenueID:      booking.VenueID.String(),
		VenueName:    venueName,
		EventDate:    booking.EventDate.Format("2006-01-02"),
		EndDate:      endDate,
		GuestCount:   booking.GuestCount,
		TotalCost:    booking.TotalCost,
		Status:       booking.Status,
		ContactEmail: booking.ContactEmail,
		ContactPhone: booking.ContactPhone,
		CreatedAt:    booking.CreatedAt,
	}
}
