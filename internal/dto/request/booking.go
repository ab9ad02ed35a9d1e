package request

type CreateBookingRequest struct {
	VenueID      string  `json:"venue_id" validate:"required,uuid4"`
	EventDate    string  `json:"event_date" validate:"required"`
	EndDate      *string `json:"end_date,omitempty"`
	GuestCount   int     `json:"guest_count" validate:"required,min=1"`
	ContactEmail string  `json:"contact_email" validate:"required,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,min=10,max=15"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected"`
}
