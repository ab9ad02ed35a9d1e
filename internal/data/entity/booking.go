package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

// Status strings are part of the wire format, clients match on them.
const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusApproved BookingStatus = "Approved"
	BookingStatusRejected BookingStatus = "Rejected"
)

type Booking struct {
	BaseNoDelete
	UserID       uuid.UUID     `db:"user_id"`
	VenueID      uuid.UUID     `db:"venue_id"`
	EventDate    time.Time     `db:"event_date"` // truncated to midnight UTC
	EndDate      *time.Time    `db:"end_date"`   // nil means single-day
	GuestCount   int           `db:"guest_count"`
	TotalCost    int64         `db:"total_cost"`
	Status       BookingStatus `db:"status"`
	ContactEmail string        `db:"contact_email"`
	ContactPhone *string       `db:"contact_phone"`
}

// SpanEnd returns the last day of the booking span
func (b *Booking) SpanEnd() time.Time {
	if b.EndDate != nil {
		return *b.EndDate
	}
	return b.EventDate
}
