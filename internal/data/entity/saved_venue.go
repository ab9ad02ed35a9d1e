package entity

import (
	"github.com/google/uuid"
)

// SavedVenue is a user bookmark. One row per (user, venue).
type SavedVenue struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	VenueID uuid.UUID `db:"venue_id"`
}
