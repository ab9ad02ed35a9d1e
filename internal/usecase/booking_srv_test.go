package usecase

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

func seedVenue(venues *fakeVenueRepo, capacity int, pricePerDay int64) *entity.Venue {
	venue := &entity.Venue{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Karen Villa Gardens",
		Location:    "Karen, Nairobi",
		Capacity:    capacity,
		PricePerDay: pricePerDay,
		Category:    "Garden Parties",
	}
	venues.venues[venue.ID] = venue
	return venue
}

func seedApproved(bookings *fakeBookingRepo, venueID uuid.UUID, eventDate string, endDate *string) *entity.Booking {
	start, _ := utils.ParseEventDate(eventDate)
	var end *time.Time
	if endDate != nil {
		parsed, _ := utils.ParseEventDate(*endDate)
		end = &parsed
	}
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:       uuid.New(),
		VenueID:      venueID,
		EventDate:    start,
		EndDate:      end,
		GuestCount:   50,
		TotalCost:    45000,
		Status:       entity.BookingStatusApproved,
		ContactEmail: "other@example.com",
	}
	bookings.bookings = append(bookings.bookings, booking)
	return booking
}

func createRequest(venueID uuid.UUID) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		VenueID:      venueID.String(),
		EventDate:    "2025-06-01",
		GuestCount:   150,
		ContactEmail: "client@example.com",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	repo, venues, bookings := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	userID := uuid.New().String()
	resp, err := service.CreateBooking(context.Background(), userID, createRequest(venue.ID))
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusPending, resp.Status)
	assert.Equal(t, "2025-06-01", resp.EventDate)
	assert.Nil(t, resp.EndDate)
	assert.Equal(t, 150, resp.GuestCount)
	assert.Equal(t, int64(45000), resp.TotalCost)
	assert.Equal(t, venue.Name, resp.VenueName)
	assert.Equal(t, userID, resp.UserID)
	assert.Equal(t, "client@example.com", resp.ContactEmail)
	assert.Len(t, bookings.bookings, 1)
}

func TestCreateBookingMultiDayPricing(t *testing.T) {
	repo, venues, _ := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	req := createRequest(venue.ID)
	end := "2025-06-02"
	req.EndDate = &end

	resp, err := service.CreateBooking(context.Background(), uuid.New().String(), req)
	require.NoError(t, err)

	// 2025-06-01 through 2025-06-02 inclusive is 2 days
	assert.Equal(t, int64(90000), resp.TotalCost)
	require.NotNil(t, resp.EndDate)
	assert.Equal(t, "2025-06-02", *resp.EndDate)

	req = createRequest(venue.ID)
	end = "2025-06-03"
	req.EventDate = "2025-06-01"
	req.EndDate = &end

	resp, err = service.CreateBooking(context.Background(), uuid.New().String(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(135000), resp.TotalCost)
}

func TestCreateBookingVenueNotFound(t *testing.T) {
	repo, _, bookings := newTestRepository()
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), createRequest(uuid.New()))
	assert.ErrorIs(t, err, ErrVenueNotFound)
	assert.Empty(t, bookings.bookings)
}

func TestCreateBookingCapacityExceeded(t *testing.T) {
	repo, venues, bookings := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	req := createRequest(venue.ID)
	req.GuestCount = 250

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), req)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "guest count (250)")
	assert.Contains(t, err.Error(), "capacity (200)")
	assert.Empty(t, bookings.bookings)
}

func TestCreateBookingDateConflict(t *testing.T) {
	repo, venues, bookings := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	seedApproved(bookings, venue.ID, "2025-06-01", nil)
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), createRequest(venue.ID))
	assert.ErrorIs(t, err, ErrDateUnavailable)

	// Same start date conflicts regardless of end_date
	req := createRequest(venue.ID)
	end := "2025-06-10"
	req.EndDate = &end
	_, err = service.CreateBooking(context.Background(), uuid.New().String(), req)
	assert.ErrorIs(t, err, ErrDateUnavailable)

	assert.Len(t, bookings.bookings, 1) // only the seeded one
}

func TestCreateBookingPendingDoesNotBlock(t *testing.T) {
	repo, venues, bookings := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	pending := seedApproved(bookings, venue.ID, "2025-06-01", nil)
	pending.Status = entity.BookingStatusPending
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), createRequest(venue.ID))
	assert.NoError(t, err)
}

func TestCreateBookingLegacyConflictIgnoresOverlap(t *testing.T) {
	// The default rule only compares start dates. A request starting
	// inside an approved multi-day span is accepted.
	repo, venues, bookings := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	end := "2025-06-05"
	seedApproved(bookings, venue.ID, "2025-06-01", &end)
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	req := createRequest(venue.ID)
	req.EventDate = "2025-06-03"

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), req)
	assert.NoError(t, err)
}

func TestCreateBookingStrictConflictDetectsOverlap(t *testing.T) {
	repo, venues, bookings := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	end := "2025-06-05"
	seedApproved(bookings, venue.ID, "2025-06-01", &end)

	config := testConfig()
	config.Booking.StrictConflict = true
	service := NewBookingService(repo, config, zap.NewNop())

	req := createRequest(venue.ID)
	req.EventDate = "2025-06-03"

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), req)
	assert.ErrorIs(t, err, ErrDateUnavailable)

	// A span ending the day before the approved start is fine
	req.EventDate = "2025-05-30"
	reqEnd := "2025-05-31"
	req.EndDate = &reqEnd
	_, err = service.CreateBooking(context.Background(), uuid.New().String(), req)
	assert.NoError(t, err)
}

func TestCreateBookingInvalidDate(t *testing.T) {
	repo, venues, _ := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	req := createRequest(venue.ID)
	req.EventDate = "June 1st 2025"

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBookingEndBeforeStart(t *testing.T) {
	repo, venues, _ := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	req := createRequest(venue.ID)
	req.EventDate = "2025-06-05"
	end := "2025-06-01"
	req.EndDate = &end

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateBookingTimestampTruncated(t *testing.T) {
	repo, venues, bookings := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	seedApproved(bookings, venue.ID, "2025-06-01", nil)
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	// Same calendar day as the approved booking, just with a time component
	req := createRequest(venue.ID)
	req.EventDate = "2025-06-01T14:30:00"

	_, err := service.CreateBooking(context.Background(), uuid.New().String(), req)
	assert.ErrorIs(t, err, ErrDateUnavailable)
}

func TestGetUserBookings(t *testing.T) {
	repo, venues, _ := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	userID := uuid.New().String()
	_, err := service.CreateBooking(context.Background(), userID, createRequest(venue.ID))
	require.NoError(t, err)

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}
	resp, err := service.GetUserBookings(context.Background(), userID, page)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, venue.Name, resp.Data[0].VenueName)
	assert.Equal(t, int64(1), resp.Pagination.Total)

	// Another user sees nothing
	other, err := service.GetUserBookings(context.Background(), uuid.New().String(), page)
	require.NoError(t, err)
	assert.Empty(t, other.Data)
}

func TestGetUserBookingByIDOwnership(t *testing.T) {
	repo, venues, _ := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	userID := uuid.New().String()
	created, err := service.CreateBooking(context.Background(), userID, createRequest(venue.ID))
	require.NoError(t, err)

	// Round-trip: the stored booking reads back exactly as created
	resp, err := service.GetUserBookingByID(context.Background(), userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, created.VenueID, resp.VenueID)
	assert.Equal(t, created.EventDate, resp.EventDate)
	assert.Equal(t, created.EndDate, resp.EndDate)
	assert.Equal(t, created.GuestCount, resp.GuestCount)
	assert.Equal(t, created.TotalCost, resp.TotalCost)
	assert.Equal(t, entity.BookingStatusPending, resp.Status)

	_, err = service.GetUserBookingByID(context.Background(), uuid.New().String(), created.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateBookingStatus(t *testing.T) {
	repo, venues, _ := newTestRepository()
	venue := seedVenue(venues, 200, 45000)
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	created, err := service.CreateBooking(context.Background(), uuid.New().String(), createRequest(venue.ID))
	require.NoError(t, err)

	resp, err := service.UpdateBookingStatus(context.Background(), created.ID,
		&request.UpdateBookingStatusRequest{Status: "Approved"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusApproved, resp.Status)

	// Moderation is one-shot, approved bookings cannot flip
	_, err = service.UpdateBookingStatus(context.Background(), created.ID,
		&request.UpdateBookingStatusRequest{Status: "Rejected"})
	assert.ErrorIs(t, err, ErrNotPending)
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	repo, _, _ := newTestRepository()
	service := NewBookingService(repo, testConfig(), zap.NewNop())

	_, err := service.UpdateBookingStatus(context.Background(), uuid.New().String(),
		&request.UpdateBookingStatusRequest{Status: "Approved"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
