package usecase

import (
	"context"
	"testing"

	"venue-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func venueRequest() *request.VenueRequest {
	return &request.VenueRequest{
		Name:        "The Aviary Rooftop",
		Location:    "Westlands, Nairobi",
		Capacity:    150,
		PricePerDay: 85000,
		Category:    "Corporate Events",
	}
}

func TestVenueCRUD(t *testing.T) {
	repo, _, _ := newTestRepository()
	service := NewVenueService(repo, nil, testConfig(), zap.NewNop())

	created, err := service.CreateVenue(context.Background(), venueRequest())
	require.NoError(t, err)
	assert.Equal(t, "The Aviary Rooftop", created.Name)

	got, err := service.GetVenueByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	newCapacity := 180
	updated, err := service.UpdateVenue(context.Background(), created.ID, &request.VenueUpdateRequest{
		Capacity: &newCapacity,
	})
	require.NoError(t, err)
	assert.Equal(t, 180, updated.Capacity)
	assert.Equal(t, created.Name, updated.Name) // untouched fields survive

	require.NoError(t, service.DeleteVenue(context.Background(), created.ID))

	_, err = service.GetVenueByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestGetVenueByIDNotFound(t *testing.T) {
	repo, _, _ := newTestRepository()
	service := NewVenueService(repo, nil, testConfig(), zap.NewNop())

	_, err := service.GetVenueByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrVenueNotFound)

	// Malformed IDs read as not found, not as server errors
	_, err = service.GetVenueByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestGetVenuesCategoryFilter(t *testing.T) {
	repo, _, _ := newTestRepository()
	service := NewVenueService(repo, nil, testConfig(), zap.NewNop())

	_, err := service.CreateVenue(context.Background(), venueRequest())
	require.NoError(t, err)

	garden := venueRequest()
	garden.Name = "Karen Villa Gardens"
	garden.Category = "Garden Parties"
	_, err = service.CreateVenue(context.Background(), garden)
	require.NoError(t, err)

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}

	all, err := service.GetVenues(context.Background(), page, nil)
	require.NoError(t, err)
	assert.Len(t, all.Data, 2)

	category := "Garden Parties"
	filtered, err := service.GetVenues(context.Background(), page, &category)
	require.NoError(t, err)
	require.Len(t, filtered.Data, 1)
	assert.Equal(t, "Karen Villa Gardens", filtered.Data[0].Name)
}

func TestSaveAndUnsaveVenue(t *testing.T) {
	repo, _, _ := newTestRepository()
	service := NewVenueService(repo, nil, testConfig(), zap.NewNop())

	created, err := service.CreateVenue(context.Background(), venueRequest())
	require.NoError(t, err)

	userID := uuid.New().String()
	require.NoError(t, service.SaveVenue(context.Background(), userID, created.ID))

	// Saving twice is a conflict
	err = service.SaveVenue(context.Background(), userID, created.ID)
	assert.ErrorIs(t, err, ErrAlreadySaved)

	saved, err := service.GetSavedVenues(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, created.ID, saved[0].ID)

	require.NoError(t, service.UnsaveVenue(context.Background(), userID, created.ID))

	saved, err = service.GetSavedVenues(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestSaveVenueMissingVenue(t *testing.T) {
	repo, _, _ := newTestRepository()
	service := NewVenueService(repo, nil, testConfig(), zap.NewNop())

	err := service.SaveVenue(context.Background(), uuid.New().String(), uuid.New().String())
	assert.ErrorIs(t, err, ErrVenueNotFound)
}
