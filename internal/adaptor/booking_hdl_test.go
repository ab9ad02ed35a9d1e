package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBookingService returns a canned result from CreateBooking and
// fails the rest.
type stubBookingService struct {
	resp *response.BookingResponse
	err  error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	return s.resp, s.err
}

func (s *stubBookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubBookingService) GetUserBookingByID(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubBookingService) GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubBookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func (s *stubBookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	return nil, fmt.Errorf("not implemented")
}

func bookingBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(request.CreateBookingRequest{
		VenueID:      uuid.New().String(),
		EventDate:    "2025-06-01",
		GuestCount:   150,
		ContactEmail: "client@example.com",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func performCreateBooking(t *testing.T, service usecase.BookingService, body *bytes.Buffer, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewBookingHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/booking", body)
	if authed {
		ctx := utils.SetUserContext(req.Context(), uuid.New(), "client")
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, req)
	return rec
}

func TestCreateBookingHandlerSuccess(t *testing.T) {
	service := &stubBookingService{
		resp: &response.BookingResponse{
			ID:        uuid.New().String(),
			EventDate: "2025-06-01",
			TotalCost: 45000,
			Status:    "Pending",
		},
	}

	rec := performCreateBooking(t, service, bookingBody(t), true)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Status)
	assert.Equal(t, "Booking request submitted", envelope.Message)
	assert.NotNil(t, envelope.Data)
}

func TestCreateBookingHandlerRequiresAuth(t *testing.T) {
	rec := performCreateBooking(t, &stubBookingService{}, bookingBody(t), false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBookingHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"venue not found", fmt.Errorf("%w: abc", usecase.ErrVenueNotFound), http.StatusNotFound},
		{"capacity exceeded", fmt.Errorf("%w: guest count (300) exceeds venue capacity (200)", usecase.ErrCapacityExceeded), http.StatusBadRequest},
		{"date unavailable", fmt.Errorf("%w (2025-06-01)", usecase.ErrDateUnavailable), http.StatusBadRequest},
		{"invalid date", fmt.Errorf("%w: bad format", usecase.ErrInvalidDate), http.StatusBadRequest},
		{"internal", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performCreateBooking(t, &stubBookingService{err: tt.err}, bookingBody(t), true)
			assert.Equal(t, tt.want, rec.Code)

			var envelope utils.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.False(t, envelope.Status)
		})
	}
}

func TestCreateBookingHandlerValidation(t *testing.T) {
	// Missing required fields never reach the service
	body, err := json.Marshal(request.CreateBookingRequest{VenueID: uuid.New().String()})
	require.NoError(t, err)

	rec := performCreateBooking(t, &stubBookingService{}, bytes.NewBuffer(body), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingHandlerBadJSON(t *testing.T) {
	rec := performCreateBooking(t, &stubBookingService{}, bytes.NewBufferString("{not json"), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
