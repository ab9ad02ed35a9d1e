package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoints (require auth)
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetUserBookingByID(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error)

	// Admin endpoints
	GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

// CreateBooking validates a booking request, prices it, and stores it in
// Pending state. Validation order: venue exists, capacity, availability.
// Nothing is written unless every check passes.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse IDs
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID format %s: %w", req.VenueID, err)
	}

	// Parse dates. Timestamp input is truncated to its calendar date, all
	// comparisons are whole-day.
	eventDate, err := utils.ParseEventDate(req.EventDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, err)
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := utils.ParseEventDate(*req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDate, err)
		}
		if parsed.Before(eventDate) {
			return nil, fmt.Errorf("%w: end date %s is before event date %s",
				ErrInvalidDate, parsed.Format("2006-01-02"), eventDate.Format("2006-01-02"))
		}
		endDate = &parsed
	}

	// Resolve venue
	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		s.log.Error("Failed to resolve venue", zap.Error(err), zap.String("venue_id", req.VenueID))
		return nil, fmt.Errorf("resolve venue: %w", err)
	}
	if venue == nil {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, req.VenueID)
	}

	// Capacity check
	if req.GuestCount > venue.Capacity {
		return nil, fmt.Errorf("%w: guest count (%d) exceeds venue capacity (%d)",
			ErrCapacityExceeded, req.GuestCount, venue.Capacity)
	}

	// Availability check against approved bookings only. Pending requests
	// never block each other, approval is the serialized step.
	approved, err := s.repo.Booking.FindApprovedByVenueID(ctx, venueID)
	if err != nil {
		s.log.Error("Failed to check availability", zap.Error(err), zap.String("venue_id", req.VenueID))
		return nil, fmt.Errorf("check availability: %w", err)
	}

	spanEnd := eventDate
	if endDate != nil {
		spanEnd = *endDate
	}

	for _, b := range approved {
		if s.conflicts(b, eventDate, spanEnd) {
			return nil, fmt.Errorf("%w (%s)", ErrDateUnavailable, b.EventDate.Format("2006-01-02"))
		}
	}

	// Price the span: inclusive day count times the venue's daily rate
	spanDays := 1
	if endDate != nil {
		spanDays = utils.SpanDays(eventDate, *endDate)
	}
	totalCost := venue.PricePerDay * int64(spanDays)

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:       userUUID,
		VenueID:      venueID,
		EventDate:    eventDate,
		EndDate:      endDate,
		GuestCount:   req.GuestCount,
		TotalCost:    totalCost,
		Status:       entity.BookingStatusPending,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("venue_id", req.VenueID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking request submitted",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID),
		zap.String("venue_id", req.VenueID),
		zap.String("event_date", eventDate.Format("2006-01-02")),
		zap.Int("span_days", spanDays),
		zap.Int64("total_cost", totalCost),
	)

	resp := response.BookingToResponse(booking, venue.Name)
	return &resp, nil
}

// conflicts reports whether an approved booking blocks the requested span.
// The legacy rule only compares start dates for exact equality, it does not
// detect a request crossing through the middle of a multi-day approved
// booking. BOOKING_STRICT_CONFLICT switches to true interval overlap.
func (s *bookingService) conflicts(approved *entity.Booking, eventDate, spanEnd time.Time) bool {
	if s.config.Booking.StrictConflict {
		return !approved.SpanEnd().Before(eventDate) && !spanEnd.Before(approved.EventDate)
	}
	return approved.EventDate.Equal(eventDate)
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userUUID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	bookingResponses := s.buildBookingResponses(ctx, bookings)

	s.log.Info("User bookings retrieved",
		zap.String("user_id", userID),
		zap.Int("count", len(bookings)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetUserBookingByID(ctx context.Context, userID, bookingID string) (*response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Owners only, admins use the admin endpoint
	if booking.UserID != userUUID {
		return nil, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
	}

	resp := response.BookingToResponse(booking, s.venueName(ctx, booking.VenueID))
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get all bookings",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get all bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := s.buildBookingResponses(ctx, bookings)

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking, s.venueName(ctx, booking.VenueID))
	return &resp, nil
}

// UpdateBookingStatus is the moderation action: Pending -> Approved or
// Pending -> Rejected. No other transitions exist.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("%w: status is %s", ErrNotPending, booking.Status)
	}

	status := entity.BookingStatus(req.Status)
	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, status); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	booking.Status = status
	booking.UpdatedAt = time.Now()

	s.log.Info("Booking moderated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	resp := response.BookingToResponse(booking, s.venueName(ctx, booking.VenueID))
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	return booking, nil
}

func (s *bookingService) venueName(ctx context.Context, venueID uuid.UUID) string {
	venue, _ := s.repo.Venue.FindByID(ctx, venueID)
	if venue == nil {
		return ""
	}
	return venue.Name
}

func (s *bookingService) buildBookingResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	// Venue names are fetched once per distinct venue
	names := make(map[uuid.UUID]string)
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		name, ok := names[booking.VenueID]
		if !ok {
			name = s.venueName(ctx, booking.VenueID)
			names[booking.VenueID] = name
		}
		responses[i] = response.BookingToResponse(booking, name)
	}
	return responses
}
