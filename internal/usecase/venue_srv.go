package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type VenueService interface {
	GetVenues(ctx context.Context, req *request.PaginatedRequest, category *string) (*response.PaginatedResponse[response.VenueResponse], error)
	GetVenueByID(ctx context.Context, venueID string) (*response.VenueResponse, error)
	CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.VenueResponse, error)
	UpdateVenue(ctx context.Context, venueID string, req *request.VenueUpdateRequest) (*response.VenueResponse, error)
	DeleteVenue(ctx context.Context, venueID string) error
	SaveVenue(ctx context.Context, userID, venueID string) error
	UnsaveVenue(ctx context.Context, userID, venueID string) error
	GetSavedVenues(ctx context.Context, userID string) ([]response.VenueResponse, error)
}

type venueService struct {
	repo     *repository.Repository
	cache    *redis.Client
	cacheTTL time.Duration
	log      *zap.Logger
}

// NewVenueService wires the venue directory. cache may be nil, in which
// case every read goes straight to the database.
func NewVenueService(repo *repository.Repository, cache *redis.Client, config *utils.Config, log *zap.Logger) VenueService {
	return &venueService{
		repo:     repo,
		cache:    cache,
		cacheTTL: time.Duration(config.Redis.CacheTTLMinutes) * time.Minute,
		log:      log.With(zap.String("service", "venue")),
	}
}

func venueCacheKey(id uuid.UUID) string {
	return "venue:" + id.String()
}

func (vs *venueService) GetVenues(ctx context.Context, req *request.PaginatedRequest, category *string) (*response.PaginatedResponse[response.VenueResponse], error) {
	venues, err := vs.repo.Venue.FindAll(ctx, req.Limit(), req.Offset(), category)
	if err != nil {
		vs.log.Error("Failed to get venues",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Stringp("category", category),
		)
		return nil, fmt.Errorf("failed to get venues")
	}

	total, err := vs.repo.Venue.CountAll(ctx, category)
	if err != nil {
		vs.log.Error("Failed to count venues", zap.Error(err))
		return nil, fmt.Errorf("failed to count venues")
	}

	venueResponses := make([]response.VenueResponse, len(venues))
	for i, venue := range venues {
		venueResponses[i] = response.VenueToResponse(venue)
	}

	vs.log.Info("Venues retrieved",
		zap.Int("count", len(venues)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
	)

	return response.NewPaginatedResponse(venueResponses, req.Page, req.PerPage, total), nil
}

func (vs *venueService) GetVenueByID(ctx context.Context, venueID string) (*response.VenueResponse, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	if cached := vs.cachedVenue(ctx, id); cached != nil {
		return cached, nil
	}

	venue, err := vs.repo.Venue.FindByID(ctx, id)
	if err != nil {
		vs.log.Error("Failed to find venue", zap.Error(err), zap.String("venue_id", venueID))
		return nil, fmt.Errorf("failed to get venue")
	}
	if venue == nil {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	resp := response.VenueToResponse(venue)
	vs.storeVenue(ctx, id, &resp)
	return &resp, nil
}

func (vs *venueService) CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.VenueResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		vs.log.Warn("Create venue validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	venue := &entity.Venue{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Location:    req.Location,
		Capacity:    req.Capacity,
		PricePerDay: req.PricePerDay,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	}

	if err := vs.repo.Venue.Create(ctx, venue); err != nil {
		vs.log.Error("Failed to create venue", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create venue")
	}

	vs.log.Info("Venue created",
		zap.String("venue_id", venue.ID.String()),
		zap.String("name", venue.Name),
	)

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func (vs *venueService) UpdateVenue(ctx context.Context, venueID string, req *request.VenueUpdateRequest) (*response.VenueResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		vs.log.Warn("Update venue validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	venue, err := vs.repo.Venue.FindByID(ctx, id)
	if err != nil {
		vs.log.Error("Failed to find venue for update", zap.Error(err), zap.String("venue_id", venueID))
		return nil, fmt.Errorf("failed to get venue")
	}
	if venue == nil {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Location != nil {
		venue.Location = *req.Location
	}
	if req.Capacity != nil {
		venue.Capacity = *req.Capacity
	}
	if req.PricePerDay != nil {
		venue.PricePerDay = *req.PricePerDay
	}
	if req.Category != nil {
		venue.Category = *req.Category
	}
	if req.ImageURL != nil {
		venue.ImageURL = req.ImageURL
	}
	if req.Description != nil {
		venue.Description = req.Description
	}
	venue.UpdatedAt = time.Now()

	if err := vs.repo.Venue.Update(ctx, venue); err != nil {
		vs.log.Error("Failed to update venue", zap.Error(err), zap.String("venue_id", venueID))
		return nil, fmt.Errorf("failed to update venue")
	}

	vs.invalidateVenue(ctx, id)
	vs.log.Info("Venue updated", zap.String("venue_id", venueID))

	resp := response.VenueToResponse(venue)
	return &resp, nil
}

func (vs *venueService) DeleteVenue(ctx context.Context, venueID string) error {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	venue, err := vs.repo.Venue.FindByID(ctx, id)
	if err != nil {
		vs.log.Error("Failed to find venue for delete", zap.Error(err), zap.String("venue_id", venueID))
		return fmt.Errorf("failed to get venue")
	}
	if venue == nil {
		return fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	if err := vs.repo.Venue.Delete(ctx, id); err != nil {
		vs.log.Error("Failed to delete venue", zap.Error(err), zap.String("venue_id", venueID))
		return fmt.Errorf("failed to delete venue")
	}

	vs.invalidateVenue(ctx, id)
	vs.log.Info("Venue deleted", zap.String("venue_id", venueID), zap.String("name", venue.Name))
	return nil
}

func (vs *venueService) SaveVenue(ctx context.Context, userID, venueID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID")
	}
	vid, err := uuid.Parse(venueID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	venue, err := vs.repo.Venue.FindByID(ctx, vid)
	if err != nil {
		vs.log.Error("Failed to find venue for save", zap.Error(err), zap.String("venue_id", venueID))
		return fmt.Errorf("failed to get venue")
	}
	if venue == nil {
		return fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	saved := &entity.SavedVenue{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  uid,
		VenueID: vid,
	}

	if err := vs.repo.SavedVenue.Save(ctx, saved); err != nil {
		if errors.Is(err, repository.ErrDuplicateSave) {
			return fmt.Errorf("%w: %s", ErrAlreadySaved, venueID)
		}
		vs.log.Error("Failed to save venue",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("venue_id", venueID),
		)
		return fmt.Errorf("failed to save venue")
	}

	vs.log.Info("Venue saved",
		zap.String("user_id", userID),
		zap.String("venue_id", venueID),
	)
	return nil
}

func (vs *venueService) UnsaveVenue(ctx context.Context, userID, venueID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID")
	}
	vid, err := uuid.Parse(venueID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrVenueNotFound, venueID)
	}

	if err := vs.repo.SavedVenue.Remove(ctx, uid, vid); err != nil {
		vs.log.Warn("Failed to remove saved venue",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("venue_id", venueID),
		)
		return fmt.Errorf("saved venue not found")
	}

	vs.log.Info("Venue unsaved",
		zap.String("user_id", userID),
		zap.String("venue_id", venueID),
	)
	return nil
}

func (vs *venueService) GetSavedVenues(ctx context.Context, userID string) ([]response.VenueResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	venues, err := vs.repo.SavedVenue.FindVenuesByUserID(ctx, uid)
	if err != nil {
		vs.log.Error("Failed to get saved venues", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get saved venues")
	}

	venueResponses := make([]response.VenueResponse, len(venues))
	for i, venue := range venues {
		venueResponses[i] = response.VenueToResponse(venue)
	}

	return venueResponses, nil
}

// cachedVenue returns the cached response or nil. Cache failures are
// logged and treated as misses.
func (vs *venueService) cachedVenue(ctx context.Context, id uuid.UUID) *response.VenueResponse {
	if vs.cache == nil {
		return nil
	}

	data, err := vs.cache.Get(ctx, venueCacheKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			vs.log.Warn("Venue cache read failed", zap.Error(err), zap.String("venue_id", id.String()))
		}
		return nil
	}

	var resp response.VenueResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		vs.log.Warn("Venue cache entry corrupt", zap.Error(err), zap.String("venue_id", id.String()))
		return nil
	}

	return &resp
}

func (vs *venueService) storeVenue(ctx context.Context, id uuid.UUID, resp *response.VenueResponse) {
	if vs.cache == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return
	}

	if err := vs.cache.Set(ctx, venueCacheKey(id), data, vs.cacheTTL).Err(); err != nil {
		vs.log.Warn("Venue cache write failed", zap.Error(err), zap.String("venue_id", id.String()))
	}
}

func (vs *venueService) invalidateVenue(ctx context.Context, id uuid.UUID) {
	if vs.cache == nil {
		return
	}

	if err := vs.cache.Del(ctx, venueCacheKey(id)).Err(); err != nil {
		vs.log.Warn("Venue cache invalidation failed", zap.Error(err), zap.String("venue_id", id.String()))
	}
}
