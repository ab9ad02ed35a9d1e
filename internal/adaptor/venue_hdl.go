package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VenueHandler struct {
	service usecase.VenueService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// GetVenues handles GET /api/venues (public)
func (h *VenueHandler) GetVenues(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	// Parse query parameters
	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	var category *string
	if c := query.Get("category"); c != "" {
		category = &c
	}

	venues, err := h.service.GetVenues(r.Context(), req, category)
	if err != nil {
		h.handleServiceError(w, err, "get venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// GetVenueByID handles GET /api/venues/{id} (public)
func (h *VenueHandler) GetVenueByID(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	venue, err := h.service.GetVenueByID(r.Context(), venueID)
	if err != nil {
		h.handleServiceError(w, err, "get venue by ID")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// SaveVenue handles POST /api/venues/{id}/save (protected)
func (h *VenueHandler) SaveVenue(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	if err := h.service.SaveVenue(r.Context(), userID.String(), venueID); err != nil {
		h.handleServiceError(w, err, "save venue")
		return
	}

	utils.ResponseCreated(w, "Venue saved", nil)
}

// UnsaveVenue handles DELETE /api/venues/{id}/save (protected)
func (h *VenueHandler) UnsaveVenue(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	if err := h.service.UnsaveVenue(r.Context(), userID.String(), venueID); err != nil {
		h.handleServiceError(w, err, "unsave venue")
		return
	}

	utils.ResponseSuccess(w, "Venue removed from saved list", nil)
}

// GetSavedVenues handles GET /api/user/saved-venues (protected)
func (h *VenueHandler) GetSavedVenues(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	venues, err := h.service.GetSavedVenues(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get saved venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// ==================== ADMIN METHODS ====================

// CreateVenue handles POST /api/admin/venues (admin only)
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req request.VenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	venue, err := h.service.CreateVenue(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create venue")
		return
	}

	utils.ResponseCreated(w, "Venue created", venue)
}

// UpdateVenue handles PUT /api/admin/venues/{id} (admin only)
func (h *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	var req request.VenueUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	venue, err := h.service.UpdateVenue(r.Context(), venueID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update venue")
		return
	}

	utils.ResponseSuccess(w, "Venue updated", venue)
}

// DeleteVenue handles DELETE /api/admin/venues/{id} (admin only)
func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "id")
	if venueID == "" {
		utils.ResponseBadRequest(w, "Venue ID is required", nil)
		return
	}

	if err := h.service.DeleteVenue(r.Context(), venueID); err != nil {
		h.handleServiceError(w, err, "delete venue")
		return
	}

	utils.ResponseSuccess(w, "Venue deleted", nil)
}

// handleServiceError handles errors for venue operations
func (h *VenueHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrVenueNotFound),
		strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrAlreadySaved):
		h.log.Warn(operation+" failed - already saved", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
