package repository

import (
	"context"
	"errors"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicateSave maps the unique (user_id, venue_id) constraint
var ErrDuplicateSave = errors.New("venue already saved")

type SavedVenueRepository interface {
	Save(ctx context.Context, saved *entity.SavedVenue) error
	Remove(ctx context.Context, userID, venueID uuid.UUID) error
	FindVenuesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Venue, error)
}

type savedVenueRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSavedVenueRepository(db database.PgxIface, log *zap.Logger) SavedVenueRepository {
	return &savedVenueRepository{
		db:  db,
		log: log.With(zap.String("repository", "saved_venue")),
	}
}

func (r *savedVenueRepository) Save(ctx context.Context, saved *entity.SavedVenue) error {
	query := `
		INSERT INTO saved_venues (id, user_id, venue_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		saved.ID,
		saved.UserID,
		saved.VenueID,
		saved.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSave
		}
		r.log.Error("Failed to save venue",
			zap.Error(err),
			zap.String("user_id", saved.UserID.String()),
			zap.String("venue_id", saved.VenueID.String()),
		)
		return fmt.Errorf("save venue %s for user %s: %w",
			saved.VenueID.String(), saved.UserID.String(), err)
	}

	return nil
}

func (r *savedVenueRepository) Remove(ctx context.Context, userID, venueID uuid.UUID) error {
	query := `DELETE FROM saved_venues WHERE user_id = $1 AND venue_id = $2`

	result, err := r.db.Exec(ctx, query, userID, venueID)
	if err != nil {
		r.log.Error("Failed to remove saved venue",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("venue_id", venueID.String()),
		)
		return fmt.Errorf("remove saved venue %s: %w", venueID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("saved venue %s not found", venueID.String())
	}

	return nil
}

func (r *savedVenueRepository) FindVenuesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Venue, error) {
	query := `
		SELECT v.id, v.name, v.location, v.capacity, v.price_per_day, v.category,
		       v.image_url, v.description, v.created_at, v.updated_at, v.deleted_at
		FROM saved_venues sv
		JOIN venues v ON v.id = sv.venue_id
		WHERE sv.user_id = $1 AND v.deleted_at IS NULL
		ORDER BY sv.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find saved venues",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find saved venues for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var venues []*entity.Venue
	for rows.Next() {
		var venue entity.Venue
		if err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.Location,
			&venue.Capacity,
			&venue.PricePerDay,
			&venue.Category,
			&venue.ImageURL,
			&venue.Description,
			&venue.CreatedAt,
			&venue.UpdatedAt,
			&venue.DeletedAt,
		); err != nil {
			r.log.Error("Failed to scan saved venue row", zap.Error(err))
			return nil, fmt.Errorf("scan saved venue row: %w", err)
		}
		venues = append(venues, &venue)
	}

	return venues, nil
}
