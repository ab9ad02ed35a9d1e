package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)
	FindAll(ctx context.Context, limit, offset int, categoryFilter *string) ([]*entity.Venue, error)
	CountAll(ctx context.Context, categoryFilter *string) (int64, error)
	Update(ctx context.Context, venue *entity.Venue) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type venueRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVenueRepository(db database.PgxIface, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	query := `
		INSERT INTO venues (id, name, location, capacity, price_per_day, category,
		                    image_url, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.Location,
		venue.Capacity,
		venue.PricePerDay,
		venue.Category,
		venue.ImageURL,
		venue.Description,
		venue.CreatedAt,
		venue.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("name", venue.Name),
		)
		return fmt.Errorf("create venue %s: %w", venue.Name, err)
	}

	return nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	query := `
		SELECT id, name, location, capacity, price_per_day, category,
		       image_url, description, created_at, updated_at, deleted_at
		FROM venues
		WHERE id = $1 AND deleted_at IS NULL
	`

	var venue entity.Venue
	err := r.db.QueryRow(ctx, query, id).Scan(
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
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return nil, fmt.Errorf("find venue by ID %s: %w", id.String(), err)
	}

	return &venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context, limit, offset int, categoryFilter *string) ([]*entity.Venue, error) {
	query := `
		SELECT id, name, location, capacity, price_per_day, category,
		       image_url, description, created_at, updated_at, deleted_at
		FROM venues
		WHERE deleted_at IS NULL
		  AND ($3::text IS NULL OR category = $3)
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, categoryFilter)
	if err != nil {
		r.log.Error("Failed to find venues",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Stringp("category", categoryFilter),
		)
		return nil, fmt.Errorf("find venues: %w", err)
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
			r.log.Error("Failed to scan venue row", zap.Error(err))
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		venues = append(venues, &venue)
	}

	return venues, nil
}

func (r *venueRepository) CountAll(ctx context.Context, categoryFilter *string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM venues
		WHERE deleted_at IS NULL
		  AND ($1::text IS NULL OR category = $1)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, categoryFilter).Scan(&count); err != nil {
		r.log.Error("Failed to count venues",
			zap.Error(err),
			zap.Stringp("category", categoryFilter),
		)
		return 0, fmt.Errorf("count venues: %w", err)
	}

	return count, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	query := `
		UPDATE venues
		SET name = $2, location = $3, capacity = $4, price_per_day = $5,
		    category = $6, image_url = $7, description = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.Location,
		venue.Capacity,
		venue.PricePerDay,
		venue.Category,
		venue.ImageURL,
		venue.Description,
		venue.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update venue",
			zap.Error(err),
			zap.String("venue_id", venue.ID.String()),
		)
		return fmt.Errorf("update venue %s: %w", venue.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("venue %s not found", venue.ID.String())
	}

	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE venues SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete venue",
			zap.Error(err),
			zap.String("venue_id", id.String()),
		)
		return fmt.Errorf("delete venue %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("venue %s not found", id.String())
	}

	r.log.Info("Venue deleted", zap.String("venue_id", id.String()))
	return nil
}
