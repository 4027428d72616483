package repository

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AirlineRepository interface {
	Create(ctx context.Context, airline *entity.Airline) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Airline, error)
	FindByName(ctx context.Context, name string) (*entity.Airline, error)
}

type airlineRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAirlineRepository(db database.PgxIface, log *zap.Logger) AirlineRepository {
	return &airlineRepository{
		db:  db,
		log: log.With(zap.String("repository", "airline")),
	}
}

func (r *airlineRepository) Create(ctx context.Context, airline *entity.Airline) error {
	query := `
		INSERT INTO airlines (id, name, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	q := database.QuerierFromContext(ctx, r.db)
	_, err := q.Exec(ctx, query,
		airline.ID,
		airline.Name,
		airline.LogoURL,
		airline.CreatedAt,
		airline.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create airline",
			zap.Error(err),
			zap.String("name", airline.Name),
		)
		return fmt.Errorf("create airline %s: %w", airline.Name, err)
	}

	return nil
}

func (r *airlineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Airline, error) {
	query := `
		SELECT id, name, logo_url, created_at, updated_at
		FROM airlines
		WHERE id = $1
	`

	var airline entity.Airline
	err := r.db.QueryRow(ctx, query, id).Scan(
		&airline.ID,
		&airline.Name,
		&airline.LogoURL,
		&airline.CreatedAt,
		&airline.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airline by ID",
			zap.Error(err),
			zap.String("airline_id", id.String()),
		)
		return nil, fmt.Errorf("find airline by ID %s: %w", id.String(), err)
	}

	return &airline, nil
}

func (r *airlineRepository) FindByName(ctx context.Context, name string) (*entity.Airline, error) {
	query := `
		SELECT id, name, logo_url, created_at, updated_at
		FROM airlines
		WHERE name = $1
	`

	var airline entity.Airline
	err := r.db.QueryRow(ctx, query, name).Scan(
		&airline.ID,
		&airline.Name,
		&airline.LogoURL,
		&airline.CreatedAt,
		&airline.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airline by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find airline by name %s: %w", name, err)
	}

	return &airline, nil
}
