package repository

import (
	"context"
	"fmt"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error)
	FindByNumberAndDeparture(ctx context.Context, flightNumber string, departureTime time.Time) (*entity.Flight, error)
	Search(ctx context.Context, fromPlace, toPlace string, dayStart, dayEnd time.Time) ([]*entity.Flight, error)

	// Seat adjustments. Both are conditional writes so concurrent
	// bookings against one flight serialize at the store.
	ReserveSeats(ctx context.Context, flightID uuid.UUID, seats int) error
	ReleaseSeats(ctx context.Context, flightID uuid.UUID, seats int) error
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

const flightColumns = `id, flight_number, from_place, to_place, departure_time, arrival_time,
		price, total_seats, available_seats, airline_id, created_at, updated_at`

func (r *flightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	query := `
		INSERT INTO flights (id, flight_number, from_place, to_place, departure_time, arrival_time,
			price, total_seats, available_seats, airline_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	q := database.QuerierFromContext(ctx, r.db)
	_, err := q.Exec(ctx, query,
		flight.ID,
		flight.FlightNumber,
		flight.FromPlace,
		flight.ToPlace,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.Price,
		flight.TotalSeats,
		flight.AvailableSeats,
		flight.AirlineID,
		flight.CreatedAt,
		flight.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("flight_number", flight.FlightNumber),
		)
		return fmt.Errorf("create flight %s: %w", flight.FlightNumber, err)
	}

	return nil
}

func (r *flightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE id = $1`

	flight, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", id.String(), err)
	}

	return flight, nil
}

func (r *flightRepository) FindByNumberAndDeparture(ctx context.Context, flightNumber string, departureTime time.Time) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE flight_number = $1 AND departure_time = $2`

	flight, err := r.scanOne(r.db.QueryRow(ctx, query, flightNumber, departureTime))
	if err != nil {
		r.log.Error("Failed to find flight by number and departure",
			zap.Error(err),
			zap.String("flight_number", flightNumber),
			zap.Time("departure_time", departureTime),
		)
		return nil, fmt.Errorf("find flight %s at %s: %w", flightNumber, departureTime.Format(time.RFC3339), err)
	}

	return flight, nil
}

func (r *flightRepository) Search(ctx context.Context, fromPlace, toPlace string, dayStart, dayEnd time.Time) ([]*entity.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE from_place = $1 AND to_place = $2 AND departure_time BETWEEN $3 AND $4
		ORDER BY departure_time
	`

	rows, err := r.db.Query(ctx, query, fromPlace, toPlace, dayStart, dayEnd)
	if err != nil {
		r.log.Error("Failed to search flights",
			zap.Error(err),
			zap.String("from", fromPlace),
			zap.String("to", toPlace),
		)
		return nil, fmt.Errorf("search flights %s-%s: %w", fromPlace, toPlace, err)
	}
	defer rows.Close()

	var flights []*entity.Flight
	for rows.Next() {
		var flight entity.Flight
		err := rows.Scan(
			&flight.ID,
			&flight.FlightNumber,
			&flight.FromPlace,
			&flight.ToPlace,
			&flight.DepartureTime,
			&flight.ArrivalTime,
			&flight.Price,
			&flight.TotalSeats,
			&flight.AvailableSeats,
			&flight.AirlineID,
			&flight.CreatedAt,
			&flight.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan flight row", zap.Error(err))
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, &flight)
	}

	return flights, nil
}

// ReserveSeats decrements available_seats only when enough remain.
// Zero affected rows means another booking got there first.
func (r *flightRepository) ReserveSeats(ctx context.Context, flightID uuid.UUID, seats int) error {
	query := `
		UPDATE flights
		SET available_seats = available_seats - $2, updated_at = NOW()
		WHERE id = $1 AND available_seats >= $2
	`

	q := database.QuerierFromContext(ctx, r.db)
	result, err := q.Exec(ctx, query, flightID, seats)
	if err != nil {
		r.log.Error("Failed to reserve seats",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
			zap.Int("seats", seats),
		)
		return fmt.Errorf("reserve %d seats on flight %s: %w", seats, flightID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrSeatsUnavailable
	}

	return nil
}

// ReleaseSeats gives seats back, never past total capacity.
func (r *flightRepository) ReleaseSeats(ctx context.Context, flightID uuid.UUID, seats int) error {
	query := `
		UPDATE flights
		SET available_seats = available_seats + $2, updated_at = NOW()
		WHERE id = $1 AND available_seats + $2 <= total_seats
	`

	q := database.QuerierFromContext(ctx, r.db)
	result, err := q.Exec(ctx, query, flightID, seats)
	if err != nil {
		r.log.Error("Failed to release seats",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
			zap.Int("seats", seats),
		)
		return fmt.Errorf("release %d seats on flight %s: %w", seats, flightID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrSeatsOverflow
	}

	return nil
}

func (r *flightRepository) scanOne(row pgx.Row) (*entity.Flight, error) {
	var flight entity.Flight
	err := row.Scan(
		&flight.ID,
		&flight.FlightNumber,
		&flight.FromPlace,
		&flight.ToPlace,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&flight.Price,
		&flight.TotalSeats,
		&flight.AvailableSeats,
		&flight.AirlineID,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &flight, nil
}
