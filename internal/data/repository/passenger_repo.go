package repository

import (
	"context"
	"fmt"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PassengerRepository interface {
	Create(ctx context.Context, passenger *entity.Passenger) error
	CreateBatch(ctx context.Context, passengers []*entity.Passenger) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Passenger, error)
}

type passengerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPassengerRepository(db database.PgxIface, log *zap.Logger) PassengerRepository {
	return &passengerRepository{
		db:  db,
		log: log.With(zap.String("repository", "passenger")),
	}
}

func (r *passengerRepository) Create(ctx context.Context, passenger *entity.Passenger) error {
	query := `
		INSERT INTO passengers (id, booking_id, name, gender, age, seat_number, meal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	q := database.QuerierFromContext(ctx, r.db)
	_, err := q.Exec(ctx, query,
		passenger.ID,
		passenger.BookingID,
		passenger.Name,
		passenger.Gender,
		passenger.Age,
		passenger.SeatNumber,
		passenger.Meal,
		passenger.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create passenger",
			zap.Error(err),
			zap.String("booking_id", passenger.BookingID.String()),
			zap.String("seat_number", passenger.SeatNumber),
		)
		return fmt.Errorf("create passenger for booking %s seat %s: %w",
			passenger.BookingID.String(), passenger.SeatNumber, err)
	}

	return nil
}

func (r *passengerRepository) CreateBatch(ctx context.Context, passengers []*entity.Passenger) error {
	if len(passengers) == 0 {
		return nil
	}

	for _, p := range passengers {
		if err := r.Create(ctx, p); err != nil {
			return err
		}
	}

	return nil
}

func (r *passengerRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Passenger, error) {
	query := `
		SELECT id, booking_id, name, gender, age, seat_number, meal, created_at
		FROM passengers
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find passengers by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find passengers by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var passengers []*entity.Passenger
	for rows.Next() {
		var p entity.Passenger
		err := rows.Scan(
			&p.ID,
			&p.BookingID,
			&p.Name,
			&p.Gender,
			&p.Age,
			&p.SeatNumber,
			&p.Meal,
			&p.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan passenger row", zap.Error(err))
			return nil, fmt.Errorf("scan passenger row: %w", err)
		}
		passengers = append(passengers, &p)
	}

	return passengers, nil
}
