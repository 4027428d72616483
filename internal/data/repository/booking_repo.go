package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByPNR(ctx context.Context, pnr string) (*entity.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error)

	// MarkCanceled flips the canceled flag exactly once.
	MarkCanceled(ctx context.Context, bookingID uuid.UUID, canceledAt time.Time) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const uniqueViolation = "23505"

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, pnr, email, flight_id, seats_booked, canceled, canceled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	q := database.QuerierFromContext(ctx, r.db)
	_, err := q.Exec(ctx, query,
		booking.ID,
		booking.PNR,
		booking.Email,
		booking.FlightID,
		booking.SeatsBooked,
		booking.Canceled,
		booking.CanceledAt,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.log.Warn("PNR collision on insert",
				zap.String("pnr", booking.PNR),
			)
			return fmt.Errorf("create booking %s: %w", booking.PNR, ErrDuplicatePNR)
		}

		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("pnr", booking.PNR),
			zap.String("email", booking.Email),
		)
		return fmt.Errorf("create booking %s: %w", booking.PNR, err)
	}

	return nil
}

func (r *bookingRepository) FindByPNR(ctx context.Context, pnr string) (*entity.Booking, error) {
	query := `
		SELECT id, pnr, email, flight_id, seats_booked, canceled, canceled_at, created_at, updated_at
		FROM bookings
		WHERE pnr = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, pnr).Scan(
		&booking.ID,
		&booking.PNR,
		&booking.Email,
		&booking.FlightID,
		&booking.SeatsBooked,
		&booking.Canceled,
		&booking.CanceledAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by PNR",
			zap.Error(err),
			zap.String("pnr", pnr),
		)
		return nil, fmt.Errorf("find booking by PNR %s: %w", pnr, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	query := `
		SELECT id, pnr, email, flight_id, seats_booked, canceled, canceled_at, created_at, updated_at
		FROM bookings
		WHERE email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to find bookings by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find bookings by email %s: %w", email, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.PNR,
			&booking.Email,
			&booking.FlightID,
			&booking.SeatsBooked,
			&booking.Canceled,
			&booking.CanceledAt,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

// MarkCanceled only touches active bookings, so a concurrent double cancel
// loses cleanly instead of restoring seats twice.
func (r *bookingRepository) MarkCanceled(ctx context.Context, bookingID uuid.UUID, canceledAt time.Time) error {
	query := `
		UPDATE bookings
		SET canceled = TRUE, canceled_at = $2, updated_at = $2
		WHERE id = $1 AND canceled = FALSE
	`

	q := database.QuerierFromContext(ctx, r.db)
	result, err := q.Exec(ctx, query, bookingID, canceledAt)
	if err != nil {
		r.log.Error("Failed to mark booking canceled",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("mark booking %s canceled: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrAlreadyCanceled
	}

	return nil
}
