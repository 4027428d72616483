package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is created active and mutated exactly once, by cancellation.
// CreatedAt doubles as the booking time surfaced to callers.
type Booking struct {
	Base
	PNR         string     `db:"pnr"` // unique, caller-facing
	Email       string     `db:"email"`
	FlightID    uuid.UUID  `db:"flight_id"`
	SeatsBooked int        `db:"seats_booked"`
	Canceled    bool       `db:"canceled"`
	CanceledAt  *time.Time `db:"canceled_at"`
}
