package entity

import "github.com/google/uuid"

// Passenger rows are written once alongside their booking, never mutated.
type Passenger struct {
	BaseSimple
	BookingID  uuid.UUID `db:"booking_id"`
	Name       string    `db:"name"`
	Gender     string    `db:"gender"`
	Age        int       `db:"age"`
	SeatNumber string    `db:"seat_number"` // e.g. "12A"
	Meal       string    `db:"meal"`
}
