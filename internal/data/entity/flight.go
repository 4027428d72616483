package entity

import (
	"time"

	"github.com/google/uuid"
)

// Flight inventory record. TotalSeats is fixed at admission;
// AvailableSeats only moves through the booking engine's seat adjustments.
type Flight struct {
	Base
	FlightNumber   string    `db:"flight_number"`
	FromPlace      string    `db:"from_place"`
	ToPlace        string    `db:"to_place"`
	DepartureTime  time.Time `db:"departure_time"`
	ArrivalTime    time.Time `db:"arrival_time"`
	Price          float64   `db:"price"`
	TotalSeats     int       `db:"total_seats"`
	AvailableSeats int       `db:"available_seats"`
	AirlineID      uuid.UUID `db:"airline_id"`
}
