package repository

import (
	"flight-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Airline   AirlineRepository
	Flight    FlightRepository
	Booking   BookingRepository
	Passenger PassengerRepository

	// Tx scopes multi-store writes into one transaction.
	Tx database.Transactor
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Airline:   NewAirlineRepository(db, log),
		Flight:    NewFlightRepository(db, log),
		Booking:   NewBookingRepository(db, log),
		Passenger: NewPassengerRepository(db, log),
		Tx:        db,
	}
}
