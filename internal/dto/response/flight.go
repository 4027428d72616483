package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type FlightResponse struct {
	ID             string    `json:"id"`
	FlightNumber   string    `json:"flight_number"`
	FromPlace      string    `json:"from_place"`
	ToPlace        string    `json:"to_place"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	Price          float64   `json:"price"`
	TotalSeats     int       `json:"total_seats"`
	AvailableSeats int       `json:"available_seats"`
	AirlineID      string    `json:"airline_id"`
}

func FlightToResponse(flight *entity.Flight) *FlightResponse {
	return &FlightResponse{
		ID:             flight.ID.String(),
		FlightNumber:   flight.FlightNumber,
		FromPlace:      flight.FromPlace,
		ToPlace:        flight.ToPlace,
		DepartureTime:  flight.DepartureTime,
		ArrivalTime:    flight.ArrivalTime,
		Price:          flight.Price,
		TotalSeats:     flight.TotalSeats,
		AvailableSeats: flight.AvailableSeats,
		AirlineID:      flight.AirlineID.String(),
	}
}

func FlightsToResponse(flights []*entity.Flight) []*FlightResponse {
	responses := make([]*FlightResponse, len(flights))
	for i, flight := range flights {
		responses[i] = FlightToResponse(flight)
	}
	return responses
}
