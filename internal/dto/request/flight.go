package request

import "time"

type AddInventoryRequest struct {
	FlightNumber   string    `json:"flight_number" validate:"required,min=2,max=10"`
	FromPlace      string    `json:"from_place" validate:"required,min=2,max=64"`
	ToPlace        string    `json:"to_place" validate:"required,min=2,max=64"`
	DepartureTime  time.Time `json:"departure_time" validate:"required"`
	ArrivalTime    time.Time `json:"arrival_time" validate:"required"`
	Price          float64   `json:"price" validate:"required,gt=0"`
	TotalSeats     int       `json:"total_seats" validate:"required,gt=0"`
	AirlineName    string    `json:"airline_name" validate:"required,min=2,max=100"`
	AirlineLogoURL *string   `json:"airline_logo_url,omitempty" validate:"omitempty,url"`
}

type SearchFlightsRequest struct {
	FromPlace  string `json:"from_place" validate:"required"`
	ToPlace    string `json:"to_place" validate:"required"`
	TravelDate string `json:"travel_date" validate:"required,datetime=2006-01-02"`
}
