package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type PassengerResponse struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	Age        int    `json:"age"`
	SeatNumber string `json:"seat_number"`
	Meal       string `json:"meal,omitempty"`
}

type BookingResponse struct {
	PNR         string              `json:"pnr"`
	Email       string              `json:"email"`
	FlightID    string              `json:"flight_id"`
	SeatsBooked int                 `json:"seats_booked"`
	BookingTime time.Time           `json:"booking_time"`
	Canceled    bool                `json:"canceled"`
	Passengers  []PassengerResponse `json:"passengers"`
}

func PassengerToResponse(p *entity.Passenger) PassengerResponse {
	return PassengerResponse{
		Name:       p.Name,
		Gender:     p.Gender,
		Age:        p.Age,
		SeatNumber: p.SeatNumber,
		Meal:       p.Meal,
	}
}

func BookingToResponse(booking *entity.Booking, passengers []*entity.Passenger) *BookingResponse {
	passengerResponses := make([]PassengerResponse, len(passengers))
	for i, p := range passengers {
		passengerResponses[i] = PassengerToResponse(p)
	}

	return &BookingResponse{
		PNR:         booking.PNR,
		Email:       booking.Email,
		FlightID:    booking.FlightID.String(),
		SeatsBooked: booking.SeatsBooked,
		BookingTime: booking.CreatedAt,
		Canceled:    booking.Canceled,
		Passengers:  passengerResponses,
	}
}
