package adaptor

import (
	"flight-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Flight  *FlightHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Flight:  NewFlightHandler(service.Flight, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
