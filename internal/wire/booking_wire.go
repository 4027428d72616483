package wire

import (
	"flight-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/v1.0/flight/booking/{flightId} - Book a ticket
	r.Post("/api/v1.0/flight/booking/{flightId}", bookingHandler.BookTicket)

	// GET /api/v1.0/flight/ticket/{pnr} - Ticket details by PNR
	r.Get("/api/v1.0/flight/ticket/{pnr}", bookingHandler.GetTicketByPNR)

	// GET /api/v1.0/flight/booking/history/{email} - Booking history
	r.Get("/api/v1.0/flight/booking/history/{email}", bookingHandler.GetHistoryByEmail)

	// DELETE /api/v1.0/flight/booking/cancel/{pnr} - Cancel a booking
	r.Delete("/api/v1.0/flight/booking/cancel/{pnr}", bookingHandler.CancelBooking)
}
