package wire

import (
	"flight-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFlight(r chi.Router, flightHandler *adaptor.FlightHandler) {
	// POST /api/v1.0/flight/airline/inventory/add - Admit flight inventory (admin)
	r.Post("/api/v1.0/flight/airline/inventory/add", flightHandler.AddInventory)

	// GET /api/v1.0/flight/search?from=&to=&date= - Search flights (public)
	r.Get("/api/v1.0/flight/search", flightHandler.SearchFlights)

	// GET /api/v1.0/flight/{id} - Flight details (public)
	r.Get("/api/v1.0/flight/{id}", flightHandler.GetFlightByID)
}
