package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// AddInventory handles POST /api/v1.0/flight/airline/inventory/add (admin)
func (h *FlightHandler) AddInventory(w http.ResponseWriter, r *http.Request) {
	var req request.AddInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flight, err := h.service.AddInventory(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add inventory")
		return
	}

	utils.ResponseCreated(w, "success", flight)
}

// SearchFlights handles GET /api/v1.0/flight/search (public)
func (h *FlightHandler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.SearchFlightsRequest{
		FromPlace:  query.Get("from"),
		ToPlace:    query.Get("to"),
		TravelDate: query.Get("date"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	flights, err := h.service.SearchFlights(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "search flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// GetFlightByID handles GET /api/v1.0/flight/{id} (public)
func (h *FlightHandler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "id")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	flight, err := h.service.GetFlightByID(r.Context(), flightID)
	if err != nil {
		h.handleServiceError(w, err, "get flight by ID")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// handleServiceError maps flight service errors to responses
func (h *FlightHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrFlightNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrDuplicateFlight):
		h.log.Warn(operation+" failed - duplicate inventory", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
