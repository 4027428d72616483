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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// BookTicket handles POST /api/v1.0/flight/booking/{flightId}
func (h *BookingHandler) BookTicket(w http.ResponseWriter, r *http.Request) {
	flightID := chi.URLParam(r, "flightId")
	if flightID == "" {
		utils.ResponseBadRequest(w, "Flight ID is required", nil)
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.BookTicket(r.Context(), flightID, &req)
	if err != nil {
		h.handleServiceError(w, err, "book ticket")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetTicketByPNR handles GET /api/v1.0/flight/ticket/{pnr}
func (h *BookingHandler) GetTicketByPNR(w http.ResponseWriter, r *http.Request) {
	pnr := chi.URLParam(r, "pnr")
	if pnr == "" {
		utils.ResponseBadRequest(w, "PNR is required", nil)
		return
	}

	ticket, err := h.service.GetTicketByPNR(r.Context(), pnr)
	if err != nil {
		h.handleServiceError(w, err, "get ticket by PNR")
		return
	}

	utils.ResponseSuccess(w, "success", ticket)
}

// GetHistoryByEmail handles GET /api/v1.0/flight/booking/history/{email}
func (h *BookingHandler) GetHistoryByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	history, err := h.service.GetHistoryByEmail(r.Context(), email)
	if err != nil {
		h.handleServiceError(w, err, "get booking history")
		return
	}

	utils.ResponseSuccess(w, "success", history)
}

// CancelBooking handles DELETE /api/v1.0/flight/booking/cancel/{pnr}
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	pnr := chi.URLParam(r, "pnr")
	if pnr == "" {
		utils.ResponseBadRequest(w, "PNR is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), pnr); err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps booking service errors to responses.
// ErrDataIntegrity deliberately falls through to the opaque 500.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrFlightNotFound),
		errors.Is(err, usecase.ErrBookingNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrAlreadyCanceled):
		h.log.Warn(operation+" failed - already canceled", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrPastFlight),
		errors.Is(err, usecase.ErrInsufficientSeats),
		errors.Is(err, usecase.ErrPassengerCountMismatch),
		errors.Is(err, usecase.ErrDuplicateSeat),
		errors.Is(err, usecase.ErrFlightDeparted),
		errors.Is(err, usecase.ErrCancellationWindowClosed):
		h.log.Warn(operation+" failed - rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
