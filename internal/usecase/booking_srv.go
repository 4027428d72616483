package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/internal/events"
	"flight-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// cancellationWindow is how long before departure cancellation closes.
const cancellationWindow = 24 * time.Hour

// maxPNRAttempts bounds regeneration when a PNR hits the unique index.
const maxPNRAttempts = 3

type BookingService interface {
	BookTicket(ctx context.Context, flightID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, pnr string) error
	GetTicketByPNR(ctx context.Context, pnr string) (*response.BookingResponse, error)
	GetHistoryByEmail(ctx context.Context, email string) ([]*response.BookingResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	publisher EventPublisher
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, publisher EventPublisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
	}
}

// BookTicket reserves seats on a flight and persists the booking with its
// passengers as one transaction. The in-memory capacity check gives early
// rejection; the conditional decrement inside the transaction is what
// actually protects the flight from over-booking under concurrency.
func (s *bookingService) BookTicket(ctx context.Context, flightID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book ticket validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	fID, err := utils.ParseUUID(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID format %s: %w", flightID, err)
	}

	// Preconditions, in order, before any write
	flight, err := s.repo.Flight.FindByID(ctx, fID)
	if err != nil {
		return nil, fmt.Errorf("load flight %s: %w", flightID, err)
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}

	now := time.Now()
	if !flight.DepartureTime.After(now) {
		return nil, ErrPastFlight
	}

	if flight.AvailableSeats < req.NumberOfSeats {
		return nil, ErrInsufficientSeats
	}

	if len(req.Passengers) != req.NumberOfSeats {
		return nil, ErrPassengerCountMismatch
	}

	seen := make(map[string]struct{}, len(req.Passengers))
	for _, p := range req.Passengers {
		if _, dup := seen[p.SeatNumber]; dup {
			return nil, ErrDuplicateSeat
		}
		seen[p.SeatNumber] = struct{}{}
	}

	// Booking, passengers and the seat decrement commit together. A PNR
	// collision aborts the whole transaction, so retry with a fresh one.
	var booking *entity.Booking
	var passengers []*entity.Passenger
	for attempt := 1; attempt <= maxPNRAttempts; attempt++ {
		booking = &entity.Booking{
			Base: entity.Base{
				ID:        utils.GenerateUUID(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			PNR:         utils.GeneratePNR(),
			Email:       req.Email,
			FlightID:    fID,
			SeatsBooked: req.NumberOfSeats,
			Canceled:    false,
		}
		passengers = buildPassengers(booking.ID, req.Passengers, now)

		err = s.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := s.repo.Booking.Create(ctx, booking); err != nil {
				return err
			}
			if err := s.repo.Passenger.CreateBatch(ctx, passengers); err != nil {
				return err
			}
			return s.repo.Flight.ReserveSeats(ctx, fID, req.NumberOfSeats)
		})

		if errors.Is(err, repository.ErrDuplicatePNR) {
			s.log.Warn("PNR collision, regenerating",
				zap.String("pnr", booking.PNR),
				zap.Int("attempt", attempt),
			)
			continue
		}
		break
	}

	if err != nil {
		if errors.Is(err, repository.ErrSeatsUnavailable) {
			// Lost the race to a concurrent booking
			return nil, ErrInsufficientSeats
		}
		s.log.Error("Failed to book ticket",
			zap.Error(err),
			zap.String("flight_id", flightID),
			zap.String("email", req.Email),
		)
		return nil, fmt.Errorf("book ticket: %w", err)
	}

	s.log.Info("Ticket booked",
		zap.String("pnr", booking.PNR),
		zap.String("flight_id", flightID),
		zap.String("email", booking.Email),
		zap.Int("seats_booked", booking.SeatsBooked),
	)

	s.publishEvent(ctx, events.TypeBookingCreated, booking)

	return response.BookingToResponse(booking, passengers), nil
}

// CancelBooking marks the booking canceled and restores its seats in one
// transaction. Cancellation closes 24 hours before departure.
func (s *bookingService) CancelBooking(ctx context.Context, pnr string) error {
	booking, err := s.repo.Booking.FindByPNR(ctx, pnr)
	if err != nil {
		return fmt.Errorf("load booking %s: %w", pnr, err)
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	if booking.Canceled {
		return ErrAlreadyCanceled
	}

	flight, err := s.repo.Flight.FindByID(ctx, booking.FlightID)
	if err != nil {
		return fmt.Errorf("load flight for booking %s: %w", pnr, err)
	}
	if flight == nil {
		// An active booking must always reference a stored flight
		s.log.Error("Booking references missing flight",
			zap.String("pnr", pnr),
			zap.String("flight_id", booking.FlightID.String()),
		)
		return ErrDataIntegrity
	}

	now := time.Now()
	if !flight.DepartureTime.After(now) {
		return ErrFlightDeparted
	}
	if !flight.DepartureTime.After(now.Add(cancellationWindow)) {
		return ErrCancellationWindowClosed
	}

	err = s.repo.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Booking.MarkCanceled(ctx, booking.ID, now); err != nil {
			return err
		}
		return s.repo.Flight.ReleaseSeats(ctx, booking.FlightID, booking.SeatsBooked)
	})

	if err != nil {
		if errors.Is(err, repository.ErrAlreadyCanceled) {
			// A concurrent cancel won; seats were restored exactly once
			return ErrAlreadyCanceled
		}
		if errors.Is(err, repository.ErrSeatsOverflow) {
			s.log.Error("Seat restore exceeded flight capacity",
				zap.String("pnr", pnr),
				zap.String("flight_id", booking.FlightID.String()),
				zap.Int("seats_booked", booking.SeatsBooked),
			)
			return ErrDataIntegrity
		}
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("pnr", pnr),
		)
		return fmt.Errorf("cancel booking %s: %w", pnr, err)
	}

	s.log.Info("Booking canceled",
		zap.String("pnr", pnr),
		zap.String("flight_id", booking.FlightID.String()),
		zap.Int("seats_restored", booking.SeatsBooked),
	)

	booking.Canceled = true
	s.publishEvent(ctx, events.TypeBookingCancelled, booking)

	return nil
}

func (s *bookingService) GetTicketByPNR(ctx context.Context, pnr string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByPNR(ctx, pnr)
	if err != nil {
		return nil, fmt.Errorf("load booking %s: %w", pnr, err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	passengers, err := s.repo.Passenger.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("load passengers for %s: %w", pnr, err)
	}

	return response.BookingToResponse(booking, passengers), nil
}

// GetHistoryByEmail returns every booking for the email, newest first.
// An unknown email yields an empty list, not an error.
func (s *bookingService) GetHistoryByEmail(ctx context.Context, email string) ([]*response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("load booking history for %s: %w", email, err)
	}

	history := make([]*response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		passengers, err := s.repo.Passenger.FindByBookingID(ctx, booking.ID)
		if err != nil {
			return nil, fmt.Errorf("load passengers for %s: %w", booking.PNR, err)
		}
		history = append(history, response.BookingToResponse(booking, passengers))
	}

	return history, nil
}

func (s *bookingService) publishEvent(ctx context.Context, eventType string, booking *entity.Booking) {
	if s.publisher == nil {
		return
	}

	event := events.BookingEvent{
		Type:        eventType,
		PNR:         booking.PNR,
		FlightID:    booking.FlightID.String(),
		Email:       booking.Email,
		SeatsBooked: booking.SeatsBooked,
		OccurredAt:  time.Now(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		// Events are best effort; the booking itself already committed
		s.log.Warn("Failed to publish booking event",
			zap.Error(err),
			zap.String("type", eventType),
			zap.String("pnr", booking.PNR),
		)
	}
}

func buildPassengers(bookingID uuid.UUID, reqs []request.PassengerRequest, now time.Time) []*entity.Passenger {
	passengers := make([]*entity.Passenger, len(reqs))
	for i, p := range reqs {
		passengers[i] = &entity.Passenger{
			BaseSimple: entity.BaseSimple{
				ID:        utils.GenerateUUID(),
				CreatedAt: now,
			},
			BookingID:  bookingID,
			Name:       p.Name,
			Gender:     p.Gender,
			Age:        p.Age,
			SeatNumber: p.SeatNumber,
			Meal:       p.Meal,
		}
	}
	return passengers
}
