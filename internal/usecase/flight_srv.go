package usecase

import (
	"context"
	"fmt"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type FlightService interface {
	// Admin endpoint
	AddInventory(ctx context.Context, req *request.AddInventoryRequest) (*response.FlightResponse, error)

	// Public endpoints
	SearchFlights(ctx context.Context, req *request.SearchFlightsRequest) ([]*response.FlightResponse, error)
	GetFlightByID(ctx context.Context, flightID string) (*response.FlightResponse, error)
}

type flightService struct {
	repo  *repository.Repository
	cache FlightCache
	log   *zap.Logger
}

func NewFlightService(repo *repository.Repository, cache FlightCache, log *zap.Logger) FlightService {
	return &flightService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "flight")),
	}
}

// AddInventory admits a new flight. All checks run before any write; the
// airline is resolved by exact name and created lazily when missing.
func (s *flightService) AddInventory(ctx context.Context, req *request.AddInventoryRequest) (*response.FlightResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add inventory validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !req.DepartureTime.Before(req.ArrivalTime) {
		return nil, fmt.Errorf("invalid schedule: departure time must be before arrival time")
	}

	now := time.Now()
	if !req.DepartureTime.After(now) {
		return nil, fmt.Errorf("invalid schedule: departure time must be in the future")
	}

	// Reject same flight number at the exact same departure
	existing, err := s.repo.Flight.FindByNumberAndDeparture(ctx, req.FlightNumber, req.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("check duplicate flight: %w", err)
	}
	if existing != nil {
		s.log.Warn("Duplicate flight inventory rejected",
			zap.String("flight_number", req.FlightNumber),
			zap.Time("departure_time", req.DepartureTime),
		)
		return nil, ErrDuplicateFlight
	}

	airline, err := s.resolveAirline(ctx, req.AirlineName, req.AirlineLogoURL, now)
	if err != nil {
		return nil, err
	}

	flight := &entity.Flight{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FlightNumber:   req.FlightNumber,
		FromPlace:      req.FromPlace,
		ToPlace:        req.ToPlace,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
		Price:          req.Price,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
		AirlineID:      airline.ID,
	}

	if err := s.repo.Flight.Create(ctx, flight); err != nil {
		s.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("flight_number", req.FlightNumber),
		)
		return nil, fmt.Errorf("create flight: %w", err)
	}

	s.log.Info("Flight inventory admitted",
		zap.String("flight_id", flight.ID.String()),
		zap.String("flight_number", flight.FlightNumber),
		zap.String("airline", airline.Name),
		zap.Int("total_seats", flight.TotalSeats),
	)

	return response.FlightToResponse(flight), nil
}

// SearchFlights returns flights on the route departing within the travel
// date. Results come from the redis cache when fresh enough.
func (s *flightService) SearchFlights(ctx context.Context, req *request.SearchFlightsRequest) ([]*response.FlightResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search flights validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if s.cache != nil {
		cached, err := s.cache.GetSearch(ctx, req.FromPlace, req.ToPlace, req.TravelDate)
		if err != nil {
			// Cache trouble is never fatal for search
			s.log.Warn("Flight search cache read failed", zap.Error(err))
		} else if cached != nil {
			return response.FlightsToResponse(cached), nil
		}
	}

	travelDate, err := time.Parse("2006-01-02", req.TravelDate)
	if err != nil {
		return nil, fmt.Errorf("invalid travel date %s: %w", req.TravelDate, err)
	}

	dayStart := travelDate
	dayEnd := travelDate.Add(24*time.Hour - time.Second)

	flights, err := s.repo.Flight.Search(ctx, req.FromPlace, req.ToPlace, dayStart, dayEnd)
	if err != nil {
		s.log.Error("Failed to search flights",
			zap.Error(err),
			zap.String("from", req.FromPlace),
			zap.String("to", req.ToPlace),
		)
		return nil, fmt.Errorf("search flights: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetSearch(ctx, req.FromPlace, req.ToPlace, req.TravelDate, flights); err != nil {
			s.log.Warn("Flight search cache write failed", zap.Error(err))
		}
	}

	s.log.Info("Flight search completed",
		zap.String("from", req.FromPlace),
		zap.String("to", req.ToPlace),
		zap.String("date", req.TravelDate),
		zap.Int("count", len(flights)),
	)

	return response.FlightsToResponse(flights), nil
}

func (s *flightService) GetFlightByID(ctx context.Context, flightID string) (*response.FlightResponse, error) {
	id, err := utils.ParseUUID(flightID)
	if err != nil {
		return nil, fmt.Errorf("invalid flight ID format %s: %w", flightID, err)
	}

	flight, err := s.repo.Flight.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get flight %s: %w", flightID, err)
	}
	if flight == nil {
		return nil, ErrFlightNotFound
	}

	return response.FlightToResponse(flight), nil
}

func (s *flightService) resolveAirline(ctx context.Context, name string, logoURL *string, now time.Time) (*entity.Airline, error) {
	airline, err := s.repo.Airline.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolve airline %s: %w", name, err)
	}
	if airline != nil {
		return airline, nil
	}

	airline = &entity.Airline{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    name,
		LogoURL: logoURL,
	}

	if err := s.repo.Airline.Create(ctx, airline); err != nil {
		return nil, fmt.Errorf("create airline %s: %w", name, err)
	}

	s.log.Info("Airline created",
		zap.String("airline_id", airline.ID.String()),
		zap.String("name", name),
	)

	return airline, nil
}
