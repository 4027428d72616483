package usecase

import (
	"context"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/events"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

// FlightCache is the advisory search cache. Nil is a valid value:
// services fall through to the store.
type FlightCache interface {
	GetSearch(ctx context.Context, fromPlace, toPlace, travelDate string) ([]*entity.Flight, error)
	SetSearch(ctx context.Context, fromPlace, toPlace, travelDate string, flights []*entity.Flight) error
}

// EventPublisher emits booking lifecycle events. Nil disables publishing.
type EventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
}

type Service struct {
	Flight  FlightService
	Booking BookingService
}

func NewService(repo *repository.Repository, flightCache FlightCache, publisher EventPublisher, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Flight:  NewFlightService(repo, flightCache, log),
		Booking: NewBookingService(repo, publisher, log),
	}
}
