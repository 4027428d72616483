package usecase

import (
	"context"
	"sync"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// stubTx runs the transactional closure directly. Repository mocks see the
// same context the caller passed in.
type stubTx struct{}

func (stubTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type MockFlightRepo struct {
	mock.Mock
}

func (m *MockFlightRepo) Create(ctx context.Context, flight *entity.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepo) FindByNumberAndDeparture(ctx context.Context, flightNumber string, departureTime time.Time) (*entity.Flight, error) {
	args := m.Called(ctx, flightNumber, departureTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepo) Search(ctx context.Context, fromPlace, toPlace string, dayStart, dayEnd time.Time) ([]*entity.Flight, error) {
	args := m.Called(ctx, fromPlace, toPlace, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Flight), args.Error(1)
}

func (m *MockFlightRepo) ReserveSeats(ctx context.Context, flightID uuid.UUID, seats int) error {
	args := m.Called(ctx, flightID, seats)
	return args.Error(0)
}

func (m *MockFlightRepo) ReleaseSeats(ctx context.Context, flightID uuid.UUID, seats int) error {
	args := m.Called(ctx, flightID, seats)
	return args.Error(0)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) FindByPNR(ctx context.Context, pnr string) (*entity.Booking, error) {
	args := m.Called(ctx, pnr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepo) MarkCanceled(ctx context.Context, bookingID uuid.UUID, canceledAt time.Time) error {
	args := m.Called(ctx, bookingID, canceledAt)
	return args.Error(0)
}

type MockPassengerRepo struct {
	mock.Mock
}

func (m *MockPassengerRepo) Create(ctx context.Context, passenger *entity.Passenger) error {
	args := m.Called(ctx, passenger)
	return args.Error(0)
}

func (m *MockPassengerRepo) CreateBatch(ctx context.Context, passengers []*entity.Passenger) error {
	args := m.Called(ctx, passengers)
	return args.Error(0)
}

func (m *MockPassengerRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Passenger, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Passenger), args.Error(1)
}

type MockAirlineRepo struct {
	mock.Mock
}

func (m *MockAirlineRepo) Create(ctx context.Context, airline *entity.Airline) error {
	args := m.Called(ctx, airline)
	return args.Error(0)
}

func (m *MockAirlineRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Airline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Airline), args.Error(1)
}

func (m *MockAirlineRepo) FindByName(ctx context.Context, name string) (*entity.Airline, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Airline), args.Error(1)
}

type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) GetSearch(ctx context.Context, fromPlace, toPlace, travelDate string) ([]*entity.Flight, error) {
	args := m.Called(ctx, fromPlace, toPlace, travelDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Flight), args.Error(1)
}

func (m *MockFlightCache) SetSearch(ctx context.Context, fromPlace, toPlace, travelDate string, flights []*entity.Flight) error {
	args := m.Called(ctx, fromPlace, toPlace, travelDate, flights)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// fakeFlightStore serializes seat adjustments behind a mutex, mirroring the
// conditional UPDATE the real store runs.
type fakeFlightStore struct {
	mu     sync.Mutex
	flight *entity.Flight
}

func (f *fakeFlightStore) Create(ctx context.Context, flight *entity.Flight) error {
	return nil
}

func (f *fakeFlightStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.flight == nil || f.flight.ID != id {
		return nil, nil
	}
	copied := *f.flight
	return &copied, nil
}

func (f *fakeFlightStore) FindByNumberAndDeparture(ctx context.Context, flightNumber string, departureTime time.Time) (*entity.Flight, error) {
	return nil, nil
}

func (f *fakeFlightStore) Search(ctx context.Context, fromPlace, toPlace string, dayStart, dayEnd time.Time) ([]*entity.Flight, error) {
	return nil, nil
}

func (f *fakeFlightStore) ReserveSeats(ctx context.Context, flightID uuid.UUID, seats int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.flight == nil || f.flight.ID != flightID || f.flight.AvailableSeats < seats {
		return repository.ErrSeatsUnavailable
	}
	f.flight.AvailableSeats -= seats
	return nil
}

func (f *fakeFlightStore) ReleaseSeats(ctx context.Context, flightID uuid.UUID, seats int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.flight == nil || f.flight.ID != flightID || f.flight.AvailableSeats+seats > f.flight.TotalSeats {
		return repository.ErrSeatsOverflow
	}
	f.flight.AvailableSeats += seats
	return nil
}

func (f *fakeFlightStore) availableSeats() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flight.AvailableSeats
}

type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []*entity.Booking
}

func (f *fakeBookingStore) Create(ctx context.Context, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.PNR == booking.PNR {
			return repository.ErrDuplicatePNR
		}
	}
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingStore) FindByPNR(ctx context.Context, pnr string) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.PNR == pnr {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingStore) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.Email == email {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) MarkCanceled(ctx context.Context, bookingID uuid.UUID, canceledAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == bookingID {
			if b.Canceled {
				return repository.ErrAlreadyCanceled
			}
			b.Canceled = true
			b.CanceledAt = &canceledAt
			return nil
		}
	}
	return repository.ErrAlreadyCanceled
}

func (f *fakeBookingStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

type fakePassengerStore struct {
	mu         sync.Mutex
	passengers []*entity.Passenger
}

func (f *fakePassengerStore) Create(ctx context.Context, passenger *entity.Passenger) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.passengers = append(f.passengers, passenger)
	return nil
}

func (f *fakePassengerStore) CreateBatch(ctx context.Context, passengers []*entity.Passenger) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.passengers = append(f.passengers, passengers...)
	return nil
}

func (f *fakePassengerStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Passenger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Passenger
	for _, p := range f.passengers {
		if p.BookingID == bookingID {
			out = append(out, p)
		}
	}
	return out, nil
}
