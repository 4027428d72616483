package usecase

import "errors"

// Caller-facing error kinds. Handlers match these with errors.Is; the
// messages double as the response body, so keep them user-readable.
var (
	ErrFlightNotFound           = errors.New("flight not found")
	ErrPastFlight               = errors.New("cannot book a flight that already departed")
	ErrInsufficientSeats        = errors.New("not enough seats available")
	ErrPassengerCountMismatch   = errors.New("passenger list size must equal number of seats")
	ErrDuplicateSeat            = errors.New("duplicate seat numbers in request")
	ErrDuplicateFlight          = errors.New("flight already exists with same flight number and departure time")
	ErrBookingNotFound          = errors.New("pnr not found")
	ErrAlreadyCanceled          = errors.New("booking already canceled")
	ErrFlightDeparted           = errors.New("flight already departed")
	ErrCancellationWindowClosed = errors.New("cannot cancel within 24 hours of departure")

	// ErrDataIntegrity marks corrupted state (e.g. a booking whose flight
	// vanished). Details go to the log; callers only see this message.
	ErrDataIntegrity = errors.New("internal data inconsistency")
)
