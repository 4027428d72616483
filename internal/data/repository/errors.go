package repository

import "errors"

// Sentinel errors surfaced by conditional writes. The service layer
// translates these into its caller-facing taxonomy.
var (
	// ErrDuplicatePNR means the generated PNR hit the unique index.
	ErrDuplicatePNR = errors.New("booking pnr already taken")

	// ErrSeatsUnavailable means the conditional decrement found fewer
	// seats than requested.
	ErrSeatsUnavailable = errors.New("not enough seats available")

	// ErrSeatsOverflow means restoring seats would push available_seats
	// past total_seats. Indicates corrupted state.
	ErrSeatsOverflow = errors.New("seat restore would exceed total seats")

	// ErrAlreadyCanceled means the conditional cancel found the booking
	// already canceled.
	ErrAlreadyCanceled = errors.New("booking already canceled")
)
