package request

type PassengerRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	Gender     string `json:"gender" validate:"required,oneof=male female other"`
	Age        int    `json:"age" validate:"required,gt=0"`
	SeatNumber string `json:"seat_number" validate:"required,min=1,max=4"`
	Meal       string `json:"meal,omitempty"`
}

type CreateBookingRequest struct {
	Email         string             `json:"email" validate:"required,email"`
	NumberOfSeats int                `json:"number_of_seats" validate:"required,min=1"`
	Passengers    []PassengerRequest `json:"passengers" validate:"required,min=1,dive"`
}
