package request

import "time"

type CreateSlotRequest struct {
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	Service   *string   `json:"service,omitempty" validate:"omitempty,max=100"`
	Price     *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Location  *string   `json:"location,omitempty" validate:"omitempty,max=500"`
	Notes     *string   `json:"notes,omitempty" validate:"omitempty,max=2000"`
	Status    string    `json:"status" validate:"omitempty,oneof=available booked cancelled completed"`
}

type BookSlotRequest struct {
	ClientName  string `json:"client_name" validate:"required,max=200"`
	ClientPhone string `json:"client_phone" validate:"omitempty,max=30"`
	ClientEmail string `json:"client_email" validate:"omitempty,email"`
}
