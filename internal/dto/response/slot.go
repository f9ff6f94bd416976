package response

import (
	"time"

	"salon-agenda/internal/data/entity"
)

type SlotResponse struct {
	ID          string            `json:"id"`
	StartDate   time.Time         `json:"start_date"`
	EndDate     time.Time         `json:"end_date"`
	Service     *string           `json:"service,omitempty"`
	Price       *float64          `json:"price,omitempty"`
	Location    *string           `json:"location,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
	Status      entity.SlotStatus `json:"status"`
	ClientName  *string           `json:"client_name,omitempty"`
	ClientPhone *string           `json:"client_phone,omitempty"`
	ClientEmail *string           `json:"client_email,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func SlotToResponse(s *entity.Slot) SlotResponse {
	return SlotResponse{
		ID:          s.ID.String(),
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		Service:     s.Service,
		Price:       s.Price,
		Location:    s.Location,
		Notes:       s.Notes,
		Status:      s.Status,
		ClientName:  s.ClientName,
		ClientPhone: s.ClientPhone,
		ClientEmail: s.ClientEmail,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
