package repository

import (
	"errors"

	"salon-agenda/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by mutations that matched no row.
// Find methods return (nil, nil) for a missing record instead.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Booking      BookingRepository
	Slot         SlotRepository
	Availability AvailabilityRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Slot:         NewSlotRepository(db, log),
		Availability: NewAvailabilityRepository(db, log),
	}
}
