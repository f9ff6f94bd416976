package usecase

import (
	"salon-agenda/internal/data/repository"
	"salon-agenda/pkg/utils"

	"go.uber.org/zap"
)

// Service groups the application services behind one handle.
type Service struct {
	Auth  AuthService
	Event EventService
	Slot  SlotService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	clock := SystemClock{}

	return &Service{
		Auth:  NewAuthService(repo, config, clock, log),
		Event: NewEventService(repo, clock, log),
		Slot:  NewSlotService(repo, clock, log),
	}
}
