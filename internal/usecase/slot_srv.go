package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"salon-agenda/internal/data/entity"
	"salon-agenda/internal/data/repository"
	"salon-agenda/internal/dto/request"
	"salon-agenda/internal/dto/response"
	"salon-agenda/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SlotService interface {
	Create(ctx context.Context, req *request.CreateSlotRequest) (*response.SlotResponse, error)
	Book(ctx context.Context, id string, req *request.BookSlotRequest) (*response.SlotResponse, error)
	Cancel(ctx context.Context, id string) (*response.SlotResponse, error)
	InRange(ctx context.Context, from, to time.Time, availableOnly bool) ([]response.SlotResponse, error)

	// Cache-only reads
	ByID(id string) (*response.SlotResponse, error)
	ByDay(date time.Time) []response.SlotResponse
}

// slotService drives the standalone slot lifecycle:
// available -> booked -> cancelled, with completed set externally.
// cancelled and completed are terminal for every operation here.
type slotService struct {
	repo  *repository.Repository
	clock Clock
	log   *zap.Logger

	mu    sync.RWMutex
	cache map[uuid.UUID]*entity.Slot
}

func NewSlotService(repo *repository.Repository, clock Clock, log *zap.Logger) SlotService {
	return &slotService{
		repo:  repo,
		clock: clock,
		log:   log.With(zap.String("service", "slot")),
		cache: make(map[uuid.UUID]*entity.Slot),
	}
}

func (s *slotService) Create(ctx context.Context, req *request.CreateSlotRequest) (*response.SlotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create slot validation failed", zap.Any("errors", errs))
		return nil, validationFieldsError(errs)
	}

	if !req.EndDate.After(req.StartDate) {
		return nil, validationErrorf("end date must be after start date")
	}

	status := entity.SlotStatusAvailable
	if req.Status != "" {
		status = entity.SlotStatus(req.Status)
	}

	now := s.clock.Now()
	slot := &entity.Slot{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Service:   req.Service,
		Price:     req.Price,
		Location:  req.Location,
		Notes:     req.Notes,
		Status:    status,
	}

	if err := s.repo.Slot.Create(ctx, slot); err != nil {
		s.log.Error("Failed to create slot", zap.Error(err), zap.Time("start_date", slot.StartDate))
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.mu.Lock()
	s.cache[slot.ID] = slot
	s.mu.Unlock()

	s.log.Info("Slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.Time("start_date", slot.StartDate),
		zap.String("status", string(slot.Status)),
	)

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

func (s *slotService) Book(ctx context.Context, id string, req *request.BookSlotRequest) (*response.SlotResponse, error) {
	slotID, err := uuid.Parse(id)
	if err != nil {
		return nil, validationErrorf("invalid slot ID %q", id)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book slot validation failed", zap.Any("errors", errs))
		return nil, validationFieldsError(errs)
	}

	slot, err := s.repo.Slot.FindByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("book slot: %w", err)
	}
	if slot == nil {
		return nil, fmt.Errorf("%w: slot %s", ErrNotFound, id)
	}

	// Booking anything but an available slot is rejected, never silently
	// overwritten; the slot is left untouched.
	if slot.Status != entity.SlotStatusAvailable {
		return nil, fmt.Errorf("%w: slot %s is %s, not available", ErrInvalidState, id, slot.Status)
	}

	slot.Status = entity.SlotStatusBooked
	slot.ClientName = &req.ClientName
	if req.ClientPhone != "" {
		slot.ClientPhone = &req.ClientPhone
	}
	if req.ClientEmail != "" {
		slot.ClientEmail = &req.ClientEmail
	}
	slot.UpdatedAt = s.clock.Now()

	if err := s.repo.Slot.Update(ctx, slot); err != nil {
		s.log.Error("Failed to book slot", zap.Error(err), zap.String("slot_id", id))
		return nil, fmt.Errorf("book slot %s: %w", id, err)
	}

	s.mu.Lock()
	s.cache[slot.ID] = slot
	s.mu.Unlock()

	s.log.Info("Slot booked",
		zap.String("slot_id", id),
		zap.String("client_name", req.ClientName),
	)

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

// Cancel marks the slot cancelled and keeps the client fields for history.
// Cancelling an already-cancelled slot is allowed and just re-stamps
// updated_at; that is accepted behavior, not a bug.
func (s *slotService) Cancel(ctx context.Context, id string) (*response.SlotResponse, error) {
	slotID, err := uuid.Parse(id)
	if err != nil {
		return nil, validationErrorf("invalid slot ID %q", id)
	}

	slot, err := s.repo.Slot.FindByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("cancel slot: %w", err)
	}
	if slot == nil {
		return nil, fmt.Errorf("%w: slot %s", ErrNotFound, id)
	}

	slot.Status = entity.SlotStatusCancelled
	slot.UpdatedAt = s.clock.Now()

	if err := s.repo.Slot.Update(ctx, slot); err != nil {
		s.log.Error("Failed to cancel slot", zap.Error(err), zap.String("slot_id", id))
		return nil, fmt.Errorf("cancel slot %s: %w", id, err)
	}

	s.mu.Lock()
	s.cache[slot.ID] = slot
	s.mu.Unlock()

	s.log.Info("Slot cancelled", zap.String("slot_id", id))

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

func (s *slotService) InRange(ctx context.Context, from, to time.Time, availableOnly bool) ([]response.SlotResponse, error) {
	var slots []*entity.Slot
	var err error

	if availableOnly {
		slots, err = s.repo.Slot.FindAvailableByDateRange(ctx, from, to)
	} else {
		slots, err = s.repo.Slot.FindByDateRange(ctx, from, to)
	}
	if err != nil {
		s.log.Error("Failed to load slots", zap.Error(err), zap.Time("from", from), zap.Time("to", to))
		return nil, fmt.Errorf("load slots: %w", err)
	}

	s.mu.Lock()
	if !availableOnly {
		// A full-range fetch replaces the cached range; a filtered fetch
		// only merges, it must not evict booked slots it did not see.
		for id, cached := range s.cache {
			if !cached.StartDate.Before(from) && cached.StartDate.Before(to) {
				delete(s.cache, id)
			}
		}
	}
	for _, slot := range slots {
		s.cache[slot.ID] = slot
	}
	s.mu.Unlock()

	responses := make([]response.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = response.SlotToResponse(slot)
	}
	return responses, nil
}

func (s *slotService) ByID(id string) (*response.SlotResponse, error) {
	slotID, err := uuid.Parse(id)
	if err != nil {
		return nil, validationErrorf("invalid slot ID %q", id)
	}

	s.mu.RLock()
	slot, ok := s.cache[slotID]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: slot %s", ErrNotFound, id)
	}

	resp := response.SlotToResponse(slot)
	return &resp, nil
}

func (s *slotService) ByDay(date time.Time) []response.SlotResponse {
	s.mu.RLock()
	var matched []*entity.Slot
	for _, slot := range s.cache {
		if utils.SameDay(slot.StartDate, date) {
			matched = append(matched, slot)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].StartDate.Before(matched[j].StartDate)
	})

	responses := make([]response.SlotResponse, len(matched))
	for i, slot := range matched {
		responses[i] = response.SlotToResponse(slot)
	}
	return responses
}
