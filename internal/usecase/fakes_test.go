package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"salon-agenda/internal/data/entity"
	"salon-agenda/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. They keep value copies so the services cannot
// accidentally share mutable state with "storage".

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// ==================== BOOKING FAKE ====================

type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]entity.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[uuid.UUID]entity.Booking)}
}

func (m *memBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = *booking
	return nil
}

func (m *memBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := booking
	return &copied, nil
}

func (m *memBookingRepo) FindByDateRange(_ context.Context, from, to time.Time) ([]*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*entity.Booking
	for _, booking := range m.bookings {
		if !booking.Date.Before(from) && booking.Date.Before(to) {
			copied := booking
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *memBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[booking.ID]; !ok {
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), repository.ErrNotFound)
	}
	m.bookings[booking.ID] = *booking
	return nil
}

func (m *memBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return fmt.Errorf("delete booking %s: %w", id.String(), repository.ErrNotFound)
	}
	delete(m.bookings, id)
	return nil
}

// ==================== SLOT FAKE ====================

type memSlotRepo struct {
	mu    sync.Mutex
	slots map[uuid.UUID]entity.Slot
}

func newMemSlotRepo() *memSlotRepo {
	return &memSlotRepo{slots: make(map[uuid.UUID]entity.Slot)}
}

func (m *memSlotRepo) Create(_ context.Context, slot *entity.Slot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot.ID] = *slot
	return nil
}

func (m *memSlotRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	slot, ok := m.slots[id]
	if !ok {
		return nil, nil
	}
	copied := slot
	return &copied, nil
}

func (m *memSlotRepo) FindByDateRange(_ context.Context, from, to time.Time) ([]*entity.Slot, error) {
	return m.find(from, to, false)
}

func (m *memSlotRepo) FindAvailableByDateRange(_ context.Context, from, to time.Time) ([]*entity.Slot, error) {
	return m.find(from, to, true)
}

func (m *memSlotRepo) find(from, to time.Time, availableOnly bool) ([]*entity.Slot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*entity.Slot
	for _, slot := range m.slots {
		if slot.StartDate.Before(from) || !slot.StartDate.Before(to) {
			continue
		}
		if availableOnly && slot.Status != entity.SlotStatusAvailable {
			continue
		}
		copied := slot
		result = append(result, &copied)
	}
	return result, nil
}

func (m *memSlotRepo) Update(_ context.Context, slot *entity.Slot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.slots[slot.ID]; !ok {
		return fmt.Errorf("update slot %s: %w", slot.ID.String(), repository.ErrNotFound)
	}
	m.slots[slot.ID] = *slot
	return nil
}

// ==================== AVAILABILITY FAKE ====================

// memAvailabilityRepo records every upsert in order and can be told to fail
// writes to specific keys.
type memAvailabilityRepo struct {
	mu     sync.Mutex
	slots  map[string]entity.AvailabilitySlot
	ops    []string
	failOn map[string]bool
}

func newMemAvailabilityRepo() *memAvailabilityRepo {
	return &memAvailabilityRepo{
		slots:  make(map[string]entity.AvailabilitySlot),
		failOn: make(map[string]bool),
	}
}

func (m *memAvailabilityRepo) Upsert(_ context.Context, slot *entity.AvailabilitySlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn[slot.ID] {
		return fmt.Errorf("upsert availability slot %s: injected failure", slot.ID)
	}
	m.slots[slot.ID] = *slot
	m.ops = append(m.ops, fmt.Sprintf("%s=%t", slot.ID, slot.IsAvailable))
	return nil
}

func (m *memAvailabilityRepo) FindByID(_ context.Context, id string) (*entity.AvailabilitySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	slot, ok := m.slots[id]
	if !ok {
		return nil, nil
	}
	copied := slot
	return &copied, nil
}

func (m *memAvailabilityRepo) operations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ops...)
}

// ==================== TEST WIRING ====================

type testEnv struct {
	repo         *repository.Repository
	bookings     *memBookingRepo
	slots        *memSlotRepo
	availability *memAvailabilityRepo
	clock        fixedClock
}

func newTestEnv(now time.Time) *testEnv {
	bookings := newMemBookingRepo()
	slots := newMemSlotRepo()
	availability := newMemAvailabilityRepo()

	return &testEnv{
		repo: &repository.Repository{
			Booking:      bookings,
			Slot:         slots,
			Availability: availability,
		},
		bookings:     bookings,
		slots:        slots,
		availability: availability,
		clock:        fixedClock{now: now},
	}
}
