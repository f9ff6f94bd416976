package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-agenda/internal/data/entity"
	"salon-agenda/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func mustParseSlotID(t *testing.T, id string) uuid.UUID {
	t.Helper()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}

func newTestSlotService(env *testEnv) SlotService {
	return NewSlotService(env.repo, env.clock, zap.NewNop())
}

func createTestSlot(t *testing.T, svc SlotService, start time.Time) string {
	t.Helper()

	slot, err := svc.Create(context.Background(), &request.CreateSlotRequest{
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}
	return slot.ID
}

func TestCreateSlotDefaultsToAvailable(t *testing.T) {
	env := newTestEnv(time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local))
	svc := newTestSlotService(env)

	start := time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local)
	slot, err := svc.Create(context.Background(), &request.CreateSlotRequest{
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}

	if slot.Status != entity.SlotStatusAvailable {
		t.Errorf("status = %q, want available", slot.Status)
	}
	if !slot.CreatedAt.Equal(env.clock.now) {
		t.Errorf("created_at = %v, want clock instant", slot.CreatedAt)
	}
}

func TestCreateSlotRejectsInvertedRange(t *testing.T) {
	env := newTestEnv(time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local))
	svc := newTestSlotService(env)

	start := time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local)
	_, err := svc.Create(context.Background(), &request.CreateSlotRequest{
		StartDate: start,
		EndDate:   start, // zero-length window
	})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("err = %T (%v), want *ValidationError", err, err)
	}
}

func TestBookAvailableSlot(t *testing.T) {
	env := newTestEnv(time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local))
	svc := newTestSlotService(env)
	ctx := context.Background()

	id := createTestSlot(t, svc, time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local))

	slot, err := svc.Book(ctx, id, &request.BookSlotRequest{
		ClientName:  "Dupont",
		ClientPhone: "0612345678",
	})
	if err != nil {
		t.Fatal(err)
	}

	if slot.Status != entity.SlotStatusBooked {
		t.Errorf("status = %q, want booked", slot.Status)
	}
	if slot.ClientName == nil || *slot.ClientName != "Dupont" {
		t.Errorf("client name = %v, want Dupont", slot.ClientName)
	}
	if slot.ClientPhone == nil || *slot.ClientPhone != "0612345678" {
		t.Errorf("client phone = %v", slot.ClientPhone)
	}
	if !slot.UpdatedAt.Equal(env.clock.now) {
		t.Errorf("updated_at = %v, want clock instant", slot.UpdatedAt)
	}
}

func TestBookNonAvailableSlotRejected(t *testing.T) {
	env := newTestEnv(time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local))
	svc := newTestSlotService(env)
	ctx := context.Background()

	id := createTestSlot(t, svc, time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local))

	if _, err := svc.Book(ctx, id, &request.BookSlotRequest{ClientName: "Dupont"}); err != nil {
		t.Fatal(err)
	}

	// Second booking must fail and leave the slot untouched.
	_, err := svc.Book(ctx, id, &request.BookSlotRequest{ClientName: "Martin"})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}

	slot, err := svc.ByID(id)
	if err != nil {
		t.Fatal(err)
	}
	if slot.ClientName == nil || *slot.ClientName != "Dupont" {
		t.Errorf("client name = %v, want the first booker kept", slot.ClientName)
	}
}

func TestBookTerminalStatuses(t *testing.T) {
	env := newTestEnv(time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local))
	svc := newTestSlotService(env)
	ctx := context.Background()

	for _, status := range []entity.SlotStatus{entity.SlotStatusCancelled, entity.SlotStatusCompleted} {
		id := createTestSlot(t, svc, time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local))

		// Flip the stored status directly; completed has no service operation.
		stored, _ := env.slots.FindByID(ctx, mustParseSlotID(t, id))
		stored.Status = status
		env.slots.Update(ctx, stored)

		_, err := svc.Book(ctx, id, &request.BookSlotRequest{ClientName: "Dupont"})
		if !errors.Is(err, ErrInvalidState) {
			t.Errorf("booking %s slot: err = %v, want ErrInvalidState", status, err)
		}
	}
}

func TestBookSlotNotFound(t *testing.T) {
	env := newTestEnv(time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local))
	svc := newTestSlotService(env)

	_, err := svc.Book(context.Background(), "3b6f0f0e-5d55-4f39-9d2a-111111111111",
		&request.BookSlotRequest{ClientName: "Dupont"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCancelKeepsClientFields(t *testing.T) {
	env := newTestEnv(time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local))
	svc := newTestSlotService(env)
	ctx := context.Background()

	id := createTestSlot(t, svc, time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local))
	if _, err := svc.Book(ctx, id, &request.BookSlotRequest{ClientName: "Dupont"}); err != nil {
		t.Fatal(err)
	}

	slot, err := svc.Cancel(ctx, id)
	if err != nil {
		t.Fatal(err)
	}

	if slot.Status != entity.SlotStatusCancelled {
		t.Errorf("status = %q, want cancelled", slot.Status)
	}
	if slot.ClientName == nil || *slot.ClientName != "Dupont" {
		t.Errorf("client name = %v, want kept for history", slot.ClientName)
	}
}

func TestReCancelRestampsUpdatedAt(t *testing.T) {
	env := newTestEnv(time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local))
	ctx := context.Background()

	// Two service instances with different clocks over the same storage.
	first := NewSlotService(env.repo, fixedClock{now: time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)}, zap.NewNop())
	second := NewSlotService(env.repo, fixedClock{now: time.Date(2024, 6, 2, 9, 0, 0, 0, time.Local)}, zap.NewNop())

	id := createTestSlot(t, first, time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local))
	if _, err := first.Cancel(ctx, id); err != nil {
		t.Fatal(err)
	}

	slot, err := second.Cancel(ctx, id)
	if err != nil {
		t.Fatalf("re-cancel rejected: %v", err)
	}
	if !slot.UpdatedAt.Equal(time.Date(2024, 6, 2, 9, 0, 0, 0, time.Local)) {
		t.Errorf("updated_at = %v, want re-stamped by second cancel", slot.UpdatedAt)
	}
}

func TestInRangeAvailableOnly(t *testing.T) {
	env := newTestEnv(time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local))
	svc := newTestSlotService(env)
	ctx := context.Background()

	bookedID := createTestSlot(t, svc, time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local))
	createTestSlot(t, svc, time.Date(2024, 6, 10, 14, 0, 0, 0, time.Local))
	if _, err := svc.Book(ctx, bookedID, &request.BookSlotRequest{ClientName: "Dupont"}); err != nil {
		t.Fatal(err)
	}

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)

	available, err := svc.InRange(ctx, from, to, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(available) != 1 {
		t.Fatalf("available slots = %d, want 1", len(available))
	}
	if available[0].Status != entity.SlotStatusAvailable {
		t.Errorf("status = %q", available[0].Status)
	}

	// The filtered fetch must not evict the booked slot from the cache.
	if _, err := svc.ByID(bookedID); err != nil {
		t.Errorf("booked slot evicted by filtered fetch: %v", err)
	}

	all, err := svc.InRange(ctx, from, to, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("all slots = %d, want 2", len(all))
	}
}

func TestSlotsByDaySorted(t *testing.T) {
	env := newTestEnv(time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local))
	svc := newTestSlotService(env)

	createTestSlot(t, svc, time.Date(2024, 6, 10, 14, 0, 0, 0, time.Local))
	createTestSlot(t, svc, time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local))
	createTestSlot(t, svc, time.Date(2024, 6, 11, 9, 0, 0, 0, time.Local))

	slots := svc.ByDay(time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local))
	if len(slots) != 2 {
		t.Fatalf("slots = %d, want 2", len(slots))
	}
	if !slots[0].StartDate.Before(slots[1].StartDate) {
		t.Error("slots not sorted by start")
	}
}
