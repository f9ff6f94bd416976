package usecase

import (
	"context"
	"testing"
	"time"

	"salon-agenda/internal/data/entity"

	"go.uber.org/zap"
)

func TestAvailabilityKeyFormat(t *testing.T) {
	start := time.Date(2024, 3, 5, 9, 30, 0, 0, time.Local)

	if got := entity.AvailabilityKey(start); got != "2024-03-05_0930" {
		t.Errorf("key = %q, want %q", got, "2024-03-05_0930")
	}

	// Midnight and single-digit components stay zero-padded.
	midnight := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)
	if got := entity.AvailabilityKey(midnight); got != "2024-01-02_0000" {
		t.Errorf("key = %q, want %q", got, "2024-01-02_0000")
	}
}

func newTestReconciler(env *testEnv) *reconciler {
	return newReconciler(env.availability, env.clock, zap.NewNop())
}

func TestBookingCreatedMarksOccupied(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)
	env := newTestEnv(now)
	r := newTestReconciler(env)

	start := time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local)
	r.bookingCreated(context.Background(), start)

	slot, err := env.availability.FindByID(context.Background(), "2024-06-10_1000")
	if err != nil {
		t.Fatal(err)
	}
	if slot == nil {
		t.Fatal("availability record not created")
	}
	if slot.IsAvailable {
		t.Error("cell still marked available after create")
	}
	if slot.Time != "10:00" {
		t.Errorf("time column = %q, want 10:00", slot.Time)
	}
	if !slot.LastUpdated.Equal(now) {
		t.Errorf("last_updated = %v, want clock instant %v", slot.LastUpdated, now)
	}
}

func TestBookingMovedFreesOldThenOccupiesNew(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)
	env := newTestEnv(now)
	r := newTestReconciler(env)

	oldStart := time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local)
	newStart := time.Date(2024, 6, 12, 11, 0, 0, 0, time.Local)

	r.bookingCreated(context.Background(), oldStart)
	r.bookingMoved(context.Background(), oldStart, newStart)

	oldSlot, _ := env.availability.FindByID(context.Background(), "2024-06-10_1000")
	newSlot, _ := env.availability.FindByID(context.Background(), "2024-06-12_1100")

	if oldSlot == nil || !oldSlot.IsAvailable {
		t.Errorf("old cell = %+v, want freed", oldSlot)
	}
	if newSlot == nil || newSlot.IsAvailable {
		t.Errorf("new cell = %+v, want occupied", newSlot)
	}

	// Free-old must be issued before occupy-new.
	ops := env.availability.operations()
	want := []string{
		"2024-06-10_1000=false",
		"2024-06-10_1000=true",
		"2024-06-12_1100=false",
	}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op[%d] = %q, want %q", i, ops[i], want[i])
		}
	}
}

func TestBookingMovedOldFailureStillOccupiesNew(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)
	env := newTestEnv(now)
	r := newTestReconciler(env)

	oldStart := time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local)
	newStart := time.Date(2024, 6, 12, 11, 0, 0, 0, time.Local)

	env.availability.failOn["2024-06-10_1000"] = true

	// Must not panic or skip the second write when the first fails.
	r.bookingMoved(context.Background(), oldStart, newStart)

	newSlot, _ := env.availability.FindByID(context.Background(), "2024-06-12_1100")
	if newSlot == nil || newSlot.IsAvailable {
		t.Errorf("new cell = %+v, want occupied despite old-cell failure", newSlot)
	}
}

func TestMarkOverwritesExistingRecord(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)
	env := newTestEnv(now)
	r := newTestReconciler(env)

	start := time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local)

	r.bookingCreated(context.Background(), start)
	r.bookingMoved(context.Background(), start, time.Date(2024, 6, 11, 10, 0, 0, 0, time.Local))
	r.bookingCreated(context.Background(), start)

	// Same cell touched three times: one record, latest state wins.
	slot, _ := env.availability.FindByID(context.Background(), "2024-06-10_1000")
	if slot == nil {
		t.Fatal("record missing")
	}
	if slot.IsAvailable {
		t.Error("cell available, want occupied after final create")
	}
}
