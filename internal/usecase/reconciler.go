package usecase

import (
	"context"
	"time"

	"salon-agenda/internal/data/entity"
	"salon-agenda/internal/data/repository"

	"go.uber.org/zap"
)

// reconciler keeps the availability side index in sync with booking writes.
//
// The index is best-effort by contract: the booking row is the source of
// truth and has already been written when the reconciler runs, so an index
// write failure must never fail the caller's operation. Every failure is
// logged and swallowed, and the index is allowed to drift until a later
// write touches the same cell.
type reconciler struct {
	availability repository.AvailabilityRepository
	clock        Clock
	log          *zap.Logger
}

func newReconciler(availability repository.AvailabilityRepository, clock Clock, log *zap.Logger) *reconciler {
	return &reconciler{
		availability: availability,
		clock:        clock,
		log:          log.With(zap.String("service", "reconciler")),
	}
}

// bookingCreated marks the (date, time) cell of a new booking as occupied.
func (r *reconciler) bookingCreated(ctx context.Context, start time.Time) {
	if err := r.mark(ctx, start, false); err != nil {
		r.log.Warn("Availability index not updated after create",
			zap.Error(err),
			zap.String("slot_key", entity.AvailabilityKey(start)),
		)
	}
}

// bookingMoved frees the old cell and occupies the new one, in that order.
// The ordering is load-bearing: if the second write is lost, the old cell is
// wrongly free rather than both cells wrongly occupied. The two writes are
// issued sequentially, never concurrently, for the same reason.
func (r *reconciler) bookingMoved(ctx context.Context, oldStart, newStart time.Time) {
	if err := r.mark(ctx, oldStart, true); err != nil {
		r.log.Warn("Old availability slot not freed after move",
			zap.Error(err),
			zap.String("slot_key", entity.AvailabilityKey(oldStart)),
		)
	}

	if err := r.mark(ctx, newStart, false); err != nil {
		r.log.Warn("New availability slot not occupied after move",
			zap.Error(err),
			zap.String("slot_key", entity.AvailabilityKey(newStart)),
		)
	}
}

// mark merge-upserts one cell. Records are created on first touch and never
// deleted afterwards.
func (r *reconciler) mark(ctx context.Context, start time.Time, available bool) error {
	slot := entity.NewAvailabilitySlot(start, available, r.clock.Now())
	return r.availability.Upsert(ctx, slot)
}
