package repository

import (
	"context"
	"fmt"

	"salon-agenda/internal/data/entity"
	"salon-agenda/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AvailabilityRepository interface {
	// Upsert creates the record if absent and overwrites its fields if
	// present. Records are never deleted; freeing a cell is an upsert
	// with is_available = true.
	Upsert(ctx context.Context, slot *entity.AvailabilitySlot) error
	FindByID(ctx context.Context, id string) (*entity.AvailabilitySlot, error)
}

type availabilityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAvailabilityRepository(db database.PgxIface, log *zap.Logger) AvailabilityRepository {
	return &availabilityRepository{
		db:  db,
		log: log.With(zap.String("repository", "availability")),
	}
}

func (r *availabilityRepository) Upsert(ctx context.Context, slot *entity.AvailabilitySlot) error {
	query := `
		INSERT INTO availability_slots (id, date, time, is_available, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET is_available = EXCLUDED.is_available, last_updated = EXCLUDED.last_updated
	`

	_, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.Date,
		slot.Time,
		slot.IsAvailable,
		slot.LastUpdated,
	)

	if err != nil {
		r.log.Error("Failed to upsert availability slot",
			zap.Error(err),
			zap.String("slot_key", slot.ID),
			zap.Bool("is_available", slot.IsAvailable),
		)
		return fmt.Errorf("upsert availability slot %s: %w", slot.ID, err)
	}

	return nil
}

func (r *availabilityRepository) FindByID(ctx context.Context, id string) (*entity.AvailabilitySlot, error) {
	query := `
		SELECT id, date, time, is_available, last_updated
		FROM availability_slots
		WHERE id = $1
	`

	var slot entity.AvailabilitySlot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.Date,
		&slot.Time,
		&slot.IsAvailable,
		&slot.LastUpdated,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find availability slot",
			zap.Error(err),
			zap.String("slot_key", id),
		)
		return nil, fmt.Errorf("find availability slot %s: %w", id, err)
	}

	return &slot, nil
}
