package repository

import (
	"context"
	"fmt"
	"time"

	"salon-agenda/internal/data/entity"
	"salon-agenda/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SlotRepository interface {
	Create(ctx context.Context, slot *entity.Slot) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Slot, error)
	FindAvailableByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Slot, error)
	Update(ctx context.Context, slot *entity.Slot) error
}

type slotRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSlotRepository(db database.PgxIface, log *zap.Logger) SlotRepository {
	return &slotRepository{
		db:  db,
		log: log.With(zap.String("repository", "slot")),
	}
}

const slotColumns = `id, start_date, end_date, service, price, location, notes, status,
	client_name, client_phone, client_email, created_at, updated_at`

func (r *slotRepository) Create(ctx context.Context, slot *entity.Slot) error {
	query := `
		INSERT INTO slots (id, start_date, end_date, service, price, location, notes, status,
		                   client_name, client_phone, client_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.StartDate,
		slot.EndDate,
		slot.Service,
		slot.Price,
		slot.Location,
		slot.Notes,
		slot.Status,
		slot.ClientName,
		slot.ClientPhone,
		slot.ClientEmail,
		slot.CreatedAt,
		slot.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create slot",
			zap.Error(err),
			zap.String("slot_id", slot.ID.String()),
			zap.Time("start_date", slot.StartDate),
		)
		return fmt.Errorf("create slot %s: %w", slot.ID.String(), err)
	}

	return nil
}

func (r *slotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM slots WHERE id = $1`

	slot, err := scanSlot(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find slot by ID",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return nil, fmt.Errorf("find slot by ID %s: %w", id.String(), err)
	}

	return slot, nil
}

func (r *slotRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE start_date >= $1 AND start_date < $2
		ORDER BY start_date
	`

	return r.querySlots(ctx, query, from, to)
}

func (r *slotRepository) FindAvailableByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Slot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM slots
		WHERE start_date >= $1 AND start_date < $2 AND status = 'available'
		ORDER BY start_date
	`

	return r.querySlots(ctx, query, from, to)
}

func (r *slotRepository) Update(ctx context.Context, slot *entity.Slot) error {
	query := `
		UPDATE slots
		SET start_date = $2, end_date = $3, service = $4, price = $5, location = $6,
		    notes = $7, status = $8, client_name = $9, client_phone = $10,
		    client_email = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.StartDate,
		slot.EndDate,
		slot.Service,
		slot.Price,
		slot.Location,
		slot.Notes,
		slot.Status,
		slot.ClientName,
		slot.ClientPhone,
		slot.ClientEmail,
		slot.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update slot",
			zap.Error(err),
			zap.String("slot_id", slot.ID.String()),
		)
		return fmt.Errorf("update slot %s: %w", slot.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update slot %s: %w", slot.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *slotRepository) querySlots(ctx context.Context, query string, from, to time.Time) ([]*entity.Slot, error) {
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to query slots",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("query slots by date range: %w", err)
	}
	defer rows.Close()

	var slots []*entity.Slot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			r.log.Error("Failed to scan slot row", zap.Error(err))
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

func scanSlot(row pgx.Row) (*entity.Slot, error) {
	var slot entity.Slot
	err := row.Scan(
		&slot.ID,
		&slot.StartDate,
		&slot.EndDate,
		&slot.Service,
		&slot.Price,
		&slot.Location,
		&slot.Notes,
		&slot.Status,
		&slot.ClientName,
		&slot.ClientPhone,
		&slot.ClientEmail,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}
