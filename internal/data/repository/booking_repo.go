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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, name, service, date, time, address, message, email, phone, status, event_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Name,
		booking.Service,
		booking.Date,
		booking.Time,
		booking.Address,
		booking.Message,
		booking.Email,
		booking.Phone,
		booking.Status,
		nullableEventType(booking.EventType),
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("name", booking.Name),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, name, service, date, time, address, message, email, phone, status, event_type, created_at
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT id, name, service, date, time, address, message, email, phone, status, event_type, created_at
		FROM bookings
		WHERE date >= $1 AND date < $2
		ORDER BY date, time
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to find bookings by date range",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find bookings by date range: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET name = $2, service = $3, date = $4, time = $5, address = $6,
		    message = $7, email = $8, phone = $9, status = $10, event_type = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Name,
		booking.Service,
		booking.Date,
		booking.Time,
		booking.Address,
		booking.Message,
		booking.Email,
		booking.Phone,
		booking.Status,
		nullableEventType(booking.EventType),
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete booking %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

// scanBooking reads one booking row. event_type is nullable: rows written
// before the column existed stay NULL and map to the empty string.
func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	var eventType *string

	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Service,
		&booking.Date,
		&booking.Time,
		&booking.Address,
		&booking.Message,
		&booking.Email,
		&booking.Phone,
		&booking.Status,
		&eventType,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if eventType != nil {
		booking.EventType = entity.EventType(*eventType)
	}

	return &booking, nil
}

func nullableEventType(t entity.EventType) *string {
	if t == "" {
		return nil
	}
	s := string(t)
	return &s
}
