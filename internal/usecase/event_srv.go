package usecase

import (
	"context"
	"errors"
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

type EventService interface {
	Refresh(ctx context.Context, from, to time.Time) ([]response.EventResponse, error)
	Create(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateEventRequest) (*response.EventResponse, error)
	Delete(ctx context.Context, id string) error

	// Read-side projections over the cache; no network fallback.
	ByID(id string) (*response.EventResponse, error)
	ByDay(date time.Time) []response.EventResponse
	ByWeek(date time.Time) []response.EventResponse
	Sections() []response.AgendaSection
}

// eventService owns the in-memory working set of calendar events. It is
// constructed once per process with injected repositories and clock, and is
// the single write path to the bookings collection: every create/update runs
// the mapper and, when the (date, time) cell changes, the availability
// reconciler.
type eventService struct {
	repo      *repository.Repository
	reconcile *reconciler
	clock     Clock
	log       *zap.Logger

	// The cache is replaced per refreshed range, not globally invalidated.
	// Reads may race writes; there is no transactional isolation, a refresh
	// racing a create can transiently miss the new record.
	mu    sync.RWMutex
	cache map[uuid.UUID]*entity.Event
}

func NewEventService(repo *repository.Repository, clock Clock, log *zap.Logger) EventService {
	return &eventService{
		repo:      repo,
		reconcile: newReconciler(repo.Availability, clock, log),
		clock:     clock,
		log:       log.With(zap.String("service", "event")),
		cache:     make(map[uuid.UUID]*entity.Event),
	}
}

func (s *eventService) Refresh(ctx context.Context, from, to time.Time) ([]response.EventResponse, error) {
	bookings, err := s.repo.Booking.FindByDateRange(ctx, from, to)
	if err != nil {
		s.log.Error("Failed to load bookings", zap.Error(err), zap.Time("from", from), zap.Time("to", to))
		return nil, fmt.Errorf("refresh events: %w", err)
	}

	events := make([]*entity.Event, 0, len(bookings))
	for _, booking := range bookings {
		event, err := eventFromBooking(booking)
		if err != nil {
			// Legacy rows with an unparseable time column are skipped,
			// not fatal: one bad record must not blank the calendar.
			s.log.Warn("Skipping unmappable booking",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
			continue
		}
		events = append(events, event)
	}

	s.mu.Lock()
	for id, cached := range s.cache {
		if !cached.StartDate.Before(from) && cached.StartDate.Before(to) {
			delete(s.cache, id)
		}
	}
	for _, event := range events {
		s.cache[event.ID] = event
	}
	s.mu.Unlock()

	s.log.Info("Events refreshed",
		zap.Time("from", from),
		zap.Time("to", to),
		zap.Int("count", len(events)),
	)

	return sortedResponses(events), nil
}

func (s *eventService) Create(ctx context.Context, req *request.CreateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create event validation failed", zap.Any("errors", errs))
		return nil, validationFieldsError(errs)
	}

	booking, err := bookingFromCreate(req, s.clock.Now())
	if err != nil {
		return nil, err
	}

	// The booking write is the durable operation; everything after it is
	// best-effort and must not fail the create.
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("name", booking.Name),
		)
		return nil, fmt.Errorf("create event: %w", err)
	}

	event, err := eventFromBooking(booking)
	if err != nil {
		// Cannot happen for a booking the mapper just built, but keep the
		// write visible to the caller either way.
		return nil, fmt.Errorf("map created booking: %w", err)
	}

	s.reconcile.bookingCreated(ctx, event.StartDate)

	// An explicit end or color from the creation flow is honored on the
	// returned event. Neither survives a reload: the booking row stores no
	// end or color column.
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.Color != "" {
		event.Color = req.Color
	}

	s.mu.Lock()
	s.cache[event.ID] = event
	s.mu.Unlock()

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("event_type", string(event.EventType)),
		zap.Time("start_date", event.StartDate),
	)

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) Update(ctx context.Context, id string, req *request.UpdateEventRequest) (*response.EventResponse, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, validationErrorf("invalid event ID %q", id)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update event validation failed", zap.Any("errors", errs))
		return nil, validationFieldsError(errs)
	}

	booking, err := s.repo.Booking.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: event %s", ErrNotFound, id)
	}

	oldStart, oldErr := bookingStart(booking)

	dateChanged, err := applyEventPatch(booking, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return nil, fmt.Errorf("update event: %w", err)
	}

	event, err := eventFromBooking(booking)
	if err != nil {
		return nil, fmt.Errorf("map updated booking: %w", err)
	}

	// Reconcile only when the appointment actually moved; updates that do
	// not touch date or time skip the availability index entirely.
	if dateChanged && oldErr == nil {
		s.reconcile.bookingMoved(ctx, oldStart, event.StartDate)
	}

	if req.EndDate != nil && req.EndDate.After(event.StartDate) {
		event.EndDate = *req.EndDate
	}
	if req.Color != nil && *req.Color != "" {
		event.Color = *req.Color
	}

	s.mu.Lock()
	s.cache[event.ID] = event
	s.mu.Unlock()

	s.log.Info("Event updated",
		zap.String("event_id", event.ID.String()),
		zap.Bool("date_changed", dateChanged),
	)

	resp := response.EventToResponse(event)
	return &resp, nil
}

// Delete removes the booking and drops it from the cache. It deliberately
// does NOT free the availability cell: the legacy contract leaves the cell
// marked occupied after a deletion. See DESIGN.md before "fixing" this.
func (s *eventService) Delete(ctx context.Context, id string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return validationErrorf("invalid event ID %q", id)
	}

	if err := s.repo.Booking.Delete(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: event %s", ErrNotFound, id)
		}
		return fmt.Errorf("delete event: %w", err)
	}

	s.mu.Lock()
	delete(s.cache, eventID)
	s.mu.Unlock()

	s.log.Info("Event deleted", zap.String("event_id", id))
	return nil
}

func (s *eventService) ByID(id string) (*response.EventResponse, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, validationErrorf("invalid event ID %q", id)
	}

	s.mu.RLock()
	event, ok := s.cache[eventID]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: event %s", ErrNotFound, id)
	}

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) ByDay(date time.Time) []response.EventResponse {
	return s.filtered(func(e *entity.Event) bool {
		return utils.SameDay(e.StartDate, date)
	})
}

// ByWeek returns the events of the Monday-based week containing date.
func (s *eventService) ByWeek(date time.Time) []response.EventResponse {
	weekStart := utils.StartOfWeek(date)
	weekEnd := weekStart.AddDate(0, 0, 7)

	return s.filtered(func(e *entity.Event) bool {
		return !e.StartDate.Before(weekStart) && e.StartDate.Before(weekEnd)
	})
}

// Sections buckets the cached events into the agenda view groups relative to
// the current day: today, tomorrow, rest of the (Monday-based) week, rest of
// the month, later. Empty buckets are dropped, events are sorted by start
// within each bucket. Past events are bucketed like "later" entries of their
// own day and naturally fall out on the next range refresh.
func (s *eventService) Sections() []response.AgendaSection {
	now := s.clock.Now()
	today := utils.DayOf(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := utils.StartOfWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)

	buckets := []response.AgendaSection{
		{Title: "Aujourd'hui"},
		{Title: "Demain"},
		{Title: "Cette semaine"},
		{Title: "Ce mois-ci"},
		{Title: "Plus tard"},
	}

	s.mu.RLock()
	for _, event := range s.cache {
		resp := response.EventToResponse(event)

		switch {
		case utils.SameDay(event.StartDate, today):
			buckets[0].Events = append(buckets[0].Events, resp)
		case utils.SameDay(event.StartDate, tomorrow):
			buckets[1].Events = append(buckets[1].Events, resp)
		case !event.StartDate.Before(weekStart) && event.StartDate.Before(weekEnd):
			buckets[2].Events = append(buckets[2].Events, resp)
		case event.StartDate.Year() == now.Year() && event.StartDate.Month() == now.Month():
			buckets[3].Events = append(buckets[3].Events, resp)
		default:
			buckets[4].Events = append(buckets[4].Events, resp)
		}
	}
	s.mu.RUnlock()

	sections := make([]response.AgendaSection, 0, len(buckets))
	for _, bucket := range buckets {
		if len(bucket.Events) == 0 {
			continue
		}
		sort.Slice(bucket.Events, func(i, j int) bool {
			return bucket.Events[i].StartDate.Before(bucket.Events[j].StartDate)
		})
		sections = append(sections, bucket)
	}

	return sections
}

// ==================== HELPERS ====================

func (s *eventService) filtered(keep func(*entity.Event) bool) []response.EventResponse {
	s.mu.RLock()
	var matched []*entity.Event
	for _, event := range s.cache {
		if keep(event) {
			matched = append(matched, event)
		}
	}
	s.mu.RUnlock()

	return sortedResponses(matched)
}

func sortedResponses(events []*entity.Event) []response.EventResponse {
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartDate.Before(events[j].StartDate)
	})

	responses := make([]response.EventResponse, len(events))
	for i, event := range events {
		responses[i] = response.EventToResponse(event)
	}
	return responses
}

// bookingStart recomputes the start instant of a persisted booking, used to
// derive the old availability key before a patch is applied.
func bookingStart(b *entity.Booking) (time.Time, error) {
	hour, minute, err := utils.ParseHHMM(b.Time)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), hour, minute, 0, 0, b.Date.Location()), nil
}
