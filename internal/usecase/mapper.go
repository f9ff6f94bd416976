package usecase

import (
	"strings"
	"time"

	"salon-agenda/internal/data/entity"
	"salon-agenda/internal/dto/request"
	"salon-agenda/pkg/utils"

	"github.com/google/uuid"
)

// titleSeparator joins service and client name into the booking title.
// Professional booking identity is partly encoded in this display string;
// this is a legacy convention kept for compatibility with existing rows,
// not a design to extend. The explicit ClientName field on Event is parsed
// back out of it at this boundary only.
const titleSeparator = " - "

// eventFromBooking derives the display entity from a persisted booking.
//
// The end instant is always recomputed from the service duration table, even
// if the creating caller supplied an explicit end: the booking row has no end
// column. A custom-duration appointment therefore snaps back to the service
// default on the next reload. Accepted lossy behavior, see DESIGN.md.
func eventFromBooking(b *entity.Booking) (*entity.Event, error) {
	eventType := b.ResolvedType()

	hour, minute, err := utils.ParseHHMM(b.Time)
	if err != nil {
		return nil, err
	}

	start := time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), hour, minute, 0, 0, b.Date.Location())
	end := utils.EndTime(start, entity.ServiceDuration(b.Service))

	event := &entity.Event{
		ID:          b.ID,
		Title:       b.Name,
		Description: b.Message,
		StartDate:   start,
		EndDate:     end,
		Location:    b.Address,
		Color:       entity.ServiceColor(eventType, b.Service),
		EventType:   eventType,
	}

	if eventType == entity.EventTypeProfessional {
		event.Service = b.Service
		event.ClientPhone = b.Phone
		event.ClientEmail = b.Email

		// "Coupe - Dupont" -> client name "Dupont". No separator, no client name.
		if _, after, found := strings.Cut(b.Name, titleSeparator); found {
			event.ClientName = after
		}
	}

	return event, nil
}

// bookingFromCreate validates the create input per event type and builds the
// write payload. Professional events require a client name and service and
// get the composed "<service> - <client>" title; personal events require a
// title and are marked with the sentinel service.
//
// Returns a *ValidationError before anything is written.
func bookingFromCreate(req *request.CreateEventRequest, now time.Time) (*entity.Booking, error) {
	eventType := entity.EventTypeProfessional
	if req.EventType != "" {
		eventType = entity.EventType(req.EventType)
	}

	if req.EndDate != nil && !req.EndDate.After(req.StartDate) {
		return nil, validationErrorf("end date must be after start date")
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Date:      utils.DayOf(req.StartDate),
		Time:      utils.FormatHHMM(req.StartDate),
		Address:   req.Location,
		Message:   req.Description,
		Status:    entity.BookingStatusConfirmed,
		EventType: eventType,
	}

	switch eventType {
	case entity.EventTypeProfessional:
		if req.ClientName == "" {
			return nil, validationErrorf("client name is required for professional events")
		}
		if req.Service == "" {
			return nil, validationErrorf("service is required for professional events")
		}
		booking.Name = req.Service + titleSeparator + req.ClientName
		booking.Service = req.Service
		booking.Email = req.ClientEmail
		booking.Phone = req.ClientPhone

	case entity.EventTypePersonal:
		if req.Title == "" {
			return nil, validationErrorf("title is required for personal events")
		}
		booking.Name = req.Title
		booking.Service = entity.ServicePersonal

	default:
		return nil, validationErrorf("unknown event type %q", req.EventType)
	}

	return booking, nil
}

// applyEventPatch merges the non-nil patch fields into the booking and
// reports whether the patch moved the event to another (date, time) cell.
func applyEventPatch(booking *entity.Booking, req *request.UpdateEventRequest) (dateChanged bool, err error) {
	if req.EventType != nil {
		booking.EventType = entity.EventType(*req.EventType)
	}

	if req.Title != nil {
		booking.Name = *req.Title

		// Professional titles carry the service before the separator;
		// keep the service column in sync when the title is rewritten.
		if booking.ResolvedType() == entity.EventTypeProfessional {
			if before, _, found := strings.Cut(*req.Title, titleSeparator); found {
				booking.Service = before
			}
		}
	}

	if req.Service != nil {
		booking.Service = *req.Service
	}
	if req.ClientEmail != nil {
		booking.Email = *req.ClientEmail
	}
	if req.ClientPhone != nil {
		booking.Phone = *req.ClientPhone
	}
	if req.Location != nil {
		booking.Address = *req.Location
	}
	if req.Description != nil {
		booking.Message = *req.Description
	}

	if req.StartDate != nil {
		if req.EndDate != nil && !req.EndDate.After(*req.StartDate) {
			return false, validationErrorf("end date must be after start date")
		}

		newDate := utils.DayOf(*req.StartDate)
		newTime := utils.FormatHHMM(*req.StartDate)

		dateChanged = !newDate.Equal(booking.Date) || newTime != booking.Time
		booking.Date = newDate
		booking.Time = newTime
	}

	return dateChanged, nil
}
