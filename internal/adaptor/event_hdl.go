package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"salon-agenda/internal/dto/request"
	"salon-agenda/internal/usecase"
	"salon-agenda/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EventHandler struct {
	service usecase.EventService
	agenda  utils.AgendaConfig
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, agenda utils.AgendaConfig, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		agenda:  agenda,
		log:     log.With(zap.String("handler", "event")),
	}
}

// ListEvents handles GET /api/events (protected)
//
// Reloads the requested range from storage. Without from/to the window is the
// configured number of months starting at the current month; months overrides
// the window length.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	months := utils.ParseInt(query.Get("months"), h.agenda.CacheMonths)
	from, to := h.defaultRange(months)

	from = utils.ParseDateParam(query.Get("from"), from)
	to = utils.ParseDateParam(query.Get("to"), to)

	events, err := h.service.Refresh(r.Context(), from, to)
	if err != nil {
		handleServiceError(w, h.log, err, "list events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// CreateEvent handles POST /api/events (protected)
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	event, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create event")
		return
	}

	utils.ResponseCreated(w, "success", event)
}

// GetEvent handles GET /api/events/{id} (protected)
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	event, err := h.service.ByID(eventID)
	if err != nil {
		handleServiceError(w, h.log, err, "get event")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

// UpdateEvent handles PUT /api/events/{id} (protected)
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	var req request.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	event, err := h.service.Update(r.Context(), eventID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update event")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

// DeleteEvent handles DELETE /api/events/{id} (protected)
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if eventID == "" {
		utils.ResponseBadRequest(w, "Event ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), eventID); err != nil {
		handleServiceError(w, h.log, err, "delete event")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetEventsByDay handles GET /api/events/day (protected)
func (h *EventHandler) GetEventsByDay(w http.ResponseWriter, r *http.Request) {
	date := utils.ParseDateParam(r.URL.Query().Get("date"), time.Now())
	utils.ResponseSuccess(w, "success", h.service.ByDay(date))
}

// GetEventsByWeek handles GET /api/events/week (protected)
func (h *EventHandler) GetEventsByWeek(w http.ResponseWriter, r *http.Request) {
	date := utils.ParseDateParam(r.URL.Query().Get("date"), time.Now())
	utils.ResponseSuccess(w, "success", h.service.ByWeek(date))
}

// GetAgenda handles GET /api/agenda (protected)
func (h *EventHandler) GetAgenda(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Sections())
}

func (h *EventHandler) defaultRange(months int) (time.Time, time.Time) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, months, 0)
}
