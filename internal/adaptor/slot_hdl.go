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

type SlotHandler struct {
	service usecase.SlotService
	agenda  utils.AgendaConfig
	log     *zap.Logger
}

func NewSlotHandler(service usecase.SlotService, agenda utils.AgendaConfig, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		agenda:  agenda,
		log:     log.With(zap.String("handler", "slot")),
	}
}

// ListSlots handles GET /api/slots (protected)
//
// Query params: from, to (same defaults as the events list) and
// available=true to restrict to open slots.
func (h *SlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, h.agenda.CacheMonths, 0)

	query := r.URL.Query()
	from = utils.ParseDateParam(query.Get("from"), from)
	to = utils.ParseDateParam(query.Get("to"), to)
	availableOnly := query.Get("available") == "true"

	slots, err := h.service.InRange(r.Context(), from, to, availableOnly)
	if err != nil {
		handleServiceError(w, h.log, err, "list slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// CreateSlot handles POST /api/slots (protected)
func (h *SlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create slot")
		return
	}

	utils.ResponseCreated(w, "success", slot)
}

// GetSlot handles GET /api/slots/{id} (protected)
func (h *SlotHandler) GetSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Slot ID is required", nil)
		return
	}

	slot, err := h.service.ByID(slotID)
	if err != nil {
		handleServiceError(w, h.log, err, "get slot")
		return
	}

	utils.ResponseSuccess(w, "success", slot)
}

// GetSlotsByDay handles GET /api/slots/day (protected)
func (h *SlotHandler) GetSlotsByDay(w http.ResponseWriter, r *http.Request) {
	date := utils.ParseDateParam(r.URL.Query().Get("date"), time.Now())
	utils.ResponseSuccess(w, "success", h.service.ByDay(date))
}

// BookSlot handles POST /api/slots/{id}/book (protected)
func (h *SlotHandler) BookSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Slot ID is required", nil)
		return
	}

	var req request.BookSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	slot, err := h.service.Book(r.Context(), slotID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "book slot")
		return
	}

	utils.ResponseSuccess(w, "success", slot)
}

// CancelSlot handles PUT /api/slots/{id}/cancel (protected)
func (h *SlotHandler) CancelSlot(w http.ResponseWriter, r *http.Request) {
	slotID := chi.URLParam(r, "id")
	if slotID == "" {
		utils.ResponseBadRequest(w, "Slot ID is required", nil)
		return
	}

	slot, err := h.service.Cancel(r.Context(), slotID)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel slot")
		return
	}

	utils.ResponseSuccess(w, "success", slot)
}
