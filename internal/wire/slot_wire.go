package wire

import (
	"salon-agenda/internal/adaptor"
	"salon-agenda/internal/data/repository"
	"salon-agenda/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSlot(
	r chi.Router,
	slotHandler *adaptor.SlotHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/slots - List slots in a date range
		r.Get("/api/slots", slotHandler.ListSlots)

		// POST /api/slots - Open a new bookable slot
		r.Post("/api/slots", slotHandler.CreateSlot)

		// GET /api/slots/day - Cached slots of one day
		r.Get("/api/slots/day", slotHandler.GetSlotsByDay)

		// GET /api/slots/{id} - Single cached slot
		r.Get("/api/slots/{id}", slotHandler.GetSlot)

		// POST /api/slots/{id}/book - Book an available slot
		r.Post("/api/slots/{id}/book", slotHandler.BookSlot)

		// PUT /api/slots/{id}/cancel - Cancel a slot
		r.Put("/api/slots/{id}/cancel", slotHandler.CancelSlot)
	})
}
