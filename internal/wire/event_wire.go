package wire

import (
	"salon-agenda/internal/adaptor"
	"salon-agenda/internal/data/repository"
	"salon-agenda/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(
	r chi.Router,
	eventHandler *adaptor.EventHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// The whole calendar is the professional's private data.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/events - Reload a date range from storage
		r.Get("/api/events", eventHandler.ListEvents)

		// POST /api/events - Create an appointment or personal event
		r.Post("/api/events", eventHandler.CreateEvent)

		// GET /api/events/day - Cached events of one day
		r.Get("/api/events/day", eventHandler.GetEventsByDay)

		// GET /api/events/week - Cached events of one week
		r.Get("/api/events/week", eventHandler.GetEventsByWeek)

		// GET /api/agenda - Grouped agenda sections
		r.Get("/api/agenda", eventHandler.GetAgenda)

		// GET /api/events/{id} - Single cached event
		r.Get("/api/events/{id}", eventHandler.GetEvent)

		// PUT /api/events/{id} - Partial update
		r.Put("/api/events/{id}", eventHandler.UpdateEvent)

		// DELETE /api/events/{id} - Remove an event
		r.Delete("/api/events/{id}", eventHandler.DeleteEvent)
	})
}
