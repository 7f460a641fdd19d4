// handlers/performances.go - Performance tracking HTTP handlers
package handlers

import (
	"eventscore/services"

	"github.com/gofiber/fiber/v2"
)

type PerformanceHandler struct {
	performances *services.PerformanceService
}

func NewPerformanceHandler(performances *services.PerformanceService) *PerformanceHandler {
	return &PerformanceHandler{performances: performances}
}

// GetPerformances returns all performances ordered by id.
// GET /api/performances
func (h *PerformanceHandler) GetPerformances(c *fiber.Ctx) error {
	performances, err := h.performances.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(performanceResponses(performances))
}

// Complete marks a performance as completed. Marking an already completed
// performance changes nothing and says so.
// POST /api/performances/:id/complete
func (h *PerformanceHandler) Complete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, services.ErrPerformanceNotFound)
	}

	performance, already, err := h.performances.MarkCompleted(id)
	if err != nil {
		return writeError(c, err)
	}
	if already {
		return c.JSON(fiber.Map{
			"message":     "Performance already marked as completed",
			"performance": performance.Response(),
		})
	}
	return c.JSON(performance.Response())
}

// Uncomplete clears the completion state of a performance.
// POST /api/performances/:id/uncomplete
func (h *PerformanceHandler) Uncomplete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, services.ErrPerformanceNotFound)
	}

	performance, already, err := h.performances.MarkUncompleted(id)
	if err != nil {
		return writeError(c, err)
	}
	if already {
		return c.JSON(fiber.Map{
			"message":     "Performance is not marked as completed",
			"performance": performance.Response(),
		})
	}
	return c.JSON(performance.Response())
}

// UpdateNotes replaces the notes on a performance. The notes key must be
// present in the payload.
// PUT /api/performances/:id/notes
func (h *PerformanceHandler) UpdateNotes(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, services.ErrPerformanceNotFound)
	}

	var req struct {
		Notes *string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.Notes == nil {
		return errorJSON(c, fiber.StatusBadRequest, "notes is required")
	}

	performance, err := h.performances.UpdateNotes(id, *req.Notes)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(performance.Response())
}
