// handlers/helpers.go - Shared response helpers
package handlers

import (
	"errors"
	"strconv"

	"eventscore/models"
	"eventscore/services"

	"github.com/gofiber/fiber/v2"
)

// errorJSON sends the uniform error body.
func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// writeError maps service errors to HTTP statuses.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrPerformanceNotFound):
		return errorJSON(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, err.Error())
	default:
		return errorJSON(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// parseID reads the :id route parameter. A value that is not a positive
// integer can never name an entity, so the caller treats it as not found.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func teamResponses(teams []models.Team) []models.TeamResponse {
	out := make([]models.TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, teams[i].Response())
	}
	return out
}

func performanceResponses(performances []models.Performance) []models.PerformanceResponse {
	out := make([]models.PerformanceResponse, 0, len(performances))
	for i := range performances {
		out = append(out, performances[i].Response())
	}
	return out
}
