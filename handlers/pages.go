// handlers/pages.go - Server-rendered HTML views
package handlers

import (
	"eventscore/services"

	"github.com/gofiber/fiber/v2"
)

type PageHandler struct {
	teams        *services.TeamService
	performances *services.PerformanceService
}

func NewPageHandler(teams *services.TeamService, performances *services.PerformanceService) *PageHandler {
	return &PageHandler{teams: teams, performances: performances}
}

// Index redirects to the public leaderboard.
// GET /
func (h *PageHandler) Index(c *fiber.Ctx) error {
	return c.Redirect("/leaderboard", fiber.StatusFound)
}

// Admin renders the score-entry dashboard, teams ordered by id.
// GET /admin
func (h *PageHandler) Admin(c *fiber.Ctx) error {
	teams, err := h.teams.ListByID()
	if err != nil {
		return writeError(c, err)
	}
	return c.Render("admin", fiber.Map{
		"Title": "Admin Dashboard",
		"Teams": teamResponses(teams),
	})
}

// Leaderboard renders the public view, teams ordered by descending total.
// GET /leaderboard
func (h *PageHandler) Leaderboard(c *fiber.Ctx) error {
	teams, err := h.teams.ListByRank()
	if err != nil {
		return writeError(c, err)
	}
	return c.Render("leaderboard", fiber.Map{
		"Title": "Leaderboard",
		"Teams": teamResponses(teams),
	})
}

// Performances renders the performance tracker, ordered by id.
// GET /performances
func (h *PageHandler) Performances(c *fiber.Ctx) error {
	performances, err := h.performances.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.Render("performances", fiber.Map{
		"Title":        "Performance Tracker",
		"Performances": performanceResponses(performances),
	})
}
