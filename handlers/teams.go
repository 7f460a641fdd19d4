// handlers/teams.go - Team scoring HTTP handlers
package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"eventscore/config"
	"eventscore/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// allowedExtensions is the set of photo file extensions accepted for upload.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type TeamHandler struct {
	teams *services.TeamService
	cfg   *config.Config
}

func NewTeamHandler(teams *services.TeamService, cfg *config.Config) *TeamHandler {
	return &TeamHandler{teams: teams, cfg: cfg}
}

// GetTeams returns all teams sorted by descending total score.
// GET /api/teams
func (h *TeamHandler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.teams.ListByRank()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(teamResponses(teams))
}

// UpdateTeam applies a partial update to a team. Fields absent from the
// payload are left unchanged.
// PUT /api/teams/:id
func (h *TeamHandler) UpdateTeam(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, services.ErrTeamNotFound)
	}

	var patch services.TeamPatch
	if err := c.BodyParser(&patch); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body")
	}

	team, err := h.teams.UpdateTeam(id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(team.Response())
}

// UploadPhoto stores a team photo and replaces any previous one.
// POST /api/teams/:id/upload_photo
func (h *TeamHandler) UploadPhoto(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return writeError(c, services.ErrTeamNotFound)
	}
	team, err := h.teams.GetTeam(id)
	if err != nil {
		return writeError(c, err)
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "no file provided")
	}
	if file.Filename == "" {
		return errorJSON(c, fiber.StatusBadRequest, "no file selected")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return errorJSON(c, fiber.StatusBadRequest, "invalid file type")
	}

	// The uuid segment keeps a re-upload of the same filename from
	// colliding with a file still being served.
	filename := fmt.Sprintf("team_%d_%s_%s", team.ID, uuid.NewString()[:8], secureFilename(file.Filename))

	// Remove the old photo; it may already be gone.
	if team.PhotoURL != nil {
		old := filepath.Join(h.cfg.UploadDir, filepath.Base(*team.PhotoURL))
		if err := os.Remove(old); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove old photo %s: %v", old, err)
		}
	}

	if err := c.SaveFile(file, filepath.Join(h.cfg.UploadDir, filename)); err != nil {
		log.Printf("Failed to save photo: %v", err)
		return errorJSON(c, fiber.StatusInternalServerError, "failed to save photo")
	}

	photoURL := "/static/uploads/" + filename
	if err := h.teams.SetPhotoURL(team, photoURL); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":   "Photo uploaded successfully",
		"photo_url": photoURL,
	})
}

// FinalizeResults returns the top three team ids. Read-only: it exists to
// trigger the client-side celebration and is safe to call repeatedly.
// POST /api/finalize_results
func (h *TeamHandler) FinalizeResults(c *fiber.Ctx) error {
	top, err := h.teams.FinalizeResults()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":   "Results finalized",
		"top_teams": top,
	})
}

// secureFilename strips path components and any character that is not safe
// in a filename.
func secureFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	return b.String()
}
