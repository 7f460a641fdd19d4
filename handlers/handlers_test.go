package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventscore/config"
	"eventscore/database"
	"eventscore/models"
	"eventscore/services"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the full route table over an in-memory database, the
// same way main does.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))

	cfg := &config.Config{
		UploadDir:      t.TempDir(),
		MaxUploadBytes: 16 * 1024 * 1024,
	}

	teamService := services.NewTeamService(db)
	performanceService := services.NewPerformanceService(db)

	teamHandler := NewTeamHandler(teamService, cfg)
	performanceHandler := NewPerformanceHandler(performanceService)
	pageHandler := NewPageHandler(teamService, performanceService)

	engine := html.New("../views", ".html")
	engine.AddFunc("addOne", func(i int) int { return i + 1 })

	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: cfg.MaxUploadBytes,
	})

	app.Get("/", pageHandler.Index)
	app.Get("/admin", pageHandler.Admin)
	app.Get("/leaderboard", pageHandler.Leaderboard)
	app.Get("/performances", pageHandler.Performances)

	api := app.Group("/api")
	api.Get("/teams", teamHandler.GetTeams)
	api.Put("/teams/:id", teamHandler.UpdateTeam)
	api.Post("/teams/:id/upload_photo", teamHandler.UploadPhoto)
	api.Post("/finalize_results", teamHandler.FinalizeResults)
	api.Get("/performances", performanceHandler.GetPerformances)
	api.Post("/performances/:id/complete", performanceHandler.Complete)
	api.Post("/performances/:id/uncomplete", performanceHandler.Uncomplete)
	api.Put("/performances/:id/notes", performanceHandler.UpdateNotes)

	return app, db, cfg
}

func jsonRequest(t *testing.T, method, target string, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// multipartPhoto builds a multipart body with a single "photo" field.
func multipartPhoto(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func createTeam(t *testing.T, db *gorm.DB, name string, dance, song, ramp, game float64) models.Team {
	t.Helper()
	team := models.Team{
		Name:          name,
		DanceScore:    dance,
		SongScore:     song,
		RampWalkScore: ramp,
		GameScore:     game,
	}
	require.NoError(t, db.Create(&team).Error)
	return team
}

func createPerformance(t *testing.T, db *gorm.DB, name string) models.Performance {
	t.Helper()
	performance := models.Performance{
		PerformerName:   name,
		PerformanceType: "Group Dance",
		Year:            "I",
	}
	require.NoError(t, db.Create(&performance).Error)
	return performance
}
