// database/migrate.go - Database migration runner
package database

import (
	"log"

	"eventscore/models"

	"gorm.io/gorm"
)

// RunMigrations creates or updates the two application tables.
func RunMigrations(db *gorm.DB) error {
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.Team{},
		&models.Performance{},
	); err != nil {
		return err
	}

	createIndexes(db)

	log.Println("✅ Migrations completed")
	return nil
}

func createIndexes(db *gorm.DB) {
	db.Exec("CREATE INDEX IF NOT EXISTS idx_teams_name ON teams(name)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_performances_completed ON performances(is_completed)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_performances_session ON performances(mc_session)")
}
