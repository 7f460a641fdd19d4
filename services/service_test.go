package services

import (
	"testing"

	"eventscore/database"
	"eventscore/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))
	return db
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
		PerformanceType: "Solo Song",
		Year:            "II",
	}
	require.NoError(t, db.Create(&performance).Error)
	return performance
}
