// database/seed.go - First-run seeding of teams and the performance schedule
package database

import (
	"log"

	"eventscore/models"

	"gorm.io/gorm"
)

// defaultTeamNames is the fixed event-day roster. All scores start at zero.
var defaultTeamNames = []string{
	"Team Alpha", "Team Beta", "Team Gamma", "Team Delta", "Team Epsilon",
	"Team Zeta", "Team Eta", "Team Theta", "Team Iota", "Team Kappa", "Team Lambda",
}

// defaultPerformances is the fixed event program.
var defaultPerformances = []models.Performance{
	{PerformerName: "Aarav Sharma", PerformanceType: "Solo Song", Year: "I", ContactNumber: "9876501001", MCSession: "Session 1", TimeSlot: "5:00 PM"},
	{PerformerName: "First Year Crew", PerformanceType: "Group Dance", Year: "I", ContactNumber: "9876501002", MCSession: "Session 1", TimeSlot: "5:15 PM"},
	{PerformerName: "Meera Nair", PerformanceType: "Solo Dance", Year: "II", ContactNumber: "9876501003", MCSession: "Session 1", TimeSlot: "5:30 PM"},
	{PerformerName: "Rhythm Squad", PerformanceType: "Group Dance", Year: "II", ContactNumber: "9876501004", MCSession: "Session 1", TimeSlot: "5:45 PM"},
	{PerformerName: "Kavya & Ishita", PerformanceType: "Duet Song", Year: "III", ContactNumber: "9876501005", MCSession: "Session 1", TimeSlot: "6:00 PM"},
	{PerformerName: "Final Year Collective", PerformanceType: "Group Dance", Year: "III", ContactNumber: "9876501006", MCSession: "Session 1", TimeSlot: "6:15 PM"},
	{PerformerName: "Campus Band", PerformanceType: "Band Performance", Year: "Band", ContactNumber: "9876501007", MCSession: "Session 2", TimeSlot: "7:00 PM"},
	{PerformerName: "Rohan Verma", PerformanceType: "Solo Song", Year: "II", ContactNumber: "9876501008", MCSession: "Session 2", TimeSlot: "7:15 PM"},
	{PerformerName: "Style Walkers", PerformanceType: "Ramp Walk", Year: "I", ContactNumber: "9876501009", MCSession: "Session 2", TimeSlot: "7:30 PM"},
	{PerformerName: "Trend Setters", PerformanceType: "Ramp Walk", Year: "II", ContactNumber: "9876501010", MCSession: "Session 2", TimeSlot: "7:45 PM"},
	{PerformerName: "Couture Club", PerformanceType: "Ramp Walk", Year: "III", ContactNumber: "9876501011", MCSession: "Session 2", TimeSlot: "8:00 PM"},
	{PerformerName: "Acoustic Trio", PerformanceType: "Band Performance", Year: "Band", ContactNumber: "9876501012", MCSession: "Session 2", TimeSlot: "8:15 PM"},
}

// Seed populates each table with its fixed defaults when, and only when,
// that table is empty. Repeated startups never duplicate rows.
func Seed(db *gorm.DB) error {
	if err := seedTeams(db); err != nil {
		return err
	}
	return seedPerformances(db)
}

func seedTeams(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Team{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	teams := make([]models.Team, 0, len(defaultTeamNames))
	for _, name := range defaultTeamNames {
		teams = append(teams, models.Team{Name: name})
	}
	if err := db.Create(&teams).Error; err != nil {
		return err
	}

	log.Printf("Created %d default teams", len(teams))
	return nil
}

func seedPerformances(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Performance{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	performances := make([]models.Performance, len(defaultPerformances))
	copy(performances, defaultPerformances)
	if err := db.Create(&performances).Error; err != nil {
		return err
	}

	log.Printf("Created %d scheduled performances", len(performances))
	return nil
}
