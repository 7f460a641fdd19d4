// services/performance_service.go - Performance tracking business logic
package services

import (
	"errors"
	"time"

	"eventscore/models"

	"gorm.io/gorm"
)

type PerformanceService struct {
	db *gorm.DB
}

func NewPerformanceService(db *gorm.DB) *PerformanceService {
	return &PerformanceService{db: db}
}

// List returns all performances ordered by id.
func (s *PerformanceService) List() ([]models.Performance, error) {
	var performances []models.Performance
	err := s.db.Order("id").Find(&performances).Error
	return performances, err
}

// Get retrieves a performance by id.
func (s *PerformanceService) Get(id uint) (*models.Performance, error) {
	var performance models.Performance
	if err := s.db.First(&performance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPerformanceNotFound
		}
		return nil, err
	}
	return &performance, nil
}

// MarkCompleted sets the performance completed and stamps CompletedAt.
// If it is already completed nothing changes; the second return value
// reports that to the caller.
func (s *PerformanceService) MarkCompleted(id uint) (*models.Performance, bool, error) {
	performance, err := s.Get(id)
	if err != nil {
		return nil, false, err
	}
	if performance.IsCompleted {
		return performance, true, nil
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"is_completed": true,
		"completed_at": now,
	}
	if err := s.db.Model(performance).Updates(updates).Error; err != nil {
		return nil, false, err
	}

	performance.IsCompleted = true
	performance.CompletedAt = &now
	return performance, false, nil
}

// MarkUncompleted clears the completion state. A performance that is not
// completed is left untouched and reported as a no-op.
func (s *PerformanceService) MarkUncompleted(id uint) (*models.Performance, bool, error) {
	performance, err := s.Get(id)
	if err != nil {
		return nil, false, err
	}
	if !performance.IsCompleted {
		return performance, true, nil
	}

	updates := map[string]interface{}{
		"is_completed": false,
		"completed_at": nil,
	}
	if err := s.db.Model(performance).Updates(updates).Error; err != nil {
		return nil, false, err
	}

	performance.IsCompleted = false
	performance.CompletedAt = nil
	return performance, false, nil
}

// UpdateNotes replaces the free-text notes on a performance.
func (s *PerformanceService) UpdateNotes(id uint, notes string) (*models.Performance, error) {
	performance, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(performance).Update("notes", notes).Error; err != nil {
		return nil, err
	}

	performance.Notes = notes
	return performance, nil
}
