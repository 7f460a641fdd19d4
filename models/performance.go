// models/performance.go
package models

import "time"

// Performance is a scheduled act in the event program, trackable as
// completed or not. CompletedAt is non-nil exactly when IsCompleted is true.
type Performance struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	PerformerName   string     `json:"performer_name" gorm:"not null;size:100"`
	PerformanceType string     `json:"performance_type" gorm:"size:50"`
	Year            string     `json:"year" gorm:"size:20"`
	ContactNumber   string     `json:"contact_number" gorm:"size:20"`
	MCSession       string     `json:"mc_session" gorm:"column:mc_session;size:50"`
	TimeSlot        string     `json:"time_slot" gorm:"size:50"`
	IsCompleted     bool       `json:"is_completed" gorm:"not null;default:false;index"`
	CompletedAt     *time.Time `json:"completed_at"`
	Notes           string     `json:"notes" gorm:"type:text"`
}

func (Performance) TableName() string {
	return "performances"
}

// PerformanceResponse is the wire shape for a performance. CompletedAt
// marshals as ISO-8601 or null.
type PerformanceResponse struct {
	ID              uint       `json:"id"`
	PerformerName   string     `json:"performer_name"`
	PerformanceType string     `json:"performance_type"`
	Year            string     `json:"year"`
	ContactNumber   string     `json:"contact_number"`
	MCSession       string     `json:"mc_session"`
	TimeSlot        string     `json:"time_slot"`
	IsCompleted     bool       `json:"is_completed"`
	CompletedAt     *time.Time `json:"completed_at"`
	Notes           string     `json:"notes"`
}

// Response converts a performance to its JSON representation.
func (p *Performance) Response() PerformanceResponse {
	return PerformanceResponse{
		ID:              p.ID,
		PerformerName:   p.PerformerName,
		PerformanceType: p.PerformanceType,
		Year:            p.Year,
		ContactNumber:   p.ContactNumber,
		MCSession:       p.MCSession,
		TimeSlot:        p.TimeSlot,
		IsCompleted:     p.IsCompleted,
		CompletedAt:     p.CompletedAt,
		Notes:           p.Notes,
	}
}
