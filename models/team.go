// models/team.go
package models

// Team is a competing group with four category scores and an optional photo.
type Team struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" gorm:"not null;size:100"`
	PhotoURL      *string `json:"photo_url" gorm:"size:200"`
	DanceScore    float64 `json:"dance_score" gorm:"not null;default:0"`
	SongScore     float64 `json:"song_score" gorm:"not null;default:0"`
	RampWalkScore float64 `json:"ramp_walk_score" gorm:"not null;default:0"`
	GameScore     float64 `json:"game_score" gorm:"not null;default:0"`
}

func (Team) TableName() string {
	return "teams"
}

// TotalScore is the sum of the four category scores. It is recomputed on
// every call and never stored.
func (t *Team) TotalScore() float64 {
	return t.DanceScore + t.SongScore + t.RampWalkScore + t.GameScore
}

// TeamResponse is the wire shape for a team, including the derived total.
type TeamResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	PhotoURL      *string `json:"photo_url"`
	DanceScore    float64 `json:"dance_score"`
	SongScore     float64 `json:"song_score"`
	RampWalkScore float64 `json:"ramp_walk_score"`
	GameScore     float64 `json:"game_score"`
	TotalScore    float64 `json:"total_score"`
}

// Response converts a team to its JSON representation.
func (t *Team) Response() TeamResponse {
	return TeamResponse{
		ID:            t.ID,
		Name:          t.Name,
		PhotoURL:      t.PhotoURL,
		DanceScore:    t.DanceScore,
		SongScore:     t.SongScore,
		RampWalkScore: t.RampWalkScore,
		GameScore:     t.GameScore,
		TotalScore:    t.TotalScore(),
	}
}
