// services/team_service.go - Team scoring business logic
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"eventscore/models"

	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// TeamPatch is a partial update for a team. Nil fields are left unchanged;
// present-but-invalid fields are rejected with ErrInvalidInput.
type TeamPatch struct {
	Name          *string  `json:"name"`
	DanceScore    *float64 `json:"dance_score"`
	SongScore     *float64 `json:"song_score"`
	RampWalkScore *float64 `json:"ramp_walk_score"`
	GameScore     *float64 `json:"game_score"`
}

// ListByID returns all teams ordered by id, for the admin view.
func (s *TeamService) ListByID() ([]models.Team, error) {
	var teams []models.Team
	err := s.db.Order("id").Find(&teams).Error
	return teams, err
}

// ListByRank returns all teams ordered by descending total score. Ties keep
// their id order. Both the JSON API and the leaderboard page go through
// here, so a future weighting change has a single home.
func (s *TeamService) ListByRank() ([]models.Team, error) {
	teams, err := s.ListByID()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].TotalScore() > teams[j].TotalScore()
	})
	return teams, nil
}

// GetTeam retrieves a team by id.
func (s *TeamService) GetTeam(id uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// UpdateTeam applies a partial update to the team and returns the updated
// record.
func (s *TeamService) UpdateTeam(id uint, patch TeamPatch) (*models.Team, error) {
	team, err := s.GetTeam(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		updates["name"] = *patch.Name
	}

	scores := map[string]*float64{
		"dance_score":     patch.DanceScore,
		"song_score":      patch.SongScore,
		"ramp_walk_score": patch.RampWalkScore,
		"game_score":      patch.GameScore,
	}
	for column, value := range scores {
		if value == nil {
			continue
		}
		if *value < 0 {
			return nil, fmt.Errorf("%w: %s must be non-negative", ErrInvalidInput, column)
		}
		updates[column] = *value
	}

	if len(updates) == 0 {
		return team, nil
	}

	if err := s.db.Model(team).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetTeam(id)
}

// SetPhotoURL records the path of the team's freshly uploaded photo.
func (s *TeamService) SetPhotoURL(team *models.Team, url string) error {
	if err := s.db.Model(team).Update("photo_url", url).Error; err != nil {
		return err
	}
	team.PhotoURL = &url
	return nil
}

// FinalizeResults returns the ids of the top-ranked teams, at most three.
// It reads current state only and never mutates anything, so calling it
// repeatedly is safe.
func (s *TeamService) FinalizeResults() ([]uint, error) {
	teams, err := s.ListByRank()
	if err != nil {
		return nil, err
	}

	top := make([]uint, 0, 3)
	for _, team := range teams {
		if len(top) == 3 {
			break
		}
		top = append(top, team.ID)
	}
	return top, nil
}
