package teaminstance

import (
	"fmt"
	"time"
)

const (
	PointsForWin  = 3
	PointsForDraw = 1
)

// Stats is the season record of a team instance.
type Stats struct {
	Wins         int
	Draws        int
	Loses        int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

// WithResult returns s updated with one played match.
func (s Stats) WithResult(goalsFor, goalsAgainst int) Stats {
	s.GoalsFor += goalsFor
	s.GoalsAgainst += goalsAgainst
	switch {
	case goalsFor > goalsAgainst:
		s.Wins++
		s.Points += PointsForWin
	case goalsFor < goalsAgainst:
		s.Loses++
	default:
		s.Draws++
		s.Points += PointsForDraw
	}
	return s
}

func (s Stats) Played() int {
	return s.Wins + s.Draws + s.Loses
}

func (s Stats) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

func (s Stats) Validate() error {
	if s.Wins < 0 || s.Draws < 0 || s.Loses < 0 {
		return fmt.Errorf("team instance match counters cannot be negative")
	}
	if s.GoalsFor < 0 || s.GoalsAgainst < 0 {
		return fmt.Errorf("team instance goal counters cannot be negative")
	}
	return nil
}

// TeamInstance is a season-scoped copy of a team template.
type TeamInstance struct {
	ID         string
	BaseTeamID string
	Stats      Stats
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (t TeamInstance) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team instance id is required")
	}
	if t.BaseTeamID == "" {
		return fmt.Errorf("team instance base team id is required")
	}

	return t.Stats.Validate()
}
