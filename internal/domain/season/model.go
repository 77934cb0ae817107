package season

import (
	"fmt"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/ref"
)

// Season is one competitive year. Winner is only meaningful once Completed.
type Season struct {
	ID           string
	Year         int
	Completed    bool
	CurrentRound ref.Ref
	Winner       ref.Ref
	MyTeam       ref.Ref
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.Year <= 0 {
		return fmt.Errorf("season year must be greater than zero")
	}
	if s.Winner.IsSet() && !s.Completed {
		return fmt.Errorf("season winner can only be set on a completed season")
	}

	return nil
}

// WinnerRef returns the winner, absent until the season is completed.
func (s Season) WinnerRef() ref.Ref {
	if !s.Completed {
		return ref.None()
	}
	return s.Winner
}

func (s Season) String() string {
	completed := "False"
	if s.Completed {
		completed = "True"
	}
	return fmt.Sprintf("%d | COMPLETED? %s", s.Year, completed)
}
