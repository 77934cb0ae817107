package playerinstance

import (
	"fmt"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/player"
)

// PlayerInstance is a season-scoped copy of a player template. Its skills
// evolve independently of the template.
type PlayerInstance struct {
	ID           string
	BasePlayerID string
	Skills       player.Skills
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FromTemplate clones the template's skills into a new instance.
func FromTemplate(id string, base player.Player, now time.Time) PlayerInstance {
	return PlayerInstance{
		ID:           id,
		BasePlayerID: base.ID,
		Skills:       base.Skills,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (p PlayerInstance) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player instance id is required")
	}
	if p.BasePlayerID == "" {
		return fmt.Errorf("player instance base player id is required")
	}

	return nil
}
