package round

import (
	"fmt"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/match"
)

// Round groups matches. Resolved is derived from the member matches and is
// maintained by the repository.
type Round struct {
	ID        string
	Resolved  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Round) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("round id is required")
	}
	return nil
}

func (r Round) String() string {
	if r.Resolved {
		return "DONE? True"
	}
	return "DONE? False"
}

// ResolvedFor reports whether a round holding matches is resolved. An empty
// round has nothing played and is not resolved.
func ResolvedFor(matches []match.Match) bool {
	if len(matches) == 0 {
		return false
	}
	for _, m := range matches {
		if !m.Resolved {
			return false
		}
	}
	return true
}
