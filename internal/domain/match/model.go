package match

import (
	"fmt"
	"strconv"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/ref"
)

// Match is a fixture between two team instances. Either side may be absent
// while the fixture is unscheduled.
type Match struct {
	ID        string
	TeamA     ref.Ref
	TeamB     ref.Ref
	GoalsA    int
	GoalsB    int
	Resolved  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Result returns the score only once the match has been resolved.
func (m Match) Result() (goalsA, goalsB int, played bool) {
	if !m.Resolved {
		return 0, 0, false
	}
	return m.GoalsA, m.GoalsB, true
}

// Scheduled reports whether both sides are known.
func (m Match) Scheduled() bool {
	return m.TeamA.IsSet() && m.TeamB.IsSet()
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	a, aSet := m.TeamA.ID()
	if aSet && m.TeamB.Is(a) {
		return fmt.Errorf("match teams must differ")
	}
	if m.GoalsA < 0 || m.GoalsB < 0 {
		return fmt.Errorf("match goals cannot be negative")
	}

	return nil
}

// Describe renders "A 2 X 1 B", or "A ? X ? B" while unresolved.
func (m Match) Describe(nameA, nameB string) string {
	if !m.Resolved {
		return nameA + " ? X ? " + nameB
	}
	return nameA + " " + strconv.Itoa(m.GoalsA) + " X " + strconv.Itoa(m.GoalsB) + " " + nameB
}
