package team

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Serie is the league tier a club template plays in.
type Serie int

const (
	SerieA Serie = iota
	SerieB
	SerieC
	SerieD
)

var serieLabels = [...]string{
	SerieA: "Série A",
	SerieB: "Série B",
	SerieC: "Série C",
	SerieD: "Série D",
}

func Series() []Serie {
	return []Serie{SerieA, SerieB, SerieC, SerieD}
}

func (s Serie) Valid() bool {
	return s >= SerieA && s <= SerieD
}

func (s Serie) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Serie(%d)", int(s))
	}
	return serieLabels[s]
}

// ParseSerie accepts the full label, the bare letter ("A") or the numeric code.
func ParseSerie(raw string) (Serie, error) {
	value := strings.TrimSpace(raw)
	for _, s := range Series() {
		label := s.String()
		letter := label[len(label)-1:]
		if strings.EqualFold(value, label) || strings.EqualFold(value, letter) || value == fmt.Sprint(int(s)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("invalid team serie: %q", raw)
}

// Formation enumerates tactical setups. No record field stores a formation
// yet; the set is kept so clients can list it.
type Formation int

var formationLabels = [...]string{
	"3-3-4",
	"3-4-3",
	"3-5-2",
	"3-6-1",
	"2-3-5",
	"4-2-4",
	"4-3-3",
	"4-3-2-1",
	"4-4-2",
	"4-5-1",
	"4-6-0",
	"5-3-2",
	"5-4-1",
	"5-5-0",
	"4-1-3-2",
	"Carrossel",
}

func Formations() []Formation {
	out := make([]Formation, len(formationLabels))
	for i := range formationLabels {
		out[i] = Formation(i)
	}
	return out
}

func (f Formation) Valid() bool {
	return f >= 0 && int(f) < len(formationLabels)
}

func (f Formation) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Formation(%d)", int(f))
	}
	return formationLabels[f]
}

// Relation names one of the two player sets a team holds. Each relation is
// stored independently.
type Relation string

const (
	// RelationRoster is the full set of players registered with the team.
	RelationRoster Relation = "player"
	// RelationSquad is the active lineup.
	RelationSquad Relation = "squad"
)

func (r Relation) Valid() bool {
	return r == RelationRoster || r == RelationSquad
}

const (
	MaxNameLength = 100
	DefaultColor  = 255
)

// Team is a club template shared across seasons.
type Team struct {
	ID        string
	Name      string
	Money     int
	Color1    int
	Color2    int
	Color3    int
	Serie     Serie
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if utf8.RuneCountInString(t.Name) > MaxNameLength {
		return fmt.Errorf("team name must be at most %d characters", MaxNameLength)
	}
	if !t.Serie.Valid() {
		return fmt.Errorf("invalid team serie: %d", int(t.Serie))
	}

	return nil
}

func (t Team) String() string {
	return t.Name
}
