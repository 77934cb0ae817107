package player

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Position is the closed set of field positions a player template can hold.
type Position int

const (
	PositionGoalkeeper Position = iota
	PositionDefense
	PositionMidfield
	PositionForward
)

var positionLabels = [...]string{
	PositionGoalkeeper: "Goalkeeper",
	PositionDefense:    "Defense",
	PositionMidfield:   "Midfield",
	PositionForward:    "Forward",
}

// Positions lists every position in code order.
func Positions() []Position {
	return []Position{PositionGoalkeeper, PositionDefense, PositionMidfield, PositionForward}
}

func (p Position) Valid() bool {
	return p >= PositionGoalkeeper && p <= PositionForward
}

func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionLabels[p]
}

// ParsePosition accepts a label (case-insensitive) or its numeric code.
func ParsePosition(raw string) (Position, error) {
	value := strings.TrimSpace(raw)
	for _, p := range Positions() {
		if strings.EqualFold(value, p.String()) || value == fmt.Sprint(int(p)) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("invalid player position: %q", raw)
}

const (
	MaxNameLength     = 100
	MaxNicknameLength = 100
	MaxCountryLength  = 20
)

// Skills are the six rating attributes shared by templates and instances.
type Skills struct {
	Kick     int
	Dribble  int
	Strength int
	Brave    int
	Luck     int
	Health   int
}

// Player is a footballer template. Season-scoped copies live in
// playerinstance.PlayerInstance.
type Player struct {
	ID        string
	Name      string
	Nickname  string
	Country   string
	Wage      int
	Position  Position
	Skills    Skills
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if err := requireText("player name", p.Name, MaxNameLength); err != nil {
		return err
	}
	if err := requireText("player nickname", p.Nickname, MaxNicknameLength); err != nil {
		return err
	}
	if err := requireText("player country", p.Country, MaxCountryLength); err != nil {
		return err
	}
	if !p.Position.Valid() {
		return fmt.Errorf("invalid player position: %d", int(p.Position))
	}

	return nil
}

func (p Player) String() string {
	return p.Name + " [" + p.Nickname + "]"
}

func requireText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	if utf8.RuneCountInString(value) > maxLen {
		return fmt.Errorf("%s must be at most %d characters", field, maxLen)
	}
	return nil
}
