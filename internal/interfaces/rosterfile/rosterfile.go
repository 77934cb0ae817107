// Package rosterfile reads player and team templates from a YAML roster file.
package rosterfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/usecase"
	"gopkg.in/yaml.v3"
)

type file struct {
	Players []playerEntry `yaml:"players"`
	Teams   []teamEntry   `yaml:"teams"`
}

type playerEntry struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Nickname string `yaml:"nickname"`
	Country  string `yaml:"country"`
	Wage     int    `yaml:"wage"`
	Position string `yaml:"position"`
	Kick     int    `yaml:"kick"`
	Dribble  int    `yaml:"dribble"`
	Strength int    `yaml:"strength"`
	Brave    int    `yaml:"brave"`
	Luck     int    `yaml:"luck"`
	Health   int    `yaml:"health"`
}

type teamEntry struct {
	Name   string   `yaml:"name"`
	Money  int      `yaml:"money"`
	Colors []int    `yaml:"colors"`
	Serie  string   `yaml:"serie"`
	Roster []string `yaml:"roster"`
	Squad  []string `yaml:"squad"`
}

// LoadFile opens and parses a roster file.
func LoadFile(path string) (usecase.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return usecase.Roster{}, fmt.Errorf("open roster file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses a roster document. Unknown keys are rejected. Positions and
// series accept labels or numeric codes.
func Load(r io.Reader) (usecase.Roster, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc file
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return usecase.Roster{}, nil
		}
		return usecase.Roster{}, fmt.Errorf("decode roster: %w", err)
	}

	out := usecase.Roster{
		Players: make([]usecase.RosterPlayer, 0, len(doc.Players)),
		Teams:   make([]usecase.RosterTeam, 0, len(doc.Teams)),
	}
	for i, p := range doc.Players {
		position, err := player.ParsePosition(p.Position)
		if err != nil {
			return usecase.Roster{}, fmt.Errorf("players[%d] %s: %w", i, p.Key, err)
		}
		out.Players = append(out.Players, usecase.RosterPlayer{
			Key: strings.TrimSpace(p.Key),
			Player: usecase.PlayerInput{
				Name:     p.Name,
				Nickname: p.Nickname,
				Country:  p.Country,
				Wage:     p.Wage,
				Position: int(position),
				Kick:     p.Kick,
				Dribble:  p.Dribble,
				Strength: p.Strength,
				Brave:    p.Brave,
				Luck:     p.Luck,
				Health:   p.Health,
			},
		})
	}

	for i, t := range doc.Teams {
		input := usecase.TeamInput{Name: t.Name, Money: t.Money}
		if strings.TrimSpace(t.Serie) != "" {
			serie, err := team.ParseSerie(t.Serie)
			if err != nil {
				return usecase.Roster{}, fmt.Errorf("teams[%d] %s: %w", i, t.Name, err)
			}
			input.Serie = int(serie)
		}
		if len(t.Colors) > 3 {
			return usecase.Roster{}, fmt.Errorf("teams[%d] %s: at most 3 colors, got %d", i, t.Name, len(t.Colors))
		}
		colors := []**int{&input.Color1, &input.Color2, &input.Color3}
		for j := range t.Colors {
			c := t.Colors[j]
			*colors[j] = &c
		}
		out.Teams = append(out.Teams, usecase.RosterTeam{Team: input, Roster: t.Roster, Squad: t.Squad})
	}

	return out, nil
}
