package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

const (
	TeamIDFlamengo  = "bra-flamengo"
	TeamIDPalmeiras = "bra-palmeiras"
	TeamIDSantos    = "bra-santos"
	TeamIDGremio    = "bra-gremio"
)

var seededAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Membership places a seeded player on a team relation.
type Membership struct {
	Relation team.Relation
	TeamID   string
	PlayerID string
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDFlamengo, Name: "Flamengo", Money: 5000, Color1: 200, Color2: 0, Color3: 0, Serie: team.SerieA, CreatedAt: seededAt, UpdatedAt: seededAt},
		{ID: TeamIDPalmeiras, Name: "Palmeiras", Money: 4800, Color1: 0, Color2: 120, Color3: 0, Serie: team.SerieA, CreatedAt: seededAt, UpdatedAt: seededAt},
		{ID: TeamIDSantos, Name: "Santos", Money: 2500, Color1: 255, Color2: 255, Color3: 255, Serie: team.SerieB, CreatedAt: seededAt, UpdatedAt: seededAt},
		{ID: TeamIDGremio, Name: "Grêmio", Money: 3000, Color1: 0, Color2: 110, Color3: 200, Serie: team.SerieA, CreatedAt: seededAt, UpdatedAt: seededAt},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "bra-gk-01", Name: "Diego Alves", Nickname: "Diego Alves", Country: "Brazil", Wage: 90, Position: player.PositionGoalkeeper, Skills: player.Skills{Kick: 40, Dribble: 20, Strength: 70, Brave: 80, Luck: 60, Health: 85}},
		{ID: "bra-def-01", Name: "Rodrigo Caio", Nickname: "Rodrigo Caio", Country: "Brazil", Wage: 80, Position: player.PositionDefense, Skills: player.Skills{Kick: 55, Dribble: 50, Strength: 78, Brave: 75, Luck: 55, Health: 70}},
		{ID: "bra-mid-01", Name: "Giorgian De Arrascaeta", Nickname: "Arrascaeta", Country: "Uruguay", Wage: 110, Position: player.PositionMidfield, Skills: player.Skills{Kick: 85, Dribble: 88, Strength: 60, Brave: 65, Luck: 70, Health: 80}},
		{ID: "bra-fwd-01", Name: "Gabriel Barbosa", Nickname: "Gabigol", Country: "Brazil", Wage: 130, Position: player.PositionForward, Skills: player.Skills{Kick: 88, Dribble: 82, Strength: 70, Brave: 72, Luck: 75, Health: 82}},
		{ID: "bra-gk-02", Name: "Weverton Pereira", Nickname: "Weverton", Country: "Brazil", Wage: 95, Position: player.PositionGoalkeeper, Skills: player.Skills{Kick: 45, Dribble: 22, Strength: 72, Brave: 84, Luck: 58, Health: 88}},
		{ID: "bra-mid-02", Name: "Raphael Veiga", Nickname: "Veiga", Country: "Brazil", Wage: 100, Position: player.PositionMidfield, Skills: player.Skills{Kick: 84, Dribble: 80, Strength: 58, Brave: 66, Luck: 68, Health: 81}},
		{ID: "bra-fwd-02", Name: "Edson Arantes do Nascimento", Nickname: "Pelé", Country: "Brazil", Wage: 200, Position: player.PositionForward, Skills: player.Skills{Kick: 99, Dribble: 98, Strength: 80, Brave: 90, Luck: 90, Health: 95}},
		{ID: "bra-def-02", Name: "Pedro Geromel", Nickname: "Geromel", Country: "Brazil", Wage: 75, Position: player.PositionDefense, Skills: player.Skills{Kick: 50, Dribble: 45, Strength: 82, Brave: 85, Luck: 55, Health: 72}},
	}
}

func SeedMemberships() []Membership {
	return []Membership{
		{Relation: team.RelationRoster, TeamID: TeamIDFlamengo, PlayerID: "bra-gk-01"},
		{Relation: team.RelationRoster, TeamID: TeamIDFlamengo, PlayerID: "bra-def-01"},
		{Relation: team.RelationRoster, TeamID: TeamIDFlamengo, PlayerID: "bra-mid-01"},
		{Relation: team.RelationRoster, TeamID: TeamIDFlamengo, PlayerID: "bra-fwd-01"},
		{Relation: team.RelationSquad, TeamID: TeamIDFlamengo, PlayerID: "bra-gk-01"},
		{Relation: team.RelationSquad, TeamID: TeamIDFlamengo, PlayerID: "bra-fwd-01"},
		{Relation: team.RelationRoster, TeamID: TeamIDPalmeiras, PlayerID: "bra-gk-02"},
		{Relation: team.RelationRoster, TeamID: TeamIDPalmeiras, PlayerID: "bra-mid-02"},
		{Relation: team.RelationSquad, TeamID: TeamIDPalmeiras, PlayerID: "bra-mid-02"},
		{Relation: team.RelationRoster, TeamID: TeamIDSantos, PlayerID: "bra-fwd-02"},
		{Relation: team.RelationSquad, TeamID: TeamIDSantos, PlayerID: "bra-fwd-02"},
		{Relation: team.RelationRoster, TeamID: TeamIDGremio, PlayerID: "bra-def-02"},
		{Relation: team.RelationSquad, TeamID: TeamIDGremio, PlayerID: "bra-def-02"},
	}
}

// Seed loads template data into an empty store.
func (s *Store) Seed(players []player.Player, teams []team.Team, memberships []Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range players {
		if _, ok := s.players[item.ID]; ok {
			return fmt.Errorf("%w: player=%s already exists", integrity.ErrConflict, item.ID)
		}
		if item.CreatedAt.IsZero() {
			item.CreatedAt, item.UpdatedAt = seededAt, seededAt
		}
		s.players[item.ID] = item
		s.playerOrder = append(s.playerOrder, item.ID)
	}
	for _, item := range teams {
		if _, ok := s.teams[item.ID]; ok {
			return fmt.Errorf("%w: team=%s already exists", integrity.ErrConflict, item.ID)
		}
		s.teams[item.ID] = item
		s.teamOrder = append(s.teamOrder, item.ID)
	}
	for _, m := range memberships {
		set, ok := s.teamMembers[m.Relation]
		if !ok {
			return fmt.Errorf("unknown team relation %q", m.Relation)
		}
		if _, ok := s.teams[m.TeamID]; !ok {
			return fmt.Errorf("%w: team=%s", integrity.ErrReferential, m.TeamID)
		}
		if _, ok := s.players[m.PlayerID]; !ok {
			return fmt.Errorf("%w: player=%s", integrity.ErrReferential, m.PlayerID)
		}
		set.add(m.TeamID, m.PlayerID)
	}
	return nil
}
