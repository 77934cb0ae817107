package postgres

import (
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/playerinstance"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
)

var playerInstanceColumns = []string{
	"public_id",
	"base_player_public_id",
	"kick",
	"dribble",
	"strength",
	"brave",
	"luck",
	"health",
	"created_at",
	"updated_at",
}

type playerInstanceTableModel struct {
	PublicID     string    `db:"public_id"`
	BasePlayerID string    `db:"base_player_public_id"`
	Kick         int       `db:"kick"`
	Dribble      int       `db:"dribble"`
	Strength     int       `db:"strength"`
	Brave        int       `db:"brave"`
	Luck         int       `db:"luck"`
	Health       int       `db:"health"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func playerInstanceRow(item playerinstance.PlayerInstance) playerInstanceTableModel {
	return playerInstanceTableModel{
		PublicID:     item.ID,
		BasePlayerID: item.BasePlayerID,
		Kick:         item.Skills.Kick,
		Dribble:      item.Skills.Dribble,
		Strength:     item.Skills.Strength,
		Brave:        item.Skills.Brave,
		Luck:         item.Skills.Luck,
		Health:       item.Skills.Health,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func (row playerInstanceTableModel) toDomain() playerinstance.PlayerInstance {
	return playerinstance.PlayerInstance{
		ID:           row.PublicID,
		BasePlayerID: row.BasePlayerID,
		Skills: player.Skills{
			Kick:     row.Kick,
			Dribble:  row.Dribble,
			Strength: row.Strength,
			Brave:    row.Brave,
			Luck:     row.Luck,
			Health:   row.Health,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func playerInstancesToDomain(rows []playerInstanceTableModel) []playerinstance.PlayerInstance {
	out := make([]playerinstance.PlayerInstance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}

var teamInstanceColumns = []string{
	"public_id",
	"base_team_public_id",
	"wins",
	"draws",
	"loses",
	"goals_for",
	"goals_against",
	"points",
	"created_at",
	"updated_at",
}

type teamInstanceTableModel struct {
	PublicID     string    `db:"public_id"`
	BaseTeamID   string    `db:"base_team_public_id"`
	Wins         int       `db:"wins"`
	Draws        int       `db:"draws"`
	Loses        int       `db:"loses"`
	GoalsFor     int       `db:"goals_for"`
	GoalsAgainst int       `db:"goals_against"`
	Points       int       `db:"points"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func teamInstanceRow(item teaminstance.TeamInstance) teamInstanceTableModel {
	return teamInstanceTableModel{
		PublicID:     item.ID,
		BaseTeamID:   item.BaseTeamID,
		Wins:         item.Stats.Wins,
		Draws:        item.Stats.Draws,
		Loses:        item.Stats.Loses,
		GoalsFor:     item.Stats.GoalsFor,
		GoalsAgainst: item.Stats.GoalsAgainst,
		Points:       item.Stats.Points,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func (row teamInstanceTableModel) toDomain() teaminstance.TeamInstance {
	return teaminstance.TeamInstance{
		ID:         row.PublicID,
		BaseTeamID: row.BaseTeamID,
		Stats: teaminstance.Stats{
			Wins:         row.Wins,
			Draws:        row.Draws,
			Loses:        row.Loses,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			Points:       row.Points,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
