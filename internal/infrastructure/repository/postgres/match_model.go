package postgres

import (
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/ref"
	"github.com/riskibarqy/football-manager/internal/domain/round"
)

var matchColumns = []string{
	"public_id",
	"team_a_public_id",
	"team_b_public_id",
	"goals_a",
	"goals_b",
	"resolved",
	"created_at",
	"updated_at",
}

type matchTableModel struct {
	PublicID  string    `db:"public_id"`
	TeamA     ref.Ref   `db:"team_a_public_id"`
	TeamB     ref.Ref   `db:"team_b_public_id"`
	GoalsA    int       `db:"goals_a"`
	GoalsB    int       `db:"goals_b"`
	Resolved  bool      `db:"resolved"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func matchRow(item match.Match) matchTableModel {
	return matchTableModel{
		PublicID:  item.ID,
		TeamA:     item.TeamA,
		TeamB:     item.TeamB,
		GoalsA:    item.GoalsA,
		GoalsB:    item.GoalsB,
		Resolved:  item.Resolved,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func (row matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:        row.PublicID,
		TeamA:     row.TeamA,
		TeamB:     row.TeamB,
		GoalsA:    row.GoalsA,
		GoalsB:    row.GoalsB,
		Resolved:  row.Resolved,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

var roundColumns = []string{
	"public_id",
	"resolved",
	"created_at",
	"updated_at",
}

type roundTableModel struct {
	PublicID  string    `db:"public_id"`
	Resolved  bool      `db:"resolved"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row roundTableModel) toDomain() round.Round {
	return round.Round{
		ID:        row.PublicID,
		Resolved:  row.Resolved,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
