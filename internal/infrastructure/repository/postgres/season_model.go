package postgres

import (
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/manager"
	"github.com/riskibarqy/football-manager/internal/domain/ref"
	"github.com/riskibarqy/football-manager/internal/domain/season"
)

var seasonColumns = []string{
	"public_id",
	"year",
	"completed",
	"current_round_public_id",
	"winner_public_id",
	"my_team_public_id",
	"created_at",
	"updated_at",
}

type seasonTableModel struct {
	PublicID     string    `db:"public_id"`
	Year         int       `db:"year"`
	Completed    bool      `db:"completed"`
	CurrentRound ref.Ref   `db:"current_round_public_id"`
	Winner       ref.Ref   `db:"winner_public_id"`
	MyTeam       ref.Ref   `db:"my_team_public_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func seasonRow(item season.Season) seasonTableModel {
	return seasonTableModel{
		PublicID:     item.ID,
		Year:         item.Year,
		Completed:    item.Completed,
		CurrentRound: item.CurrentRound,
		Winner:       item.WinnerRef(),
		MyTeam:       item.MyTeam,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func (row seasonTableModel) toDomain() season.Season {
	return season.Season{
		ID:           row.PublicID,
		Year:         row.Year,
		Completed:    row.Completed,
		CurrentRound: row.CurrentRound,
		Winner:       row.Winner,
		MyTeam:       row.MyTeam,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

var managerColumns = []string{
	"public_id",
	"nickname",
	"total_points",
	"current_season_public_id",
	"created_at",
	"updated_at",
}

type managerTableModel struct {
	PublicID      string    `db:"public_id"`
	Nickname      string    `db:"nickname"`
	TotalPoints   int       `db:"total_points"`
	CurrentSeason ref.Ref   `db:"current_season_public_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func managerRow(item manager.Manager) managerTableModel {
	return managerTableModel{
		PublicID:      item.ID,
		Nickname:      item.Nickname,
		TotalPoints:   item.TotalPoints,
		CurrentSeason: item.CurrentSeason,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

func (row managerTableModel) toDomain() manager.Manager {
	return manager.Manager{
		ID:            row.PublicID,
		Nickname:      row.Nickname,
		TotalPoints:   row.TotalPoints,
		CurrentSeason: row.CurrentSeason,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
