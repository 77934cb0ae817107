package postgres

import (
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/player"
)

var playerColumns = []string{
	"public_id",
	"name",
	"nickname",
	"country",
	"wage",
	"position",
	"kick",
	"dribble",
	"strength",
	"brave",
	"luck",
	"health",
	"created_at",
	"updated_at",
}

type playerTableModel struct {
	PublicID  string    `db:"public_id"`
	Name      string    `db:"name"`
	Nickname  string    `db:"nickname"`
	Country   string    `db:"country"`
	Wage      int       `db:"wage"`
	Position  int       `db:"position"`
	Kick      int       `db:"kick"`
	Dribble   int       `db:"dribble"`
	Strength  int       `db:"strength"`
	Brave     int       `db:"brave"`
	Luck      int       `db:"luck"`
	Health    int       `db:"health"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func playerRow(item player.Player) playerTableModel {
	return playerTableModel{
		PublicID:  item.ID,
		Name:      item.Name,
		Nickname:  item.Nickname,
		Country:   item.Country,
		Wage:      item.Wage,
		Position:  int(item.Position),
		Kick:      item.Skills.Kick,
		Dribble:   item.Skills.Dribble,
		Strength:  item.Skills.Strength,
		Brave:     item.Skills.Brave,
		Luck:      item.Skills.Luck,
		Health:    item.Skills.Health,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func (row playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:       row.PublicID,
		Name:     row.Name,
		Nickname: row.Nickname,
		Country:  row.Country,
		Wage:     row.Wage,
		Position: player.Position(row.Position),
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

func prefixed(alias string, columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		out = append(out, alias+"."+c)
	}
	return out
}
