package postgres

import (
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/team"
)

var teamColumns = []string{
	"public_id",
	"name",
	"money",
	"color1",
	"color2",
	"color3",
	"serie",
	"created_at",
	"updated_at",
}

type teamTableModel struct {
	PublicID  string    `db:"public_id"`
	Name      string    `db:"name"`
	Money     int       `db:"money"`
	Color1    int       `db:"color1"`
	Color2    int       `db:"color2"`
	Color3    int       `db:"color3"`
	Serie     int       `db:"serie"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func teamRow(item team.Team) teamTableModel {
	return teamTableModel{
		PublicID:  item.ID,
		Name:      item.Name,
		Money:     item.Money,
		Color1:    item.Color1,
		Color2:    item.Color2,
		Color3:    item.Color3,
		Serie:     int(item.Serie),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func (row teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        row.PublicID,
		Name:      row.Name,
		Money:     row.Money,
		Color1:    row.Color1,
		Color2:    row.Color2,
		Color3:    row.Color3,
		Serie:     team.Serie(row.Serie),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
