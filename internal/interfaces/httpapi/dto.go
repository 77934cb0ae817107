package httpapi

import (
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/manager"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/playerinstance"
	"github.com/riskibarqy/football-manager/internal/domain/round"
	"github.com/riskibarqy/football-manager/internal/domain/season"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
)

type enumItemDTO struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
}

type enumsDTO struct {
	Positions  []enumItemDTO `json:"positions"`
	Series     []enumItemDTO `json:"series"`
	Formations []enumItemDTO `json:"formations"`
}

type skillsDTO struct {
	Kick     int `json:"kick"`
	Dribble  int `json:"dribble"`
	Strength int `json:"strength"`
	Brave    int `json:"brave"`
	Luck     int `json:"luck"`
	Health   int `json:"health"`
}

type playerDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Nickname      string    `json:"nickname"`
	DisplayName   string    `json:"display_name"`
	Country       string    `json:"country"`
	Wage          int       `json:"wage"`
	Position      int       `json:"position"`
	PositionLabel string    `json:"position_label"`
	Skills        skillsDTO `json:"skills"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type teamDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Money      int       `json:"money"`
	Colors     [3]int    `json:"colors"`
	Serie      int       `json:"serie"`
	SerieLabel string    `json:"serie_label"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type playerInstanceDTO struct {
	ID           string    `json:"id"`
	BasePlayerID string    `json:"base_player_id"`
	Skills       skillsDTO `json:"skills"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type statsDTO struct {
	Played         int `json:"played"`
	Wins           int `json:"wins"`
	Draws          int `json:"draws"`
	Loses          int `json:"loses"`
	GoalsFor       int `json:"goals_for"`
	GoalsAgainst   int `json:"goals_against"`
	GoalDifference int `json:"goal_difference"`
	Points         int `json:"points"`
}

type teamInstanceDTO struct {
	ID         string    `json:"id"`
	BaseTeamID string    `json:"base_team_id"`
	Stats      statsDTO  `json:"stats"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type matchDTO struct {
	ID        string    `json:"id"`
	TeamA     *string   `json:"team_a"`
	TeamB     *string   `json:"team_b"`
	GoalsA    int       `json:"goals_a"`
	GoalsB    int       `json:"goals_b"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type matchSummaryDTO struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
}

type roundDTO struct {
	ID        string    `json:"id"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type seasonDTO struct {
	ID           string    `json:"id"`
	Year         int       `json:"year"`
	Completed    bool      `json:"completed"`
	CurrentRound *string   `json:"current_round"`
	Winner       *string   `json:"winner"`
	MyTeam       *string   `json:"my_team"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type seasonSetupDTO struct {
	Season seasonDTO         `json:"season"`
	Teams  []teamInstanceDTO `json:"teams"`
}

type managerDTO struct {
	ID            string    `json:"id"`
	Nickname      string    `json:"nickname"`
	TotalPoints   int       `json:"total_points"`
	CurrentSeason *string   `json:"current_season"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func enumsToDTO() enumsDTO {
	out := enumsDTO{}
	for _, p := range player.Positions() {
		out.Positions = append(out.Positions, enumItemDTO{Code: int(p), Label: p.String()})
	}
	for _, s := range team.Series() {
		out.Series = append(out.Series, enumItemDTO{Code: int(s), Label: s.String()})
	}
	for _, f := range team.Formations() {
		out.Formations = append(out.Formations, enumItemDTO{Code: int(f), Label: f.String()})
	}
	return out
}

func skillsToDTO(v player.Skills) skillsDTO {
	return skillsDTO(v)
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:            v.ID,
		Name:          v.Name,
		Nickname:      v.Nickname,
		DisplayName:   v.String(),
		Country:       v.Country,
		Wage:          v.Wage,
		Position:      int(v.Position),
		PositionLabel: v.Position.String(),
		Skills:        skillsToDTO(v.Skills),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:         v.ID,
		Name:       v.Name,
		Money:      v.Money,
		Colors:     [3]int{v.Color1, v.Color2, v.Color3},
		Serie:      int(v.Serie),
		SerieLabel: v.Serie.String(),
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}

func playerInstanceToDTO(v playerinstance.PlayerInstance) playerInstanceDTO {
	return playerInstanceDTO{
		ID:           v.ID,
		BasePlayerID: v.BasePlayerID,
		Skills:       skillsToDTO(v.Skills),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func playerInstancesToDTO(items []playerinstance.PlayerInstance) []playerInstanceDTO {
	out := make([]playerInstanceDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerInstanceToDTO(item))
	}
	return out
}

func teamInstanceToDTO(v teaminstance.TeamInstance) teamInstanceDTO {
	return teamInstanceDTO{
		ID:         v.ID,
		BaseTeamID: v.BaseTeamID,
		Stats: statsDTO{
			Played:         v.Stats.Played(),
			Wins:           v.Stats.Wins,
			Draws:          v.Stats.Draws,
			Loses:          v.Stats.Loses,
			GoalsFor:       v.Stats.GoalsFor,
			GoalsAgainst:   v.Stats.GoalsAgainst,
			GoalDifference: v.Stats.GoalDifference(),
			Points:         v.Stats.Points,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func teamInstancesToDTO(items []teaminstance.TeamInstance) []teamInstanceDTO {
	out := make([]teamInstanceDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamInstanceToDTO(item))
	}
	return out
}

func matchToDTO(v match.Match) matchDTO {
	goalsA, goalsB, _ := v.Result()
	return matchDTO{
		ID:        v.ID,
		TeamA:     v.TeamA.Ptr(),
		TeamB:     v.TeamB.Ptr(),
		GoalsA:    goalsA,
		GoalsB:    goalsB,
		Resolved:  v.Resolved,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func roundToDTO(v round.Round) roundDTO {
	return roundDTO{
		ID:        v.ID,
		Resolved:  v.Resolved,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{
		ID:           v.ID,
		Year:         v.Year,
		Completed:    v.Completed,
		CurrentRound: v.CurrentRound.Ptr(),
		Winner:       v.WinnerRef().Ptr(),
		MyTeam:       v.MyTeam.Ptr(),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func seasonsToDTO(items []season.Season) []seasonDTO {
	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonToDTO(item))
	}
	return out
}

func managerToDTO(v manager.Manager) managerDTO {
	return managerDTO{
		ID:            v.ID,
		Nickname:      v.Nickname,
		TotalPoints:   v.TotalPoints,
		CurrentSeason: v.CurrentSeason.Ptr(),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func managersToDTO(items []manager.Manager) []managerDTO {
	out := make([]managerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, managerToDTO(item))
	}
	return out
}
