package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func sampleRoster() Roster {
	zico := PlayerInput{Name: "Arthur Antunes Coimbra", Nickname: "Zico", Country: "Brazil", Position: int(player.PositionMidfield), Kick: 95}
	junior := PlayerInput{Name: "Leovegildo Lins da Gama Júnior", Nickname: "Júnior", Country: "Brazil", Position: int(player.PositionDefense)}
	adilio := PlayerInput{Name: "Adílio de Oliveira Gonçalves", Nickname: "Adílio", Country: "Brazil", Position: int(player.PositionMidfield)}

	return Roster{
		Players: []RosterPlayer{
			{Key: "zico", Player: zico},
			{Key: "junior", Player: junior},
			{Key: "adilio", Player: adilio},
		},
		Teams: []RosterTeam{
			{Team: TeamInput{Name: "Flamengo 1981"}, Roster: []string{"zico", "junior", "adilio"}, Squad: []string{"zico"}},
			{Team: TeamInput{Name: "Seleção 1982", Serie: int(team.SerieA)}, Roster: []string{"zico", "junior"}},
		},
	}
}

func TestRosterImportService_ImportsPlayersAndTeams(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	service := NewRosterImportService(f.players, f.teams, 2, logging.NewNop())

	result, err := service.Import(ctx, sampleRoster())
	if err != nil {
		t.Fatalf("import roster: %v", err)
	}
	require.Len(t, result.PlayerIDs, 3)
	require.Len(t, result.Teams, 2)
	require.Equal(t, "Flamengo 1981", result.Teams[0].Name)

	roster, err := f.teams.ListMembers(ctx, team.RelationRoster, result.Teams[0].ID)
	require.NoError(t, err)
	require.Len(t, roster, 3)

	squad, err := f.teams.ListMembers(ctx, team.RelationSquad, result.Teams[0].ID)
	require.NoError(t, err)
	require.Len(t, squad, 1)
	require.Equal(t, result.PlayerIDs["zico"], squad[0].ID)
	require.Equal(t, "Arthur Antunes Coimbra [Zico]", squad[0].String())

	roster, err = f.teams.ListMembers(ctx, team.RelationRoster, result.Teams[1].ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
}

func TestRosterImportService_RejectsBadRosterBeforeWriting(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	service := NewRosterImportService(f.players, f.teams, 0, logging.NewNop())

	before, err := f.players.List(ctx)
	require.NoError(t, err)

	unknown := sampleRoster()
	unknown.Teams[1].Squad = []string{"socrates"}
	_, err = service.Import(ctx, unknown)
	require.ErrorIs(t, err, ErrInvalidInput)

	duplicate := sampleRoster()
	duplicate.Players[2].Key = "zico"
	_, err = service.Import(ctx, duplicate)
	require.ErrorIs(t, err, ErrInvalidInput)

	blankKey := sampleRoster()
	blankKey.Players[0].Key = ""
	_, err = service.Import(ctx, blankKey)
	require.ErrorIs(t, err, ErrInvalidInput)

	after, err := f.players.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
}

func TestRosterImportService_ReportsPlayerFailures(t *testing.T) {
	f := newFixture(t)
	service := NewRosterImportService(f.players, f.teams, 4, logging.NewNop())

	roster := sampleRoster()
	roster.Players[1].Player.Position = 7
	roster.Teams = nil

	result, err := service.Import(t.Context(), roster)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Empty(t, result.Teams)
}

// squadlessTeams creates teams and rosters but refuses squad memberships.
type squadlessTeams struct {
	teamCreator
}

var errSquadClosed = errors.New("squad closed")

func (s squadlessTeams) AddMember(ctx context.Context, rel team.Relation, teamID, playerID string) error {
	if rel == team.RelationSquad {
		return errSquadClosed
	}
	return s.teamCreator.AddMember(ctx, rel, teamID, playerID)
}

func TestRosterImportService_KeepsTeamsWithFailedMemberships(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	service := NewRosterImportService(f.players, squadlessTeams{teamCreator: f.teams}, 2, logging.NewNop())

	result, err := service.Import(ctx, sampleRoster())
	require.ErrorIs(t, err, errSquadClosed)
	require.Len(t, result.PlayerIDs, 3)
	require.Len(t, result.Teams, 2)
	require.Equal(t, "Flamengo 1981", result.Teams[0].Name)

	stored, err := f.teams.Get(ctx, result.Teams[0].ID)
	require.NoError(t, err)
	require.Equal(t, result.Teams[0].ID, stored.ID)

	squad, err := f.teams.ListMembers(ctx, team.RelationSquad, result.Teams[0].ID)
	require.NoError(t, err)
	require.Empty(t, squad)
}
