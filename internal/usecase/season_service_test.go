package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/season"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	teammock "github.com/riskibarqy/football-manager/internal/mocks/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeasonService_CreateWithoutRoundHasNoWinner(t *testing.T) {
	f := newFixture(t)

	created, err := f.seasons.Create(t.Context(), SeasonInput{Year: 2024})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	if created.CurrentRound.IsSet() {
		t.Fatalf("expected no current round")
	}
	if created.WinnerRef().IsSet() {
		t.Fatalf("expected absent winner on an open season")
	}
	if created.String() != "2024 | COMPLETED? False" {
		t.Fatalf("unexpected display form: %s", created)
	}

	_, err = f.seasons.Create(t.Context(), SeasonInput{Year: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSeasonService_SetupClonesTemplates(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	setup, err := f.seasons.Setup(ctx, SetupSeasonInput{
		Year:     2025,
		TeamIDs:  []string{memory.TeamIDFlamengo, memory.TeamIDPalmeiras, memory.TeamIDFlamengo},
		MyTeamID: memory.TeamIDSantos,
	})
	require.NoError(t, err)
	require.Len(t, setup.Teams, 3)

	bases := make(map[string]string, len(setup.Teams))
	for _, item := range setup.Teams {
		bases[item.ID] = item.BaseTeamID
	}
	myTeam, ok := setup.Season.MyTeam.ID()
	require.True(t, ok)
	require.Equal(t, memory.TeamIDSantos, bases[myTeam])

	listed, err := f.seasons.ListTeams(ctx, setup.Season.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	santos, err := f.instances.ListTeamMembers(ctx, team.RelationRoster, myTeam)
	require.NoError(t, err)
	require.Len(t, santos, 1)
	require.Equal(t, "bra-fwd-02", santos[0].BasePlayerID)
}

func TestSeasonService_SetupFailsOnMissingTemplate(t *testing.T) {
	f := newFixture(t)

	_, err := f.seasons.Setup(t.Context(), SetupSeasonInput{Year: 2025, TeamIDs: []string{memory.TeamIDFlamengo, "missing"}})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = f.seasons.Setup(t.Context(), SetupSeasonInput{Year: 2025})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSeasonService_CompleteRequiresMemberWinner(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	setup, err := f.seasons.Setup(ctx, SetupSeasonInput{Year: 2025, TeamIDs: []string{memory.TeamIDFlamengo, memory.TeamIDGremio}})
	require.NoError(t, err)
	outsider, err := f.instances.CreateTeamInstance(ctx, memory.TeamIDSantos)
	require.NoError(t, err)

	_, err = f.seasons.Complete(ctx, setup.Season.ID, outsider.ID)
	require.ErrorIs(t, err, ErrInvalidInput)

	winner := setup.Teams[1].ID
	completed, err := f.seasons.Complete(ctx, setup.Season.ID, winner)
	require.NoError(t, err)
	require.True(t, completed.Completed)
	require.True(t, completed.WinnerRef().Is(winner))
	require.Equal(t, "2025 | COMPLETED? True", completed.String())

	_, err = f.seasons.Complete(ctx, setup.Season.ID, winner)
	require.ErrorIs(t, err, ErrConflict)

	// Deleting the winner instance nulls the reference without reopening.
	require.NoError(t, f.instances.DeleteTeamInstance(ctx, winner))
	got, err := f.seasons.Get(ctx, setup.Season.ID)
	require.NoError(t, err)
	require.True(t, got.Completed)
	require.False(t, got.WinnerRef().IsSet())
}

func TestSeasonService_UpdateAndRoundDeletion(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	created, err := f.seasons.Create(ctx, SeasonInput{Year: 2024})
	require.NoError(t, err)
	r, err := f.rounds.Create(ctx)
	require.NoError(t, err)

	updated, err := f.seasons.Update(ctx, created.ID, SeasonInput{Year: 2025, CurrentRound: r.ID})
	require.NoError(t, err)
	require.True(t, updated.CurrentRound.Is(r.ID))
	require.Equal(t, 2025, updated.Year)

	_, err = f.seasons.Update(ctx, created.ID, SeasonInput{Year: 2025, CurrentRound: "missing"})
	require.ErrorIs(t, err, ErrReferential)

	require.NoError(t, f.rounds.Delete(ctx, r.ID))
	got, err := f.seasons.Get(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, got.CurrentRound.IsSet())
}

func TestSeasonService_TeamSetIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	created, err := f.seasons.Create(ctx, SeasonInput{Year: 2024})
	require.NoError(t, err)
	instance, err := f.instances.CreateTeamInstance(ctx, memory.TeamIDSantos)
	require.NoError(t, err)

	require.NoError(t, f.seasons.AddTeam(ctx, created.ID, instance.ID))
	require.NoError(t, f.seasons.AddTeam(ctx, created.ID, instance.ID))
	teams, err := f.seasons.ListTeams(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, []teaminstance.TeamInstance{instance}, teams)

	require.NoError(t, f.seasons.RemoveTeam(ctx, created.ID, instance.ID))
	require.NoError(t, f.seasons.RemoveTeam(ctx, created.ID, instance.ID))
	require.ErrorIs(t, f.seasons.AddTeam(ctx, created.ID, "missing"), ErrReferential)

	// Deleting the season leaves the instance in place.
	require.NoError(t, f.seasons.Delete(ctx, created.ID))
	_, err = f.instances.GetTeamInstance(ctx, instance.ID)
	require.NoError(t, err)
}

func TestSeasonService_SetupStorageErrorUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewSeasonService(nil, teamRepo, nil, &sequenceIDs{}, logging.NewNop())

	storageErr := errors.New("pool exhausted")
	teamRepo.
		On("GetByID", mock.MatchedBy(func(context.Context) bool { return true }), "bra-flamengo").
		Return(team.Team{}, false, storageErr).
		Once()

	_, err := service.Setup(context.Background(), SetupSeasonInput{Year: 2025, TeamIDs: []string{"bra-flamengo"}})
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

// shrinkingSeasonRepo drops the winner from the season right before completing.
type shrinkingSeasonRepo struct {
	season.Repository
}

func (r shrinkingSeasonRepo) Complete(ctx context.Context, seasonID, winnerID string) (season.Season, error) {
	if err := r.RemoveTeam(ctx, seasonID, winnerID); err != nil {
		return season.Season{}, err
	}
	return r.Repository.Complete(ctx, seasonID, winnerID)
}

func TestSeasonService_CompleteRejectsWinnerRemovedConcurrently(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	setup, err := f.seasons.Setup(ctx, SetupSeasonInput{Year: 2025, TeamIDs: []string{memory.TeamIDFlamengo, memory.TeamIDGremio}})
	require.NoError(t, err)
	f.seasons.seasonRepo = shrinkingSeasonRepo{Repository: f.seasons.seasonRepo}

	winner := setup.Teams[0].ID
	_, err = f.seasons.Complete(ctx, setup.Season.ID, winner)
	require.ErrorIs(t, err, ErrInvalidInput)

	got, err := f.seasons.Get(ctx, setup.Season.ID)
	require.NoError(t, err)
	if got.Completed || got.WinnerRef().IsSet() {
		t.Fatalf("season must stay open, got %s winner=%s", got, got.WinnerRef())
	}
}
