package usecase

import (
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/require"
)

func TestInstanceService_InstantiateTeamClonesRosterAndSquad(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	// A squad member who is not rostered is not carried into the instance.
	require.NoError(t, f.teams.AddMember(ctx, team.RelationSquad, memory.TeamIDFlamengo, "bra-mid-02"))

	instance, err := f.instances.InstantiateTeam(ctx, memory.TeamIDFlamengo)
	if err != nil {
		t.Fatalf("instantiate team: %v", err)
	}
	if instance.BaseTeamID != memory.TeamIDFlamengo {
		t.Fatalf("unexpected base team: %s", instance.BaseTeamID)
	}
	if instance.Stats.Played() != 0 || instance.Stats.Points != 0 {
		t.Fatalf("expected zeroed stats, got %+v", instance.Stats)
	}

	roster, err := f.instances.ListTeamMembers(ctx, team.RelationRoster, instance.ID)
	require.NoError(t, err)
	require.Len(t, roster, 4)

	bases := make(map[string]string, len(roster))
	for _, p := range roster {
		bases[p.ID] = p.BasePlayerID
		template, err := f.players.Get(ctx, p.BasePlayerID)
		require.NoError(t, err)
		require.Equal(t, template.Skills, p.Skills)
	}

	squad, err := f.instances.ListTeamMembers(ctx, team.RelationSquad, instance.ID)
	require.NoError(t, err)
	squadBases := make([]string, 0, len(squad))
	for _, p := range squad {
		base, ok := bases[p.ID]
		require.True(t, ok, "squad member %s must be a roster clone", p.ID)
		squadBases = append(squadBases, base)
	}
	require.ElementsMatch(t, []string{"bra-gk-01", "bra-fwd-01"}, squadBases)
}

func TestInstanceService_InstantiateMissingTeam(t *testing.T) {
	f := newFixture(t)

	_, err := f.instances.InstantiateTeam(t.Context(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInstanceService_PlayerInstanceSkillsEvolveIndependently(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	instance, err := f.instances.CreatePlayerInstance(ctx, "bra-fwd-02")
	require.NoError(t, err)

	updated, err := f.instances.UpdatePlayerSkills(ctx, instance.ID, SkillsInput{Kick: 1, Dribble: 2, Strength: 3, Brave: 4, Luck: 5, Health: 6})
	require.NoError(t, err)
	require.Equal(t, 1, updated.Skills.Kick)
	require.Equal(t, "bra-fwd-02", updated.BasePlayerID)

	template, err := f.players.Get(ctx, "bra-fwd-02")
	require.NoError(t, err)
	require.NotEqual(t, updated.Skills, template.Skills)

	listed, err := f.instances.ListPlayerInstances(ctx, "bra-fwd-02")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	_, err = f.instances.UpdatePlayerSkills(ctx, instance.ID, SkillsInput{Kick: -1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestInstanceService_CreatePlayerInstanceNeedsTemplate(t *testing.T) {
	f := newFixture(t)

	_, err := f.instances.CreatePlayerInstance(t.Context(), "missing")
	require.ErrorIs(t, err, ErrReferential)
}

func TestInstanceService_UpdateTeamStats(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	instance, err := f.instances.CreateTeamInstance(ctx, memory.TeamIDSantos)
	require.NoError(t, err)

	updated, err := f.instances.UpdateTeamStats(ctx, instance.ID, StatsInput{Wins: 2, Draws: 1, GoalsFor: 5, GoalsAgainst: 1, Points: 7})
	require.NoError(t, err)
	require.Equal(t, 7, updated.Stats.Points)
	require.Equal(t, 4, updated.Stats.GoalDifference())

	_, err = f.instances.UpdateTeamStats(ctx, instance.ID, StatsInput{Loses: -1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.instances.UpdateTeamStats(ctx, "missing", StatsInput{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInstanceService_TeamMembers(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	instance, err := f.instances.CreateTeamInstance(ctx, memory.TeamIDSantos)
	require.NoError(t, err)
	clone, err := f.instances.CreatePlayerInstance(ctx, "bra-fwd-02")
	require.NoError(t, err)

	require.NoError(t, f.instances.AddTeamMember(ctx, team.RelationRoster, instance.ID, clone.ID))
	require.NoError(t, f.instances.AddTeamMember(ctx, team.RelationRoster, instance.ID, clone.ID))

	roster, err := f.instances.ListTeamMembers(ctx, team.RelationRoster, instance.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)

	squad, err := f.instances.ListTeamMembers(ctx, team.RelationSquad, instance.ID)
	require.NoError(t, err)
	require.Empty(t, squad)

	require.ErrorIs(t, f.instances.AddTeamMember(ctx, team.RelationSquad, instance.ID, "missing"), ErrReferential)

	require.NoError(t, f.instances.RemoveTeamMember(ctx, team.RelationRoster, instance.ID, clone.ID))
	roster, err = f.instances.ListTeamMembers(ctx, team.RelationRoster, instance.ID)
	require.NoError(t, err)
	require.Empty(t, roster)
}
