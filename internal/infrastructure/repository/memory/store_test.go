package memory

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/manager"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/playerinstance"
	"github.com/riskibarqy/football-manager/internal/domain/ref"
	"github.com/riskibarqy/football-manager/internal/domain/round"
	"github.com/riskibarqy/football-manager/internal/domain/season"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
	"github.com/stretchr/testify/require"
)

var storeNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newSeededStore(t *testing.T) *Store {
	t.Helper()

	store := NewStoreWithClock(clockwork.NewFakeClockAt(storeNow))
	if err := store.Seed(SeedPlayers(), SeedTeams(), SeedMemberships()); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store
}

func createInstances(t *testing.T, store *Store, ids ...string) {
	t.Helper()

	repo := NewTeamInstanceRepository(store)
	for _, id := range ids {
		err := repo.Create(t.Context(), teaminstance.TeamInstance{ID: id, BaseTeamID: TeamIDFlamengo})
		if err != nil {
			t.Fatalf("create team instance %s: %v", id, err)
		}
	}
}

func TestStore_SeedRejectsUnknownMember(t *testing.T) {
	store := NewStore()
	err := store.Seed(SeedPlayers(), SeedTeams(), []Membership{
		{Relation: team.RelationSquad, TeamID: TeamIDSantos, PlayerID: "missing"},
	})
	if !errors.Is(err, integrity.ErrReferential) {
		t.Fatalf("expected referential error, got %v", err)
	}
}

func TestTeamRepository_SamePlayerInTwoSquads(t *testing.T) {
	store := newSeededStore(t)
	repo := NewTeamRepository(store)
	ctx := t.Context()

	require.NoError(t, repo.AddMember(ctx, team.RelationSquad, TeamIDFlamengo, "bra-fwd-02"))
	require.NoError(t, repo.AddMember(ctx, team.RelationSquad, TeamIDSantos, "bra-fwd-02"))
	// Adding an existing member is a no-op.
	require.NoError(t, repo.AddMember(ctx, team.RelationSquad, TeamIDSantos, "bra-fwd-02"))

	santos, err := repo.ListMembers(ctx, team.RelationSquad, TeamIDSantos)
	require.NoError(t, err)
	require.Len(t, santos, 1)

	flamengo, err := repo.ListMembers(ctx, team.RelationSquad, TeamIDFlamengo)
	require.NoError(t, err)
	require.Len(t, flamengo, 3)

	err = repo.AddMember(ctx, team.RelationRoster, TeamIDSantos, "missing")
	require.ErrorIs(t, err, integrity.ErrReferential)
}

func TestPlayerRepository_DeleteRestrictedByInstance(t *testing.T) {
	store := newSeededStore(t)
	players := NewPlayerRepository(store)
	instances := NewPlayerInstanceRepository(store)
	ctx := t.Context()

	require.NoError(t, instances.Create(ctx, playerinstance.PlayerInstance{ID: "pi-1", BasePlayerID: "bra-fwd-02"}))
	require.ErrorIs(t, players.Delete(ctx, "bra-fwd-02"), integrity.ErrReferential)

	require.NoError(t, instances.Delete(ctx, "pi-1"))
	require.NoError(t, players.Delete(ctx, "bra-fwd-02"))

	members, err := NewTeamRepository(store).ListMembers(ctx, team.RelationRoster, TeamIDSantos)
	require.NoError(t, err)
	require.Empty(t, members)
}

func TestTeamInstanceRepository_CreateWithMembersIsAtomic(t *testing.T) {
	store := newSeededStore(t)
	repo := NewTeamInstanceRepository(store)
	ctx := t.Context()

	players := []playerinstance.PlayerInstance{
		{ID: "pi-1", BasePlayerID: "bra-gk-01"},
		{ID: "pi-2", BasePlayerID: "missing"},
	}
	err := repo.CreateWithMembers(ctx, teaminstance.TeamInstance{ID: "ti-1", BaseTeamID: TeamIDFlamengo}, players, []string{"pi-1"})
	require.ErrorIs(t, err, integrity.ErrReferential)

	_, ok, err := repo.GetByID(ctx, "ti-1")
	require.NoError(t, err)
	require.False(t, ok)
	_, ok, _ = NewPlayerInstanceRepository(store).GetByID(ctx, "pi-1")
	require.False(t, ok)
}

func TestMatchRepository_RecordResultUpdatesStatsAndRounds(t *testing.T) {
	store := newSeededStore(t)
	createInstances(t, store, "ti-a", "ti-b", "ti-c")
	matches := NewMatchRepository(store)
	rounds := NewRoundRepository(store)
	ctx := t.Context()

	require.NoError(t, matches.Create(ctx, match.Match{ID: "m-1", TeamA: ref.To("ti-a"), TeamB: ref.To("ti-b")}))
	require.NoError(t, matches.Create(ctx, match.Match{ID: "m-2", TeamA: ref.To("ti-c"), TeamB: ref.To("ti-a")}))
	require.NoError(t, rounds.Create(ctx, round.Round{ID: "r-1"}))

	_, err := rounds.AddMatch(ctx, "r-1", "m-1")
	require.NoError(t, err)
	got, err := rounds.AddMatch(ctx, "r-1", "m-2")
	require.NoError(t, err)
	require.False(t, got.Resolved)

	played, err := matches.RecordResult(ctx, "m-1", 2, 1)
	require.NoError(t, err)
	require.True(t, played.Resolved)

	_, err = matches.RecordResult(ctx, "m-1", 0, 0)
	require.ErrorIs(t, err, integrity.ErrConflict)

	r, _, _ := rounds.GetByID(ctx, "r-1")
	require.False(t, r.Resolved)

	_, err = matches.RecordResult(ctx, "m-2", 1, 1)
	require.NoError(t, err)
	r, _, _ = rounds.GetByID(ctx, "r-1")
	require.True(t, r.Resolved)

	a, _, _ := NewTeamInstanceRepository(store).GetByID(ctx, "ti-a")
	require.Equal(t, teaminstance.Stats{Wins: 1, Draws: 1, GoalsFor: 3, GoalsAgainst: 2, Points: 4}, a.Stats)
	b, _, _ := NewTeamInstanceRepository(store).GetByID(ctx, "ti-b")
	require.Equal(t, teaminstance.Stats{Loses: 1, GoalsFor: 1, GoalsAgainst: 2}, b.Stats)

	// An unresolved match added later reopens the round.
	require.NoError(t, matches.Create(ctx, match.Match{ID: "m-3"}))
	r, err = rounds.AddMatch(ctx, "r-1", "m-3")
	require.NoError(t, err)
	require.False(t, r.Resolved)

	require.NoError(t, matches.Delete(ctx, "m-3"))
	r, _, _ = rounds.GetByID(ctx, "r-1")
	require.True(t, r.Resolved)
}

func TestMatchRepository_RecordResultNeedsBothTeams(t *testing.T) {
	store := newSeededStore(t)
	createInstances(t, store, "ti-a")
	matches := NewMatchRepository(store)
	ctx := t.Context()

	require.NoError(t, matches.Create(ctx, match.Match{ID: "m-1", TeamA: ref.To("ti-a")}))
	_, err := matches.RecordResult(ctx, "m-1", 1, 0)
	require.ErrorIs(t, err, integrity.ErrConflict)

	err = matches.Create(ctx, match.Match{ID: "m-2", TeamA: ref.To("ti-missing")})
	require.ErrorIs(t, err, integrity.ErrReferential)
}

func TestRoundRepository_EmptyRoundIsNotResolved(t *testing.T) {
	store := newSeededStore(t)
	rounds := NewRoundRepository(store)
	ctx := t.Context()

	require.NoError(t, rounds.Create(ctx, round.Round{ID: "r-1", Resolved: true}))
	got, ok, err := rounds.GetByID(ctx, "r-1")
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, got.Resolved)

	items, err := rounds.ListMatches(ctx, "r-1")
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestTeamInstanceRepository_DeleteNullsReferences(t *testing.T) {
	store := newSeededStore(t)
	createInstances(t, store, "ti-a", "ti-b")
	ctx := t.Context()
	seasons := NewSeasonRepository(store)
	matches := NewMatchRepository(store)

	require.NoError(t, matches.Create(ctx, match.Match{ID: "m-1", TeamA: ref.To("ti-a"), TeamB: ref.To("ti-b")}))
	require.NoError(t, seasons.Create(ctx, season.Season{ID: "s-1", Year: 2024, MyTeam: ref.To("ti-a")}))
	require.NoError(t, seasons.AddTeam(ctx, "s-1", "ti-a"))
	require.NoError(t, seasons.AddTeam(ctx, "s-1", "ti-b"))
	_, err := seasons.Complete(ctx, "s-1", "ti-a")
	require.NoError(t, err)

	require.NoError(t, NewTeamInstanceRepository(store).Delete(ctx, "ti-a"))

	m, _, _ := matches.GetByID(ctx, "m-1")
	require.False(t, m.TeamA.IsSet())
	require.True(t, m.TeamB.Is("ti-b"))

	s, _, _ := seasons.GetByID(ctx, "s-1")
	require.False(t, s.Winner.IsSet())
	require.False(t, s.MyTeam.IsSet())
	teams, err := seasons.ListTeams(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, teams, 1)
}

func TestSeasonRepository_CompleteOnce(t *testing.T) {
	store := newSeededStore(t)
	createInstances(t, store, "ti-a")
	seasons := NewSeasonRepository(store)
	ctx := t.Context()

	require.NoError(t, seasons.Create(ctx, season.Season{ID: "s-1", Year: 2024}))
	s, _, _ := seasons.GetByID(ctx, "s-1")
	require.False(t, s.WinnerRef().IsSet())
	require.NoError(t, seasons.AddTeam(ctx, "s-1", "ti-a"))

	s, err := seasons.Complete(ctx, "s-1", "ti-a")
	require.NoError(t, err)
	require.True(t, s.Completed)
	require.True(t, s.WinnerRef().Is("ti-a"))

	_, err = seasons.Complete(ctx, "s-1", "ti-a")
	require.ErrorIs(t, err, integrity.ErrConflict)
}

func TestRoundRepository_DeleteClearsCurrentRound(t *testing.T) {
	store := newSeededStore(t)
	ctx := t.Context()
	rounds := NewRoundRepository(store)
	seasons := NewSeasonRepository(store)

	require.NoError(t, rounds.Create(ctx, round.Round{ID: "r-1"}))
	require.NoError(t, seasons.Create(ctx, season.Season{ID: "s-1", Year: 2024, CurrentRound: ref.To("r-1")}))
	require.NoError(t, rounds.Delete(ctx, "r-1"))

	s, _, _ := seasons.GetByID(ctx, "s-1")
	require.False(t, s.CurrentRound.IsSet())
}

func TestManagerRepository_StartSeasonKeepsHistory(t *testing.T) {
	store := newSeededStore(t)
	ctx := t.Context()
	seasons := NewSeasonRepository(store)
	managers := NewManagerRepository(store)

	require.NoError(t, seasons.Create(ctx, season.Season{ID: "s-1", Year: 2024}))
	require.NoError(t, seasons.Create(ctx, season.Season{ID: "s-2", Year: 2025}))
	require.NoError(t, managers.Create(ctx, manager.Manager{ID: "mgr-1", Nickname: manager.DefaultNickname}))

	m, _, _ := managers.GetByID(ctx, "mgr-1")
	require.True(t, m.NeedsSeason())

	_, err := managers.StartSeason(ctx, "mgr-1", "s-1")
	require.NoError(t, err)
	m, err = managers.StartSeason(ctx, "mgr-1", "s-2")
	require.NoError(t, err)
	require.True(t, m.CurrentSeason.Is("s-2"))

	history, err := managers.ListSeasons(ctx, "mgr-1")
	require.NoError(t, err)
	require.Len(t, history, 2)

	require.ErrorIs(t, seasons.Delete(ctx, "s-1"), integrity.ErrReferential)
	require.ErrorIs(t, seasons.Delete(ctx, "s-2"), integrity.ErrReferential)

	m, err = managers.AddPoints(ctx, "mgr-1", 7)
	require.NoError(t, err)
	require.Equal(t, 7, m.TotalPoints)

	require.NoError(t, managers.Delete(ctx, "mgr-1"))
	require.NoError(t, seasons.Delete(ctx, "s-1"))
}

func TestSeasonRepository_CompleteRequiresMemberWinner(t *testing.T) {
	store := newSeededStore(t)
	createInstances(t, store, "ti-a", "ti-b")
	seasons := NewSeasonRepository(store)
	ctx := t.Context()

	require.NoError(t, seasons.Create(ctx, season.Season{ID: "s-1", Year: 2024}))
	require.NoError(t, seasons.AddTeam(ctx, "s-1", "ti-a"))
	require.NoError(t, seasons.AddTeam(ctx, "s-1", "ti-b"))

	// the winner leaves the season between the caller's check and completion
	require.NoError(t, seasons.RemoveTeam(ctx, "s-1", "ti-a"))
	_, err := seasons.Complete(ctx, "s-1", "ti-a")
	require.ErrorIs(t, err, integrity.ErrInvalid)

	s, _, _ := seasons.GetByID(ctx, "s-1")
	require.False(t, s.Completed)
	require.False(t, s.WinnerRef().IsSet())

	s, err = seasons.Complete(ctx, "s-1", "ti-b")
	require.NoError(t, err)
	require.True(t, s.WinnerRef().Is("ti-b"))
}

func TestStore_LifecycleUpdatesUseStoreClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(storeNow)
	store := NewStoreWithClock(clock)
	require.NoError(t, store.Seed(SeedPlayers(), SeedTeams(), SeedMemberships()))
	createInstances(t, store, "ti-a", "ti-b")
	matches := NewMatchRepository(store)
	ctx := t.Context()

	require.NoError(t, matches.Create(ctx, match.Match{ID: "m-1", TeamA: ref.To("ti-a"), TeamB: ref.To("ti-b")}))
	clock.Advance(90 * time.Minute)

	played, err := matches.RecordResult(ctx, "m-1", 1, 0)
	require.NoError(t, err)
	want := storeNow.Add(90 * time.Minute)
	if !played.UpdatedAt.Equal(want) {
		t.Fatalf("expected match updated at %v, got %v", want, played.UpdatedAt)
	}

	a, _, _ := NewTeamInstanceRepository(store).GetByID(ctx, "ti-a")
	if !a.UpdatedAt.Equal(want) {
		t.Fatalf("expected stats updated at %v, got %v", want, a.UpdatedAt)
	}
}
