package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	playermock "github.com/riskibarqy/football-manager/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/football-manager/internal/mocks/domain/team"
	basecache "github.com/riskibarqy/football-manager/internal/platform/cache"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_GetByIDCachesUntilUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	pele := player.Player{ID: "bra-fwd-02", Name: "Edson Arantes do Nascimento", Nickname: "Pelé", Position: player.PositionForward}
	next.On("GetByID", mock.Anything, pele.ID).Return(pele, true, nil).Twice()
	next.On("Update", mock.Anything, pele).Return(nil).Once()

	for range 3 {
		got, ok, err := repo.GetByID(ctx, pele.ID)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, pele, got)
	}

	require.NoError(t, repo.Update(ctx, pele))

	_, ok, err := repo.GetByID(ctx, pele.ID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPlayerRepository_CachesMissingRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	next.On("GetByID", mock.Anything, "missing").Return(player.Player{}, false, nil).Once()

	for range 2 {
		_, ok, err := repo.GetByID(ctx, "missing")
		require.NoError(t, err)
		require.False(t, ok)
	}
}

func TestPlayerRepository_DoesNotInvalidateOnFailedWrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playermock.NewRepository(t)
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))
	boom := errors.New("boom")

	next.On("List", mock.Anything).Return([]player.Player{{ID: "p1"}}, nil).Once()
	next.On("Delete", mock.Anything, "p1").Return(boom).Once()

	_, err := repo.List(ctx)
	require.NoError(t, err)
	require.ErrorIs(t, repo.Delete(ctx, "p1"), boom)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestTeamRepository_MemberChangesDropOnlyThatRelation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := teammock.NewRepository(t)
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	roster := []player.Player{{ID: "p1"}, {ID: "p2"}}
	squad := []player.Player{{ID: "p1"}}
	next.On("ListMembers", mock.Anything, team.RelationRoster, "bra-santos").Return(roster, nil).Once()
	next.On("ListMembers", mock.Anything, team.RelationSquad, "bra-santos").Return(squad, nil).Twice()
	next.On("AddMember", mock.Anything, team.RelationSquad, "bra-santos", "p2").Return(nil).Once()

	for range 2 {
		_, err := repo.ListMembers(ctx, team.RelationRoster, "bra-santos")
		require.NoError(t, err)
		_, err = repo.ListMembers(ctx, team.RelationSquad, "bra-santos")
		require.NoError(t, err)
	}

	require.NoError(t, repo.AddMember(ctx, team.RelationSquad, "bra-santos", "p2"))

	_, err := repo.ListMembers(ctx, team.RelationRoster, "bra-santos")
	require.NoError(t, err)
	_, err = repo.ListMembers(ctx, team.RelationSquad, "bra-santos")
	require.NoError(t, err)
}

func TestTeamRepository_ListReturnsCopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := teammock.NewRepository(t)
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	next.On("List", mock.Anything).Return([]team.Team{{ID: "bra-santos", Name: "Santos"}}, nil).Once()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Santos", second[0].Name)
}
