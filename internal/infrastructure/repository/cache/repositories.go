// Package cache decorates template repositories with a read-through cache.
// Templates are read far more often than they change, so every write drops
// the keys it could have made stale.
package cache

import (
	"context"

	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	basecache "github.com/riskibarqy/football-manager/internal/platform/cache"
)

const (
	playerListKey     = "player:list"
	playerIDPrefix    = "player:id:"
	teamListKey       = "team:list"
	teamIDPrefix      = "team:id:"
	teamMembersPrefix = "team:members:"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, playerListKey, playerIDPrefix+item.ID)
	return nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, playerIDPrefix+playerID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, playerListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, item.ID)
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	if err := r.next.Delete(ctx, playerID); err != nil {
		return err
	}
	r.invalidate(ctx, playerID)
	return nil
}

// invalidate also drops member listings, which embed player records.
func (r *PlayerRepository) invalidate(ctx context.Context, playerID string) {
	r.cache.Delete(ctx, playerListKey, playerIDPrefix+playerID)
	r.cache.DeletePrefix(ctx, teamMembersPrefix)
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, teamListKey, teamIDPrefix+item.ID)
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, teamIDPrefix+teamID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, teamListKey, teamIDPrefix+item.ID)
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	if err := r.next.Delete(ctx, teamID); err != nil {
		return err
	}
	r.cache.Delete(ctx, teamListKey, teamIDPrefix+teamID)
	r.cache.DeletePrefix(ctx, membersKeyPrefix(teamID))
	return nil
}

func (r *TeamRepository) AddMember(ctx context.Context, rel team.Relation, teamID, playerID string) error {
	if err := r.next.AddMember(ctx, rel, teamID, playerID); err != nil {
		return err
	}
	r.cache.Delete(ctx, membersKey(rel, teamID))
	return nil
}

func (r *TeamRepository) RemoveMember(ctx context.Context, rel team.Relation, teamID, playerID string) error {
	if err := r.next.RemoveMember(ctx, rel, teamID, playerID); err != nil {
		return err
	}
	r.cache.Delete(ctx, membersKey(rel, teamID))
	return nil
}

func (r *TeamRepository) ListMembers(ctx context.Context, rel team.Relation, teamID string) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, membersKey(rel, teamID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListMembers(ctx, rel, teamID)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func membersKeyPrefix(teamID string) string {
	return teamMembersPrefix + teamID + ":"
}

func membersKey(rel team.Relation, teamID string) string {
	return membersKeyPrefix(teamID) + string(rel)
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}
