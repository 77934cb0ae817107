package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[item.ID]; ok {
		return fmt.Errorf("%w: player=%s already exists", integrity.ErrConflict, item.ID)
	}
	s.players[item.ID] = item
	s.playerOrder = append(s.playerOrder, item.ID)
	return nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]player.Player, 0, len(s.playerOrder))
	for _, id := range s.playerOrder {
		out = append(out, s.players[id])
	}
	return out, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.players[item.ID]
	if !ok {
		return fmt.Errorf("%w: player=%s", integrity.ErrNotFound, item.ID)
	}
	item.CreatedAt = existing.CreatedAt
	s.players[item.ID] = item
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, playerID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[playerID]; !ok {
		return fmt.Errorf("%w: player=%s", integrity.ErrNotFound, playerID)
	}
	for _, inst := range s.playerInstances {
		if inst.BasePlayerID == playerID {
			return fmt.Errorf("%w: player=%s is the base of player instance=%s", integrity.ErrReferential, playerID, inst.ID)
		}
	}

	for _, rel := range s.teamMembers {
		rel.dropMember(playerID)
	}
	delete(s.players, playerID)
	s.playerOrder = removeID(s.playerOrder, playerID)
	return nil
}
