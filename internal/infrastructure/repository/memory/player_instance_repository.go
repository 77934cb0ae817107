package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/playerinstance"
)

type PlayerInstanceRepository struct {
	store *Store
}

func NewPlayerInstanceRepository(store *Store) *PlayerInstanceRepository {
	return &PlayerInstanceRepository{store: store}
}

func (r *PlayerInstanceRepository) Create(_ context.Context, item playerinstance.PlayerInstance) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertPlayerInstance(item)
}

// insertPlayerInstance must be called with the write lock held.
func (s *Store) insertPlayerInstance(item playerinstance.PlayerInstance) error {
	if _, ok := s.playerInstances[item.ID]; ok {
		return fmt.Errorf("%w: player instance=%s already exists", integrity.ErrConflict, item.ID)
	}
	if _, ok := s.players[item.BasePlayerID]; !ok {
		return fmt.Errorf("%w: base player=%s", integrity.ErrReferential, item.BasePlayerID)
	}
	s.playerInstances[item.ID] = item
	return nil
}

func (r *PlayerInstanceRepository) GetByID(_ context.Context, instanceID string) (playerinstance.PlayerInstance, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.playerInstances[instanceID]
	return item, ok, nil
}

func (r *PlayerInstanceRepository) ListByBasePlayer(_ context.Context, basePlayerID string) ([]playerinstance.PlayerInstance, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []playerinstance.PlayerInstance
	for _, item := range s.playerInstances {
		if item.BasePlayerID == basePlayerID {
			out = append(out, item)
		}
	}
	sortByCreated(out, func(p playerinstance.PlayerInstance) (string, int64) { return p.ID, p.CreatedAt.UnixNano() })
	return out, nil
}

func (r *PlayerInstanceRepository) Update(_ context.Context, item playerinstance.PlayerInstance) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.playerInstances[item.ID]
	if !ok {
		return fmt.Errorf("%w: player instance=%s", integrity.ErrNotFound, item.ID)
	}
	// The base template is fixed at creation.
	item.BasePlayerID = existing.BasePlayerID
	item.CreatedAt = existing.CreatedAt
	s.playerInstances[item.ID] = item
	return nil
}

func (r *PlayerInstanceRepository) Delete(_ context.Context, instanceID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.playerInstances[instanceID]; !ok {
		return fmt.Errorf("%w: player instance=%s", integrity.ErrNotFound, instanceID)
	}
	for _, rel := range s.teamInstanceMembers {
		rel.dropMember(instanceID)
	}
	delete(s.playerInstances, instanceID)
	return nil
}
