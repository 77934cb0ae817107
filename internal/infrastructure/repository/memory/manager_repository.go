package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/manager"
	"github.com/riskibarqy/football-manager/internal/domain/ref"
	"github.com/riskibarqy/football-manager/internal/domain/season"
)

type ManagerRepository struct {
	store *Store
}

func NewManagerRepository(store *Store) *ManagerRepository {
	return &ManagerRepository{store: store}
}

func (r *ManagerRepository) Create(_ context.Context, item manager.Manager) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.managers[item.ID]; ok {
		return fmt.Errorf("%w: manager=%s already exists", integrity.ErrConflict, item.ID)
	}
	if id, ok := item.CurrentSeason.ID(); ok {
		if _, exists := s.seasons[id]; !exists {
			return fmt.Errorf("%w: season=%s", integrity.ErrReferential, id)
		}
		s.managerSeasons.add(item.ID, id)
	}
	s.managers[item.ID] = item
	s.managerOrder = append(s.managerOrder, item.ID)
	return nil
}

func (r *ManagerRepository) GetByID(_ context.Context, managerID string) (manager.Manager, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.managers[managerID]
	return item, ok, nil
}

func (r *ManagerRepository) List(_ context.Context) ([]manager.Manager, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]manager.Manager, 0, len(s.managerOrder))
	for _, id := range s.managerOrder {
		out = append(out, s.managers[id])
	}
	return out, nil
}

func (r *ManagerRepository) Update(_ context.Context, item manager.Manager) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.managers[item.ID]
	if !ok {
		return fmt.Errorf("%w: manager=%s", integrity.ErrNotFound, item.ID)
	}
	existing.Nickname = item.Nickname
	existing.TotalPoints = item.TotalPoints
	existing.UpdatedAt = item.UpdatedAt
	s.managers[item.ID] = existing
	return nil
}

func (r *ManagerRepository) Delete(_ context.Context, managerID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.managers[managerID]; !ok {
		return fmt.Errorf("%w: manager=%s", integrity.ErrNotFound, managerID)
	}
	delete(s.managerSeasons, managerID)
	delete(s.managers, managerID)
	s.managerOrder = removeID(s.managerOrder, managerID)
	return nil
}

func (r *ManagerRepository) StartSeason(_ context.Context, managerID, seasonID string) (manager.Manager, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.managers[managerID]
	if !ok {
		return manager.Manager{}, fmt.Errorf("%w: manager=%s", integrity.ErrNotFound, managerID)
	}
	if _, ok := s.seasons[seasonID]; !ok {
		return manager.Manager{}, fmt.Errorf("%w: season=%s", integrity.ErrReferential, seasonID)
	}
	item.CurrentSeason = ref.To(seasonID)
	item.UpdatedAt = s.now().UTC()
	s.managers[managerID] = item
	s.managerSeasons.add(managerID, seasonID)
	return item, nil
}

func (r *ManagerRepository) AddPoints(_ context.Context, managerID string, delta int) (manager.Manager, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.managers[managerID]
	if !ok {
		return manager.Manager{}, fmt.Errorf("%w: manager=%s", integrity.ErrNotFound, managerID)
	}
	item.TotalPoints += delta
	item.UpdatedAt = s.now().UTC()
	s.managers[managerID] = item
	return item, nil
}

func (r *ManagerRepository) ListSeasons(_ context.Context, managerID string) ([]season.Season, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.managers[managerID]; !ok {
		return nil, fmt.Errorf("%w: manager=%s", integrity.ErrNotFound, managerID)
	}
	ids := s.managerSeasons.members(managerID)
	out := make([]season.Season, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.seasons[id])
	}
	return out, nil
}
