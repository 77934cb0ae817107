package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/ref"
	"github.com/riskibarqy/football-manager/internal/domain/season"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
)

type SeasonRepository struct {
	store *Store
}

func NewSeasonRepository(store *Store) *SeasonRepository {
	return &SeasonRepository{store: store}
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seasons[item.ID]; ok {
		return fmt.Errorf("%w: season=%s already exists", integrity.ErrConflict, item.ID)
	}
	if err := s.checkSeasonRefs(item); err != nil {
		return err
	}
	s.seasons[item.ID] = item
	return nil
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.seasons[seasonID]
	return item, ok, nil
}

func (r *SeasonRepository) Update(_ context.Context, item season.Season) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.seasons[item.ID]
	if !ok {
		return fmt.Errorf("%w: season=%s", integrity.ErrNotFound, item.ID)
	}
	if err := s.checkSeasonRefs(item); err != nil {
		return err
	}
	existing.Year = item.Year
	existing.CurrentRound = item.CurrentRound
	existing.MyTeam = item.MyTeam
	existing.UpdatedAt = item.UpdatedAt
	s.seasons[item.ID] = existing
	return nil
}

func (r *SeasonRepository) Delete(_ context.Context, seasonID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seasons[seasonID]; !ok {
		return fmt.Errorf("%w: season=%s", integrity.ErrNotFound, seasonID)
	}
	for _, item := range s.managers {
		if item.CurrentSeason.Is(seasonID) {
			return fmt.Errorf("%w: season=%s is the current season of manager=%s", integrity.ErrReferential, seasonID, item.ID)
		}
	}
	if owners := s.managerSeasons.ownersOf(seasonID); len(owners) > 0 {
		return fmt.Errorf("%w: season=%s is in the history of manager=%s", integrity.ErrReferential, seasonID, owners[0])
	}
	delete(s.seasonTeams, seasonID)
	delete(s.seasons, seasonID)
	return nil
}

func (r *SeasonRepository) AddTeam(_ context.Context, seasonID, instanceID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := r.endpoints(seasonID, instanceID); err != nil {
		return err
	}
	s.seasonTeams.add(seasonID, instanceID)
	return nil
}

func (r *SeasonRepository) RemoveTeam(_ context.Context, seasonID, instanceID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := r.endpoints(seasonID, instanceID); err != nil {
		return err
	}
	s.seasonTeams.remove(seasonID, instanceID)
	return nil
}

func (r *SeasonRepository) ListTeams(_ context.Context, seasonID string) ([]teaminstance.TeamInstance, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.seasons[seasonID]; !ok {
		return nil, fmt.Errorf("%w: season=%s", integrity.ErrNotFound, seasonID)
	}
	ids := s.seasonTeams.members(seasonID)
	out := make([]teaminstance.TeamInstance, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.teamInstances[id])
	}
	return out, nil
}

func (r *SeasonRepository) Complete(_ context.Context, seasonID, winnerID string) (season.Season, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.seasons[seasonID]
	if !ok {
		return season.Season{}, fmt.Errorf("%w: season=%s", integrity.ErrNotFound, seasonID)
	}
	if item.Completed {
		return season.Season{}, fmt.Errorf("%w: season=%s is already completed", integrity.ErrConflict, seasonID)
	}
	if _, ok := s.teamInstances[winnerID]; !ok {
		return season.Season{}, fmt.Errorf("%w: team instance=%s", integrity.ErrReferential, winnerID)
	}
	if !s.seasonTeams.has(seasonID, winnerID) {
		return season.Season{}, fmt.Errorf("%w: team instance=%s is not part of season=%s", integrity.ErrInvalid, winnerID, seasonID)
	}
	item.Completed = true
	item.Winner = ref.To(winnerID)
	item.UpdatedAt = s.now().UTC()
	s.seasons[seasonID] = item
	return item, nil
}

func (r *SeasonRepository) endpoints(seasonID, instanceID string) error {
	s := r.store
	if _, ok := s.seasons[seasonID]; !ok {
		return fmt.Errorf("%w: season=%s", integrity.ErrReferential, seasonID)
	}
	if _, ok := s.teamInstances[instanceID]; !ok {
		return fmt.Errorf("%w: team instance=%s", integrity.ErrReferential, instanceID)
	}
	return nil
}

// checkSeasonRefs must be called with the lock held.
func (s *Store) checkSeasonRefs(item season.Season) error {
	if id, ok := item.CurrentRound.ID(); ok {
		if _, exists := s.rounds[id]; !exists {
			return fmt.Errorf("%w: round=%s", integrity.ErrReferential, id)
		}
	}
	return s.checkTeamRefs(item.Winner, item.MyTeam)
}
