package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/ref"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[item.ID]; ok {
		return fmt.Errorf("%w: match=%s already exists", integrity.ErrConflict, item.ID)
	}
	if err := s.checkTeamRefs(item.TeamA, item.TeamB); err != nil {
		return err
	}
	s.matches[item.ID] = item
	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.matches[matchID]
	return item, ok, nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.matches[item.ID]
	if !ok {
		return fmt.Errorf("%w: match=%s", integrity.ErrNotFound, item.ID)
	}
	if err := s.checkTeamRefs(item.TeamA, item.TeamB); err != nil {
		return err
	}
	existing.TeamA = item.TeamA
	existing.TeamB = item.TeamB
	existing.UpdatedAt = item.UpdatedAt
	s.matches[item.ID] = existing
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.matches[matchID]; !ok {
		return fmt.Errorf("%w: match=%s", integrity.ErrNotFound, matchID)
	}
	owners := s.roundMatches.ownersOf(matchID)
	s.roundMatches.dropMember(matchID)
	delete(s.matches, matchID)
	for _, roundID := range owners {
		s.recomputeRound(roundID)
	}
	return nil
}

func (r *MatchRepository) RecordResult(_ context.Context, matchID string, goalsA, goalsB int) (match.Match, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.matches[matchID]
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match=%s", integrity.ErrNotFound, matchID)
	}
	if item.Resolved {
		return match.Match{}, fmt.Errorf("%w: match=%s is already resolved", integrity.ErrConflict, matchID)
	}
	teamAID, aSet := item.TeamA.ID()
	teamBID, bSet := item.TeamB.ID()
	if !aSet || !bSet {
		return match.Match{}, fmt.Errorf("%w: match=%s has no opponent assigned", integrity.ErrConflict, matchID)
	}
	teamA, okA := s.teamInstances[teamAID]
	teamB, okB := s.teamInstances[teamBID]
	if !okA || !okB {
		return match.Match{}, fmt.Errorf("%w: match=%s references a missing team instance", integrity.ErrReferential, matchID)
	}

	now := s.now().UTC()
	item.GoalsA = goalsA
	item.GoalsB = goalsB
	item.Resolved = true
	item.UpdatedAt = now
	s.matches[matchID] = item

	teamA.Stats = teamA.Stats.WithResult(goalsA, goalsB)
	teamA.UpdatedAt = now
	s.teamInstances[teamAID] = teamA
	teamB.Stats = teamB.Stats.WithResult(goalsB, goalsA)
	teamB.UpdatedAt = now
	s.teamInstances[teamBID] = teamB

	for _, roundID := range s.roundMatches.ownersOf(matchID) {
		s.recomputeRound(roundID)
	}
	return item, nil
}

// checkTeamRefs must be called with the lock held.
func (s *Store) checkTeamRefs(refs ...ref.Ref) error {
	for _, item := range refs {
		id, set := item.ID()
		if !set {
			continue
		}
		if _, ok := s.teamInstances[id]; !ok {
			return fmt.Errorf("%w: team instance=%s", integrity.ErrReferential, id)
		}
	}
	return nil
}
