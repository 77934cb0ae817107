package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/ref"
	"github.com/riskibarqy/football-manager/internal/domain/round"
)

type RoundRepository struct {
	store *Store
}

func NewRoundRepository(store *Store) *RoundRepository {
	return &RoundRepository{store: store}
}

func (r *RoundRepository) Create(_ context.Context, item round.Round) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rounds[item.ID]; ok {
		return fmt.Errorf("%w: round=%s already exists", integrity.ErrConflict, item.ID)
	}
	// A new round holds no matches yet.
	item.Resolved = false
	s.rounds[item.ID] = item
	return nil
}

func (r *RoundRepository) GetByID(_ context.Context, roundID string) (round.Round, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.rounds[roundID]
	return item, ok, nil
}

func (r *RoundRepository) Delete(_ context.Context, roundID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rounds[roundID]; !ok {
		return fmt.Errorf("%w: round=%s", integrity.ErrNotFound, roundID)
	}
	now := s.now().UTC()
	for id, item := range s.seasons {
		if item.CurrentRound.Is(roundID) {
			item.CurrentRound = ref.None()
			item.UpdatedAt = now
			s.seasons[id] = item
		}
	}
	delete(s.roundMatches, roundID)
	delete(s.rounds, roundID)
	return nil
}

func (r *RoundRepository) AddMatch(_ context.Context, roundID, matchID string) (round.Round, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := r.endpoints(roundID, matchID); err != nil {
		return round.Round{}, err
	}
	s.roundMatches.add(roundID, matchID)
	return s.recomputeRound(roundID), nil
}

func (r *RoundRepository) RemoveMatch(_ context.Context, roundID, matchID string) (round.Round, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := r.endpoints(roundID, matchID); err != nil {
		return round.Round{}, err
	}
	s.roundMatches.remove(roundID, matchID)
	return s.recomputeRound(roundID), nil
}

func (r *RoundRepository) ListMatches(_ context.Context, roundID string) ([]match.Match, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.rounds[roundID]; !ok {
		return nil, fmt.Errorf("%w: round=%s", integrity.ErrNotFound, roundID)
	}
	ids := s.roundMatches.members(roundID)
	out := make([]match.Match, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.matches[id])
	}
	return out, nil
}

func (r *RoundRepository) endpoints(roundID, matchID string) error {
	s := r.store
	if _, ok := s.rounds[roundID]; !ok {
		return fmt.Errorf("%w: round=%s", integrity.ErrReferential, roundID)
	}
	if _, ok := s.matches[matchID]; !ok {
		return fmt.Errorf("%w: match=%s", integrity.ErrReferential, matchID)
	}
	return nil
}
