package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[item.ID]; ok {
		return fmt.Errorf("%w: team=%s already exists", integrity.ErrConflict, item.ID)
	}
	s.teams[item.ID] = item
	s.teamOrder = append(s.teamOrder, item.ID)
	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.teams[teamID]
	return item, ok, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]team.Team, 0, len(s.teamOrder))
	for _, id := range s.teamOrder {
		out = append(out, s.teams[id])
	}
	return out, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.teams[item.ID]
	if !ok {
		return fmt.Errorf("%w: team=%s", integrity.ErrNotFound, item.ID)
	}
	item.CreatedAt = existing.CreatedAt
	s.teams[item.ID] = item
	return nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return fmt.Errorf("%w: team=%s", integrity.ErrNotFound, teamID)
	}
	for _, inst := range s.teamInstances {
		if inst.BaseTeamID == teamID {
			return fmt.Errorf("%w: team=%s is the base of team instance=%s", integrity.ErrReferential, teamID, inst.ID)
		}
	}

	for _, rel := range s.teamMembers {
		delete(rel, teamID)
	}
	delete(s.teams, teamID)
	s.teamOrder = removeID(s.teamOrder, teamID)
	return nil
}

func (r *TeamRepository) AddMember(_ context.Context, rel team.Relation, teamID, playerID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	members, err := r.endpoints(rel, teamID, playerID)
	if err != nil {
		return err
	}
	members.add(teamID, playerID)
	return nil
}

func (r *TeamRepository) RemoveMember(_ context.Context, rel team.Relation, teamID, playerID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	members, err := r.endpoints(rel, teamID, playerID)
	if err != nil {
		return err
	}
	members.remove(teamID, playerID)
	return nil
}

func (r *TeamRepository) ListMembers(_ context.Context, rel team.Relation, teamID string) ([]player.Player, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	members, ok := s.teamMembers[rel]
	if !ok {
		return nil, fmt.Errorf("unknown team relation %q", rel)
	}
	if _, ok := s.teams[teamID]; !ok {
		return nil, fmt.Errorf("%w: team=%s", integrity.ErrNotFound, teamID)
	}

	ids := members.members(teamID)
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.players[id])
	}
	return out, nil
}

// endpoints must be called with the lock held.
func (r *TeamRepository) endpoints(rel team.Relation, teamID, playerID string) (links, error) {
	s := r.store
	members, ok := s.teamMembers[rel]
	if !ok {
		return nil, fmt.Errorf("unknown team relation %q", rel)
	}
	if _, ok := s.teams[teamID]; !ok {
		return nil, fmt.Errorf("%w: team=%s", integrity.ErrReferential, teamID)
	}
	if _, ok := s.players[playerID]; !ok {
		return nil, fmt.Errorf("%w: player=%s", integrity.ErrReferential, playerID)
	}
	return members, nil
}
