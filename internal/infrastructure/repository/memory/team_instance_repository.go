package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/playerinstance"
	"github.com/riskibarqy/football-manager/internal/domain/ref"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
)

type TeamInstanceRepository struct {
	store *Store
}

func NewTeamInstanceRepository(store *Store) *TeamInstanceRepository {
	return &TeamInstanceRepository{store: store}
}

func (r *TeamInstanceRepository) Create(_ context.Context, item teaminstance.TeamInstance) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertTeamInstance(item)
}

func (s *Store) insertTeamInstance(item teaminstance.TeamInstance) error {
	if _, ok := s.teamInstances[item.ID]; ok {
		return fmt.Errorf("%w: team instance=%s already exists", integrity.ErrConflict, item.ID)
	}
	if _, ok := s.teams[item.BaseTeamID]; !ok {
		return fmt.Errorf("%w: base team=%s", integrity.ErrReferential, item.BaseTeamID)
	}
	s.teamInstances[item.ID] = item
	return nil
}

func (r *TeamInstanceRepository) CreateWithMembers(
	_ context.Context,
	item teaminstance.TeamInstance,
	players []playerinstance.PlayerInstance,
	squadIDs []string,
) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate everything up front so a failure leaves no partial state.
	if _, ok := s.teamInstances[item.ID]; ok {
		return fmt.Errorf("%w: team instance=%s already exists", integrity.ErrConflict, item.ID)
	}
	if _, ok := s.teams[item.BaseTeamID]; !ok {
		return fmt.Errorf("%w: base team=%s", integrity.ErrReferential, item.BaseTeamID)
	}
	rosterIDs := make([]string, 0, len(players))
	for _, p := range players {
		if _, ok := s.playerInstances[p.ID]; ok {
			return fmt.Errorf("%w: player instance=%s already exists", integrity.ErrConflict, p.ID)
		}
		if _, ok := s.players[p.BasePlayerID]; !ok {
			return fmt.Errorf("%w: base player=%s", integrity.ErrReferential, p.BasePlayerID)
		}
		rosterIDs = append(rosterIDs, p.ID)
	}
	for _, id := range squadIDs {
		if !slices.Contains(rosterIDs, id) {
			return fmt.Errorf("%w: squad member=%s is not part of the new instance", integrity.ErrReferential, id)
		}
	}

	s.teamInstances[item.ID] = item
	for _, p := range players {
		s.playerInstances[p.ID] = p
		s.teamInstanceMembers[team.RelationRoster].add(item.ID, p.ID)
	}
	for _, id := range squadIDs {
		s.teamInstanceMembers[team.RelationSquad].add(item.ID, id)
	}
	return nil
}

func (r *TeamInstanceRepository) GetByID(_ context.Context, instanceID string) (teaminstance.TeamInstance, bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.teamInstances[instanceID]
	return item, ok, nil
}

func (r *TeamInstanceRepository) Update(_ context.Context, item teaminstance.TeamInstance) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.teamInstances[item.ID]
	if !ok {
		return fmt.Errorf("%w: team instance=%s", integrity.ErrNotFound, item.ID)
	}
	item.BaseTeamID = existing.BaseTeamID
	item.CreatedAt = existing.CreatedAt
	s.teamInstances[item.ID] = item
	return nil
}

func (r *TeamInstanceRepository) Delete(_ context.Context, instanceID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teamInstances[instanceID]; !ok {
		return fmt.Errorf("%w: team instance=%s", integrity.ErrNotFound, instanceID)
	}

	now := s.now().UTC()
	for id, m := range s.matches {
		changed := false
		if m.TeamA.Is(instanceID) {
			m.TeamA = ref.None()
			changed = true
		}
		if m.TeamB.Is(instanceID) {
			m.TeamB = ref.None()
			changed = true
		}
		if changed {
			m.UpdatedAt = now
			s.matches[id] = m
		}
	}
	for id, item := range s.seasons {
		changed := false
		if item.Winner.Is(instanceID) {
			item.Winner = ref.None()
			changed = true
		}
		if item.MyTeam.Is(instanceID) {
			item.MyTeam = ref.None()
			changed = true
		}
		if changed {
			item.UpdatedAt = now
			s.seasons[id] = item
		}
	}
	s.seasonTeams.dropMember(instanceID)
	for _, rel := range s.teamInstanceMembers {
		delete(rel, instanceID)
	}
	delete(s.teamInstances, instanceID)
	return nil
}

func (r *TeamInstanceRepository) AddMember(_ context.Context, rel team.Relation, instanceID, playerInstanceID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	members, err := r.endpoints(rel, instanceID, playerInstanceID)
	if err != nil {
		return err
	}
	members.add(instanceID, playerInstanceID)
	return nil
}

func (r *TeamInstanceRepository) RemoveMember(_ context.Context, rel team.Relation, instanceID, playerInstanceID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	members, err := r.endpoints(rel, instanceID, playerInstanceID)
	if err != nil {
		return err
	}
	members.remove(instanceID, playerInstanceID)
	return nil
}

func (r *TeamInstanceRepository) ListMembers(_ context.Context, rel team.Relation, instanceID string) ([]playerinstance.PlayerInstance, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	members, ok := s.teamInstanceMembers[rel]
	if !ok {
		return nil, fmt.Errorf("unknown team relation %q", rel)
	}
	if _, ok := s.teamInstances[instanceID]; !ok {
		return nil, fmt.Errorf("%w: team instance=%s", integrity.ErrNotFound, instanceID)
	}

	ids := members.members(instanceID)
	out := make([]playerinstance.PlayerInstance, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.playerInstances[id])
	}
	return out, nil
}

func (r *TeamInstanceRepository) endpoints(rel team.Relation, instanceID, playerInstanceID string) (links, error) {
	s := r.store
	members, ok := s.teamInstanceMembers[rel]
	if !ok {
		return nil, fmt.Errorf("unknown team relation %q", rel)
	}
	if _, ok := s.teamInstances[instanceID]; !ok {
		return nil, fmt.Errorf("%w: team instance=%s", integrity.ErrReferential, instanceID)
	}
	if _, ok := s.playerInstances[playerInstanceID]; !ok {
		return nil, fmt.Errorf("%w: player instance=%s", integrity.ErrReferential, playerInstanceID)
	}
	return members, nil
}
