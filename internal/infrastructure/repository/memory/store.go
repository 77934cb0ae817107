package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/manager"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/playerinstance"
	"github.com/riskibarqy/football-manager/internal/domain/round"
	"github.com/riskibarqy/football-manager/internal/domain/season"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
)

// Store keeps every table behind one lock so multi-record operations are
// atomic. Repositories are thin views over a shared Store.
type Store struct {
	mu    sync.RWMutex
	clock clockwork.Clock

	players     map[string]player.Player
	playerOrder []string
	teams       map[string]team.Team
	teamOrder   []string
	teamMembers map[team.Relation]links

	playerInstances     map[string]playerinstance.PlayerInstance
	teamInstances       map[string]teaminstance.TeamInstance
	teamInstanceMembers map[team.Relation]links

	matches      map[string]match.Match
	rounds       map[string]round.Round
	roundMatches links

	seasons     map[string]season.Season
	seasonTeams links

	managers       map[string]manager.Manager
	managerOrder   []string
	managerSeasons links
}

func NewStore() *Store {
	return NewStoreWithClock(clockwork.NewRealClock())
}

// NewStoreWithClock stamps lifecycle updates with clock.
func NewStoreWithClock(clock clockwork.Clock) *Store {
	return &Store{
		clock:   clock,
		players: make(map[string]player.Player),
		teams:   make(map[string]team.Team),
		teamMembers: map[team.Relation]links{
			team.RelationRoster: make(links),
			team.RelationSquad:  make(links),
		},
		playerInstances: make(map[string]playerinstance.PlayerInstance),
		teamInstances:   make(map[string]teaminstance.TeamInstance),
		teamInstanceMembers: map[team.Relation]links{
			team.RelationRoster: make(links),
			team.RelationSquad:  make(links),
		},
		matches:        make(map[string]match.Match),
		rounds:         make(map[string]round.Round),
		roundMatches:   make(links),
		seasons:        make(map[string]season.Season),
		seasonTeams:    make(links),
		managers:       make(map[string]manager.Manager),
		managerSeasons: make(links),
	}
}

func (s *Store) now() time.Time {
	return s.clock.Now()
}

// recomputeRound must be called with the write lock held.
func (s *Store) recomputeRound(roundID string) round.Round {
	item := s.rounds[roundID]
	ids := s.roundMatches.members(roundID)
	matches := make([]match.Match, 0, len(ids))
	for _, id := range ids {
		matches = append(matches, s.matches[id])
	}
	resolved := round.ResolvedFor(matches)
	if resolved != item.Resolved {
		item.Resolved = resolved
		item.UpdatedAt = s.now().UTC()
		s.rounds[roundID] = item
	}
	return item
}

// links is an ordered many-to-many association keyed by owner id.
type links map[string][]string

func (l links) add(owner, member string) {
	if slices.Contains(l[owner], member) {
		return
	}
	l[owner] = append(l[owner], member)
}

func (l links) remove(owner, member string) {
	items := slices.DeleteFunc(l[owner], func(v string) bool { return v == member })
	if len(items) == 0 {
		delete(l, owner)
		return
	}
	l[owner] = items
}

func (l links) has(owner, member string) bool {
	return slices.Contains(l[owner], member)
}

func (l links) members(owner string) []string {
	return append([]string(nil), l[owner]...)
}

// ownersOf lists every owner holding member.
func (l links) ownersOf(member string) []string {
	var out []string
	for owner, items := range l {
		if slices.Contains(items, member) {
			out = append(out, owner)
		}
	}
	slices.Sort(out)
	return out
}

func (l links) dropMember(member string) {
	for _, owner := range l.ownersOf(member) {
		l.remove(owner, member)
	}
}

func removeID(order []string, id string) []string {
	return slices.DeleteFunc(order, func(v string) bool { return v == id })
}
