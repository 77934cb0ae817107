package usecase

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

var fixtureNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceIDs) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++
	return fmt.Sprintf("id-%03d", g.next), nil
}

type failingIDs struct{}

func (failingIDs) NewID() (string, error) {
	return "", fmt.Errorf("entropy exhausted")
}

type fixture struct {
	clock     *clockwork.FakeClock
	players   *PlayerService
	teams     *TeamService
	instances *InstanceService
	matches   *MatchService
	rounds    *RoundService
	seasons   *SeasonService
	managers  *ManagerService
}

// newFixture wires every service over one seeded memory store.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := clockwork.NewFakeClockAt(fixtureNow)
	store := memory.NewStoreWithClock(clock)
	if err := store.Seed(memory.SeedPlayers(), memory.SeedTeams(), memory.SeedMemberships()); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	ids := &sequenceIDs{}
	logger := logging.NewNop()

	playerRepo := memory.NewPlayerRepository(store)
	teamRepo := memory.NewTeamRepository(store)
	playerInstanceRepo := memory.NewPlayerInstanceRepository(store)
	teamInstanceRepo := memory.NewTeamInstanceRepository(store)

	f := &fixture{
		clock:     clock,
		players:   NewPlayerService(playerRepo, ids, logger),
		teams:     NewTeamService(teamRepo, ids, logger),
		instances: NewInstanceService(playerRepo, teamRepo, playerInstanceRepo, teamInstanceRepo, ids, logger),
		matches:   NewMatchService(memory.NewMatchRepository(store), teamInstanceRepo, teamRepo, ids, logger),
		rounds:    NewRoundService(memory.NewRoundRepository(store), ids, logger),
		managers:  NewManagerService(memory.NewManagerRepository(store), ids, logger),
	}
	f.seasons = NewSeasonService(memory.NewSeasonRepository(store), teamRepo, f.instances, ids, logger)

	f.players.clock = clock
	f.teams.clock = clock
	f.instances.clock = clock
	f.matches.clock = clock
	f.rounds.clock = clock
	f.seasons.clock = clock
	f.managers.clock = clock
	return f
}
