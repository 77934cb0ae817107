package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const defaultImportWorkers = 8

// RosterPlayer is one player template keyed by a file-local name.
type RosterPlayer struct {
	Key    string `validate:"required"`
	Player PlayerInput
}

// RosterTeam lists its roster and squad by RosterPlayer key.
type RosterTeam struct {
	Team   TeamInput
	Roster []string
	Squad  []string
}

type Roster struct {
	Players []RosterPlayer `validate:"dive"`
	Teams   []RosterTeam   `validate:"dive"`
}

type RosterImportResult struct {
	PlayerIDs map[string]string
	Teams     []team.Team
}

type playerCreator interface {
	Create(ctx context.Context, input PlayerInput) (player.Player, error)
}

type teamCreator interface {
	Create(ctx context.Context, input TeamInput) (team.Team, error)
	AddMember(ctx context.Context, rel team.Relation, teamID, playerID string) error
}

// RosterImportService bulk-loads player and team templates on a worker pool.
type RosterImportService struct {
	players playerCreator
	teams   teamCreator
	workers int
	logger  *logging.Logger
}

func NewRosterImportService(players playerCreator, teams teamCreator, workers int, logger *logging.Logger) *RosterImportService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultImportWorkers
	}

	return &RosterImportService{
		players: players,
		teams:   teams,
		workers: workers,
		logger:  logger,
	}
}

// Import creates every player first, then every team with its memberships.
// Records created before a failure are kept.
func (s *RosterImportService) Import(ctx context.Context, roster Roster) (RosterImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterImportService.Import",
		attribute.Int("roster.players", len(roster.Players)),
		attribute.Int("roster.teams", len(roster.Teams)),
	)
	defer span.End()

	if err := checkRoster(ctx, roster); err != nil {
		return RosterImportResult{}, err
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return RosterImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	result := RosterImportResult{PlayerIDs: make(map[string]string, len(roster.Players))}
	var (
		mu   sync.Mutex
		errs []error
	)
	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	var workers sync.WaitGroup
	for _, item := range roster.Players {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			created, err := s.players.Create(ctx, item.Player)
			if err != nil {
				fail(fmt.Errorf("import player %s: %w", item.Key, err))
				return
			}
			mu.Lock()
			result.PlayerIDs[strings.TrimSpace(item.Key)] = created.ID
			mu.Unlock()
		}); err != nil {
			workers.Done()
			fail(fmt.Errorf("submit player import: %w", err))
			break
		}
	}
	workers.Wait()
	if len(errs) > 0 {
		return result, errors.Join(errs...)
	}

	teams := make([]team.Team, len(roster.Teams))
	for i, item := range roster.Teams {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			created, err := s.importTeam(ctx, item, result.PlayerIDs)
			if created.ID != "" {
				teams[i] = created
			}
			if err != nil {
				fail(err)
			}
		}); err != nil {
			workers.Done()
			fail(fmt.Errorf("submit team import: %w", err))
			break
		}
	}
	workers.Wait()

	for _, item := range teams {
		if item.ID != "" {
			result.Teams = append(result.Teams, item)
		}
	}
	if len(errs) > 0 {
		return result, errors.Join(errs...)
	}

	s.logger.InfoContext(ctx, "roster imported", "players", len(result.PlayerIDs), "teams", len(result.Teams))
	return result, nil
}

func (s *RosterImportService) importTeam(ctx context.Context, item RosterTeam, playerIDs map[string]string) (team.Team, error) {
	created, err := s.teams.Create(ctx, item.Team)
	if err != nil {
		return team.Team{}, fmt.Errorf("import team %s: %w", item.Team.Name, err)
	}

	members := []struct {
		rel  team.Relation
		keys []string
	}{
		{rel: team.RelationRoster, keys: item.Roster},
		{rel: team.RelationSquad, keys: item.Squad},
	}
	for _, m := range members {
		for _, key := range m.keys {
			playerID := playerIDs[strings.TrimSpace(key)]
			if err := s.teams.AddMember(ctx, m.rel, created.ID, playerID); err != nil {
				return created, fmt.Errorf("import team %s %s member %s: %w", created.Name, m.rel, key, err)
			}
		}
	}
	return created, nil
}

// checkRoster rejects duplicate keys and memberships naming unknown keys
// before anything is written.
func checkRoster(ctx context.Context, roster Roster) error {
	if err := validateInput(ctx, roster); err != nil {
		return err
	}

	keys := make(map[string]struct{}, len(roster.Players))
	for _, item := range roster.Players {
		key := strings.TrimSpace(item.Key)
		if _, ok := keys[key]; ok {
			return fmt.Errorf("%w: duplicate player key %q", ErrInvalidInput, key)
		}
		keys[key] = struct{}{}
	}
	for _, item := range roster.Teams {
		for _, key := range slices.Concat(item.Roster, item.Squad) {
			if _, ok := keys[strings.TrimSpace(key)]; !ok {
				return fmt.Errorf("%w: team %q names unknown player key %q", ErrInvalidInput, item.Team.Name, key)
			}
		}
	}
	return nil
}
