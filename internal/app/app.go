package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/football-manager/internal/config"
	"github.com/riskibarqy/football-manager/internal/domain/manager"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/playerinstance"
	"github.com/riskibarqy/football-manager/internal/domain/round"
	"github.com/riskibarqy/football-manager/internal/domain/season"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-manager/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/football-manager/internal/platform/cache"
	idgen "github.com/riskibarqy/football-manager/internal/platform/id"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/riskibarqy/football-manager/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type Repositories struct {
	Players         player.Repository
	Teams           team.Repository
	PlayerInstances playerinstance.Repository
	TeamInstances   teaminstance.Repository
	Matches         match.Repository
	Rounds          round.Repository
	Seasons         season.Repository
	Managers        manager.Repository
}

type Services struct {
	Players      *usecase.PlayerService
	Teams        *usecase.TeamService
	Instances    *usecase.InstanceService
	Matches      *usecase.MatchService
	Rounds       *usecase.RoundService
	Seasons      *usecase.SeasonService
	Managers     *usecase.ManagerService
	RosterImport *usecase.RosterImportService
}

// OpenDB connects to postgres with query tracing enabled.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := strings.TrimSpace(cfg.DBURL)
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL is required for storage driver %q", cfg.StorageDriver)
	}

	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(compactQueryForSpan),
	}
	if name := dbNameFromURL(dsn); name != "" {
		opts = append(opts, otelsql.WithDBName(name))
	}

	db, err := otelsqlx.Open("postgres", PostgresURL(cfg), opts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	otelsql.ReportDBStatsMetrics(db.DB, opts...)
	return db, nil
}

// NewRepositories builds the storage backend selected by cfg.StorageDriver.
// The returned closer releases the backend's resources.
func NewRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (Repositories, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		repos  Repositories
		closer = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case config.StorageMemory, "":
		store := memory.NewStore()
		if err := store.Seed(memory.SeedPlayers(), memory.SeedTeams(), memory.SeedMemberships()); err != nil {
			return Repositories{}, nil, fmt.Errorf("seed memory store: %w", err)
		}
		repos = Repositories{
			Players:         memory.NewPlayerRepository(store),
			Teams:           memory.NewTeamRepository(store),
			PlayerInstances: memory.NewPlayerInstanceRepository(store),
			TeamInstances:   memory.NewTeamInstanceRepository(store),
			Matches:         memory.NewMatchRepository(store),
			Rounds:          memory.NewRoundRepository(store),
			Seasons:         memory.NewSeasonRepository(store),
			Managers:        memory.NewManagerRepository(store),
		}
	case config.StoragePostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return Repositories{}, nil, err
		}
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return Repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		repos = Repositories{
			Players:         postgres.NewPlayerRepository(db),
			Teams:           postgres.NewTeamRepository(db),
			PlayerInstances: postgres.NewPlayerInstanceRepository(db),
			TeamInstances:   postgres.NewTeamInstanceRepository(db),
			Matches:         postgres.NewMatchRepository(db),
			Rounds:          postgres.NewRoundRepository(db),
			Seasons:         postgres.NewSeasonRepository(db),
			Managers:        postgres.NewManagerRepository(db),
		}
		closer = db.Close
	default:
		return Repositories{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.Players = cache.NewPlayerRepository(repos.Players, store)
		repos.Teams = cache.NewTeamRepository(repos.Teams, store)
	}

	logger.InfoContext(ctx, "repositories ready",
		"storage_driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
	)
	return repos, closer, nil
}

func NewServices(cfg config.Config, repos Repositories, logger *logging.Logger) Services {
	ids := idgen.NewUUIDGenerator()

	players := usecase.NewPlayerService(repos.Players, ids, logger)
	teams := usecase.NewTeamService(repos.Teams, ids, logger)
	instances := usecase.NewInstanceService(repos.Players, repos.Teams, repos.PlayerInstances, repos.TeamInstances, ids, logger)

	return Services{
		Players:      players,
		Teams:        teams,
		Instances:    instances,
		Matches:      usecase.NewMatchService(repos.Matches, repos.TeamInstances, repos.Teams, ids, logger),
		Rounds:       usecase.NewRoundService(repos.Rounds, ids, logger),
		Seasons:      usecase.NewSeasonService(repos.Seasons, repos.Teams, instances, ids, logger),
		Managers:     usecase.NewManagerService(repos.Managers, ids, logger),
		RosterImport: usecase.NewRosterImportService(players, teams, cfg.SeedWorkers, logger),
	}
}

func NewHTTPServer(cfg config.Config, services Services, logger *logging.Logger) (*http.Server, error) {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(
		services.Players,
		services.Teams,
		services.Instances,
		services.Matches,
		services.Rounds,
		services.Seasons,
		services.Managers,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
