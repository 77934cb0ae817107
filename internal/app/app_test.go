package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/football-manager/internal/config"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		HTTPAddr:      ":0",
		ReadTimeout:   time.Second,
		WriteTimeout:  time.Second,
		StorageDriver: config.StorageMemory,
		CacheTTL:      time.Minute,
		SeedWorkers:   2,
	}
}

func TestNewRepositories_MemoryIsSeeded(t *testing.T) {
	ctx := context.Background()
	repos, closer, err := NewRepositories(ctx, memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	defer func() { _ = closer() }()

	players, err := repos.Players.List(ctx)
	require.NoError(t, err)
	assert.Len(t, players, len(memory.SeedPlayers()))

	teams, err := repos.Teams.List(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, len(memory.SeedTeams()))
}

func TestNewRepositories_CacheWrapsTemplates(t *testing.T) {
	cfg := memoryConfig()
	cfg.CacheEnabled = true

	repos, _, err := NewRepositories(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)

	if _, ok := repos.Players.(*cache.PlayerRepository); !ok {
		t.Fatalf("expected cached player repository, got %T", repos.Players)
	}
	if _, ok := repos.Teams.(*cache.TeamRepository); !ok {
		t.Fatalf("expected cached team repository, got %T", repos.Teams)
	}
}

func TestNewRepositories_UnknownDriver(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = "sqlite"

	if _, _, err := NewRepositories(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestOpenDB_RequiresURL(t *testing.T) {
	cfg := memoryConfig()
	cfg.StorageDriver = config.StoragePostgres

	if _, err := OpenDB(context.Background(), cfg); err == nil {
		t.Fatalf("expected error without DB_URL")
	}
}

func TestNewHTTPServer_ServesHealthz(t *testing.T) {
	cfg := memoryConfig()
	repos, _, err := NewRepositories(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)

	srv, err := NewHTTPServer(cfg, NewServices(cfg, repos, logging.NewNop()), logging.NewNop())
	require.NoError(t, err)
	assert.Equal(t, time.Second, srv.ReadTimeout)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = " "

	if _, err := NewHTTPServer(cfg, Services{}, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
