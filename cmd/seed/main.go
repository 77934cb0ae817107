package main

import (
	"fmt"
	"os"

	"github.com/riskibarqy/football-manager/internal/app"
	"github.com/riskibarqy/football-manager/internal/config"
	"github.com/riskibarqy/football-manager/internal/interfaces/rosterfile"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		path    string
		workers int
	)

	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Import player and team templates from a YAML roster file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if workers > 0 {
				cfg.SeedWorkers = workers
			}

			logger := logging.NewJSON(cfg.LogLevel).Named("seed")
			logging.SetDefault(logger)
			defer func() { _ = logger.Sync() }()

			if cfg.StorageDriver == config.StorageMemory {
				logger.Warn("memory storage selected, imported templates will not persist")
			}

			roster, err := rosterfile.LoadFile(path)
			if err != nil {
				return err
			}

			ctx := c.Context()
			repos, closeRepos, err := app.NewRepositories(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeRepos(); err != nil {
					logger.Warn("close repositories", "error", err)
				}
			}()

			result, err := app.NewServices(cfg, repos, logger).RosterImport.Import(ctx, roster)
			if err != nil {
				logger.Error("roster import failed",
					"file", path,
					"players_created", len(result.PlayerIDs),
					"teams_created", len(result.Teams),
					"error", err,
				)
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "imported %d players and %d teams from %s\n", len(result.PlayerIDs), len(result.Teams), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "roster YAML file (required)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "import worker pool size (default SEED_WORKERS)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
