package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

// BootstrapSeed loads the demo templates into an empty database. It does
// nothing once any player exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	return inTx(ctx, db, "bootstrap seed", func(tx *sqlx.Tx) error {
		for _, p := range memory.SeedPlayers() {
			if p.CreatedAt.IsZero() {
				p.CreatedAt, p.UpdatedAt = now, now
			}
			query, args, err := qb.InsertModel("players", playerRow(p), "ON CONFLICT (public_id) DO NOTHING")
			if err != nil {
				return fmt.Errorf("build seed player %s query: %w", p.ID, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return translateError(err, "insert seed player "+p.ID)
			}
		}

		for _, t := range memory.SeedTeams() {
			query, args, err := qb.InsertModel("teams", teamRow(t), "ON CONFLICT (public_id) DO NOTHING")
			if err != nil {
				return fmt.Errorf("build seed team %s query: %w", t.ID, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return translateError(err, "insert seed team "+t.ID)
			}
		}

		for _, m := range memory.SeedMemberships() {
			links, err := teamLinks(m.Relation)
			if err != nil {
				return err
			}
			if err := links.add(ctx, tx, m.TeamID, m.PlayerID); err != nil {
				return fmt.Errorf("link seed player %s to team %s: %w", m.PlayerID, m.TeamID, err)
			}
		}
		return nil
	})
}
