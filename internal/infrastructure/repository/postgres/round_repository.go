package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	"github.com/lib/pq"
	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/round"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

// An empty round is not resolved.
const recomputeRoundsQuery = `
UPDATE rounds
SET resolved = derived.resolved,
    updated_at = $2
FROM (
    SELECT r.public_id,
           EXISTS (
               SELECT 1 FROM round_matches rm WHERE rm.round_public_id = r.public_id
           ) AND NOT EXISTS (
               SELECT 1
               FROM round_matches rm
               JOIN matches m ON m.public_id = rm.match_public_id
               WHERE rm.round_public_id = r.public_id
                 AND NOT m.resolved
           ) AS resolved
    FROM rounds r
    WHERE r.public_id = ANY($1)
) AS derived
WHERE rounds.public_id = derived.public_id
  AND rounds.resolved IS DISTINCT FROM derived.resolved`

func recomputeRounds(ctx context.Context, tx *sqlx.Tx, now time.Time, roundIDs []string) error {
	if len(roundIDs) == 0 {
		return nil
	}
	if _, err := tx.ExecContext(ctx, recomputeRoundsQuery, pq.Array(roundIDs), now); err != nil {
		return fmt.Errorf("recompute rounds: %w", err)
	}
	return nil
}

type RoundRepository struct {
	db    *sqlx.DB
	clock clockwork.Clock
}

func NewRoundRepository(db *sqlx.DB) *RoundRepository {
	return &RoundRepository{db: db, clock: clockwork.NewRealClock()}
}

func (r *RoundRepository) Create(ctx context.Context, item round.Round) error {
	query, args, err := qb.InsertInto("rounds").
		Columns("public_id", "resolved", "created_at", "updated_at").
		Values(item.ID, false, item.CreatedAt, item.UpdatedAt).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert round query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "insert round")
	}
	return nil
}

func (r *RoundRepository) GetByID(ctx context.Context, roundID string) (round.Round, bool, error) {
	return getRound(ctx, r.db, roundID)
}

func getRound(ctx context.Context, q sqlx.QueryerContext, roundID string) (round.Round, bool, error) {
	query, args, err := qb.Select(roundColumns...).From("rounds").
		Where(qb.Eq("public_id", roundID)).
		ToSQL()
	if err != nil {
		return round.Round{}, false, fmt.Errorf("build select round query: %w", err)
	}

	var row roundTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return round.Round{}, false, nil
		}
		return round.Round{}, false, fmt.Errorf("select round: %w", err)
	}
	return row.toDomain(), true, nil
}

// Delete nulls seasons.current_round through ON DELETE SET NULL and bumps
// the affected seasons first.
func (r *RoundRepository) Delete(ctx context.Context, roundID string) error {
	return inTx(ctx, r.db, "delete round", func(tx *sqlx.Tx) error {
		touch, args, err := qb.Update("seasons").
			Set("updated_at", r.clock.Now().UTC()).
			Where(qb.Eq("current_round_public_id", roundID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build touch seasons query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, touch, args...); err != nil {
			return translateError(err, "touch seasons")
		}

		query, args, err := qb.DeleteFrom("rounds").Where(qb.Eq("public_id", roundID)).ToSQL()
		if err != nil {
			return fmt.Errorf("build delete round query: %w", err)
		}
		n, err := execAffected(ctx, tx, "delete round", query, args...)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: round=%s", integrity.ErrNotFound, roundID)
		}
		return nil
	})
}

func (r *RoundRepository) AddMatch(ctx context.Context, roundID, matchID string) (round.Round, error) {
	return r.changeMatches(ctx, "add round match", roundID, matchID, roundMatchLinks.add)
}

func (r *RoundRepository) RemoveMatch(ctx context.Context, roundID, matchID string) (round.Round, error) {
	return r.changeMatches(ctx, "remove round match", roundID, matchID, roundMatchLinks.remove)
}

func (r *RoundRepository) changeMatches(
	ctx context.Context,
	op, roundID, matchID string,
	change func(ctx context.Context, exec sqlx.ExecerContext, ownerID, memberID string) error,
) (round.Round, error) {
	var out round.Round
	err := inTx(ctx, r.db, op, func(tx *sqlx.Tx) error {
		ok, err := exists(ctx, tx, "rounds", roundID, true)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: round=%s", integrity.ErrReferential, roundID)
		}
		if err := requireEndpoints(ctx, tx, endpoint{table: "matches", label: "match", id: matchID}); err != nil {
			return err
		}
		if err := change(ctx, tx, roundID, matchID); err != nil {
			return err
		}
		if err := recomputeRounds(ctx, tx, r.clock.Now().UTC(), []string{roundID}); err != nil {
			return err
		}
		out, _, err = getRound(ctx, tx, roundID)
		return err
	})
	if err != nil {
		return round.Round{}, err
	}
	return out, nil
}

func (r *RoundRepository) ListMatches(ctx context.Context, roundID string) ([]match.Match, error) {
	ok, err := exists(ctx, r.db, "rounds", roundID, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: round=%s", integrity.ErrNotFound, roundID)
	}

	query, args, err := qb.Select(prefixed("m", matchColumns)...).
		From(roundMatchLinks.joinFrom("matches")).
		Where(roundMatchLinks.joinedOwnerConds(roundID)...).
		OrderBy("l.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select round matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select round matches: %w", err)
	}
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
