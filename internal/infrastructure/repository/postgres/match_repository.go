package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

type MatchRepository struct {
	db    *sqlx.DB
	clock clockwork.Clock
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db, clock: clockwork.NewRealClock()}
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertModel("matches", matchRow(item), "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "insert match")
	}
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	return getMatch(ctx, r.db, matchID, false)
}

func getMatch(ctx context.Context, q sqlx.QueryerContext, matchID string, lock bool) (match.Match, bool, error) {
	builder := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("public_id", matchID))
	if lock {
		builder = builder.ForUpdate()
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	query, args, err := qb.Update("matches").
		Set("team_a_public_id", item.TeamA).
		Set("team_b_public_id", item.TeamB).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	n, err := execAffected(ctx, r.db, "update match", query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: match=%s", integrity.ErrNotFound, item.ID)
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	return inTx(ctx, r.db, "delete match", func(tx *sqlx.Tx) error {
		roundIDs, err := roundMatchLinks.ownersOf(ctx, tx, matchID)
		if err != nil {
			return err
		}

		query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("public_id", matchID)).ToSQL()
		if err != nil {
			return fmt.Errorf("build delete match query: %w", err)
		}
		n, err := execAffected(ctx, tx, "delete match", query, args...)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: match=%s", integrity.ErrNotFound, matchID)
		}
		return recomputeRounds(ctx, tx, r.clock.Now().UTC(), roundIDs)
	})
}

func (r *MatchRepository) RecordResult(ctx context.Context, matchID string, goalsA, goalsB int) (match.Match, error) {
	var out match.Match
	err := inTx(ctx, r.db, "record match result", func(tx *sqlx.Tx) error {
		item, ok, err := getMatch(ctx, tx, matchID, true)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: match=%s", integrity.ErrNotFound, matchID)
		}
		if item.Resolved {
			return fmt.Errorf("%w: match=%s is already resolved", integrity.ErrConflict, matchID)
		}
		teamAID, aSet := item.TeamA.ID()
		teamBID, bSet := item.TeamB.ID()
		if !aSet || !bSet {
			return fmt.Errorf("%w: match=%s has no opponent assigned", integrity.ErrConflict, matchID)
		}

		now := r.clock.Now().UTC()
		if err := applyResult(ctx, tx, now, teamAID, goalsA, goalsB); err != nil {
			return err
		}
		if err := applyResult(ctx, tx, now, teamBID, goalsB, goalsA); err != nil {
			return err
		}

		query, args, err := qb.Update("matches").
			Set("goals_a", goalsA).
			Set("goals_b", goalsB).
			Set("resolved", true).
			Set("updated_at", now).
			Where(qb.Eq("public_id", matchID)).
			Suffix("RETURNING " + joinColumns(matchColumns)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build resolve match query: %w", err)
		}
		var row matchTableModel
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			return translateError(err, "resolve match")
		}
		out = row.toDomain()

		roundIDs, err := roundMatchLinks.ownersOf(ctx, tx, matchID)
		if err != nil {
			return err
		}
		return recomputeRounds(ctx, tx, now, roundIDs)
	})
	if err != nil {
		return match.Match{}, err
	}
	return out, nil
}

func applyResult(ctx context.Context, tx *sqlx.Tx, now time.Time, instanceID string, goalsFor, goalsAgainst int) error {
	item, ok, err := getTeamInstance(ctx, tx, instanceID, true)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: team instance=%s", integrity.ErrReferential, instanceID)
	}
	item.Stats = item.Stats.WithResult(goalsFor, goalsAgainst)
	item.UpdatedAt = now
	return updateTeamInstanceStats(ctx, tx, item)
}
