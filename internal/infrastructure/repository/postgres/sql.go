package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// translateError maps constraint failures onto the integrity sentinels and
// wraps everything else with op.
func translateError(err error, op string) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s: %s", integrity.ErrReferential, op, pqErr.Constraint)
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s: %s", integrity.ErrConflict, op, pqErr.Constraint)
		case pqCheckViolation:
			return fmt.Errorf("%w: %s: %s", integrity.ErrInvalid, op, pqErr.Constraint)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// inTx runs fn in one transaction, committing only when fn succeeds.
func inTx(ctx context.Context, db *sqlx.DB, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for %s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", op, err)
	}
	return nil
}

func execAffected(ctx context.Context, exec sqlx.ExecerContext, op, query string, args ...any) (int64, error) {
	res, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translateError(err, op)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s rows affected: %w", op, err)
	}
	return n, nil
}

// exists reports whether table holds a row with publicID. When lock is set the
// row stays locked until the transaction ends.
func exists(ctx context.Context, q sqlx.QueryerContext, table, publicID string, lock bool) (bool, error) {
	builder := qb.Select("public_id").From(table).Where(qb.Eq("public_id", publicID))
	if lock {
		builder = builder.ForUpdate()
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return false, fmt.Errorf("build %s exists query: %w", table, err)
	}

	var id string
	if err := sqlx.GetContext(ctx, q, &id, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check %s exists: %w", table, err)
	}
	return true, nil
}

// requireEndpoints fails with integrity.ErrReferential when any of the named
// records is missing.
func requireEndpoints(ctx context.Context, q sqlx.QueryerContext, endpoints ...endpoint) error {
	for _, e := range endpoints {
		ok, err := exists(ctx, q, e.table, e.id, false)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s=%s", integrity.ErrReferential, e.label, e.id)
		}
	}
	return nil
}

type endpoint struct {
	table string
	label string
	id    string
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
