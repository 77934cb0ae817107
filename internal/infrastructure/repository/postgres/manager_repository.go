package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/manager"
	"github.com/riskibarqy/football-manager/internal/domain/season"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

type ManagerRepository struct {
	db    *sqlx.DB
	clock clockwork.Clock
}

func NewManagerRepository(db *sqlx.DB) *ManagerRepository {
	return &ManagerRepository{db: db, clock: clockwork.NewRealClock()}
}

func (r *ManagerRepository) Create(ctx context.Context, item manager.Manager) error {
	query, args, err := qb.InsertModel("managers", managerRow(item), "")
	if err != nil {
		return fmt.Errorf("build insert manager query: %w", err)
	}
	return inTx(ctx, r.db, "create manager", func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return translateError(err, "insert manager")
		}
		if seasonID, ok := item.CurrentSeason.ID(); ok {
			return managerSeasonLinks.add(ctx, tx, item.ID, seasonID)
		}
		return nil
	})
}

func (r *ManagerRepository) GetByID(ctx context.Context, managerID string) (manager.Manager, bool, error) {
	query, args, err := qb.Select(managerColumns...).From("managers").
		Where(qb.Eq("public_id", managerID)).
		ToSQL()
	if err != nil {
		return manager.Manager{}, false, fmt.Errorf("build select manager query: %w", err)
	}

	var row managerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return manager.Manager{}, false, nil
		}
		return manager.Manager{}, false, fmt.Errorf("select manager: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ManagerRepository) List(ctx context.Context) ([]manager.Manager, error) {
	query, args, err := qb.Select(managerColumns...).From("managers").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select managers query: %w", err)
	}

	var rows []managerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select managers: %w", err)
	}
	out := make([]manager.Manager, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ManagerRepository) Update(ctx context.Context, item manager.Manager) error {
	query, args, err := qb.Update("managers").
		Set("nickname", item.Nickname).
		Set("total_points", item.TotalPoints).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update manager query: %w", err)
	}

	n, err := execAffected(ctx, r.db, "update manager", query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: manager=%s", integrity.ErrNotFound, item.ID)
	}
	return nil
}

func (r *ManagerRepository) Delete(ctx context.Context, managerID string) error {
	query, args, err := qb.DeleteFrom("managers").Where(qb.Eq("public_id", managerID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete manager query: %w", err)
	}

	n, err := execAffected(ctx, r.db, "delete manager", query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: manager=%s", integrity.ErrNotFound, managerID)
	}
	return nil
}

func (r *ManagerRepository) StartSeason(ctx context.Context, managerID, seasonID string) (manager.Manager, error) {
	var out manager.Manager
	err := inTx(ctx, r.db, "start manager season", func(tx *sqlx.Tx) error {
		ok, err := exists(ctx, tx, "managers", managerID, true)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: manager=%s", integrity.ErrNotFound, managerID)
		}
		if err := requireEndpoints(ctx, tx, endpoint{table: "seasons", label: "season", id: seasonID}); err != nil {
			return err
		}

		query, args, err := qb.Update("managers").
			Set("current_season_public_id", seasonID).
			Set("updated_at", r.clock.Now().UTC()).
			Where(qb.Eq("public_id", managerID)).
			Suffix("RETURNING " + joinColumns(managerColumns)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build start season query: %w", err)
		}
		var row managerTableModel
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			return translateError(err, "start season")
		}
		out = row.toDomain()
		return managerSeasonLinks.add(ctx, tx, managerID, seasonID)
	})
	if err != nil {
		return manager.Manager{}, err
	}
	return out, nil
}

func (r *ManagerRepository) AddPoints(ctx context.Context, managerID string, delta int) (manager.Manager, error) {
	query, args, err := qb.Update("managers").
		SetExpr("total_points", "total_points + ?", delta).
		Set("updated_at", r.clock.Now().UTC()).
		Where(qb.Eq("public_id", managerID)).
		Suffix("RETURNING " + joinColumns(managerColumns)).
		ToSQL()
	if err != nil {
		return manager.Manager{}, fmt.Errorf("build add points query: %w", err)
	}

	var row managerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return manager.Manager{}, fmt.Errorf("%w: manager=%s", integrity.ErrNotFound, managerID)
		}
		return manager.Manager{}, translateError(err, "add manager points")
	}
	return row.toDomain(), nil
}

func (r *ManagerRepository) ListSeasons(ctx context.Context, managerID string) ([]season.Season, error) {
	ok, err := exists(ctx, r.db, "managers", managerID, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: manager=%s", integrity.ErrNotFound, managerID)
	}

	query, args, err := qb.Select(prefixed("m", seasonColumns)...).
		From(managerSeasonLinks.joinFrom("seasons")).
		Where(managerSeasonLinks.joinedOwnerConds(managerID)...).
		OrderBy("l.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select manager seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select manager seasons: %w", err)
	}
	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
