package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/playerinstance"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

type PlayerInstanceRepository struct {
	db *sqlx.DB
}

func NewPlayerInstanceRepository(db *sqlx.DB) *PlayerInstanceRepository {
	return &PlayerInstanceRepository{db: db}
}

func (r *PlayerInstanceRepository) Create(ctx context.Context, item playerinstance.PlayerInstance) error {
	return insertPlayerInstance(ctx, r.db, item)
}

func insertPlayerInstance(ctx context.Context, exec sqlx.ExecerContext, item playerinstance.PlayerInstance) error {
	query, args, err := qb.InsertModel("player_instances", playerInstanceRow(item), "")
	if err != nil {
		return fmt.Errorf("build insert player instance query: %w", err)
	}
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "insert player instance")
	}
	return nil
}

func (r *PlayerInstanceRepository) GetByID(ctx context.Context, instanceID string) (playerinstance.PlayerInstance, bool, error) {
	query, args, err := qb.Select(playerInstanceColumns...).From("player_instances").
		Where(qb.Eq("public_id", instanceID)).
		ToSQL()
	if err != nil {
		return playerinstance.PlayerInstance{}, false, fmt.Errorf("build select player instance query: %w", err)
	}

	var row playerInstanceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerinstance.PlayerInstance{}, false, nil
		}
		return playerinstance.PlayerInstance{}, false, fmt.Errorf("select player instance: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerInstanceRepository) ListByBasePlayer(ctx context.Context, basePlayerID string) ([]playerinstance.PlayerInstance, error) {
	query, args, err := qb.Select(playerInstanceColumns...).From("player_instances").
		Where(qb.Eq("base_player_public_id", basePlayerID)).
		OrderBy("created_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player instances query: %w", err)
	}

	var rows []playerInstanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player instances: %w", err)
	}
	return playerInstancesToDomain(rows), nil
}

// Update stores skills only; the base player never changes.
func (r *PlayerInstanceRepository) Update(ctx context.Context, item playerinstance.PlayerInstance) error {
	query, args, err := qb.Update("player_instances").
		Set("kick", item.Skills.Kick).
		Set("dribble", item.Skills.Dribble).
		Set("strength", item.Skills.Strength).
		Set("brave", item.Skills.Brave).
		Set("luck", item.Skills.Luck).
		Set("health", item.Skills.Health).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player instance query: %w", err)
	}

	n, err := execAffected(ctx, r.db, "update player instance", query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: player instance=%s", integrity.ErrNotFound, item.ID)
	}
	return nil
}

func (r *PlayerInstanceRepository) Delete(ctx context.Context, instanceID string) error {
	query, args, err := qb.DeleteFrom("player_instances").Where(qb.Eq("public_id", instanceID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player instance query: %w", err)
	}

	n, err := execAffected(ctx, r.db, "delete player instance", query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: player instance=%s", integrity.ErrNotFound, instanceID)
	}
	return nil
}
