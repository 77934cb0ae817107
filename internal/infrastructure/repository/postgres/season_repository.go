package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/season"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db    *sqlx.DB
	clock clockwork.Clock
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db, clock: clockwork.NewRealClock()}
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) error {
	query, args, err := qb.InsertModel("seasons", seasonRow(item), "")
	if err != nil {
		return fmt.Errorf("build insert season query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "insert season")
	}
	return nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	return getSeason(ctx, r.db, seasonID, false)
}

func getSeason(ctx context.Context, q sqlx.QueryerContext, seasonID string, lock bool) (season.Season, bool, error) {
	builder := qb.Select(seasonColumns...).From("seasons").
		Where(qb.Eq("public_id", seasonID))
	if lock {
		builder = builder.ForUpdate()
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build select season query: %w", err)
	}

	var row seasonTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("select season: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *SeasonRepository) Update(ctx context.Context, item season.Season) error {
	query, args, err := qb.Update("seasons").
		Set("year", item.Year).
		Set("current_round_public_id", item.CurrentRound).
		Set("my_team_public_id", item.MyTeam).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update season query: %w", err)
	}

	n, err := execAffected(ctx, r.db, "update season", query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: season=%s", integrity.ErrNotFound, item.ID)
	}
	return nil
}

// Delete is restricted by managers and manager_seasons; the team set
// cascades.
func (r *SeasonRepository) Delete(ctx context.Context, seasonID string) error {
	query, args, err := qb.DeleteFrom("seasons").Where(qb.Eq("public_id", seasonID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete season query: %w", err)
	}

	n, err := execAffected(ctx, r.db, "delete season", query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: season=%s", integrity.ErrNotFound, seasonID)
	}
	return nil
}

func (r *SeasonRepository) AddTeam(ctx context.Context, seasonID, instanceID string) error {
	return inTx(ctx, r.db, "add season team", func(tx *sqlx.Tx) error {
		if err := requireEndpoints(ctx, tx,
			endpoint{table: "seasons", label: "season", id: seasonID},
			endpoint{table: "team_instances", label: "team instance", id: instanceID},
		); err != nil {
			return err
		}
		return seasonTeamLinks.add(ctx, tx, seasonID, instanceID)
	})
}

func (r *SeasonRepository) RemoveTeam(ctx context.Context, seasonID, instanceID string) error {
	return inTx(ctx, r.db, "remove season team", func(tx *sqlx.Tx) error {
		if err := requireEndpoints(ctx, tx,
			endpoint{table: "seasons", label: "season", id: seasonID},
			endpoint{table: "team_instances", label: "team instance", id: instanceID},
		); err != nil {
			return err
		}
		return seasonTeamLinks.remove(ctx, tx, seasonID, instanceID)
	})
}

func (r *SeasonRepository) ListTeams(ctx context.Context, seasonID string) ([]teaminstance.TeamInstance, error) {
	ok, err := exists(ctx, r.db, "seasons", seasonID, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: season=%s", integrity.ErrNotFound, seasonID)
	}

	query, args, err := qb.Select(prefixed("m", teamInstanceColumns)...).
		From(seasonTeamLinks.joinFrom("team_instances")).
		Where(seasonTeamLinks.joinedOwnerConds(seasonID)...).
		OrderBy("l.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select season teams query: %w", err)
	}

	var rows []teamInstanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select season teams: %w", err)
	}
	out := make([]teaminstance.TeamInstance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SeasonRepository) Complete(ctx context.Context, seasonID, winnerID string) (season.Season, error) {
	var out season.Season
	err := inTx(ctx, r.db, "complete season", func(tx *sqlx.Tx) error {
		item, ok, err := getSeason(ctx, tx, seasonID, true)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: season=%s", integrity.ErrNotFound, seasonID)
		}
		if item.Completed {
			return fmt.Errorf("%w: season=%s is already completed", integrity.ErrConflict, seasonID)
		}
		found, err := exists(ctx, tx, "team_instances", winnerID, false)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: team instance=%s", integrity.ErrReferential, winnerID)
		}
		member, err := seasonTeamLinks.has(ctx, tx, seasonID, winnerID, true)
		if err != nil {
			return err
		}
		if !member {
			return fmt.Errorf("%w: team instance=%s is not part of season=%s", integrity.ErrInvalid, winnerID, seasonID)
		}

		query, args, err := qb.Update("seasons").
			Set("completed", true).
			Set("winner_public_id", winnerID).
			Set("updated_at", r.clock.Now().UTC()).
			Where(qb.Eq("public_id", seasonID)).
			Suffix("RETURNING " + joinColumns(seasonColumns)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build complete season query: %w", err)
		}
		var row seasonTableModel
		if err := tx.GetContext(ctx, &row, query, args...); err != nil {
			return translateError(err, "complete season")
		}
		out = row.toDomain()
		return nil
	})
	if err != nil {
		return season.Season{}, err
	}
	return out, nil
}
