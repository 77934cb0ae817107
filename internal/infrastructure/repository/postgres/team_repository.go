package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	query, args, err := qb.InsertModel("teams", teamRow(item), "")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "insert team")
	}
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		Where(qb.Eq("public_id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From("teams").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	query, args, err := qb.Update("teams").
		Set("name", item.Name).
		Set("money", item.Money).
		Set("color1", item.Color1).
		Set("color2", item.Color2).
		Set("color3", item.Color3).
		Set("serie", int(item.Serie)).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	n, err := execAffected(ctx, r.db, "update team", query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: team=%s", integrity.ErrNotFound, item.ID)
	}
	return nil
}

// Delete is restricted by team_instances; memberships cascade.
func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	query, args, err := qb.DeleteFrom("teams").Where(qb.Eq("public_id", teamID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team query: %w", err)
	}

	n, err := execAffected(ctx, r.db, "delete team", query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: team=%s", integrity.ErrNotFound, teamID)
	}
	return nil
}

func (r *TeamRepository) AddMember(ctx context.Context, rel team.Relation, teamID, playerID string) error {
	links, err := teamLinks(rel)
	if err != nil {
		return err
	}
	return inTx(ctx, r.db, "add team member", func(tx *sqlx.Tx) error {
		if err := requireEndpoints(ctx, tx,
			endpoint{table: "teams", label: "team", id: teamID},
			endpoint{table: "players", label: "player", id: playerID},
		); err != nil {
			return err
		}
		return links.add(ctx, tx, teamID, playerID)
	})
}

func (r *TeamRepository) RemoveMember(ctx context.Context, rel team.Relation, teamID, playerID string) error {
	links, err := teamLinks(rel)
	if err != nil {
		return err
	}
	return inTx(ctx, r.db, "remove team member", func(tx *sqlx.Tx) error {
		if err := requireEndpoints(ctx, tx,
			endpoint{table: "teams", label: "team", id: teamID},
			endpoint{table: "players", label: "player", id: playerID},
		); err != nil {
			return err
		}
		return links.remove(ctx, tx, teamID, playerID)
	})
}

func (r *TeamRepository) ListMembers(ctx context.Context, rel team.Relation, teamID string) ([]player.Player, error) {
	links, err := teamLinks(rel)
	if err != nil {
		return nil, err
	}
	ok, err := exists(ctx, r.db, "teams", teamID, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: team=%s", integrity.ErrNotFound, teamID)
	}

	query, args, err := qb.Select(prefixed("m", playerColumns)...).
		From(links.joinFrom("players")).
		Where(links.joinedOwnerConds(teamID)...).
		OrderBy("l.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team members query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team members: %w", err)
	}
	return playersToDomain(rows), nil
}
