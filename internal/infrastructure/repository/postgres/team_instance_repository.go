package postgres

import (
	"context"
	"fmt"
	"slices"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/playerinstance"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

type TeamInstanceRepository struct {
	db    *sqlx.DB
	clock clockwork.Clock
}

func NewTeamInstanceRepository(db *sqlx.DB) *TeamInstanceRepository {
	return &TeamInstanceRepository{db: db, clock: clockwork.NewRealClock()}
}

func (r *TeamInstanceRepository) Create(ctx context.Context, item teaminstance.TeamInstance) error {
	return insertTeamInstance(ctx, r.db, item)
}

func insertTeamInstance(ctx context.Context, exec sqlx.ExecerContext, item teaminstance.TeamInstance) error {
	query, args, err := qb.InsertModel("team_instances", teamInstanceRow(item), "")
	if err != nil {
		return fmt.Errorf("build insert team instance query: %w", err)
	}
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "insert team instance")
	}
	return nil
}

func (r *TeamInstanceRepository) CreateWithMembers(
	ctx context.Context,
	item teaminstance.TeamInstance,
	players []playerinstance.PlayerInstance,
	squadIDs []string,
) error {
	rosterIDs := make([]string, 0, len(players))
	for _, p := range players {
		rosterIDs = append(rosterIDs, p.ID)
	}
	for _, id := range squadIDs {
		if !slices.Contains(rosterIDs, id) {
			return fmt.Errorf("%w: squad member=%s is not part of the new instance", integrity.ErrReferential, id)
		}
	}

	return inTx(ctx, r.db, "create team instance with members", func(tx *sqlx.Tx) error {
		if err := insertTeamInstance(ctx, tx, item); err != nil {
			return err
		}
		for _, p := range players {
			if err := insertPlayerInstance(ctx, tx, p); err != nil {
				return err
			}
			if err := instanceRosterLinks.add(ctx, tx, item.ID, p.ID); err != nil {
				return err
			}
		}
		for _, id := range squadIDs {
			if err := instanceSquadLinks.add(ctx, tx, item.ID, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TeamInstanceRepository) GetByID(ctx context.Context, instanceID string) (teaminstance.TeamInstance, bool, error) {
	return getTeamInstance(ctx, r.db, instanceID, false)
}

func getTeamInstance(ctx context.Context, q sqlx.QueryerContext, instanceID string, lock bool) (teaminstance.TeamInstance, bool, error) {
	builder := qb.Select(teamInstanceColumns...).From("team_instances").
		Where(qb.Eq("public_id", instanceID))
	if lock {
		builder = builder.ForUpdate()
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return teaminstance.TeamInstance{}, false, fmt.Errorf("build select team instance query: %w", err)
	}

	var row teamInstanceTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teaminstance.TeamInstance{}, false, nil
		}
		return teaminstance.TeamInstance{}, false, fmt.Errorf("select team instance: %w", err)
	}
	return row.toDomain(), true, nil
}

// Update stores stats only; the base team never changes.
func (r *TeamInstanceRepository) Update(ctx context.Context, item teaminstance.TeamInstance) error {
	return updateTeamInstanceStats(ctx, r.db, item)
}

func updateTeamInstanceStats(ctx context.Context, exec sqlx.ExecerContext, item teaminstance.TeamInstance) error {
	query, args, err := qb.Update("team_instances").
		Set("wins", item.Stats.Wins).
		Set("draws", item.Stats.Draws).
		Set("loses", item.Stats.Loses).
		Set("goals_for", item.Stats.GoalsFor).
		Set("goals_against", item.Stats.GoalsAgainst).
		Set("points", item.Stats.Points).
		Set("updated_at", item.UpdatedAt).
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team instance query: %w", err)
	}

	n, err := execAffected(ctx, exec, "update team instance", query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: team instance=%s", integrity.ErrNotFound, item.ID)
	}
	return nil
}

// Delete nulls match sides and season winner/my_team before removing the row.
// Season and own memberships cascade.
func (r *TeamInstanceRepository) Delete(ctx context.Context, instanceID string) error {
	return inTx(ctx, r.db, "delete team instance", func(tx *sqlx.Tx) error {
		ok, err := exists(ctx, tx, "team_instances", instanceID, true)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: team instance=%s", integrity.ErrNotFound, instanceID)
		}

		clearMatches, args, err := qb.Update("matches").
			SetExpr("team_a_public_id", "NULLIF(team_a_public_id, ?)", instanceID).
			SetExpr("team_b_public_id", "NULLIF(team_b_public_id, ?)", instanceID).
			Set("updated_at", r.clock.Now().UTC()).
			Where(qb.Expr("(team_a_public_id = ? OR team_b_public_id = ?)", instanceID, instanceID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build clear match sides query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, clearMatches, args...); err != nil {
			return translateError(err, "clear match sides")
		}

		clearSeasons, args, err := qb.Update("seasons").
			SetExpr("winner_public_id", "NULLIF(winner_public_id, ?)", instanceID).
			SetExpr("my_team_public_id", "NULLIF(my_team_public_id, ?)", instanceID).
			Set("updated_at", r.clock.Now().UTC()).
			Where(qb.Expr("(winner_public_id = ? OR my_team_public_id = ?)", instanceID, instanceID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build clear season teams query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, clearSeasons, args...); err != nil {
			return translateError(err, "clear season teams")
		}

		query, args, err := qb.DeleteFrom("team_instances").Where(qb.Eq("public_id", instanceID)).ToSQL()
		if err != nil {
			return fmt.Errorf("build delete team instance query: %w", err)
		}
		_, err = execAffected(ctx, tx, "delete team instance", query, args...)
		return err
	})
}

func (r *TeamInstanceRepository) AddMember(ctx context.Context, rel team.Relation, instanceID, playerInstanceID string) error {
	links, err := instanceLinks(rel)
	if err != nil {
		return err
	}
	return inTx(ctx, r.db, "add team instance member", func(tx *sqlx.Tx) error {
		if err := requireEndpoints(ctx, tx,
			endpoint{table: "team_instances", label: "team instance", id: instanceID},
			endpoint{table: "player_instances", label: "player instance", id: playerInstanceID},
		); err != nil {
			return err
		}
		return links.add(ctx, tx, instanceID, playerInstanceID)
	})
}

func (r *TeamInstanceRepository) RemoveMember(ctx context.Context, rel team.Relation, instanceID, playerInstanceID string) error {
	links, err := instanceLinks(rel)
	if err != nil {
		return err
	}
	return inTx(ctx, r.db, "remove team instance member", func(tx *sqlx.Tx) error {
		if err := requireEndpoints(ctx, tx,
			endpoint{table: "team_instances", label: "team instance", id: instanceID},
			endpoint{table: "player_instances", label: "player instance", id: playerInstanceID},
		); err != nil {
			return err
		}
		return links.remove(ctx, tx, instanceID, playerInstanceID)
	})
}

func (r *TeamInstanceRepository) ListMembers(ctx context.Context, rel team.Relation, instanceID string) ([]playerinstance.PlayerInstance, error) {
	links, err := instanceLinks(rel)
	if err != nil {
		return nil, err
	}
	ok, err := exists(ctx, r.db, "team_instances", instanceID, false)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: team instance=%s", integrity.ErrNotFound, instanceID)
	}

	query, args, err := qb.Select(prefixed("m", playerInstanceColumns)...).
		From(links.joinFrom("player_instances")).
		Where(links.joinedOwnerConds(instanceID)...).
		OrderBy("l.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team instance members query: %w", err)
	}

	var rows []playerInstanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team instance members: %w", err)
	}
	return playerInstancesToDomain(rows), nil
}
