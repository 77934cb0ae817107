package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

// linkTable is a many-to-many join table. Every association gets its own
// table, so a team's roster and squad never share rows.
type linkTable struct {
	table     string
	ownerCol  string
	memberCol string
}

var (
	teamRosterLinks = linkTable{table: "team_roster_players", ownerCol: "team_public_id", memberCol: "player_public_id"}
	teamSquadLinks  = linkTable{table: "team_squad_players", ownerCol: "team_public_id", memberCol: "player_public_id"}

	instanceRosterLinks = linkTable{table: "team_instance_roster_players", ownerCol: "team_instance_public_id", memberCol: "player_instance_public_id"}
	instanceSquadLinks  = linkTable{table: "team_instance_squad_players", ownerCol: "team_instance_public_id", memberCol: "player_instance_public_id"}

	roundMatchLinks    = linkTable{table: "round_matches", ownerCol: "round_public_id", memberCol: "match_public_id"}
	seasonTeamLinks    = linkTable{table: "season_teams", ownerCol: "season_public_id", memberCol: "team_instance_public_id"}
	managerSeasonLinks = linkTable{table: "manager_seasons", ownerCol: "manager_public_id", memberCol: "season_public_id"}
)

func teamLinks(rel team.Relation) (linkTable, error) {
	switch rel {
	case team.RelationRoster:
		return teamRosterLinks, nil
	case team.RelationSquad:
		return teamSquadLinks, nil
	default:
		return linkTable{}, fmt.Errorf("unknown team relation %q", rel)
	}
}

func instanceLinks(rel team.Relation) (linkTable, error) {
	switch rel {
	case team.RelationRoster:
		return instanceRosterLinks, nil
	case team.RelationSquad:
		return instanceSquadLinks, nil
	default:
		return linkTable{}, fmt.Errorf("unknown team relation %q", rel)
	}
}

// add is idempotent.
func (l linkTable) add(ctx context.Context, exec sqlx.ExecerContext, ownerID, memberID string) error {
	query, args, err := qb.InsertInto(l.table).
		Columns(l.ownerCol, l.memberCol).
		Values(ownerID, memberID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert %s query: %w", l.table, err)
	}
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "insert "+l.table)
	}
	return nil
}

// remove is idempotent.
func (l linkTable) remove(ctx context.Context, exec sqlx.ExecerContext, ownerID, memberID string) error {
	conds := append(l.ownerConds(ownerID), qb.Eq(l.memberCol, memberID))
	query, args, err := qb.DeleteFrom(l.table).Where(conds...).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", l.table, err)
	}
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "delete "+l.table)
	}
	return nil
}

// has reports whether memberID is linked to ownerID. lock takes a row lock on
// the link so it cannot be removed before the transaction ends.
func (l linkTable) has(ctx context.Context, q sqlx.QueryerContext, ownerID, memberID string, lock bool) (bool, error) {
	query, args, err := l.hasQuery(ownerID, memberID, lock)
	if err != nil {
		return false, fmt.Errorf("build select %s link query: %w", l.table, err)
	}
	var id string
	if err := sqlx.GetContext(ctx, q, &id, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("select %s link: %w", l.table, err)
	}
	return true, nil
}

func (l linkTable) hasQuery(ownerID, memberID string, lock bool) (string, []any, error) {
	conds := append(l.ownerConds(ownerID), qb.Eq(l.memberCol, memberID))
	builder := qb.Select(l.memberCol).From(l.table).Where(conds...)
	if lock {
		builder = builder.ForUpdate()
	}
	return builder.ToSQL()
}

// ownersOf lists every owner holding memberID.
func (l linkTable) ownersOf(ctx context.Context, q sqlx.QueryerContext, memberID string) ([]string, error) {
	query, args, err := qb.Select("DISTINCT " + l.ownerCol).
		From(l.table).
		Where(qb.Eq(l.memberCol, memberID)).
		OrderBy(l.ownerCol).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s owners query: %w", l.table, err)
	}
	var out []string
	if err := sqlx.SelectContext(ctx, q, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select %s owners: %w", l.table, err)
	}
	return out, nil
}

// joinFrom returns a FROM clause joining the member table aliased as "m".
func (l linkTable) joinFrom(memberTable string) string {
	return memberTable + " m JOIN " + l.table + " l ON l." + l.memberCol + " = m.public_id"
}

func (l linkTable) ownerConds(ownerID string) []qb.Condition {
	return []qb.Condition{qb.Eq(l.ownerCol, ownerID)}
}

// joinedOwnerConds qualifies ownerConds for use with joinFrom.
func (l linkTable) joinedOwnerConds(ownerID string) []qb.Condition {
	return []qb.Condition{qb.Eq("l."+l.ownerCol, ownerID)}
}
