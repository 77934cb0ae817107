package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/lib/pq"
	"github.com/riskibarqy/football-manager/internal/domain/integrity"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

func TestTranslateError(t *testing.T) {
	cases := []struct {
		name string
		code pq.ErrorCode
		want error
	}{
		{name: "foreign key", code: pqForeignKeyViolation, want: integrity.ErrReferential},
		{name: "unique", code: pqUniqueViolation, want: integrity.ErrConflict},
		{name: "check", code: pqCheckViolation, want: integrity.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := translateError(fmt.Errorf("exec: %w", &pq.Error{Code: tc.code, Constraint: "c"}), "insert player")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("passes other errors through", func(t *testing.T) {
		err := translateError(sql.ErrConnDone, "insert player")
		if !errors.Is(err, sql.ErrConnDone) {
			t.Fatalf("expected wrapped ErrConnDone, got %v", err)
		}
		if errors.Is(err, integrity.ErrReferential) {
			t.Fatalf("unexpected referential mapping")
		}
	})

	if translateError(nil, "noop") != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(sql.ErrTxDone) {
		t.Fatalf("expected ErrTxDone not to be not found")
	}
}

func TestTeamLinks(t *testing.T) {
	roster, err := teamLinks(team.RelationRoster)
	if err != nil {
		t.Fatalf("team roster links: %v", err)
	}
	squad, err := teamLinks(team.RelationSquad)
	if err != nil {
		t.Fatalf("team squad links: %v", err)
	}
	if roster.table != "team_roster_players" || squad.table != "team_squad_players" {
		t.Fatalf("unexpected team links: roster=%+v squad=%+v", roster, squad)
	}

	instRoster, err := instanceLinks(team.RelationRoster)
	if err != nil {
		t.Fatalf("instance roster links: %v", err)
	}
	instSquad, err := instanceLinks(team.RelationSquad)
	if err != nil {
		t.Fatalf("instance squad links: %v", err)
	}
	if instRoster.table != "team_instance_roster_players" || instSquad.table != "team_instance_squad_players" {
		t.Fatalf("unexpected instance links: roster=%+v squad=%+v", instRoster, instSquad)
	}
	if _, err := instanceLinks(team.Relation("bench")); err == nil {
		t.Fatalf("expected error for unknown relation")
	}
}

func TestLinkTableJoin(t *testing.T) {
	got := roundMatchLinks.joinFrom("matches")
	want := "matches m JOIN round_matches l ON l.match_public_id = m.public_id"
	if got != want {
		t.Fatalf("unexpected join:\nwant: %s\ngot:  %s", want, got)
	}
	if n := len(instanceRosterLinks.joinedOwnerConds("ti-1")); n != 1 {
		t.Fatalf("expected only the owner condition, got %d conditions", n)
	}
}

func TestColumnListsMatchTableModels(t *testing.T) {
	cases := []struct {
		name    string
		columns []string
		row     any
	}{
		{name: "players", columns: playerColumns, row: playerTableModel{}},
		{name: "teams", columns: teamColumns, row: teamTableModel{}},
		{name: "player_instances", columns: playerInstanceColumns, row: playerInstanceTableModel{}},
		{name: "team_instances", columns: teamInstanceColumns, row: teamInstanceTableModel{}},
		{name: "matches", columns: matchColumns, row: matchTableModel{}},
		{name: "rounds", columns: roundColumns, row: roundTableModel{}},
		{name: "seasons", columns: seasonColumns, row: seasonTableModel{}},
		{name: "managers", columns: managerColumns, row: managerTableModel{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := qb.ModelColumns(tc.row)
			if err != nil {
				t.Fatalf("model columns: %v", err)
			}
			if !slices.Equal(got, tc.columns) {
				t.Fatalf("column list drifted from row model:\nlist:  %v\nmodel: %v", tc.columns, got)
			}
		})
	}
}

func TestSeasonTeamMembershipQueryLocksLink(t *testing.T) {
	query, args, err := seasonTeamLinks.hasQuery("s-1", "ti-1", true)
	if err != nil {
		t.Fatalf("build membership query: %v", err)
	}

	want := "SELECT team_instance_public_id FROM season_teams WHERE season_public_id = $1 AND team_instance_public_id = $2 FOR UPDATE"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 2 || args[0] != "s-1" || args[1] != "ti-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
