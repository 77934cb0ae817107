package teaminstance

import "testing"

func TestStats_WithResult(t *testing.T) {
	var s Stats
	s = s.WithResult(2, 1)
	s = s.WithResult(0, 0)
	s = s.WithResult(1, 3)

	want := Stats{Wins: 1, Draws: 1, Loses: 1, GoalsFor: 3, GoalsAgainst: 4, Points: 4}
	if s != want {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.Played() != 3 {
		t.Fatalf("expected 3 played, got %d", s.Played())
	}
	if s.GoalDifference() != -1 {
		t.Fatalf("expected goal difference -1, got %d", s.GoalDifference())
	}
}

func TestStats_WithResultDoesNotMutateReceiver(t *testing.T) {
	s := Stats{Wins: 1, Points: 3}
	_ = s.WithResult(5, 0)
	if s.Wins != 1 || s.Points != 3 {
		t.Fatalf("receiver mutated: %+v", s)
	}
}

func TestTeamInstance_Validate(t *testing.T) {
	item := TeamInstance{ID: "ti", BaseTeamID: "t"}
	if err := item.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item.Stats.Loses = -1
	if err := item.Validate(); err == nil {
		t.Fatalf("expected error for negative counter")
	}

	if err := (TeamInstance{ID: "ti"}).Validate(); err == nil {
		t.Fatalf("expected error without base team")
	}
}
