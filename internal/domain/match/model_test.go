package match

import (
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/ref"
)

func TestMatch_ResultBeforeAndAfterResolution(t *testing.T) {
	m := Match{ID: "m-1", TeamA: ref.To("a"), TeamB: ref.To("b"), GoalsA: 3, GoalsB: 1}

	if a, b, played := m.Result(); played || a != 0 || b != 0 {
		t.Fatalf("expected unplayed 0-0, got %d-%d played=%t", a, b, played)
	}

	m.Resolved = true
	if a, b, played := m.Result(); !played || a != 3 || b != 1 {
		t.Fatalf("expected played 3-1, got %d-%d played=%t", a, b, played)
	}
}

func TestMatch_Describe(t *testing.T) {
	m := Match{ID: "m-1", GoalsA: 2, GoalsB: 1}
	if got := m.Describe("Flamengo", "Palmeiras"); got != "Flamengo ? X ? Palmeiras" {
		t.Fatalf("unexpected unresolved summary: %q", got)
	}

	m.Resolved = true
	if got := m.Describe("Flamengo", "Palmeiras"); got != "Flamengo 2 X 1 Palmeiras" {
		t.Fatalf("unexpected resolved summary: %q", got)
	}
}

func TestMatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		match   Match
		wantErr bool
	}{
		{name: "unscheduled", match: Match{ID: "m"}},
		{name: "one side", match: Match{ID: "m", TeamA: ref.To("a")}},
		{name: "distinct sides", match: Match{ID: "m", TeamA: ref.To("a"), TeamB: ref.To("b")}},
		{name: "same side twice", match: Match{ID: "m", TeamA: ref.To("a"), TeamB: ref.To("a")}, wantErr: true},
		{name: "negative goals", match: Match{ID: "m", GoalsB: -1}, wantErr: true},
		{name: "missing id", match: Match{}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.match.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestMatch_Scheduled(t *testing.T) {
	if (Match{TeamA: ref.To("a")}).Scheduled() {
		t.Fatalf("match with one side must not be scheduled")
	}
	if !(Match{TeamA: ref.To("a"), TeamB: ref.To("b")}).Scheduled() {
		t.Fatalf("match with both sides must be scheduled")
	}
}
