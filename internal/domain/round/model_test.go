package round

import (
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/match"
)

func TestResolvedFor(t *testing.T) {
	tests := []struct {
		name    string
		matches []match.Match
		want    bool
	}{
		{name: "empty round", matches: nil, want: false},
		{name: "all resolved", matches: []match.Match{{Resolved: true}, {Resolved: true}}, want: true},
		{name: "one pending", matches: []match.Match{{Resolved: true}, {}}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolvedFor(tc.matches); got != tc.want {
				t.Fatalf("ResolvedFor() = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestRound_String(t *testing.T) {
	if got := (Round{Resolved: true}).String(); got != "DONE? True" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := (Round{}).String(); got != "DONE? False" {
		t.Fatalf("unexpected label: %q", got)
	}
}
