package player

import (
	"strings"
	"testing"
)

func validPlayer() Player {
	return Player{
		ID:       "p-pele",
		Name:     "Edson Arantes do Nascimento",
		Nickname: "Pelé",
		Country:  "Brasil",
		Wage:     100,
		Position: PositionForward,
		Skills:   Skills{Kick: 99, Dribble: 99, Strength: 80, Brave: 90, Luck: 95, Health: 90},
	}
}

func TestPlayer_StringAndPositionLabel(t *testing.T) {
	p := validPlayer()
	if got := p.String(); got != "Edson Arantes do Nascimento [Pelé]" {
		t.Fatalf("unexpected display name: %q", got)
	}
	if got := p.Position.String(); got != "Forward" {
		t.Fatalf("unexpected position label: %q", got)
	}
}

func TestPlayer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Player)
		wantErr string
	}{
		{name: "valid", mutate: func(*Player) {}},
		{name: "missing id", mutate: func(p *Player) { p.ID = "" }, wantErr: "id is required"},
		{name: "blank name", mutate: func(p *Player) { p.Name = "  " }, wantErr: "name is required"},
		{name: "long nickname", mutate: func(p *Player) { p.Nickname = strings.Repeat("x", MaxNicknameLength+1) }, wantErr: "nickname must be at most"},
		{name: "long country", mutate: func(p *Player) { p.Country = strings.Repeat("b", MaxCountryLength+1) }, wantErr: "country must be at most"},
		{name: "country limit counts runes", mutate: func(p *Player) { p.Country = strings.Repeat("ã", MaxCountryLength) }},
		{name: "position out of range", mutate: func(p *Player) { p.Position = Position(4) }, wantErr: "invalid player position"},
		{name: "negative position", mutate: func(p *Player) { p.Position = Position(-1) }, wantErr: "invalid player position"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPlayer()
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	tests := map[string]Position{
		"Goalkeeper": PositionGoalkeeper,
		"defense":    PositionDefense,
		" MIDFIELD ": PositionMidfield,
		"3":          PositionForward,
	}
	for raw, want := range tests {
		got, err := ParsePosition(raw)
		if err != nil {
			t.Fatalf("parse %q: unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: got %v want %v", raw, got, want)
		}
	}

	for _, raw := range []string{"", "striker", "4", "-1"} {
		if _, err := ParsePosition(raw); err == nil {
			t.Fatalf("parse %q: expected error", raw)
		}
	}
}

func TestPosition_StringOutOfRange(t *testing.T) {
	if got := Position(7).String(); got != "Position(7)" {
		t.Fatalf("unexpected label: %q", got)
	}
	if len(Positions()) != 4 {
		t.Fatalf("expected 4 positions, got %d", len(Positions()))
	}
}
