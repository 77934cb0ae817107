package season

import (
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/ref"
)

func TestSeason_WinnerAbsentUntilCompleted(t *testing.T) {
	s := Season{ID: "s-2024", Year: 2024}
	if err := s.Validate(); err != nil {
		t.Fatalf("season without current round must be valid: %v", err)
	}
	if s.WinnerRef().IsSet() {
		t.Fatalf("expected absent winner")
	}

	s.Winner = ref.To("ti-1")
	if err := s.Validate(); err == nil {
		t.Fatalf("expected error for winner on an open season")
	}
	if s.WinnerRef().IsSet() {
		t.Fatalf("winner must stay hidden while season is open")
	}

	s.Completed = true
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.WinnerRef().Is("ti-1") {
		t.Fatalf("expected winner ti-1, got %s", s.WinnerRef())
	}
}

func TestSeason_String(t *testing.T) {
	if got := (Season{Year: 2024}).String(); got != "2024 | COMPLETED? False" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := (Season{Year: 1970, Completed: true}).String(); got != "1970 | COMPLETED? True" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestSeason_ValidateYear(t *testing.T) {
	if err := (Season{ID: "s", Year: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero year")
	}
}
