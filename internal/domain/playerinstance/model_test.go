package playerinstance

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/player"
)

func TestFromTemplate_CopiesSkills(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	base := player.Player{ID: "p-1", Skills: player.Skills{Kick: 7, Luck: 3}}

	item := FromTemplate("pi-1", base, now)
	if item.BasePlayerID != "p-1" || item.Skills != base.Skills {
		t.Fatalf("unexpected instance: %+v", item)
	}
	if !item.CreatedAt.Equal(now) || !item.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", item)
	}
	if err := item.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base.Skills.Kick = 1
	if item.Skills.Kick != 7 {
		t.Fatalf("instance skills must not follow the template")
	}
}

func TestValidate_RequiresBase(t *testing.T) {
	if err := (PlayerInstance{ID: "pi"}).Validate(); err == nil {
		t.Fatalf("expected error without base player")
	}
}
