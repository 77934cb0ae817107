package manager

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/football-manager/internal/domain/ref"
)

const (
	DefaultNickname   = "Manager"
	MaxNicknameLength = 20
)

// Manager is the player-facing profile. CurrentSeason starts absent and must
// be created before play begins; once set it is only ever replaced.
type Manager struct {
	ID            string
	Nickname      string
	TotalPoints   int
	CurrentSeason ref.Ref
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NeedsSeason reports whether a season must be started before play.
func (m Manager) NeedsSeason() bool {
	return !m.CurrentSeason.IsSet()
}

func (m Manager) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("manager id is required")
	}
	if strings.TrimSpace(m.Nickname) == "" {
		return fmt.Errorf("manager nickname is required")
	}
	if utf8.RuneCountInString(m.Nickname) > MaxNicknameLength {
		return fmt.Errorf("manager nickname must be at most %d characters", MaxNicknameLength)
	}

	return nil
}

func (m Manager) String() string {
	return m.Nickname
}
