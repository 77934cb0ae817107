package season

import (
	"context"

	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
)

type Repository interface {
	// Create and Update fail with integrity.ErrReferential when a set
	// reference points at a missing round or team instance.
	Create(ctx context.Context, item Season) error
	GetByID(ctx context.Context, seasonID string) (Season, bool, error)
	// Update stores year, current round and my team. Completion and winner
	// move only through Complete.
	Update(ctx context.Context, item Season) error
	// Delete fails with integrity.ErrReferential while a manager holds the
	// season as current or in its history.
	Delete(ctx context.Context, seasonID string) error

	AddTeam(ctx context.Context, seasonID, instanceID string) error
	RemoveTeam(ctx context.Context, seasonID, instanceID string) error
	ListTeams(ctx context.Context, seasonID string) ([]teaminstance.TeamInstance, error)

	// Complete marks the season completed and stores the winner atomically.
	// It fails with integrity.ErrConflict when already completed.
	Complete(ctx context.Context, seasonID, winnerID string) (Season, error)
}
