package round

import (
	"context"

	"github.com/riskibarqy/football-manager/internal/domain/match"
)

type Repository interface {
	Create(ctx context.Context, item Round) error
	GetByID(ctx context.Context, roundID string) (Round, bool, error)
	// Delete clears season current_round references.
	Delete(ctx context.Context, roundID string) error

	// AddMatch and RemoveMatch recompute Resolved in the same transaction.
	AddMatch(ctx context.Context, roundID, matchID string) (Round, error)
	RemoveMatch(ctx context.Context, roundID, matchID string) (Round, error)
	ListMatches(ctx context.Context, roundID string) ([]match.Match, error)
}
