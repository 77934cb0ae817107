package team

import (
	"context"

	"github.com/riskibarqy/football-manager/internal/domain/player"
)

// Repository describes team template persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Team) error
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, item Team) error
	// Delete fails with integrity.ErrReferential while a team instance still
	// points at the template.
	Delete(ctx context.Context, teamID string) error

	// AddMember and RemoveMember fail with integrity.ErrReferential when
	// either endpoint is missing. Both are idempotent.
	AddMember(ctx context.Context, rel Relation, teamID, playerID string) error
	RemoveMember(ctx context.Context, rel Relation, teamID, playerID string) error
	ListMembers(ctx context.Context, rel Relation, teamID string) ([]player.Player, error)
}
