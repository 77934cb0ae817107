package player

import "context"

// Repository describes player template persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Player) error
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	List(ctx context.Context) ([]Player, error)
	// Update fails with integrity.ErrNotFound when the player is missing.
	Update(ctx context.Context, item Player) error
	// Delete fails with integrity.ErrReferential while instances still point
	// at the template. Roster and squad memberships are dropped.
	Delete(ctx context.Context, playerID string) error
}
