package playerinstance

import "context"

type Repository interface {
	// Create fails with integrity.ErrReferential when the base player is missing.
	Create(ctx context.Context, item PlayerInstance) error
	GetByID(ctx context.Context, instanceID string) (PlayerInstance, bool, error)
	ListByBasePlayer(ctx context.Context, basePlayerID string) ([]PlayerInstance, error)
	Update(ctx context.Context, item PlayerInstance) error
	Delete(ctx context.Context, instanceID string) error
}
