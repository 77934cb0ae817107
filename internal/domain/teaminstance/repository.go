package teaminstance

import (
	"context"

	"github.com/riskibarqy/football-manager/internal/domain/playerinstance"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

type Repository interface {
	// Create fails with integrity.ErrReferential when the base team is missing.
	Create(ctx context.Context, item TeamInstance) error
	// CreateWithMembers stores the instance, its player instances and both
	// membership sets in one transaction. Every squad id must be one of players.
	CreateWithMembers(ctx context.Context, item TeamInstance, players []playerinstance.PlayerInstance, squadIDs []string) error
	GetByID(ctx context.Context, instanceID string) (TeamInstance, bool, error)
	Update(ctx context.Context, item TeamInstance) error
	// Delete clears nullable references held by matches and seasons.
	Delete(ctx context.Context, instanceID string) error

	AddMember(ctx context.Context, rel team.Relation, instanceID, playerInstanceID string) error
	RemoveMember(ctx context.Context, rel team.Relation, instanceID, playerInstanceID string) error
	ListMembers(ctx context.Context, rel team.Relation, instanceID string) ([]playerinstance.PlayerInstance, error)
}
