package manager

import (
	"context"

	"github.com/riskibarqy/football-manager/internal/domain/season"
)

type Repository interface {
	Create(ctx context.Context, item Manager) error
	GetByID(ctx context.Context, managerID string) (Manager, bool, error)
	List(ctx context.Context) ([]Manager, error)
	// Update stores the nickname and total points.
	Update(ctx context.Context, item Manager) error
	Delete(ctx context.Context, managerID string) error

	// StartSeason sets the current season and appends it to the history in
	// one transaction.
	StartSeason(ctx context.Context, managerID, seasonID string) (Manager, error)
	AddPoints(ctx context.Context, managerID string, delta int) (Manager, error)
	ListSeasons(ctx context.Context, managerID string) ([]season.Season, error)
}
