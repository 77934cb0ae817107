package match

import "context"

type Repository interface {
	// Create and Update fail with integrity.ErrReferential when a set team
	// reference points at a missing team instance.
	Create(ctx context.Context, item Match) error
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	// Update stores team references only; scores move through RecordResult.
	Update(ctx context.Context, item Match) error
	// Delete removes the match from every round and recomputes those rounds.
	Delete(ctx context.Context, matchID string) error

	// RecordResult resolves the match, applies the result to both team
	// instances and recomputes every round containing it, atomically. It fails
	// with integrity.ErrConflict when the match is already resolved.
	RecordResult(ctx context.Context, matchID string, goalsA, goalsB int) (Match, error)
}
