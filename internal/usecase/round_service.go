package usecase

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/round"
	idgen "github.com/riskibarqy/football-manager/internal/platform/id"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

type RoundService struct {
	roundRepo round.Repository
	idGen     idgen.Generator
	logger    *logging.Logger
	clock     clockwork.Clock
}

func NewRoundService(roundRepo round.Repository, idGen idgen.Generator, logger *logging.Logger) *RoundService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RoundService{
		roundRepo: roundRepo,
		idGen:     idGen,
		logger:    logger,
		clock:     clockwork.NewRealClock(),
	}
}

// Create stores an empty, unresolved round.
func (s *RoundService) Create(ctx context.Context) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Create")
	defer span.End()

	id, err := s.idGen.NewID()
	if err != nil {
		return round.Round{}, fmt.Errorf("generate round id: %w", err)
	}

	now := s.clock.Now().UTC()
	item := round.Round{ID: id, CreatedAt: now, UpdatedAt: now}
	if err := s.roundRepo.Create(ctx, item); err != nil {
		return round.Round{}, fmt.Errorf("create round: %w", err)
	}

	s.logger.InfoContext(ctx, "round created", "round_id", item.ID)
	return item, nil
}

func (s *RoundService) Get(ctx context.Context, roundID string) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Get")
	defer span.End()

	roundID, err := requireID("round", roundID)
	if err != nil {
		return round.Round{}, err
	}

	item, exists, err := s.roundRepo.GetByID(ctx, roundID)
	if err != nil {
		return round.Round{}, fmt.Errorf("get round: %w", err)
	}
	if !exists {
		return round.Round{}, fmt.Errorf("%w: round=%s", ErrNotFound, roundID)
	}
	return item, nil
}

func (s *RoundService) Delete(ctx context.Context, roundID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Delete")
	defer span.End()

	roundID, err := requireID("round", roundID)
	if err != nil {
		return err
	}
	if err := s.roundRepo.Delete(ctx, roundID); err != nil {
		return fmt.Errorf("delete round: %w", err)
	}

	s.logger.InfoContext(ctx, "round deleted", "round_id", roundID)
	return nil
}

func (s *RoundService) AddMatch(ctx context.Context, roundID, matchID string) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.AddMatch")
	defer span.End()

	roundID, matchID, err := roundMatchArgs(roundID, matchID)
	if err != nil {
		return round.Round{}, err
	}

	item, err := s.roundRepo.AddMatch(ctx, roundID, matchID)
	if err != nil {
		return round.Round{}, fmt.Errorf("add round match: %w", err)
	}

	s.logger.InfoContext(ctx, "round match added", "round_id", roundID, "match_id", matchID, "resolved", item.Resolved)
	return item, nil
}

func (s *RoundService) RemoveMatch(ctx context.Context, roundID, matchID string) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.RemoveMatch")
	defer span.End()

	roundID, matchID, err := roundMatchArgs(roundID, matchID)
	if err != nil {
		return round.Round{}, err
	}

	item, err := s.roundRepo.RemoveMatch(ctx, roundID, matchID)
	if err != nil {
		return round.Round{}, fmt.Errorf("remove round match: %w", err)
	}

	s.logger.InfoContext(ctx, "round match removed", "round_id", roundID, "match_id", matchID, "resolved", item.Resolved)
	return item, nil
}

func (s *RoundService) ListMatches(ctx context.Context, roundID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.ListMatches")
	defer span.End()

	roundID, err := requireID("round", roundID)
	if err != nil {
		return nil, err
	}

	items, err := s.roundRepo.ListMatches(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("list round matches: %w", err)
	}
	return items, nil
}

func roundMatchArgs(roundID, matchID string) (string, string, error) {
	roundID, err := requireID("round", roundID)
	if err != nil {
		return "", "", err
	}
	matchID, err = requireID("match", matchID)
	if err != nil {
		return "", "", err
	}
	return roundID, matchID, nil
}
