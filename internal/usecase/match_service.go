package usecase

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/match"
	"github.com/riskibarqy/football-manager/internal/domain/ref"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
	idgen "github.com/riskibarqy/football-manager/internal/platform/id"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// MatchInput assigns the two sides of a fixture. Blank ids leave a side
// unscheduled.
type MatchInput struct {
	TeamA string
	TeamB string `validate:"omitempty,nefield=TeamA"`
}

type ResultInput struct {
	GoalsA int `validate:"gte=0"`
	GoalsB int `validate:"gte=0"`
}

type MatchService struct {
	matchRepo        match.Repository
	teamInstanceRepo teaminstance.Repository
	teamRepo         team.Repository
	idGen            idgen.Generator
	logger           *logging.Logger
	clock            clockwork.Clock
}

func NewMatchService(
	matchRepo match.Repository,
	teamInstanceRepo teaminstance.Repository,
	teamRepo team.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo:        matchRepo,
		teamInstanceRepo: teamInstanceRepo,
		teamRepo:         teamRepo,
		idGen:            idGen,
		logger:           logger,
		clock:            clockwork.NewRealClock(),
	}
}

func (s *MatchService) Create(ctx context.Context, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	teamA, teamB := ref.To(input.TeamA), ref.To(input.TeamB)
	input.TeamA, _ = teamA.ID()
	input.TeamB, _ = teamB.ID()
	if err := validateInput(ctx, input); err != nil {
		return match.Match{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.clock.Now().UTC()
	item := match.Match{ID: id, TeamA: teamA, TeamB: teamB, CreatedAt: now, UpdatedAt: now}
	if err := item.Validate(); err != nil {
		return match.Match{}, invalid(err)
	}
	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	s.logger.InfoContext(ctx, "match created", "match_id", item.ID, "team_a", item.TeamA.String(), "team_b", item.TeamB.String())
	return item, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	matchID, err := requireID("match", matchID)
	if err != nil {
		return match.Match{}, err
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

// Update reassigns the sides of a fixture. A resolved match keeps its teams.
func (s *MatchService) Update(ctx context.Context, matchID string, input MatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	teamA, teamB := ref.To(input.TeamA), ref.To(input.TeamB)
	input.TeamA, _ = teamA.ID()
	input.TeamB, _ = teamB.ID()
	if err := validateInput(ctx, input); err != nil {
		return match.Match{}, err
	}

	item, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if item.Resolved {
		return match.Match{}, fmt.Errorf("%w: match=%s is already resolved", ErrConflict, item.ID)
	}

	item.TeamA = teamA
	item.TeamB = teamB
	item.UpdatedAt = s.clock.Now().UTC()
	if err := item.Validate(); err != nil {
		return match.Match{}, invalid(err)
	}
	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}

	s.logger.InfoContext(ctx, "match updated", "match_id", item.ID)
	return item, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	matchID, err := requireID("match", matchID)
	if err != nil {
		return err
	}
	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	s.logger.InfoContext(ctx, "match deleted", "match_id", matchID)
	return nil
}

// RecordResult stores a caller-supplied score. The stats of both teams and
// the resolved flag of every round holding the match move with it.
func (s *MatchService) RecordResult(ctx context.Context, matchID string, input ResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult",
		attribute.String("match.id", matchID),
	)
	defer span.End()

	if err := validateInput(ctx, input); err != nil {
		return match.Match{}, err
	}

	item, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if item.Resolved {
		return match.Match{}, fmt.Errorf("%w: match=%s is already resolved", ErrConflict, item.ID)
	}
	if !item.Scheduled() {
		return match.Match{}, fmt.Errorf("%w: match=%s has no opponent assigned", ErrConflict, item.ID)
	}

	item, err = s.matchRepo.RecordResult(ctx, item.ID, input.GoalsA, input.GoalsB)
	if err != nil {
		return match.Match{}, fmt.Errorf("record match result: %w", err)
	}

	s.logger.InfoContext(ctx, "match result recorded",
		"match_id", item.ID,
		"goals_a", item.GoalsA,
		"goals_b", item.GoalsB,
	)
	return item, nil
}

// Describe renders the match with the base team names of both sides.
func (s *MatchService) Describe(ctx context.Context, matchID string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Describe")
	defer span.End()

	item, err := s.Get(ctx, matchID)
	if err != nil {
		return "", err
	}

	nameA, err := s.sideName(ctx, item.TeamA)
	if err != nil {
		return "", err
	}
	nameB, err := s.sideName(ctx, item.TeamB)
	if err != nil {
		return "", err
	}
	return item.Describe(nameA, nameB), nil
}

func (s *MatchService) sideName(ctx context.Context, side ref.Ref) (string, error) {
	instanceID, ok := side.ID()
	if !ok {
		return "TBD", nil
	}

	instance, exists, err := s.teamInstanceRepo.GetByID(ctx, instanceID)
	if err != nil {
		return "", fmt.Errorf("get team instance: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: team instance=%s", ErrReferential, instanceID)
	}

	base, exists, err := s.teamRepo.GetByID(ctx, instance.BaseTeamID)
	if err != nil {
		return "", fmt.Errorf("get base team: %w", err)
	}
	if !exists {
		return "", fmt.Errorf("%w: team=%s", ErrReferential, instance.BaseTeamID)
	}
	return base.Name, nil
}
