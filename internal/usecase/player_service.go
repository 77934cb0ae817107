package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	idgen "github.com/riskibarqy/football-manager/internal/platform/id"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

// PlayerInput carries the writable attributes of a player template.
type PlayerInput struct {
	Name     string `validate:"required,max=100"`
	Nickname string `validate:"required,max=100"`
	Country  string `validate:"required,max=20"`
	Wage     int
	Position int    `validate:"gte=0,lte=3"`
	Kick     int    `validate:"gte=0"`
	Dribble  int    `validate:"gte=0"`
	Strength int    `validate:"gte=0"`
	Brave    int    `validate:"gte=0"`
	Luck     int    `validate:"gte=0"`
	Health   int    `validate:"gte=0"`
}

func (in PlayerInput) normalized() PlayerInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Nickname = strings.TrimSpace(in.Nickname)
	in.Country = strings.TrimSpace(in.Country)
	return in
}

func (in PlayerInput) skills() player.Skills {
	return player.Skills{
		Kick:     in.Kick,
		Dribble:  in.Dribble,
		Strength: in.Strength,
		Brave:    in.Brave,
		Luck:     in.Luck,
		Health:   in.Health,
	}
}

type PlayerService struct {
	playerRepo player.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	clock      clockwork.Clock
}

func NewPlayerService(playerRepo player.Repository, idGen idgen.Generator, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
		clock:      clockwork.NewRealClock(),
	}
}

func (s *PlayerService) Create(ctx context.Context, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	input = input.normalized()
	if err := validateInput(ctx, input); err != nil {
		return player.Player{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.clock.Now().UTC()
	item := player.Player{
		ID:        id,
		Name:      input.Name,
		Nickname:  input.Nickname,
		Country:   input.Country,
		Wage:      input.Wage,
		Position:  player.Position(input.Position),
		Skills:    input.skills(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, invalid(err)
	}
	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", item.ID, "position", item.Position.String())
	return item, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	playerID, err := requireID("player", playerID)
	if err != nil {
		return player.Player{}, err
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID string, input PlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	input = input.normalized()
	if err := validateInput(ctx, input); err != nil {
		return player.Player{}, err
	}

	item, err := s.Get(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	item.Name = input.Name
	item.Nickname = input.Nickname
	item.Country = input.Country
	item.Wage = input.Wage
	item.Position = player.Position(input.Position)
	item.Skills = input.skills()
	item.UpdatedAt = s.clock.Now().UTC()
	if err := item.Validate(); err != nil {
		return player.Player{}, invalid(err)
	}
	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}

	s.logger.InfoContext(ctx, "player updated", "player_id", item.ID)
	return item, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	playerID, err := requireID("player", playerID)
	if err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID)
	return nil
}
