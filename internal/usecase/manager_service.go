package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/manager"
	"github.com/riskibarqy/football-manager/internal/domain/ref"
	"github.com/riskibarqy/football-manager/internal/domain/season"
	idgen "github.com/riskibarqy/football-manager/internal/platform/id"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

// ManagerInput carries the writable attributes of a manager profile. A blank
// nickname falls back to manager.DefaultNickname on create.
type ManagerInput struct {
	Nickname    string `validate:"max=20"`
	TotalPoints int
}

type ManagerService struct {
	managerRepo manager.Repository
	idGen       idgen.Generator
	logger      *logging.Logger
	clock       clockwork.Clock
}

func NewManagerService(managerRepo manager.Repository, idGen idgen.Generator, logger *logging.Logger) *ManagerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ManagerService{
		managerRepo: managerRepo,
		idGen:       idGen,
		logger:      logger,
		clock:       clockwork.NewRealClock(),
	}
}

// Create stores a profile without a current season. StartSeason sets it.
func (s *ManagerService) Create(ctx context.Context, input ManagerInput) (manager.Manager, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Create")
	defer span.End()

	input.Nickname = strings.TrimSpace(input.Nickname)
	if input.Nickname == "" {
		input.Nickname = manager.DefaultNickname
	}
	if err := validateInput(ctx, input); err != nil {
		return manager.Manager{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return manager.Manager{}, fmt.Errorf("generate manager id: %w", err)
	}

	now := s.clock.Now().UTC()
	item := manager.Manager{
		ID:            id,
		Nickname:      input.Nickname,
		TotalPoints:   input.TotalPoints,
		CurrentSeason: ref.None(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := item.Validate(); err != nil {
		return manager.Manager{}, invalid(err)
	}
	if err := s.managerRepo.Create(ctx, item); err != nil {
		return manager.Manager{}, fmt.Errorf("create manager: %w", err)
	}

	s.logger.InfoContext(ctx, "manager created", "manager_id", item.ID)
	return item, nil
}

func (s *ManagerService) Get(ctx context.Context, managerID string) (manager.Manager, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Get")
	defer span.End()

	managerID, err := requireID("manager", managerID)
	if err != nil {
		return manager.Manager{}, err
	}

	item, exists, err := s.managerRepo.GetByID(ctx, managerID)
	if err != nil {
		return manager.Manager{}, fmt.Errorf("get manager: %w", err)
	}
	if !exists {
		return manager.Manager{}, fmt.Errorf("%w: manager=%s", ErrNotFound, managerID)
	}
	return item, nil
}

func (s *ManagerService) List(ctx context.Context) ([]manager.Manager, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.List")
	defer span.End()

	items, err := s.managerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	return items, nil
}

func (s *ManagerService) Update(ctx context.Context, managerID string, input ManagerInput) (manager.Manager, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Update")
	defer span.End()

	input.Nickname = strings.TrimSpace(input.Nickname)
	if err := validateInput(ctx, input); err != nil {
		return manager.Manager{}, err
	}

	item, err := s.Get(ctx, managerID)
	if err != nil {
		return manager.Manager{}, err
	}
	if input.Nickname != "" {
		item.Nickname = input.Nickname
	}
	item.TotalPoints = input.TotalPoints
	item.UpdatedAt = s.clock.Now().UTC()
	if err := item.Validate(); err != nil {
		return manager.Manager{}, invalid(err)
	}
	if err := s.managerRepo.Update(ctx, item); err != nil {
		return manager.Manager{}, fmt.Errorf("update manager: %w", err)
	}

	s.logger.InfoContext(ctx, "manager updated", "manager_id", item.ID)
	return item, nil
}

func (s *ManagerService) Delete(ctx context.Context, managerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.Delete")
	defer span.End()

	managerID, err := requireID("manager", managerID)
	if err != nil {
		return err
	}
	if err := s.managerRepo.Delete(ctx, managerID); err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}

	s.logger.InfoContext(ctx, "manager deleted", "manager_id", managerID)
	return nil
}

// StartSeason moves the manager to a season and records it in the history.
// The current season is only ever replaced, never cleared.
func (s *ManagerService) StartSeason(ctx context.Context, managerID, seasonID string) (manager.Manager, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.StartSeason")
	defer span.End()

	managerID, err := requireID("manager", managerID)
	if err != nil {
		return manager.Manager{}, err
	}
	seasonID, err = requireID("season", seasonID)
	if err != nil {
		return manager.Manager{}, err
	}

	item, err := s.managerRepo.StartSeason(ctx, managerID, seasonID)
	if err != nil {
		return manager.Manager{}, fmt.Errorf("start manager season: %w", err)
	}

	s.logger.InfoContext(ctx, "manager season started", "manager_id", managerID, "season_id", seasonID)
	return item, nil
}

func (s *ManagerService) AddPoints(ctx context.Context, managerID string, delta int) (manager.Manager, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.AddPoints")
	defer span.End()

	managerID, err := requireID("manager", managerID)
	if err != nil {
		return manager.Manager{}, err
	}

	item, err := s.managerRepo.AddPoints(ctx, managerID, delta)
	if err != nil {
		return manager.Manager{}, fmt.Errorf("add manager points: %w", err)
	}

	s.logger.InfoContext(ctx, "manager points added", "manager_id", managerID, "delta", delta, "total", item.TotalPoints)
	return item, nil
}

func (s *ManagerService) ListSeasons(ctx context.Context, managerID string) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.ListSeasons")
	defer span.End()

	managerID, err := requireID("manager", managerID)
	if err != nil {
		return nil, err
	}

	items, err := s.managerRepo.ListSeasons(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("list manager seasons: %w", err)
	}
	return items, nil
}
