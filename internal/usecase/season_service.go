package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/ref"
	"github.com/riskibarqy/football-manager/internal/domain/season"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
	idgen "github.com/riskibarqy/football-manager/internal/platform/id"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const defaultTemplateLoaders = 4

// SeasonInput carries the writable attributes of a season. Blank ids clear
// the optional references.
type SeasonInput struct {
	Year         int `validate:"gt=0"`
	CurrentRound string
	MyTeam       string
}

// SetupSeasonInput names the templates to clone into a new season. MyTeamID
// is added to TeamIDs when missing.
type SetupSeasonInput struct {
	Year     int      `validate:"gt=0"`
	TeamIDs  []string `validate:"dive,required"`
	MyTeamID string
}

type SeasonSetup struct {
	Season season.Season
	Teams  []teaminstance.TeamInstance
}

// TeamInstantiator clones a team template with its players.
type TeamInstantiator interface {
	InstantiateTeam(ctx context.Context, baseTeamID string) (teaminstance.TeamInstance, error)
}

type SeasonService struct {
	seasonRepo   season.Repository
	teamRepo     team.Repository
	instantiator TeamInstantiator
	idGen        idgen.Generator
	logger       *logging.Logger
	clock        clockwork.Clock
	loaders      int
}

func NewSeasonService(
	seasonRepo season.Repository,
	teamRepo team.Repository,
	instantiator TeamInstantiator,
	idGen idgen.Generator,
	logger *logging.Logger,
) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SeasonService{
		seasonRepo:   seasonRepo,
		teamRepo:     teamRepo,
		instantiator: instantiator,
		idGen:        idGen,
		logger:       logger,
		clock:        clockwork.NewRealClock(),
		loaders:      defaultTemplateLoaders,
	}
}

func (s *SeasonService) Create(ctx context.Context, input SeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Create")
	defer span.End()

	if err := validateInput(ctx, input); err != nil {
		return season.Season{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return season.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	now := s.clock.Now().UTC()
	item := season.Season{
		ID:           id,
		Year:         input.Year,
		CurrentRound: ref.To(input.CurrentRound),
		MyTeam:       ref.To(input.MyTeam),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := item.Validate(); err != nil {
		return season.Season{}, invalid(err)
	}
	if err := s.seasonRepo.Create(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}

	s.logger.InfoContext(ctx, "season created", "season_id", item.ID, "year", item.Year)
	return item, nil
}

func (s *SeasonService) Get(ctx context.Context, seasonID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Get")
	defer span.End()

	seasonID, err := requireID("season", seasonID)
	if err != nil {
		return season.Season{}, err
	}

	item, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	return item, nil
}

func (s *SeasonService) Update(ctx context.Context, seasonID string, input SeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Update")
	defer span.End()

	if err := validateInput(ctx, input); err != nil {
		return season.Season{}, err
	}

	item, err := s.Get(ctx, seasonID)
	if err != nil {
		return season.Season{}, err
	}
	item.Year = input.Year
	item.CurrentRound = ref.To(input.CurrentRound)
	item.MyTeam = ref.To(input.MyTeam)
	item.UpdatedAt = s.clock.Now().UTC()
	if err := item.Validate(); err != nil {
		return season.Season{}, invalid(err)
	}
	if err := s.seasonRepo.Update(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("update season: %w", err)
	}

	s.logger.InfoContext(ctx, "season updated", "season_id", item.ID)
	return item, nil
}

func (s *SeasonService) Delete(ctx context.Context, seasonID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Delete")
	defer span.End()

	seasonID, err := requireID("season", seasonID)
	if err != nil {
		return err
	}
	if err := s.seasonRepo.Delete(ctx, seasonID); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}

	s.logger.InfoContext(ctx, "season deleted", "season_id", seasonID)
	return nil
}

func (s *SeasonService) AddTeam(ctx context.Context, seasonID, instanceID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.AddTeam")
	defer span.End()

	seasonID, instanceID, err := seasonTeamArgs(seasonID, instanceID)
	if err != nil {
		return err
	}
	if err := s.seasonRepo.AddTeam(ctx, seasonID, instanceID); err != nil {
		return fmt.Errorf("add season team: %w", err)
	}

	s.logger.InfoContext(ctx, "season team added", "season_id", seasonID, "team_instance_id", instanceID)
	return nil
}

func (s *SeasonService) RemoveTeam(ctx context.Context, seasonID, instanceID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.RemoveTeam")
	defer span.End()

	seasonID, instanceID, err := seasonTeamArgs(seasonID, instanceID)
	if err != nil {
		return err
	}
	if err := s.seasonRepo.RemoveTeam(ctx, seasonID, instanceID); err != nil {
		return fmt.Errorf("remove season team: %w", err)
	}

	s.logger.InfoContext(ctx, "season team removed", "season_id", seasonID, "team_instance_id", instanceID)
	return nil
}

func (s *SeasonService) ListTeams(ctx context.Context, seasonID string) ([]teaminstance.TeamInstance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListTeams")
	defer span.End()

	seasonID, err := requireID("season", seasonID)
	if err != nil {
		return nil, err
	}

	items, err := s.seasonRepo.ListTeams(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list season teams: %w", err)
	}
	return items, nil
}

// Complete closes the season with a winner taken from its own team set.
func (s *SeasonService) Complete(ctx context.Context, seasonID, winnerID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Complete",
		attribute.String("season.id", seasonID),
		attribute.String("season.winner_id", winnerID),
	)
	defer span.End()

	seasonID, winnerID, err := seasonTeamArgs(seasonID, winnerID)
	if err != nil {
		return season.Season{}, err
	}

	item, err := s.Get(ctx, seasonID)
	if err != nil {
		return season.Season{}, err
	}
	if item.Completed {
		return season.Season{}, fmt.Errorf("%w: season=%s is already completed", ErrConflict, item.ID)
	}

	item, err = s.seasonRepo.Complete(ctx, seasonID, winnerID)
	if err != nil {
		return season.Season{}, fmt.Errorf("complete season: %w", err)
	}

	s.logger.InfoContext(ctx, "season completed", "season_id", item.ID, "winner", winnerID)
	return item, nil
}

// Setup clones every named team template into the new season. Templates are
// loaded concurrently; instantiation runs in input order.
func (s *SeasonService) Setup(ctx context.Context, input SetupSeasonInput) (SeasonSetup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Setup")
	defer span.End()

	input.MyTeamID = strings.TrimSpace(input.MyTeamID)
	input.TeamIDs = uniqueIDs(input.TeamIDs, input.MyTeamID)
	if err := validateInput(ctx, input); err != nil {
		return SeasonSetup{}, err
	}
	if len(input.TeamIDs) == 0 {
		return SeasonSetup{}, fmt.Errorf("%w: at least one team is required", ErrInvalidInput)
	}

	if err := s.loadTemplates(ctx, input.TeamIDs); err != nil {
		return SeasonSetup{}, err
	}

	instanceByTemplate := make(map[string]string, len(input.TeamIDs))
	instances := make([]teaminstance.TeamInstance, 0, len(input.TeamIDs))
	for _, teamID := range input.TeamIDs {
		instance, err := s.instantiator.InstantiateTeam(ctx, teamID)
		if err != nil {
			return SeasonSetup{}, fmt.Errorf("instantiate team=%s: %w", teamID, err)
		}
		instanceByTemplate[teamID] = instance.ID
		instances = append(instances, instance)
	}

	seasonInput := SeasonInput{Year: input.Year}
	if input.MyTeamID != "" {
		seasonInput.MyTeam = instanceByTemplate[input.MyTeamID]
	}
	created, err := s.Create(ctx, seasonInput)
	if err != nil {
		return SeasonSetup{}, err
	}

	for _, instance := range instances {
		if err := s.seasonRepo.AddTeam(ctx, created.ID, instance.ID); err != nil {
			return SeasonSetup{}, fmt.Errorf("add season team: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "season set up", "season_id", created.ID, "teams", len(instances))
	return SeasonSetup{Season: created, Teams: instances}, nil
}

func (s *SeasonService) loadTemplates(ctx context.Context, teamIDs []string) error {
	loaders := pool.NewWithResults[team.Team]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(max(s.loaders, 1))
	for _, teamID := range teamIDs {
		loaders.Go(func(ctx context.Context) (team.Team, error) {
			item, exists, err := s.teamRepo.GetByID(ctx, teamID)
			if err != nil {
				return team.Team{}, fmt.Errorf("get team=%s: %w", teamID, err)
			}
			if !exists {
				return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
			}
			return item, nil
		})
	}

	loaded, err := loaders.Wait()
	if err != nil {
		return err
	}
	if len(loaded) != len(teamIDs) {
		return fmt.Errorf("load team templates: got %d of %d", len(loaded), len(teamIDs))
	}
	return nil
}

func uniqueIDs(ids []string, extra string) []string {
	seen := make(map[string]struct{}, len(ids)+1)
	out := make([]string, 0, len(ids)+1)
	for _, id := range append(slices.Clip(ids), extra) {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func seasonTeamArgs(seasonID, instanceID string) (string, string, error) {
	seasonID, err := requireID("season", seasonID)
	if err != nil {
		return "", "", err
	}
	instanceID, err = requireID("team instance", instanceID)
	if err != nil {
		return "", "", err
	}
	return seasonID, instanceID, nil
}
