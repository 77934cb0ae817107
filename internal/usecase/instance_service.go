package usecase

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/playerinstance"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
	idgen "github.com/riskibarqy/football-manager/internal/platform/id"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

// SkillsInput overwrites the skills of a player instance.
type SkillsInput struct {
	Kick     int `validate:"gte=0"`
	Dribble  int `validate:"gte=0"`
	Strength int `validate:"gte=0"`
	Brave    int `validate:"gte=0"`
	Luck     int `validate:"gte=0"`
	Health   int `validate:"gte=0"`
}

// StatsInput overwrites the season record of a team instance.
type StatsInput struct {
	Wins         int `validate:"gte=0"`
	Draws        int `validate:"gte=0"`
	Loses        int `validate:"gte=0"`
	GoalsFor     int `validate:"gte=0"`
	GoalsAgainst int `validate:"gte=0"`
	Points       int
}

// InstanceService manages the season-scoped copies of player and team
// templates.
type InstanceService struct {
	playerRepo         player.Repository
	teamRepo           team.Repository
	playerInstanceRepo playerinstance.Repository
	teamInstanceRepo   teaminstance.Repository
	idGen              idgen.Generator
	logger             *logging.Logger
	clock              clockwork.Clock
}

func NewInstanceService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	playerInstanceRepo playerinstance.Repository,
	teamInstanceRepo teaminstance.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *InstanceService {
	if logger == nil {
		logger = logging.Default()
	}

	return &InstanceService{
		playerRepo:         playerRepo,
		teamRepo:           teamRepo,
		playerInstanceRepo: playerInstanceRepo,
		teamInstanceRepo:   teamInstanceRepo,
		idGen:              idGen,
		logger:             logger,
		clock:              clockwork.NewRealClock(),
	}
}

// CreatePlayerInstance clones the skills of a player template.
func (s *InstanceService) CreatePlayerInstance(ctx context.Context, basePlayerID string) (playerinstance.PlayerInstance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.CreatePlayerInstance")
	defer span.End()

	basePlayerID, err := requireID("base player", basePlayerID)
	if err != nil {
		return playerinstance.PlayerInstance{}, err
	}

	base, exists, err := s.playerRepo.GetByID(ctx, basePlayerID)
	if err != nil {
		return playerinstance.PlayerInstance{}, fmt.Errorf("get base player: %w", err)
	}
	if !exists {
		return playerinstance.PlayerInstance{}, fmt.Errorf("%w: base player=%s", ErrReferential, basePlayerID)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return playerinstance.PlayerInstance{}, fmt.Errorf("generate player instance id: %w", err)
	}

	item := playerinstance.FromTemplate(id, base, s.clock.Now().UTC())
	if err := s.playerInstanceRepo.Create(ctx, item); err != nil {
		return playerinstance.PlayerInstance{}, fmt.Errorf("create player instance: %w", err)
	}

	s.logger.InfoContext(ctx, "player instance created", "player_instance_id", item.ID, "base_player_id", basePlayerID)
	return item, nil
}

func (s *InstanceService) GetPlayerInstance(ctx context.Context, instanceID string) (playerinstance.PlayerInstance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.GetPlayerInstance")
	defer span.End()

	instanceID, err := requireID("player instance", instanceID)
	if err != nil {
		return playerinstance.PlayerInstance{}, err
	}

	item, exists, err := s.playerInstanceRepo.GetByID(ctx, instanceID)
	if err != nil {
		return playerinstance.PlayerInstance{}, fmt.Errorf("get player instance: %w", err)
	}
	if !exists {
		return playerinstance.PlayerInstance{}, fmt.Errorf("%w: player instance=%s", ErrNotFound, instanceID)
	}
	return item, nil
}

func (s *InstanceService) ListPlayerInstances(ctx context.Context, basePlayerID string) ([]playerinstance.PlayerInstance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.ListPlayerInstances")
	defer span.End()

	basePlayerID, err := requireID("base player", basePlayerID)
	if err != nil {
		return nil, err
	}

	items, err := s.playerInstanceRepo.ListByBasePlayer(ctx, basePlayerID)
	if err != nil {
		return nil, fmt.Errorf("list player instances: %w", err)
	}
	return items, nil
}

func (s *InstanceService) UpdatePlayerSkills(ctx context.Context, instanceID string, input SkillsInput) (playerinstance.PlayerInstance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.UpdatePlayerSkills")
	defer span.End()

	if err := validateInput(ctx, input); err != nil {
		return playerinstance.PlayerInstance{}, err
	}

	item, err := s.GetPlayerInstance(ctx, instanceID)
	if err != nil {
		return playerinstance.PlayerInstance{}, err
	}
	item.Skills = player.Skills(input)
	item.UpdatedAt = s.clock.Now().UTC()
	if err := s.playerInstanceRepo.Update(ctx, item); err != nil {
		return playerinstance.PlayerInstance{}, fmt.Errorf("update player instance: %w", err)
	}

	s.logger.InfoContext(ctx, "player instance updated", "player_instance_id", item.ID)
	return item, nil
}

func (s *InstanceService) DeletePlayerInstance(ctx context.Context, instanceID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.DeletePlayerInstance")
	defer span.End()

	instanceID, err := requireID("player instance", instanceID)
	if err != nil {
		return err
	}
	if err := s.playerInstanceRepo.Delete(ctx, instanceID); err != nil {
		return fmt.Errorf("delete player instance: %w", err)
	}

	s.logger.InfoContext(ctx, "player instance deleted", "player_instance_id", instanceID)
	return nil
}

// CreateTeamInstance creates an empty instance of a team template with zeroed
// stats. InstantiateTeam also clones the players.
func (s *InstanceService) CreateTeamInstance(ctx context.Context, baseTeamID string) (teaminstance.TeamInstance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.CreateTeamInstance")
	defer span.End()

	baseTeamID, err := requireID("base team", baseTeamID)
	if err != nil {
		return teaminstance.TeamInstance{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return teaminstance.TeamInstance{}, fmt.Errorf("generate team instance id: %w", err)
	}

	now := s.clock.Now().UTC()
	item := teaminstance.TeamInstance{ID: id, BaseTeamID: baseTeamID, CreatedAt: now, UpdatedAt: now}
	if err := s.teamInstanceRepo.Create(ctx, item); err != nil {
		return teaminstance.TeamInstance{}, fmt.Errorf("create team instance: %w", err)
	}

	s.logger.InfoContext(ctx, "team instance created", "team_instance_id", item.ID, "base_team_id", baseTeamID)
	return item, nil
}

// InstantiateTeam clones a team template and every rostered player. The
// instance squad holds the clones of squad members who are also rostered.
func (s *InstanceService) InstantiateTeam(ctx context.Context, baseTeamID string) (teaminstance.TeamInstance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.InstantiateTeam")
	defer span.End()

	baseTeamID, err := requireID("base team", baseTeamID)
	if err != nil {
		return teaminstance.TeamInstance{}, err
	}

	_, exists, err := s.teamRepo.GetByID(ctx, baseTeamID)
	if err != nil {
		return teaminstance.TeamInstance{}, fmt.Errorf("get base team: %w", err)
	}
	if !exists {
		return teaminstance.TeamInstance{}, fmt.Errorf("%w: team=%s", ErrNotFound, baseTeamID)
	}

	roster, err := s.teamRepo.ListMembers(ctx, team.RelationRoster, baseTeamID)
	if err != nil {
		return teaminstance.TeamInstance{}, fmt.Errorf("list team roster: %w", err)
	}
	squad, err := s.teamRepo.ListMembers(ctx, team.RelationSquad, baseTeamID)
	if err != nil {
		return teaminstance.TeamInstance{}, fmt.Errorf("list team squad: %w", err)
	}

	now := s.clock.Now().UTC()
	instanceID, err := s.idGen.NewID()
	if err != nil {
		return teaminstance.TeamInstance{}, fmt.Errorf("generate team instance id: %w", err)
	}
	item := teaminstance.TeamInstance{ID: instanceID, BaseTeamID: baseTeamID, CreatedAt: now, UpdatedAt: now}

	cloneByPlayer := make(map[string]string, len(roster))
	clones := make([]playerinstance.PlayerInstance, 0, len(roster))
	for _, p := range roster {
		id, err := s.idGen.NewID()
		if err != nil {
			return teaminstance.TeamInstance{}, fmt.Errorf("generate player instance id: %w", err)
		}
		clones = append(clones, playerinstance.FromTemplate(id, p, now))
		cloneByPlayer[p.ID] = id
	}

	squadIDs := make([]string, 0, len(squad))
	for _, p := range squad {
		if id, ok := cloneByPlayer[p.ID]; ok {
			squadIDs = append(squadIDs, id)
		}
	}

	if err := s.teamInstanceRepo.CreateWithMembers(ctx, item, clones, squadIDs); err != nil {
		return teaminstance.TeamInstance{}, fmt.Errorf("create team instance with members: %w", err)
	}

	s.logger.InfoContext(ctx, "team instantiated",
		"team_instance_id", item.ID,
		"base_team_id", baseTeamID,
		"players", len(clones),
		"squad", len(squadIDs),
	)
	return item, nil
}

func (s *InstanceService) GetTeamInstance(ctx context.Context, instanceID string) (teaminstance.TeamInstance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.GetTeamInstance")
	defer span.End()

	instanceID, err := requireID("team instance", instanceID)
	if err != nil {
		return teaminstance.TeamInstance{}, err
	}

	item, exists, err := s.teamInstanceRepo.GetByID(ctx, instanceID)
	if err != nil {
		return teaminstance.TeamInstance{}, fmt.Errorf("get team instance: %w", err)
	}
	if !exists {
		return teaminstance.TeamInstance{}, fmt.Errorf("%w: team instance=%s", ErrNotFound, instanceID)
	}
	return item, nil
}

func (s *InstanceService) UpdateTeamStats(ctx context.Context, instanceID string, input StatsInput) (teaminstance.TeamInstance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.UpdateTeamStats")
	defer span.End()

	if err := validateInput(ctx, input); err != nil {
		return teaminstance.TeamInstance{}, err
	}

	item, err := s.GetTeamInstance(ctx, instanceID)
	if err != nil {
		return teaminstance.TeamInstance{}, err
	}
	item.Stats = teaminstance.Stats(input)
	item.UpdatedAt = s.clock.Now().UTC()
	if err := item.Validate(); err != nil {
		return teaminstance.TeamInstance{}, invalid(err)
	}
	if err := s.teamInstanceRepo.Update(ctx, item); err != nil {
		return teaminstance.TeamInstance{}, fmt.Errorf("update team instance: %w", err)
	}

	s.logger.InfoContext(ctx, "team instance stats updated", "team_instance_id", item.ID, "points", item.Stats.Points)
	return item, nil
}

func (s *InstanceService) DeleteTeamInstance(ctx context.Context, instanceID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.DeleteTeamInstance")
	defer span.End()

	instanceID, err := requireID("team instance", instanceID)
	if err != nil {
		return err
	}
	if err := s.teamInstanceRepo.Delete(ctx, instanceID); err != nil {
		return fmt.Errorf("delete team instance: %w", err)
	}

	s.logger.InfoContext(ctx, "team instance deleted", "team_instance_id", instanceID)
	return nil
}

func (s *InstanceService) AddTeamMember(ctx context.Context, rel team.Relation, instanceID, playerInstanceID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.AddTeamMember")
	defer span.End()

	rel, instanceID, playerInstanceID, err := memberArgs(rel, "team instance", instanceID, "player instance", playerInstanceID)
	if err != nil {
		return err
	}
	if err := s.teamInstanceRepo.AddMember(ctx, rel, instanceID, playerInstanceID); err != nil {
		return fmt.Errorf("add team instance %s member: %w", rel, err)
	}

	s.logger.InfoContext(ctx, "team instance member added",
		"team_instance_id", instanceID,
		"player_instance_id", playerInstanceID,
		"relation", string(rel),
	)
	return nil
}

func (s *InstanceService) RemoveTeamMember(ctx context.Context, rel team.Relation, instanceID, playerInstanceID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.RemoveTeamMember")
	defer span.End()

	rel, instanceID, playerInstanceID, err := memberArgs(rel, "team instance", instanceID, "player instance", playerInstanceID)
	if err != nil {
		return err
	}
	if err := s.teamInstanceRepo.RemoveMember(ctx, rel, instanceID, playerInstanceID); err != nil {
		return fmt.Errorf("remove team instance %s member: %w", rel, err)
	}

	s.logger.InfoContext(ctx, "team instance member removed",
		"team_instance_id", instanceID,
		"player_instance_id", playerInstanceID,
		"relation", string(rel),
	)
	return nil
}

func (s *InstanceService) ListTeamMembers(ctx context.Context, rel team.Relation, instanceID string) ([]playerinstance.PlayerInstance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InstanceService.ListTeamMembers")
	defer span.End()

	rel, err := parseRelation(rel)
	if err != nil {
		return nil, err
	}
	instanceID, err = requireID("team instance", instanceID)
	if err != nil {
		return nil, err
	}

	items, err := s.teamInstanceRepo.ListMembers(ctx, rel, instanceID)
	if err != nil {
		return nil, fmt.Errorf("list team instance %s members: %w", rel, err)
	}
	return items, nil
}
