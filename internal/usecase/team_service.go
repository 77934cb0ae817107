package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	idgen "github.com/riskibarqy/football-manager/internal/platform/id"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

// TeamInput carries the writable attributes of a team template. Nil colors
// fall back to team.DefaultColor.
type TeamInput struct {
	Name   string `validate:"required,max=100"`
	Money  int
	Color1 *int `validate:"omitempty,gte=0"`
	Color2 *int `validate:"omitempty,gte=0"`
	Color3 *int `validate:"omitempty,gte=0"`
	Serie  int  `validate:"gte=0,lte=3"`
}

func colorOrDefault(v *int) int {
	if v == nil {
		return team.DefaultColor
	}
	return *v
}

type TeamService struct {
	teamRepo team.Repository
	idGen    idgen.Generator
	logger   *logging.Logger
	clock    clockwork.Clock
}

func NewTeamService(teamRepo team.Repository, idGen idgen.Generator, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		teamRepo: teamRepo,
		idGen:    idGen,
		logger:   logger,
		clock:    clockwork.NewRealClock(),
	}
}

func (s *TeamService) Create(ctx context.Context, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(ctx, input); err != nil {
		return team.Team{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := s.clock.Now().UTC()
	item := team.Team{
		ID:        id,
		Name:      input.Name,
		Money:     input.Money,
		Color1:    colorOrDefault(input.Color1),
		Color2:    colorOrDefault(input.Color2),
		Color3:    colorOrDefault(input.Color3),
		Serie:     team.Serie(input.Serie),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, invalid(err)
	}
	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", item.ID, "serie", item.Serie.String())
	return item, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	teamID, err := requireID("team", teamID)
	if err != nil {
		return team.Team{}, err
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return item, nil
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

// Update replaces every writable attribute. Nil colors keep the stored value.
func (s *TeamService) Update(ctx context.Context, teamID string, input TeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(ctx, input); err != nil {
		return team.Team{}, err
	}

	item, err := s.Get(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	item.Name = input.Name
	item.Money = input.Money
	item.Serie = team.Serie(input.Serie)
	if input.Color1 != nil {
		item.Color1 = *input.Color1
	}
	if input.Color2 != nil {
		item.Color2 = *input.Color2
	}
	if input.Color3 != nil {
		item.Color3 = *input.Color3
	}
	item.UpdatedAt = s.clock.Now().UTC()
	if err := item.Validate(); err != nil {
		return team.Team{}, invalid(err)
	}
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	s.logger.InfoContext(ctx, "team updated", "team_id", item.ID)
	return item, nil
}

func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	teamID, err := requireID("team", teamID)
	if err != nil {
		return err
	}
	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", teamID)
	return nil
}

func (s *TeamService) AddMember(ctx context.Context, rel team.Relation, teamID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AddMember")
	defer span.End()

	rel, teamID, playerID, err := memberArgs(rel, "team", teamID, "player", playerID)
	if err != nil {
		return err
	}
	if err := s.teamRepo.AddMember(ctx, rel, teamID, playerID); err != nil {
		return fmt.Errorf("add team %s member: %w", rel, err)
	}

	s.logger.InfoContext(ctx, "team member added", "team_id", teamID, "player_id", playerID, "relation", string(rel))
	return nil
}

func (s *TeamService) RemoveMember(ctx context.Context, rel team.Relation, teamID, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RemoveMember")
	defer span.End()

	rel, teamID, playerID, err := memberArgs(rel, "team", teamID, "player", playerID)
	if err != nil {
		return err
	}
	if err := s.teamRepo.RemoveMember(ctx, rel, teamID, playerID); err != nil {
		return fmt.Errorf("remove team %s member: %w", rel, err)
	}

	s.logger.InfoContext(ctx, "team member removed", "team_id", teamID, "player_id", playerID, "relation", string(rel))
	return nil
}

func (s *TeamService) ListMembers(ctx context.Context, rel team.Relation, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListMembers")
	defer span.End()

	rel, err := parseRelation(rel)
	if err != nil {
		return nil, err
	}
	if _, err := s.Get(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.teamRepo.ListMembers(ctx, rel, strings.TrimSpace(teamID))
	if err != nil {
		return nil, fmt.Errorf("list team %s members: %w", rel, err)
	}
	return items, nil
}

func memberArgs(rel team.Relation, ownerLabel, ownerID, memberLabel, memberID string) (team.Relation, string, string, error) {
	rel, err := parseRelation(rel)
	if err != nil {
		return "", "", "", err
	}
	ownerID, err = requireID(ownerLabel, ownerID)
	if err != nil {
		return "", "", "", err
	}
	memberID, err = requireID(memberLabel, memberID)
	if err != nil {
		return "", "", "", err
	}
	return rel, ownerID, memberID, nil
}
