package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/riskibarqy/football-manager/internal/usecase"
)

type Handler struct {
	playerService   *usecase.PlayerService
	teamService     *usecase.TeamService
	instanceService *usecase.InstanceService
	matchService    *usecase.MatchService
	roundService    *usecase.RoundService
	seasonService   *usecase.SeasonService
	managerService  *usecase.ManagerService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	instanceService *usecase.InstanceService,
	matchService *usecase.MatchService,
	roundService *usecase.RoundService,
	seasonService *usecase.SeasonService,
	managerService *usecase.ManagerService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:   playerService,
		teamService:     teamService,
		instanceService: instanceService,
		matchService:    matchService,
		roundService:    roundService,
		seasonService:   seasonService,
		managerService:  managerService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListEnums exposes the position, serie and formation code tables.
func (h *Handler) ListEnums(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEnums")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, enumsToDTO())
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into dst and validates it.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

// relationFromPath maps the URL segment to a membership relation. "roster"
// is accepted as an alias of the stored "player" relation name.
func relationFromPath(r *http.Request) team.Relation {
	raw := strings.ToLower(strings.TrimSpace(r.PathValue("relation")))
	if raw == "roster" {
		return team.RelationRoster
	}
	return team.Relation(raw)
}
