package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-manager/internal/domain/teaminstance"
	"github.com/riskibarqy/football-manager/internal/usecase"
)

type createPlayerInstanceRequest struct {
	BasePlayerID string `json:"base_player_id" validate:"required"`
}

type createTeamInstanceRequest struct {
	BaseTeamID  string `json:"base_team_id" validate:"required"`
	WithPlayers bool   `json:"with_players"`
}

type skillsRequest struct {
	Kick     int `json:"kick"`
	Dribble  int `json:"dribble"`
	Strength int `json:"strength"`
	Brave    int `json:"brave"`
	Luck     int `json:"luck"`
	Health   int `json:"health"`
}

type statsRequest struct {
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Loses        int `json:"loses"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
	Points       int `json:"points"`
}

func (h *Handler) CreatePlayerInstance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayerInstance")
	defer span.End()

	var req createPlayerInstanceRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.instanceService.CreatePlayerInstance(ctx, req.BasePlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "create player instance failed", "base_player_id", req.BasePlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerInstanceToDTO(item))
}

// ListPlayerInstances requires the base_player_id query parameter.
func (h *Handler) ListPlayerInstances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerInstances")
	defer span.End()

	basePlayerID := r.URL.Query().Get("base_player_id")
	items, err := h.instanceService.ListPlayerInstances(ctx, basePlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player instances failed", "base_player_id", basePlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerInstancesToDTO(items))
}

func (h *Handler) GetPlayerInstance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerInstance")
	defer span.End()

	instanceID := r.PathValue("instanceID")
	item, err := h.instanceService.GetPlayerInstance(ctx, instanceID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player instance failed", "player_instance_id", instanceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerInstanceToDTO(item))
}

func (h *Handler) UpdatePlayerSkills(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayerSkills")
	defer span.End()

	instanceID := r.PathValue("instanceID")
	var req skillsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.instanceService.UpdatePlayerSkills(ctx, instanceID, usecase.SkillsInput(req))
	if err != nil {
		h.logger.WarnContext(ctx, "update player skills failed", "player_instance_id", instanceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerInstanceToDTO(item))
}

func (h *Handler) DeletePlayerInstance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayerInstance")
	defer span.End()

	instanceID := r.PathValue("instanceID")
	if err := h.instanceService.DeletePlayerInstance(ctx, instanceID); err != nil {
		h.logger.WarnContext(ctx, "delete player instance failed", "player_instance_id", instanceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

// CreateTeamInstance clones only the team record unless with_players is set,
// in which case the roster and squad are cloned too.
func (h *Handler) CreateTeamInstance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeamInstance")
	defer span.End()

	var req createTeamInstanceRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	var (
		item teaminstance.TeamInstance
		err  error
	)
	if req.WithPlayers {
		item, err = h.instanceService.InstantiateTeam(ctx, req.BaseTeamID)
	} else {
		item, err = h.instanceService.CreateTeamInstance(ctx, req.BaseTeamID)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "create team instance failed", "base_team_id", req.BaseTeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamInstanceToDTO(item))
}

func (h *Handler) GetTeamInstance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamInstance")
	defer span.End()

	instanceID := r.PathValue("instanceID")
	item, err := h.instanceService.GetTeamInstance(ctx, instanceID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team instance failed", "team_instance_id", instanceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamInstanceToDTO(item))
}

func (h *Handler) UpdateTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeamStats")
	defer span.End()

	instanceID := r.PathValue("instanceID")
	var req statsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.instanceService.UpdateTeamStats(ctx, instanceID, usecase.StatsInput(req))
	if err != nil {
		h.logger.WarnContext(ctx, "update team stats failed", "team_instance_id", instanceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamInstanceToDTO(item))
}

func (h *Handler) DeleteTeamInstance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeamInstance")
	defer span.End()

	instanceID := r.PathValue("instanceID")
	if err := h.instanceService.DeleteTeamInstance(ctx, instanceID); err != nil {
		h.logger.WarnContext(ctx, "delete team instance failed", "team_instance_id", instanceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) ListTeamInstanceMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamInstanceMembers")
	defer span.End()

	instanceID := r.PathValue("instanceID")
	items, err := h.instanceService.ListTeamMembers(ctx, relationFromPath(r), instanceID)
	if err != nil {
		h.logger.WarnContext(ctx, "list team instance members failed", "team_instance_id", instanceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerInstancesToDTO(items))
}

func (h *Handler) AddTeamInstanceMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddTeamInstanceMember")
	defer span.End()

	instanceID := r.PathValue("instanceID")
	memberID := r.PathValue("playerInstanceID")
	if err := h.instanceService.AddTeamMember(ctx, relationFromPath(r), instanceID, memberID); err != nil {
		h.logger.WarnContext(ctx, "add team instance member failed", "team_instance_id", instanceID, "player_instance_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) RemoveTeamInstanceMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveTeamInstanceMember")
	defer span.End()

	instanceID := r.PathValue("instanceID")
	memberID := r.PathValue("playerInstanceID")
	if err := h.instanceService.RemoveTeamMember(ctx, relationFromPath(r), instanceID, memberID); err != nil {
		h.logger.WarnContext(ctx, "remove team instance member failed", "team_instance_id", instanceID, "player_instance_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}
