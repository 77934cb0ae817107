package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-manager/internal/usecase"
)

type seasonRequest struct {
	Year         int    `json:"year" validate:"required"`
	CurrentRound string `json:"current_round"`
	MyTeam       string `json:"my_team"`
}

type setupSeasonRequest struct {
	Year     int      `json:"year" validate:"required"`
	TeamIDs  []string `json:"team_ids"`
	MyTeamID string   `json:"my_team_id"`
}

type completeSeasonRequest struct {
	WinnerID string `json:"winner_id" validate:"required"`
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	var req seasonRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.Create(ctx, usecase.SeasonInput(req))
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "year", req.Year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(item))
}

// SetupSeason clones the named team templates and opens a season over them.
func (h *Handler) SetupSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetupSeason")
	defer span.End()

	var req setupSeasonRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	setup, err := h.seasonService.Setup(ctx, usecase.SetupSeasonInput(req))
	if err != nil {
		h.logger.WarnContext(ctx, "setup season failed", "year", req.Year, "teams", len(req.TeamIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonSetupDTO{
		Season: seasonToDTO(setup.Season),
		Teams:  teamInstancesToDTO(setup.Teams),
	})
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	item, err := h.seasonService.Get(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	var req seasonRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.Update(ctx, seasonID, usecase.SeasonInput(req))
	if err != nil {
		h.logger.WarnContext(ctx, "update season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	if err := h.seasonService.Delete(ctx, seasonID); err != nil {
		h.logger.WarnContext(ctx, "delete season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) ListSeasonTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonTeams")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	items, err := h.seasonService.ListTeams(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list season teams failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamInstancesToDTO(items))
}

func (h *Handler) AddSeasonTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddSeasonTeam")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	instanceID := r.PathValue("instanceID")
	if err := h.seasonService.AddTeam(ctx, seasonID, instanceID); err != nil {
		h.logger.WarnContext(ctx, "add season team failed", "season_id", seasonID, "team_instance_id", instanceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) RemoveSeasonTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveSeasonTeam")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	instanceID := r.PathValue("instanceID")
	if err := h.seasonService.RemoveTeam(ctx, seasonID, instanceID); err != nil {
		h.logger.WarnContext(ctx, "remove season team failed", "season_id", seasonID, "team_instance_id", instanceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) CompleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteSeason")
	defer span.End()

	seasonID := r.PathValue("seasonID")
	var req completeSeasonRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.seasonService.Complete(ctx, seasonID, req.WinnerID)
	if err != nil {
		h.logger.WarnContext(ctx, "complete season failed", "season_id", seasonID, "winner_id", req.WinnerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}
