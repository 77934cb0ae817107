package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-manager/internal/usecase"
)

type managerRequest struct {
	Nickname    string `json:"nickname"`
	TotalPoints int    `json:"total_points"`
}

type startSeasonRequest struct {
	SeasonID string `json:"season_id" validate:"required"`
}

type addPointsRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) CreateManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateManager")
	defer span.End()

	var req managerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.managerService.Create(ctx, usecase.ManagerInput(req))
	if err != nil {
		h.logger.WarnContext(ctx, "create manager failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, managerToDTO(item))
}

func (h *Handler) ListManagers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListManagers")
	defer span.End()

	items, err := h.managerService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list managers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, managersToDTO(items))
}

func (h *Handler) GetManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManager")
	defer span.End()

	managerID := r.PathValue("managerID")
	item, err := h.managerService.Get(ctx, managerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get manager failed", "manager_id", managerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, managerToDTO(item))
}

func (h *Handler) UpdateManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateManager")
	defer span.End()

	managerID := r.PathValue("managerID")
	var req managerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.managerService.Update(ctx, managerID, usecase.ManagerInput(req))
	if err != nil {
		h.logger.WarnContext(ctx, "update manager failed", "manager_id", managerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, managerToDTO(item))
}

func (h *Handler) DeleteManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteManager")
	defer span.End()

	managerID := r.PathValue("managerID")
	if err := h.managerService.Delete(ctx, managerID); err != nil {
		h.logger.WarnContext(ctx, "delete manager failed", "manager_id", managerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) StartManagerSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartManagerSeason")
	defer span.End()

	managerID := r.PathValue("managerID")
	var req startSeasonRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.managerService.StartSeason(ctx, managerID, req.SeasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "start manager season failed", "manager_id", managerID, "season_id", req.SeasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, managerToDTO(item))
}

func (h *Handler) AddManagerPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddManagerPoints")
	defer span.End()

	managerID := r.PathValue("managerID")
	var req addPointsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.managerService.AddPoints(ctx, managerID, req.Delta)
	if err != nil {
		h.logger.WarnContext(ctx, "add manager points failed", "manager_id", managerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, managerToDTO(item))
}

func (h *Handler) ListManagerSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListManagerSeasons")
	defer span.End()

	managerID := r.PathValue("managerID")
	items, err := h.managerService.ListSeasons(ctx, managerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list manager seasons failed", "manager_id", managerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonsToDTO(items))
}
