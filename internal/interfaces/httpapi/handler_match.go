package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-manager/internal/usecase"
)

type matchRequest struct {
	TeamA string `json:"team_a"`
	TeamB string `json:"team_b"`
}

type matchResultRequest struct {
	GoalsA *int `json:"goals_a" validate:"required"`
	GoalsB *int `json:"goals_b" validate:"required"`
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Create(ctx, usecase.MatchInput(req))
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	item, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req matchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Update(ctx, matchID, usecase.MatchInput(req))
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordMatchResult")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req matchResultRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.RecordResult(ctx, matchID, usecase.ResultInput{GoalsA: *req.GoalsA, GoalsB: *req.GoalsB})
	if err != nil {
		h.logger.WarnContext(ctx, "record match result failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DescribeMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DescribeMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	summary, err := h.matchService.Describe(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "describe match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchSummaryDTO{ID: matchID, Summary: summary})
}

func (h *Handler) CreateRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRound")
	defer span.End()

	item, err := h.roundService.Create(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "create round failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, roundToDTO(item))
}

func (h *Handler) GetRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRound")
	defer span.End()

	roundID := r.PathValue("roundID")
	item, err := h.roundService.Get(ctx, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "get round failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundToDTO(item))
}

func (h *Handler) DeleteRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteRound")
	defer span.End()

	roundID := r.PathValue("roundID")
	if err := h.roundService.Delete(ctx, roundID); err != nil {
		h.logger.WarnContext(ctx, "delete round failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(ctx, w)
}

func (h *Handler) ListRoundMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoundMatches")
	defer span.End()

	roundID := r.PathValue("roundID")
	items, err := h.roundService.ListMatches(ctx, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "list round matches failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) AddRoundMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddRoundMatch")
	defer span.End()

	roundID := r.PathValue("roundID")
	matchID := r.PathValue("matchID")
	item, err := h.roundService.AddMatch(ctx, roundID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "add round match failed", "round_id", roundID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundToDTO(item))
}

func (h *Handler) RemoveRoundMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveRoundMatch")
	defer span.End()

	roundID := r.PathValue("roundID")
	matchID := r.PathValue("matchID")
	item, err := h.roundService.RemoveMatch(ctx, roundID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "remove round match failed", "round_id", roundID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundToDTO(item))
}
