package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appscore "cricket-live/internal/app/score"

	"github.com/go-chi/chi/v5"
)

type ScoreHandlers struct {
	scoreSvc *appscore.Service
}

func NewScoreHandlers(scoreSvc *appscore.Service) *ScoreHandlers {
	return &ScoreHandlers{scoreSvc: scoreSvc}
}

// Score is the single scorer endpoint: {"action": ..., "data": {...}}.
func (h *ScoreHandlers) Score() http.HandlerFunc {
	type scoreRequest struct {
		Action string          `json:"action"`
		Data   json.RawMessage `json:"data"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		cmd, err := appscore.DecodeCommand(req.Action, req.Data)
		if err != nil {
			writeScoreError(w, err)
			return
		}
		resp, err := h.scoreSvc.Execute(r.Context(), chi.URLParam(r, "match_id"), cmd)
		if err != nil {
			writeScoreError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func writeScoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appscore.ErrUnknownAction):
		WriteHTTPError(w, http.StatusBadRequest, "unknown_action")
	case errors.Is(err, appscore.ErrValidation):
		WriteHTTPError(w, http.StatusBadRequest, "validation_failed")
	case errors.Is(err, appscore.ErrMissingParticipants):
		WriteHTTPError(w, http.StatusConflict, "missing_participants")
	case errors.Is(err, appscore.ErrNothingToUndo):
		WriteHTTPError(w, http.StatusBadRequest, "nothing_to_undo")
	case errors.Is(err, appscore.ErrIllegalTransition):
		WriteHTTPError(w, http.StatusConflict, "illegal_transition")
	case errors.Is(err, appscore.ErrNoActiveInnings):
		WriteHTTPError(w, http.StatusConflict, "no_active_innings")
	case errors.Is(err, appscore.ErrNotFound):
		WriteHTTPError(w, http.StatusNotFound, "match_not_found")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
