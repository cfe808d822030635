package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appmatch "cricket-live/internal/app/match"
	"cricket-live/internal/livegateway"

	"github.com/go-chi/chi/v5"
)

type MatchHandlers struct {
	matchSvc *appmatch.Service
	hub      *livegateway.Hub
}

func NewMatchHandlers(matchSvc *appmatch.Service, hub *livegateway.Hub) *MatchHandlers {
	return &MatchHandlers{matchSvc: matchSvc, hub: hub}
}

func (h *MatchHandlers) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appmatch.CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.matchSvc.Create(r.Context(), req)
		if err != nil {
			writeMatchError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *MatchHandlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.matchSvc.List(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *MatchHandlers) Detail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.matchSvc.Detail(r.Context(), chi.URLParam(r, "match_id"))
		if err != nil {
			writeMatchError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *MatchHandlers) Verify() http.HandlerFunc {
	type verifyRequest struct {
		Passcode string `json:"passcode"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req verifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.matchSvc.VerifyPasscode(r.Context(), chi.URLParam(r, "match_id"), req.Passcode)
		if err != nil {
			writeMatchError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *MatchHandlers) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "match_id")
		code := r.Header.Get("X-Scorer-Passcode")
		if err := h.matchSvc.Delete(r.Context(), matchID, code); err != nil {
			writeMatchError(w, err)
			return
		}
		h.hub.Drop(matchID)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}

func writeMatchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appmatch.ErrValidation):
		WriteHTTPError(w, http.StatusBadRequest, "validation_failed")
	case errors.Is(err, appmatch.ErrNotFound):
		WriteHTTPError(w, http.StatusNotFound, "match_not_found")
	case errors.Is(err, appmatch.ErrInvalidPasscode):
		WriteHTTPError(w, http.StatusUnauthorized, "invalid_passcode")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
