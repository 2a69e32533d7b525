package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jusunglee/lipi/internal/db"
)

type HistoryHandler struct {
	repo db.Repository
	log  *slog.Logger
}

func NewHistoryHandler(repo db.Repository, log *slog.Logger) *HistoryHandler {
	return &HistoryHandler{repo: repo, log: log}
}

type lookupResponse struct {
	ID        int64  `json:"id"`
	Input     string `json:"input"`
	Ligatures bool   `json:"ligatures"`
	Source    string `json:"source"`
	Syllables int32  `json:"syllables"`
	Fallbacks int32  `json:"fallbacks"`
	CreatedAt string `json:"created_at"`
}

// List serves GET /api/v1/history?limit=
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 25
	}

	total, err := h.repo.CountLookups(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "counting lookups", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	lookups, err := h.repo.ListRecentLookups(r.Context(), int32(limit))
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing lookups", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	data := make([]lookupResponse, len(lookups))
	for i, l := range lookups {
		data[i] = lookupResponse{
			ID:        l.ID,
			Input:     l.Input,
			Ligatures: l.Ligatures,
			Source:    l.Source,
			Syllables: l.Syllables,
			Fallbacks: l.Fallbacks,
			CreatedAt: l.CreatedAt.Format(time.RFC3339),
		}
	}

	writeJSON(w, http.StatusOK, struct {
		Data  []lookupResponse `json:"data"`
		Limit int              `json:"limit"`
		Total int64            `json:"total"`
	}{data, limit, total})
}
