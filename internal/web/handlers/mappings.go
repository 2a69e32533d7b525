package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/indic"
	"github.com/jusunglee/lipi/internal/transliteration"
	"golang.org/x/text/unicode/norm"
)

type MappingHandler struct {
	repo  db.Repository
	store *transliteration.Store
	log   *slog.Logger
}

func NewMappingHandler(repo db.Repository, store *transliteration.Store, log *slog.Logger) *MappingHandler {
	return &MappingHandler{repo: repo, store: store, log: log}
}

type mappingRequest struct {
	Token  string `json:"token"`
	Script string `json:"script"`
	Glyph  string `json:"glyph"`
}

type mappingResponse struct {
	Token     string `json:"token"`
	Script    string `json:"script"`
	Glyph     string `json:"glyph"`
	UpdatedAt string `json:"updated_at"`
}

func toMappingResponse(m db.Mapping) mappingResponse {
	return mappingResponse{
		Token:     m.Token,
		Script:    m.Script,
		Glyph:     m.Glyph,
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}

// List serves GET /api/v1/mappings.
func (h *MappingHandler) List(w http.ResponseWriter, r *http.Request) {
	mappings, err := h.repo.ListMappings(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing mappings", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	data := make([]mappingResponse, len(mappings))
	for i, m := range mappings {
		data[i] = toMappingResponse(m)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// Put serves PUT /api/v1/mappings and makes the change live.
func (h *MappingHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req mappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// tokens are matched against lowercased NFC input
	token := norm.NFC.String(strings.ToLower(strings.TrimSpace(req.Token)))
	if token == "" || req.Glyph == "" {
		writeError(w, http.StatusBadRequest, "token and glyph are required")
		return
	}
	if strings.ContainsAny(token, " \t\n") {
		writeError(w, http.StatusBadRequest, "token must not contain whitespace")
		return
	}
	script, ok := indic.ParseScript(req.Script)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown script")
		return
	}

	m, err := h.repo.UpsertMapping(r.Context(), db.UpsertMappingParams{
		Token:  token,
		Script: string(script),
		Glyph:  req.Glyph,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "saving mapping", "token", token, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.reload(r)

	h.log.InfoContext(r.Context(), "mapping saved", "token", token, "script", script)
	writeJSON(w, http.StatusOK, toMappingResponse(m))
}

// Delete serves DELETE /api/v1/mappings/{script}/{token}.
func (h *MappingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.DeleteMapping(r.Context(), db.DeleteMappingParams{
		Token:  norm.NFC.String(strings.ToLower(r.PathValue("token"))),
		Script: r.PathValue("script"),
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "deleting mapping", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if rows == 0 {
		writeError(w, http.StatusNotFound, "mapping not found")
		return
	}
	h.reload(r)

	w.WriteHeader(http.StatusNoContent)
}

func (h *MappingHandler) reload(r *http.Request) {
	if err := h.store.Reload(r.Context()); err != nil {
		h.log.ErrorContext(r.Context(), "reloading tables", "error", err)
	}
}
