package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/history"
	"github.com/jusunglee/lipi/internal/indic"
	"github.com/jusunglee/lipi/internal/metrics"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/samber/lo"
)

// MaxInputRunes bounds the text accepted by one request.
const MaxInputRunes = 2000

type TransliterateHandler struct {
	store    *transliteration.Store
	recorder *history.Recorder
	log      *slog.Logger
}

func NewTransliterateHandler(store *transliteration.Store, recorder *history.Recorder, log *slog.Logger) *TransliterateHandler {
	return &TransliterateHandler{store: store, recorder: recorder, log: log}
}

type transliterateRequest struct {
	Text      string   `json:"text"`
	Ligatures *bool    `json:"ligatures,omitempty"`
	Variant   string   `json:"variant,omitempty"`
	Scripts   []string `json:"scripts,omitempty"`
}

// Get serves GET /api/v1/transliterate?text=&ligatures=&variant=&scripts=
func (h *TransliterateHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.serve(w, r, transliterateRequest{
		Text:      q.Get("text"),
		Ligatures: lo.ToPtr(queryBool(r, "ligatures", true)),
		Variant:   q.Get("variant"),
		Scripts:   lo.Compact(strings.Split(q.Get("scripts"), ",")),
	})
}

// Post serves POST /api/v1/transliterate with a JSON body.
func (h *TransliterateHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req transliterateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	h.serve(w, r, req)
}

func (h *TransliterateHandler) serve(w http.ResponseWriter, r *http.Request, req transliterateRequest) {
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if utf8.RuneCountInString(req.Text) > MaxInputRunes {
		writeError(w, http.StatusRequestEntityTooLarge, "text is too long")
		return
	}

	scripts, err := transliteration.ParseScripts(strings.Join(req.Scripts, ","))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	variant, err := transliteration.ParseVariant(req.Variant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.store.Get().Transliterate(req.Text, transliteration.Options{
		Ligatures: lo.FromPtrOr(req.Ligatures, true),
		Scripts:   scripts,
		Variant:   variant,
	})
	metrics.ObserveResult(db.SourceWeb, res)
	h.recorder.Record(r.Context(), db.SourceWeb, res)

	writeJSON(w, http.StatusOK, res)
}

type scriptResponse struct {
	Name     indic.Script `json:"name"`
	Variants []string     `json:"variants,omitempty"`
}

// Scripts serves GET /api/v1/scripts.
func (h *TransliterateHandler) Scripts(w http.ResponseWriter, r *http.Request) {
	data := lo.Map(h.store.Get().Scripts(), func(s indic.Script, _ int) scriptResponse {
		return scriptResponse{
			Name: s,
			Variants: lo.Map(indic.Variants[s], func(v indic.Variant, _ int) string {
				return v.Name
			}),
		}
	})
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}
