package server

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/board"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/claim"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/draft"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/telemetry"
)

type API struct {
	App *App
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// record drops an event into the telemetry repository. Telemetry is
// best-effort and never fails a request.
func (api *API) record(t telemetry.EventType, md telemetry.EventMetadata) {
	_ = api.App.Events.RecordEvent(t, md)
}

// RegisterAPIRoutes mounts the JSON API.
func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	api := &API{App: app}

	Handle(mux, rr, "GET /api/cards",
		"List the card catalog", "", api.handleCards)
	Handle(mux, rr, "GET /api/rules/{tier}",
		"Board composition and wild rules for a tier (?variant=true)", "", api.handleRules)
	Handle(mux, rr, "GET /api/labels/{seed}",
		"Full code->label map for a season seed", "", api.handleLabelMap)
	Handle(mux, rr, "POST /api/labels/{seed}/identify",
		"Translate player-typed labels to canonical codes",
		`{"labels":["a7","B03"]}`, api.handleIdentify)
	Handle(mux, rr, "POST /api/labels/{seed}/mask",
		"Translate canonical codes to display labels",
		`{"codes":["A07","B03"]}`, api.handleMask)
	Handle(mux, rr, "POST /api/boards/validate",
		"Validate a selection and placement for a tier",
		`{"tier":"beginner","selection":["A01"],"grid":[["A01","",...]]}`, api.handleValidateBoard)
	Handle(mux, rr, "POST /api/boards/generate",
		"Auto-build a board (drafts a selection when none is given)",
		`{"tier":"advanced","variant":true}`, api.handleGenerateBoard)
	Handle(mux, rr, "POST /api/claims/validate",
		"Check one run's claimed cells against the per-run rules",
		`{"labels":["A01","B05","C03"]}`, api.handleValidateClaim)
	Handle(mux, rr, "GET /ws/board",
		"Live placement feedback channel (websocket)", "", api.handleBoardSocket)
	Handle(mux, rr, "GET /api/stats",
		"Engine usage stats (?since=RFC3339, default last 24h)", "", api.handleStats)

	Handle(mux, rr, "GET /api/routes",
		"List registered routes", "", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, rr.List())
		})
}

func (api *API) handleCards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"cards":  api.App.Catalog.Defs(),
		"counts": api.App.Catalog.CountByType(),
	})
}

func (api *API) handleRules(w http.ResponseWriter, r *http.Request) {
	tier, err := card.NormalizeTier(r.PathValue("tier"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	variant := api.App.Cfg.Season.VariantW
	if q := r.URL.Query().Get("variant"); q != "" {
		variant = q == "true" || q == "1"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"tier":      tier,
		"variant":   variant,
		"counts":    board.RequiredCounts(tier, variant),
		"wild_mode": board.WildModeFor(tier, variant),
	})
}

func (api *API) handleLabelMap(w http.ResponseWriter, r *http.Request) {
	m := api.App.Labels.Get(r.PathValue("seed"))
	writeJSON(w, http.StatusOK, map[string]any{
		"seed":   m.Seed(),
		"labels": m.Labels(),
	})
}

type translateItem struct {
	Input  string `json:"input"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (api *API) handleIdentify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Labels []string `json:"labels"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	m := api.App.Labels.Get(r.PathValue("seed"))

	items := make([]translateItem, 0, len(req.Labels))
	for _, raw := range req.Labels {
		item := translateItem{Input: raw}
		code, err := m.Identity(card.NormalizeLabel(raw))
		if err != nil {
			item.Error = "unrecognized code"
		} else {
			item.Result = code
		}
		items = append(items, item)
	}
	api.record(telemetry.EventLabelsTranslated, telemetry.EventMetadata{"direction": "identify", "count": len(items)})
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (api *API) handleMask(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Codes []string `json:"codes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	m := api.App.Labels.Get(r.PathValue("seed"))

	items := make([]translateItem, 0, len(req.Codes))
	for _, raw := range req.Codes {
		item := translateItem{Input: raw}
		l, err := m.Label(card.NormalizeLabel(raw))
		if err != nil {
			item.Error = "unrecognized code"
		} else {
			item.Result = l
		}
		items = append(items, item)
	}
	api.record(telemetry.EventLabelsTranslated, telemetry.EventMetadata{"direction": "mask", "count": len(items)})
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

type validateBoardRequest struct {
	Tier      string     `json:"tier"`
	Variant   *bool      `json:"variant,omitempty"`
	Selection []string   `json:"selection"`
	Grid      [][]string `json:"grid"`
}

func (api *API) handleValidateBoard(w http.ResponseWriter, r *http.Request) {
	var req validateBoardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	tier, err := card.NormalizeTier(req.Tier)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	placement, ok := board.PlacementFromGrid(req.Grid)
	if !ok {
		writeErr(w, http.StatusBadRequest, "grid must be 5 rows of 5 cells")
		return
	}

	variant := api.App.variantOr(req.Variant)
	sel := board.Selection(req.Selection)
	selViolations := api.App.Validator.ValidateSelection(sel, board.RequiredCounts(tier, variant))
	plViolations := api.App.Validator.ValidatePlacement(placement, sel, board.WildModeFor(tier, variant))

	ready := len(selViolations) == 0 && len(plViolations) == 0
	api.record(telemetry.EventBoardValidated, telemetry.EventMetadata{"tier": string(tier), "ready": ready})
	writeJSON(w, http.StatusOK, map[string]any{
		"ready":                ready,
		"selection_violations": selViolations,
		"placement_violations": plViolations,
	})
}

type generateBoardRequest struct {
	Tier      string   `json:"tier"`
	Variant   *bool    `json:"variant,omitempty"`
	Selection []string `json:"selection,omitempty"`
	Seed      *int64   `json:"seed,omitempty"`
	DraftMode string   `json:"draft_mode,omitempty"`
}

func (api *API) handleGenerateBoard(w http.ResponseWriter, r *http.Request) {
	var req generateBoardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	tier, err := card.NormalizeTier(req.Tier)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	variant := api.App.variantOr(req.Variant)
	counts := board.RequiredCounts(tier, variant)
	mode := board.WildModeFor(tier, variant)

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	sel := board.Selection(req.Selection)
	if len(sel) == 0 {
		opts := draft.DefaultOptions()
		opts.Alpha = api.App.Cfg.Draft.Alpha
		if req.DraftMode != "" {
			opts.Mode = draft.Mode(req.DraftMode)
		} else if api.App.Cfg.Draft.Mode != "" {
			opts.Mode = draft.Mode(api.App.Cfg.Draft.Mode)
		}
		sel, err = api.App.Drafter.Draft(tier, counts, rng, opts)
		if err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
	} else if vs := api.App.Validator.ValidateSelection(sel, counts); len(vs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":                "selection does not match the tier quota",
			"selection_violations": vs,
		})
		return
	}

	placement, err := api.App.Generator.Generate(sel, mode, rng)
	if err != nil {
		if errors.Is(err, board.ErrGenerationFailed) {
			// Recoverable: the caller retries with a new seed.
			api.record(telemetry.EventGenerationFailed, telemetry.EventMetadata{"tier": string(tier)})
			writeErr(w, http.StatusConflict, err.Error())
			return
		}
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	api.record(telemetry.EventBoardGenerated, telemetry.EventMetadata{"tier": string(tier), "variant": variant})
	writeJSON(w, http.StatusOK, map[string]any{
		"tier":      tier,
		"variant":   variant,
		"seed":      seed,
		"selection": sel,
		"grid":      placement.Grid(),
	})
}

func (api *API) handleValidateClaim(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Labels []string `json:"labels"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}
	msgs := claim.Validate(req.Labels)
	api.record(telemetry.EventClaimChecked, telemetry.EventMetadata{"ok": len(msgs) == 0})
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       len(msgs) == 0,
		"labels":   claim.Normalize(req.Labels),
		"messages": msgs,
	})
}

func (api *API) handleStats(w http.ResponseWriter, r *http.Request) {
	since := time.Now().Add(-24 * time.Hour)
	if q := r.URL.Query().Get("since"); q != "" {
		t, err := time.Parse(time.RFC3339, q)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "since must be RFC3339")
			return
		}
		since = t
	}

	events, err := api.App.Events.GetEvents(since, nil)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	stats, err := telemetry.CalculateStats(events, since)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
