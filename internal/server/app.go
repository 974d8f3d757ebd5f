package server

import (
	"github.com/kimyoungjin06/MRC-running-bingo/internal/board"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/config"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/draft"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/label"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/telemetry"
)

// App holds everything the handlers depend on. The engine pieces are all
// read-only after construction, so one App serves concurrent requests.
type App struct {
	Cfg       config.Config
	Catalog   *card.Catalog
	Labels    *label.Cache
	Validator *board.Validator
	Generator *board.Generator
	Drafter   *draft.Drafter
	Events    telemetry.Repository
}

// NewApp wires the engine for a catalog and config.
func NewApp(cfg config.Config, cat *card.Catalog) *App {
	gen := board.NewGenerator(cat)
	gen.SetTrials(cfg.Generator.PlacementTrials)
	return &App{
		Cfg:       cfg,
		Catalog:   cat,
		Labels:    label.NewCache(cat),
		Validator: board.NewValidator(cat),
		Generator: gen,
		Drafter:   draft.NewDrafter(cat),
		Events:    telemetry.NewMemoryRepository(),
	}
}

// variantOr resolves an optional request flag against the season default.
func (a *App) variantOr(v *bool) bool {
	if v == nil {
		return a.Cfg.Season.VariantW
	}
	return *v
}
