// Package draft composes board selections: which 25 cards a board will
// carry, before the placement engine decides where they sit. Auto-built
// boards draft here; manually assembled boards skip this package entirely.
package draft

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/board"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
)

// Mode selects the drafting strategy.
type Mode string

const (
	// ModeWeighted favors easier cards with weight exp(-alpha * stars).
	ModeWeighted Mode = "weighted"
	// ModeRandom samples uniformly.
	ModeRandom Mode = "random"
	// ModeEasiest deterministically takes the lowest-star cards.
	ModeEasiest Mode = "easiest"
)

// Options tune a draft.
type Options struct {
	Mode Mode
	// Alpha is the difficulty penalty for ModeWeighted; higher values
	// push harder toward one-star cards.
	Alpha float64
	// MinStarSum, when positive, re-drafts until the selection's total
	// star count reaches it, up to MaxAttempts.
	MinStarSum  int
	MaxAttempts int
}

// DefaultOptions mirror the season defaults: weighted draft, alpha 0.9.
func DefaultOptions() Options {
	return Options{Mode: ModeWeighted, Alpha: 0.9, MaxAttempts: 200}
}

// Tuned per season against the reference deck: beginners see the longest
// cards less often, intermediates slightly avoid the 6-runs-a-week wild.
var downWeights = map[card.Tier]map[string]float64{
	card.Beginner:     {"A03": 0.55, "A05": 0.55, "D02": 0.55, "W04": 0.55},
	card.Intermediate: {"W04": 0.80},
}

// Drafter drafts selections from a catalog.
type Drafter struct {
	cat *card.Catalog
}

// NewDrafter creates a drafter over a catalog.
func NewDrafter(cat *card.Catalog) *Drafter {
	return &Drafter{cat: cat}
}

// Draft picks a selection matching the per-type counts for a tier.
func (d *Drafter) Draft(tier card.Tier, counts board.Counts, rng *rand.Rand, opts Options) (board.Selection, error) {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}

	var sel board.Selection
	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		var err error
		sel, err = d.draftOnce(tier, counts, rng, opts)
		if err != nil {
			return nil, err
		}
		if opts.MinStarSum <= 0 || d.starSum(sel) >= opts.MinStarSum {
			return sel, nil
		}
	}
	// Attempts exhausted: keep the last draft rather than fail, matching
	// the original tool's behavior.
	return sel, nil
}

func (d *Drafter) draftOnce(tier card.Tier, counts board.Counts, rng *rand.Rand, opts Options) (board.Selection, error) {
	var sel board.Selection
	for _, t := range card.Types {
		n := counts[t]
		if n == 0 {
			continue
		}
		pool := d.cat.CodesByType(t)
		if n > len(pool) {
			return nil, fmt.Errorf("tier %s needs %d cards of type %s, catalog has %d", tier, n, t, len(pool))
		}

		var pick []string
		switch opts.Mode {
		case ModeRandom:
			rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
			pick = pool[:n]
		case ModeEasiest:
			pick = d.easiest(pool, n)
		default:
			pick = d.weightedSample(tier, pool, n, rng, opts.Alpha)
		}
		sel = append(sel, pick...)
	}
	return sel, nil
}

// easiest takes the n lowest-star codes, ties broken by code. The pool
// arrives sorted by code, so a stable selection sort over stars suffices.
func (d *Drafter) easiest(pool []string, n int) []string {
	ranked := append([]string{}, pool...)
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < len(ranked); j++ {
			si, _ := d.cat.Get(ranked[best])
			sj, _ := d.cat.Get(ranked[j])
			if sj.Stars < si.Stars || (sj.Stars == si.Stars && ranked[j] < ranked[best]) {
				best = j
			}
		}
		ranked[i], ranked[best] = ranked[best], ranked[i]
	}
	return ranked[:n]
}

// weightedSample draws n codes without replacement with probability
// proportional to exp(-alpha * stars), after per-tier down-weights.
func (d *Drafter) weightedSample(tier card.Tier, pool []string, n int, rng *rand.Rand, alpha float64) []string {
	codes := append([]string{}, pool...)
	weights := make([]float64, len(codes))
	for i, code := range codes {
		def, _ := d.cat.Get(code)
		w := math.Exp(-alpha * float64(def.Stars))
		if f, ok := downWeights[tier][code]; ok {
			w *= f
		}
		weights[i] = w
	}

	picked := make([]string, 0, n)
	for len(picked) < n {
		total := 0.0
		for _, w := range weights {
			total += w
		}

		idx := len(codes) - 1
		if total > 0 {
			roll := rng.Float64() * total
			acc := 0.0
			for i, w := range weights {
				acc += w
				if roll < acc {
					idx = i
					break
				}
			}
		} else {
			idx = rng.Intn(len(codes))
		}

		picked = append(picked, codes[idx])
		codes = append(codes[:idx], codes[idx+1:]...)
		weights = append(weights[:idx], weights[idx+1:]...)
	}
	return picked
}

func (d *Drafter) starSum(sel board.Selection) int {
	sum := 0
	for _, code := range sel {
		def, _ := d.cat.Get(code)
		sum += def.Stars
	}
	return sum
}
