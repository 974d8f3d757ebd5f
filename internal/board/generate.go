package board

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
)

// ErrGenerationFailed means the bounded random search ran out of attempts
// without finding a legal layout. It is recoverable: the caller can retry
// with fresh randomness or fall back to manual placement.
var ErrGenerationFailed = errors.New("board generation failed")

// DefaultPlacementTrials caps the co-op placement retry loop.
const DefaultPlacementTrials = 200

// Generator produces a random placement that satisfies the board rules for
// a selection. Stages run most-constrained-first: wilds on their mandated
// cells, marathon cards off the corners, co-op cards with the bounded
// no-adjacency retry, then everything else fills the gaps.
//
// The retry-whole-trial strategy (rather than constraint-propagation
// backtracking) is intentional: with 25 cells and a handful of co-op cards
// the search space is tiny and dead ends are rare.
type Generator struct {
	cat    *card.Catalog
	val    *Validator
	trials int
}

// NewGenerator creates a generator with the default trial cap.
func NewGenerator(cat *card.Catalog) *Generator {
	return &Generator{cat: cat, val: NewValidator(cat), trials: DefaultPlacementTrials}
}

// SetTrials overrides the co-op placement trial cap. Values below 1 are
// ignored.
func (g *Generator) SetTrials(n int) {
	if n >= 1 {
		g.trials = n
	}
}

// Generate lays out a full board for the selection under the wild mode.
// The same selection can yield many layouts; randomness comes only from rng.
func (g *Generator) Generate(sel Selection, mode WildMode, rng *rand.Rand) (Placement, error) {
	var p Placement

	byType, err := g.partition(sel)
	if err != nil {
		return p, err
	}
	if got := len(byType[card.Wild]); got != mode.Count {
		return p, fmt.Errorf("selection holds %d wild cards, wild mode %s needs %d", got, mode.Kind, mode.Count)
	}

	empty := g.placeWilds(&p, byType[card.Wild], mode, rng)

	empty, err = g.placeMarathon(&p, byType[card.Marathon], empty, rng)
	if err != nil {
		return p, err
	}

	p, empty, err = g.placeCoop(p, byType[card.Coop], empty, rng)
	if err != nil {
		return p, err
	}

	rest := append(append([]string{}, byType[card.Base]...), byType[card.Condition]...)
	if len(rest) != len(empty) {
		return p, fmt.Errorf("selection leaves %d cards for %d open slots", len(rest), len(empty))
	}
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	for i, slot := range empty {
		p[slot] = rest[i]
	}

	// A generated board must always validate clean; anything else is a
	// defect in this generator, not a recoverable failure.
	if vs := g.val.ValidatePlacement(p, sel, mode); len(vs) > 0 {
		return p, fmt.Errorf("generated board violates its own rules: %s", vs[0].Message)
	}
	return p, nil
}

func (g *Generator) partition(sel Selection) (map[card.Type][]string, error) {
	byType := make(map[card.Type][]string)
	for _, code := range sel {
		def, ok := g.cat.Get(code)
		if !ok {
			return nil, fmt.Errorf("unrecognized card code in selection: %s", code)
		}
		byType[def.Type] = append(byType[def.Type], code)
	}
	for t := range byType {
		sort.Strings(byType[t])
	}
	return byType, nil
}

// placeWilds puts the cheapest wild on the center and the rest (sorted) on
// the mode's corner cells. Returns the remaining empty slots in ascending
// order.
func (g *Generator) placeWilds(p *Placement, wilds []string, mode WildMode, rng *rand.Rand) []int {
	center := wilds[0]
	for _, code := range wilds[1:] {
		if d, _ := g.cat.Get(code); d.Stars < mustStars(g.cat, center) || (d.Stars == mustStars(g.cat, center) && code < center) {
			center = code
		}
	}
	p[CenterSlot] = center

	var rest []string
	for _, code := range wilds {
		if code != center {
			rest = append(rest, code)
		}
	}

	switch mode.Kind {
	case WildCenterCorner:
		slot := Corners[rng.Intn(len(Corners))]
		p[slot] = rest[0]
	case WildCenterDiagonal:
		pair := DiagonalPairs[rng.Intn(len(DiagonalPairs))]
		p[pair[0]] = rest[0]
		p[pair[1]] = rest[1]
	}

	var empty []int
	for slot := 0; slot < Slots; slot++ {
		if p[slot] == "" {
			empty = append(empty, slot)
		}
	}
	return empty
}

func mustStars(cat *card.Catalog, code string) int {
	d, _ := cat.Get(code)
	return d.Stars
}

// placeMarathon assigns D cards to shuffled non-corner empty slots.
func (g *Generator) placeMarathon(p *Placement, codes []string, empty []int, rng *rand.Rand) ([]int, error) {
	var candidates []int
	for _, slot := range empty {
		if !IsCorner(slot) {
			candidates = append(candidates, slot)
		}
	}
	if len(codes) > len(candidates) {
		return nil, fmt.Errorf("%w: %d marathon cards for %d legal slots", ErrGenerationFailed, len(codes), len(candidates))
	}
	rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	used := make(map[int]bool, len(codes))
	for i, code := range codes {
		p[candidates[i]] = code
		used[candidates[i]] = true
	}

	var rest []int
	for _, slot := range empty {
		if !used[slot] {
			rest = append(rest, slot)
		}
	}
	return rest, nil
}

// placeCoop runs bounded independent trials. Within a trial each C card
// picks uniformly among the empty slots that touch no already-placed C card;
// a dead end abandons the whole trial and restarts from the board as it
// stood before any C card was placed.
func (g *Generator) placeCoop(base Placement, codes []string, empty []int, rng *rand.Rand) (Placement, []int, error) {
	if len(codes) == 0 {
		return base, empty, nil
	}

	for trial := 0; trial < g.trials; trial++ {
		p := base
		open := append([]int{}, empty...)
		var placed []int
		ok := true

		for _, code := range codes {
			var legal []int
			for _, slot := range open {
				if !touchesAny(slot, placed) {
					legal = append(legal, slot)
				}
			}
			if len(legal) == 0 {
				ok = false
				break
			}
			slot := legal[rng.Intn(len(legal))]
			p[slot] = code
			placed = append(placed, slot)
			open = removeSlot(open, slot)
		}
		if ok {
			return p, open, nil
		}
	}
	return base, nil, fmt.Errorf("%w: no co-op layout found in %d trials", ErrGenerationFailed, g.trials)
}

func touchesAny(slot int, placed []int) bool {
	for _, n := range AdjacentSlots(slot) {
		for _, q := range placed {
			if n == q {
				return true
			}
		}
	}
	return false
}

func removeSlot(slots []int, slot int) []int {
	for i, s := range slots {
		if s == slot {
			return append(slots[:i], slots[i+1:]...)
		}
	}
	return slots
}
