package board

import (
	"fmt"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
)

// Validator checks selections and placements against the board rules. It
// never mutates its input and never stops at the first problem: callers get
// the complete list of violations so the UI can flag every bad cell at once.
type Validator struct {
	cat *card.Catalog
}

// NewValidator creates a validator over a catalog.
func NewValidator(cat *card.Catalog) *Validator {
	return &Validator{cat: cat}
}

// ValidateSelection checks a drafted card set against a per-type quota.
func (v *Validator) ValidateSelection(sel Selection, required Counts) []Violation {
	var out []Violation

	actual := make(Counts)
	seen := make(map[string]bool, len(sel))
	for _, code := range sel {
		if seen[code] {
			out = append(out, duplicateCard(-1, code))
			continue
		}
		seen[code] = true
		def, ok := v.cat.Get(code)
		if !ok {
			out = append(out, unknownCard(-1, code))
			continue
		}
		actual[def.Type]++
	}

	for _, t := range card.Types {
		if actual[t] != required[t] {
			out = append(out, countMismatch(t, required[t], actual[t]))
		}
	}
	return out
}

// ValidatePlacement checks a candidate 25-slot assignment. All checks run;
// nothing short-circuits. An empty result means the board is submit-ready.
func (v *Validator) ValidatePlacement(p Placement, sel Selection, mode WildMode) []Violation {
	var out []Violation

	selected := make(map[string]bool, len(sel))
	for _, code := range sel {
		selected[code] = true
	}

	// Integrity: every placed code must be a drafted catalog card, once.
	slotOf := make(map[string]int, Slots)
	for slot, code := range p {
		if code == "" {
			continue
		}
		if !v.cat.Has(code) {
			out = append(out, unknownCard(slot, code))
			continue
		}
		if !selected[code] {
			out = append(out, notInSelection(slot, code))
		}
		if _, dup := slotOf[code]; dup {
			out = append(out, duplicateCard(slot, code))
			continue
		}
		slotOf[code] = slot
	}

	// 1. Completeness.
	for slot, code := range p {
		if code == "" {
			out = append(out, incompletePlacement(slot))
		}
	}

	// 2. Wild count and positions per mode.
	out = append(out, v.checkWilds(p, mode)...)

	// 3. Center occupancy.
	if code := p[CenterSlot]; code != "" && v.cat.TypeOf(code) != card.Wild {
		out = append(out, centerNotWild(code))
	}

	// 4. Marathon cards stay off corners.
	for _, slot := range Corners {
		code := p[slot]
		if code != "" && v.cat.TypeOf(code) == card.Marathon {
			out = append(out, forbiddenCorner(slot, code))
		}
	}

	// 5. Co-op cards never share a grid edge. Each offending pair is
	// reported once, from its lower slot.
	for slot, code := range p {
		if code == "" || v.cat.TypeOf(code) != card.Coop {
			continue
		}
		for _, n := range AdjacentSlots(slot) {
			if n > slot && p[n] != "" && v.cat.TypeOf(p[n]) == card.Coop {
				out = append(out, adjacentSameType(slot, n, code))
			}
		}
	}

	return out
}

func (v *Validator) checkWilds(p Placement, mode WildMode) []Violation {
	var out []Violation

	var wildSlots []int
	for slot, code := range p {
		if code != "" && v.cat.TypeOf(code) == card.Wild {
			wildSlots = append(wildSlots, slot)
		}
	}

	if len(wildSlots) != mode.Count {
		out = append(out, wildPlacement(-1, "",
			fmt.Sprintf("wild mode %s needs %d wild cards on the board, found %d", mode.Kind, mode.Count, len(wildSlots))))
	}

	var cornerWilds []int
	for _, slot := range wildSlots {
		switch {
		case slot == CenterSlot:
			// always allowed
		case IsCorner(slot):
			if mode.Kind == WildCenter {
				out = append(out, wildPlacement(slot, p[slot],
					fmt.Sprintf("wild card %s must sit on the center, not slot %d", p[slot], slot)))
			} else {
				cornerWilds = append(cornerWilds, slot)
			}
		default:
			out = append(out, wildPlacement(slot, p[slot],
				fmt.Sprintf("wild card %s cannot sit on slot %d", p[slot], slot)))
		}
	}

	// Advanced boards: the two corner wilds must be opposite corners on
	// the same diagonal, not merely any two corners.
	if mode.Kind == WildCenterDiagonal && len(cornerWilds) == 2 {
		a, b := cornerWilds[0], cornerWilds[1]
		onDiagonal := false
		for _, pair := range DiagonalPairs {
			if (a == pair[0] && b == pair[1]) || (a == pair[1] && b == pair[0]) {
				onDiagonal = true
				break
			}
		}
		if !onDiagonal {
			out = append(out, wildPlacement(b, p[b],
				fmt.Sprintf("corner wilds at slots %d and %d must be opposite corners on the same diagonal", a, b)))
		}
	}

	return out
}
