// Package board is the 5×5 placement engine: the tier rules, the validator
// that reports every rule a candidate board breaks, and the randomized
// generator behind the auto-build action.
package board

import (
	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
)

const (
	// Size is the board edge length.
	Size = 5
	// Slots is the total cell count, row-major 0..24.
	Slots = Size * Size
	// CenterSlot is the fixed wild-card cell.
	CenterSlot = 12
)

// Corners are the four corner slots in row-major order.
var Corners = [4]int{0, 4, 20, 24}

// DiagonalPairs are the two opposite-corner pairs. Advanced boards place
// their two extra wilds on one of these, never on adjacent corners.
var DiagonalPairs = [2][2]int{{0, 24}, {4, 20}}

// Counts is a per-type card quota. A submit-ready board's selection matches
// its tier's Counts exactly and the values sum to 25.
type Counts map[card.Type]int

// Total sums the quota over all types.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// RequiredCounts returns the reference per-type quota for a tier. With the
// variant flag off every tier uses the base table; with it on, intermediate
// and advanced trade base cards for extra wilds.
func RequiredCounts(tier card.Tier, variantOn bool) Counts {
	base := Counts{card.Base: 10, card.Condition: 7, card.Coop: 5, card.Marathon: 2, card.Wild: 1}
	if !variantOn {
		return base
	}
	switch tier {
	case card.Intermediate:
		return Counts{card.Base: 10, card.Condition: 7, card.Coop: 5, card.Marathon: 1, card.Wild: 2}
	case card.Advanced:
		return Counts{card.Base: 9, card.Condition: 6, card.Coop: 5, card.Marathon: 2, card.Wild: 3}
	default:
		return base
	}
}

// WildKind describes where a board's wild cards must sit.
type WildKind string

const (
	// WildCenter: one wild, on the center cell.
	WildCenter WildKind = "center"
	// WildCenterCorner: center plus one corner, any of the four.
	WildCenterCorner WildKind = "center+corner"
	// WildCenterDiagonal: center plus two opposite corners on the same
	// diagonal.
	WildCenterDiagonal WildKind = "center+diagonal"
)

// WildMode is the wild-card placement rule resolved for a tier.
type WildMode struct {
	Kind  WildKind `json:"kind"`
	Count int      `json:"count"`
}

// WildModeFor resolves the wild rule for a tier. Beginners and variant-off
// boards keep a single center wild.
func WildModeFor(tier card.Tier, variantOn bool) WildMode {
	if !variantOn {
		return WildMode{Kind: WildCenter, Count: 1}
	}
	switch tier {
	case card.Intermediate:
		return WildMode{Kind: WildCenterCorner, Count: 2}
	case card.Advanced:
		return WildMode{Kind: WildCenterDiagonal, Count: 3}
	default:
		return WildMode{Kind: WildCenter, Count: 1}
	}
}

// IsCorner reports whether slot is one of the four corners.
func IsCorner(slot int) bool {
	return slot == 0 || slot == 4 || slot == 20 || slot == 24
}

// AdjacentSlots returns the up-to-4 grid-edge neighbors of a slot.
// Diagonal cells are not neighbors.
func AdjacentSlots(slot int) []int {
	r, c := slot/Size, slot%Size
	out := make([]int, 0, 4)
	if r > 0 {
		out = append(out, slot-Size)
	}
	if r < Size-1 {
		out = append(out, slot+Size)
	}
	if c > 0 {
		out = append(out, slot-1)
	}
	if c < Size-1 {
		out = append(out, slot+1)
	}
	return out
}
