package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
)

func TestRequiredCounts_AlwaysSumToBoardSize(t *testing.T) {
	for _, tier := range []card.Tier{card.Beginner, card.Intermediate, card.Advanced} {
		for _, variant := range []bool{false, true} {
			c := RequiredCounts(tier, variant)
			assert.Equal(t, Slots, c.Total(), "tier %s variant %v", tier, variant)
		}
	}
}

func TestRequiredCounts_Tables(t *testing.T) {
	base := Counts{card.Base: 10, card.Condition: 7, card.Coop: 5, card.Marathon: 2, card.Wild: 1}

	assert.Equal(t, base, RequiredCounts(card.Beginner, false))
	assert.Equal(t, base, RequiredCounts(card.Intermediate, false))
	assert.Equal(t, base, RequiredCounts(card.Advanced, false))

	// The variant only reshapes intermediate and advanced.
	assert.Equal(t, base, RequiredCounts(card.Beginner, true))
	assert.Equal(t,
		Counts{card.Base: 10, card.Condition: 7, card.Coop: 5, card.Marathon: 1, card.Wild: 2},
		RequiredCounts(card.Intermediate, true))
	assert.Equal(t,
		Counts{card.Base: 9, card.Condition: 6, card.Coop: 5, card.Marathon: 2, card.Wild: 3},
		RequiredCounts(card.Advanced, true))
}

func TestWildModeFor(t *testing.T) {
	assert.Equal(t, WildMode{Kind: WildCenter, Count: 1}, WildModeFor(card.Beginner, false))
	assert.Equal(t, WildMode{Kind: WildCenter, Count: 1}, WildModeFor(card.Advanced, false))
	assert.Equal(t, WildMode{Kind: WildCenter, Count: 1}, WildModeFor(card.Beginner, true))
	assert.Equal(t, WildMode{Kind: WildCenterCorner, Count: 2}, WildModeFor(card.Intermediate, true))
	assert.Equal(t, WildMode{Kind: WildCenterDiagonal, Count: 3}, WildModeFor(card.Advanced, true))
}

func TestWildMode_CountMatchesQuota(t *testing.T) {
	for _, tier := range []card.Tier{card.Beginner, card.Intermediate, card.Advanced} {
		for _, variant := range []bool{false, true} {
			mode := WildModeFor(tier, variant)
			counts := RequiredCounts(tier, variant)
			assert.Equal(t, counts[card.Wild], mode.Count, "tier %s variant %v", tier, variant)
		}
	}
}

func TestIsCorner(t *testing.T) {
	corners := map[int]bool{0: true, 4: true, 20: true, 24: true}
	for slot := 0; slot < Slots; slot++ {
		assert.Equal(t, corners[slot], IsCorner(slot), "slot %d", slot)
	}
}

func TestAdjacentSlots(t *testing.T) {
	assert.ElementsMatch(t, []int{1, 5}, AdjacentSlots(0))
	assert.ElementsMatch(t, []int{3, 9}, AdjacentSlots(4))
	assert.ElementsMatch(t, []int{7, 11, 13, 17}, AdjacentSlots(12))
	assert.ElementsMatch(t, []int{19, 23}, AdjacentSlots(24))
	// Edge, non-corner.
	assert.ElementsMatch(t, []int{0, 2, 6}, AdjacentSlots(1))
	assert.ElementsMatch(t, []int{5, 11, 15}, AdjacentSlots(10))
}

func TestPlacement_GridRoundTrip(t *testing.T) {
	var p Placement
	p[0] = "C01"
	p[12] = "W01"
	p[24] = "C05"

	grid := p.Grid()
	assert.Len(t, grid, Size)
	assert.Equal(t, "C01", grid[0][0])
	assert.Equal(t, "W01", grid[2][2])
	assert.Equal(t, "C05", grid[4][4])

	back, ok := PlacementFromGrid(grid)
	assert.True(t, ok)
	assert.Equal(t, p, back)
}

func TestPlacementFromGrid_BadShape(t *testing.T) {
	_, ok := PlacementFromGrid(make([][]string, 4))
	assert.False(t, ok)

	grid := make([][]string, Size)
	for i := range grid {
		grid[i] = make([]string, Size)
	}
	grid[3] = grid[3][:4]
	_, ok = PlacementFromGrid(grid)
	assert.False(t, ok)
}
