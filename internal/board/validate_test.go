package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
)

// beginnerBoard is a hand-checked legal layout for the base quota: one wild
// on the center, marathon cards off the corners, no two co-op cards sharing
// a grid edge.
func beginnerBoard() (Placement, Selection) {
	p := Placement{
		"C01", "A01", "C02", "A02", "C03",
		"A03", "D01", "A04", "D02", "A05",
		"A06", "A07", "W01", "A08", "A09",
		"A10", "B01", "B02", "B03", "B04",
		"C04", "B05", "B06", "B07", "C05",
	}
	return p, Selection(p[:])
}

// advancedBoard is a hand-checked legal layout for the advanced variant
// quota: three wilds, two of them on the 0/24 diagonal.
func advancedBoard() (Placement, Selection) {
	p := Placement{
		"W02", "A01", "C01", "A02", "C02",
		"A03", "D01", "A04", "D02", "A05",
		"C03", "A06", "W01", "A07", "A08",
		"A09", "B01", "B02", "B03", "B04",
		"C04", "B05", "C05", "B06", "W03",
	}
	return p, Selection(p[:])
}

func kinds(vs []Violation) []ViolationKind {
	out := make([]ViolationKind, len(vs))
	for i, v := range vs {
		out[i] = v.Kind
	}
	return out
}

func TestValidateSelection_CleanQuota(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	_, sel := beginnerBoard()

	vs := v.ValidateSelection(sel, RequiredCounts(card.Beginner, false))
	assert.Empty(t, vs)
}

func TestValidateSelection_CountMismatch(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	_, sel := beginnerBoard()

	// Trade a condition card for an extra base card: two types drift.
	swapped := append(Selection{}, sel...)
	for i, code := range swapped {
		if code == "B07" {
			swapped[i] = "A11"
		}
	}

	vs := v.ValidateSelection(swapped, RequiredCounts(card.Beginner, false))
	require.Len(t, vs, 2)
	assert.ElementsMatch(t, []ViolationKind{CountMismatch, CountMismatch}, kinds(vs))

	byType := map[card.Type]Violation{}
	for _, violation := range vs {
		byType[violation.Type] = violation
	}
	assert.Equal(t, 10, byType[card.Base].Expected)
	assert.Equal(t, 11, byType[card.Base].Actual)
	assert.Equal(t, 7, byType[card.Condition].Expected)
	assert.Equal(t, 6, byType[card.Condition].Actual)
}

func TestValidateSelection_DuplicateAndUnknown(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())

	vs := v.ValidateSelection(Selection{"A01", "A01", "Z99"}, Counts{card.Base: 1})
	assert.Contains(t, kinds(vs), DuplicateCard)
	assert.Contains(t, kinds(vs), UnknownCard)
	assert.NotContains(t, kinds(vs), CountMismatch)
}

func TestValidatePlacement_CleanBeginner(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	p, sel := beginnerBoard()

	vs := v.ValidatePlacement(p, sel, WildModeFor(card.Beginner, false))
	assert.Empty(t, vs)
}

func TestValidatePlacement_CleanAdvancedVariant(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	p, sel := advancedBoard()

	vs := v.ValidatePlacement(p, sel, WildModeFor(card.Advanced, true))
	assert.Empty(t, vs)
}

func TestValidatePlacement_MarathonOnCorner(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	p, sel := beginnerBoard()
	p[0], p[6] = p[6], p[0] // D01 to the corner, C01 inland

	vs := v.ValidatePlacement(p, sel, WildModeFor(card.Beginner, false))
	require.Len(t, vs, 1)
	assert.Equal(t, ForbiddenCorner, vs[0].Kind)
	assert.Equal(t, "D01", vs[0].Code)
	assert.Equal(t, 0, vs[0].Slot)
}

func TestValidatePlacement_CoopAdjacency(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	p, sel := beginnerBoard()
	p[1], p[2] = p[2], p[1] // C02 next to C01

	vs := v.ValidatePlacement(p, sel, WildModeFor(card.Beginner, false))
	require.Len(t, vs, 1)
	assert.Equal(t, AdjacentSameType, vs[0].Kind)
	// The pair is reported once, from its lower slot.
	assert.Equal(t, 0, vs[0].Slot)
	assert.Equal(t, 1, vs[0].Actual)
	assert.Equal(t, "C01", vs[0].Code)
}

func TestValidatePlacement_CoopAdjacencyVertical(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	p, sel := beginnerBoard()
	p[2], p[15] = p[15], p[2] // C02 directly above C04

	vs := v.ValidatePlacement(p, sel, WildModeFor(card.Beginner, false))
	require.Len(t, vs, 1)
	assert.Equal(t, AdjacentSameType, vs[0].Kind)
	assert.Equal(t, 15, vs[0].Slot)
	assert.Equal(t, 20, vs[0].Actual)
	assert.Equal(t, "C02", vs[0].Code)
}

func TestValidatePlacement_CenterNotWild(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	p, sel := beginnerBoard()
	p[10], p[12] = p[12], p[10] // A06 to the center, W01 inland

	vs := v.ValidatePlacement(p, sel, WildModeFor(card.Beginner, false))
	require.Len(t, vs, 2)
	assert.ElementsMatch(t, []ViolationKind{WildPlacementError, CenterNotWild}, kinds(vs))
	for _, violation := range vs {
		switch violation.Kind {
		case WildPlacementError:
			assert.Equal(t, 10, violation.Slot)
			assert.Equal(t, "W01", violation.Code)
		case CenterNotWild:
			assert.Equal(t, CenterSlot, violation.Slot)
			assert.Equal(t, "A06", violation.Code)
		}
	}
}

func TestValidatePlacement_EmptySlot(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	p, sel := beginnerBoard()
	p[7] = ""

	vs := v.ValidatePlacement(p, sel, WildModeFor(card.Beginner, false))
	require.Len(t, vs, 1)
	assert.Equal(t, IncompletePlacement, vs[0].Kind)
	assert.Equal(t, 7, vs[0].Slot)
}

func TestValidatePlacement_UnknownAndOutsideSelection(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	p, sel := beginnerBoard()
	p[7] = "Z99" // not in the catalog
	p[9] = "A14" // real card, never drafted

	vs := v.ValidatePlacement(p, sel, WildModeFor(card.Beginner, false))
	require.Len(t, vs, 2)
	assert.ElementsMatch(t, []ViolationKind{UnknownCard, NotInSelection}, kinds(vs))
}

func TestValidatePlacement_DuplicateCard(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	p, sel := beginnerBoard()
	p[7] = "A01" // already on slot 1

	vs := v.ValidatePlacement(p, sel, WildModeFor(card.Beginner, false))
	require.Len(t, vs, 1)
	assert.Equal(t, DuplicateCard, vs[0].Kind)
	assert.Equal(t, "A01", vs[0].Code)
	assert.Equal(t, 7, vs[0].Slot)
}

func TestValidatePlacement_AdjacentCornerWilds(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	p, sel := advancedBoard()
	p[4], p[24] = p[24], p[4] // wilds at 0 and 4: same edge, not a diagonal

	vs := v.ValidatePlacement(p, sel, WildModeFor(card.Advanced, true))
	require.Len(t, vs, 1)
	assert.Equal(t, WildPlacementError, vs[0].Kind)
	assert.Equal(t, 4, vs[0].Slot)
}

func TestValidatePlacement_WildCountMismatch(t *testing.T) {
	v := NewValidator(card.DefaultCatalog())
	p, sel := beginnerBoard()

	// A beginner board judged under the advanced variant rule is short two
	// wilds.
	vs := v.ValidatePlacement(p, sel, WildModeFor(card.Advanced, true))
	require.Len(t, vs, 1)
	assert.Equal(t, WildPlacementError, vs[0].Kind)
	assert.Equal(t, -1, vs[0].Slot)
}
