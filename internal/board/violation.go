package board

import (
	"fmt"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
)

// ViolationKind identifies one placement or selection rule.
type ViolationKind string

const (
	// CountMismatch: a type's selected count differs from the tier quota.
	CountMismatch ViolationKind = "count_mismatch"
	// IncompletePlacement: one or more slots are still empty.
	IncompletePlacement ViolationKind = "incomplete_placement"
	// WildPlacementError: wild cards are missing, surplus, or sit on
	// slots the wild mode does not allow.
	WildPlacementError ViolationKind = "wild_placement"
	// CenterNotWild: the center cell holds a non-wild card.
	CenterNotWild ViolationKind = "center_not_wild"
	// ForbiddenCorner: a marathon (D) card sits on a corner.
	ForbiddenCorner ViolationKind = "forbidden_corner"
	// AdjacentSameType: two co-op (C) cards share a grid edge.
	AdjacentSameType ViolationKind = "adjacent_same_type"
	// UnknownCard: a placed code is not in the catalog.
	UnknownCard ViolationKind = "unknown_card"
	// NotInSelection: a placed code was never drafted.
	NotInSelection ViolationKind = "not_in_selection"
	// DuplicateCard: the same code occupies more than one slot, or
	// appears twice in a selection.
	DuplicateCard ViolationKind = "duplicate_card"
)

// Violation is one broken rule. Validation reports every violation found.
// These are shown to the player as actionable messages, never raised as
// session-ending errors.
type Violation struct {
	Kind     ViolationKind `json:"kind"`
	Type     card.Type     `json:"type,omitempty"`
	Code     string        `json:"code,omitempty"`
	Slot     int           `json:"slot"`
	Expected int           `json:"expected,omitempty"`
	Actual   int           `json:"actual,omitempty"`
	Message  string        `json:"message"`
}

func countMismatch(t card.Type, expected, actual int) Violation {
	return Violation{
		Kind:     CountMismatch,
		Type:     t,
		Slot:     -1,
		Expected: expected,
		Actual:   actual,
		Message:  fmt.Sprintf("type %s needs %d cards, selection has %d", t, expected, actual),
	}
}

func incompletePlacement(slot int) Violation {
	return Violation{
		Kind:    IncompletePlacement,
		Slot:    slot,
		Message: fmt.Sprintf("slot %d is empty", slot),
	}
}

func wildPlacement(slot int, code, detail string) Violation {
	return Violation{
		Kind:    WildPlacementError,
		Type:    card.Wild,
		Code:    code,
		Slot:    slot,
		Message: detail,
	}
}

func centerNotWild(code string) Violation {
	return Violation{
		Kind:    CenterNotWild,
		Code:    code,
		Slot:    CenterSlot,
		Message: "the center cell must hold a wild card",
	}
}

func forbiddenCorner(slot int, code string) Violation {
	return Violation{
		Kind:    ForbiddenCorner,
		Type:    card.Marathon,
		Code:    code,
		Slot:    slot,
		Message: fmt.Sprintf("marathon card %s cannot sit on corner slot %d", code, slot),
	}
}

func adjacentSameType(slot, other int, code string) Violation {
	return Violation{
		Kind:    AdjacentSameType,
		Type:    card.Coop,
		Code:    code,
		Slot:    slot,
		Actual:  other,
		Message: fmt.Sprintf("co-op card %s at slot %d touches another co-op card at slot %d", code, slot, other),
	}
}

func unknownCard(slot int, code string) Violation {
	return Violation{
		Kind:    UnknownCard,
		Code:    code,
		Slot:    slot,
		Message: fmt.Sprintf("unrecognized card code %q", code),
	}
}

func notInSelection(slot int, code string) Violation {
	return Violation{
		Kind:    NotInSelection,
		Code:    code,
		Slot:    slot,
		Message: fmt.Sprintf("card %s is not part of this board's selection", code),
	}
}

func duplicateCard(slot int, code string) Violation {
	return Violation{
		Kind:    DuplicateCard,
		Code:    code,
		Slot:    slot,
		Message: fmt.Sprintf("card %s appears more than once", code),
	}
}
