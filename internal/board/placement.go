package board

// Selection is the set of card codes a player drafted for their board, in
// no particular order. No duplicates.
type Selection []string

// Placement is a full 25-slot assignment, row-major. An empty string is an
// empty slot; anything else is a card code from the selection.
type Placement [Slots]string

// Empty reports whether a slot holds no card.
func (p Placement) Empty(slot int) bool { return p[slot] == "" }

// Grid returns the placement as 5 rows of 5, for serialization.
func (p Placement) Grid() [][]string {
	out := make([][]string, Size)
	for r := 0; r < Size; r++ {
		row := make([]string, Size)
		copy(row, p[r*Size:(r+1)*Size])
		out[r] = row
	}
	return out
}

// PlacementFromGrid rebuilds a Placement from 5 rows of 5. The ok result is
// false when the shape is wrong.
func PlacementFromGrid(grid [][]string) (Placement, bool) {
	var p Placement
	if len(grid) != Size {
		return p, false
	}
	for r, row := range grid {
		if len(row) != Size {
			return p, false
		}
		copy(p[r*Size:(r+1)*Size], row)
	}
	return p, true
}
