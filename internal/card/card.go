package card

// Type is the single-letter card category printed on every card code.
type Type string

const (
	Base      Type = "A" // base runs
	Condition Type = "B" // weather / time-of-day conditions
	Coop      Type = "C" // group and co-op runs
	Marathon  Type = "D" // season-long accumulation goals
	Wild      Type = "W" // special cards with mandatory board positions
)

// Types lists every card type in canonical order. The label shuffle and the
// placement engine both consume types in this order, so it is part of the
// wire contract and must not be reordered.
var Types = []Type{Base, Condition, Coop, Marathon, Wild}

// Valid reports whether t is one of the five known card types.
func (t Type) Valid() bool {
	switch t {
	case Base, Condition, Coop, Marathon, Wild:
		return true
	}
	return false
}

// Tier is a player skill bracket. It determines board composition and how
// strict the wild-card placement rules are.
type Tier string

const (
	Beginner     Tier = "beginner"
	Intermediate Tier = "intermediate"
	Advanced     Tier = "advanced"
)

// Tiers lists every tier from least to most demanding.
var Tiers = []Tier{Beginner, Intermediate, Advanced}

// Def is a single card definition: a stable code like "B04", its type,
// a 1..3 star difficulty, and the player-facing title.
type Def struct {
	Code  string `json:"code"`
	Type  Type   `json:"type"`
	Stars int    `json:"stars"`
	Title string `json:"title"`
}
