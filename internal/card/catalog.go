package card

import (
	"fmt"
	"regexp"
	"sort"
)

var codeRE = regexp.MustCompile(`^[ABCDW]\d{2}$`)

// Catalog is an immutable set of card definitions, indexed by code and
// partitioned by type. Per-type code lists are kept sorted; that ordering is
// what the label shuffle permutes, so it must be stable across processes.
type Catalog struct {
	byCode map[string]Def
	byType map[Type][]string
}

// NewCatalog builds a catalog from definitions. Codes must be unique,
// well-formed (one of ABCDW plus two digits) and agree with the declared type.
func NewCatalog(defs []Def) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog must not be empty")
	}

	c := &Catalog{
		byCode: make(map[string]Def, len(defs)),
		byType: make(map[Type][]string),
	}
	for _, d := range defs {
		if !codeRE.MatchString(d.Code) {
			return nil, fmt.Errorf("malformed card code: %q", d.Code)
		}
		if !d.Type.Valid() {
			return nil, fmt.Errorf("card %s has unknown type %q", d.Code, d.Type)
		}
		if Type(d.Code[:1]) != d.Type {
			return nil, fmt.Errorf("card %s declares type %s", d.Code, d.Type)
		}
		if d.Stars < 1 || d.Stars > 3 {
			return nil, fmt.Errorf("card %s has %d stars, want 1..3", d.Code, d.Stars)
		}
		if _, dup := c.byCode[d.Code]; dup {
			return nil, fmt.Errorf("duplicate card code: %s", d.Code)
		}
		c.byCode[d.Code] = d
		c.byType[d.Type] = append(c.byType[d.Type], d.Code)
	}
	for t := range c.byType {
		sort.Strings(c.byType[t])
	}
	return c, nil
}

// Get returns the definition for a card code.
func (c *Catalog) Get(code string) (Def, bool) {
	d, ok := c.byCode[code]
	return d, ok
}

// Has reports whether the catalog contains the code.
func (c *Catalog) Has(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// Len returns the total number of cards.
func (c *Catalog) Len() int { return len(c.byCode) }

// TypeOf returns the type of a known code, or "" if the code is unknown.
func (c *Catalog) TypeOf(code string) Type {
	d, ok := c.byCode[code]
	if !ok {
		return ""
	}
	return d.Type
}

// CodesByType returns the sorted codes of one type. The returned slice is a
// copy and safe to shuffle.
func (c *Catalog) CodesByType(t Type) []string {
	src := c.byType[t]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// CountByType returns how many cards of each type the catalog holds.
func (c *Catalog) CountByType() map[Type]int {
	out := make(map[Type]int, len(c.byType))
	for t, codes := range c.byType {
		out[t] = len(codes)
	}
	return out
}

// Defs returns every definition sorted by code.
func (c *Catalog) Defs() []Def {
	out := make([]Def, 0, len(c.byCode))
	for _, d := range c.byCode {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
