// Package label obfuscates canonical card codes into the per-season labels
// players actually see. The mapping is a seeded, type-partitioned
// permutation: an A card only ever wears an A label, and the same seed plus
// the same catalog always yields the same map.
package label

import (
	"errors"
	"fmt"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
)

// ErrUnknownCard marks a code or label that is not in the catalog. Surfaced
// to players as "unrecognized code".
var ErrUnknownCard = errors.New("unknown card code")

// Map is a bidirectional code<->label lookup for one seed. It is immutable
// after Build and safe for concurrent reads.
type Map struct {
	seed    string
	toLabel map[string]string
	toCode  map[string]string
}

// Build computes the label map for a seed over a catalog. For each type in
// canonical order it Fisher–Yates-shuffles a copy of the sorted code list
// with the shared seeded stream and zips original onto shuffled.
func Build(seed string, cat *card.Catalog) *Map {
	rng := newMulberry32(hashSeed(seed))
	m := &Map{
		seed:    seed,
		toLabel: make(map[string]string, cat.Len()),
		toCode:  make(map[string]string, cat.Len()),
	}
	for _, t := range card.Types {
		codes := cat.CodesByType(t)
		labels := make([]string, len(codes))
		copy(labels, codes)
		rng.shuffle(labels)
		for i, code := range codes {
			m.toLabel[code] = labels[i]
			m.toCode[labels[i]] = code
		}
	}
	return m
}

// Seed returns the seed this map was built from.
func (m *Map) Seed() string { return m.seed }

// Label translates a canonical code to its display label.
func (m *Map) Label(code string) (string, error) {
	l, ok := m.toLabel[code]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCard, code)
	}
	return l, nil
}

// Identity translates a display label back to the canonical code.
func (m *Map) Identity(label string) (string, error) {
	c, ok := m.toCode[label]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCard, label)
	}
	return c, nil
}

// Labels returns a copy of the full code->label mapping.
func (m *Map) Labels() map[string]string {
	out := make(map[string]string, len(m.toLabel))
	for k, v := range m.toLabel {
		out[k] = v
	}
	return out
}
