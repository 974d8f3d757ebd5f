package label

// Seed hashing and shuffling below are a wire contract, not an
// implementation detail: label maps published in past seasons were produced
// by exactly this FNV-1a variant feeding exactly this Mulberry32 stream, and
// any change would silently re-key every printed board. Keep bit-exact.

// hashSeed folds a seed string to 32 bits, FNV-1a style: XOR each code
// point into the accumulator, then multiply by the FNV prime.
func hashSeed(seed string) uint32 {
	h := uint32(2166136261)
	for _, r := range seed {
		h ^= uint32(r)
		h *= 16777619
	}
	return h
}

// mulberry32 is a tiny counter-based PRNG with a uniform [0,1) stream.
type mulberry32 struct {
	state uint32
}

func newMulberry32(seed uint32) *mulberry32 {
	return &mulberry32{state: seed}
}

func (m *mulberry32) next() float64 {
	m.state += 0x6D2B79F5
	t := m.state
	t ^= t >> 15
	t *= t | 1
	t2 := t ^ t>>7
	t2 *= t | 61
	t ^= t + t2
	t ^= t >> 14
	return float64(t) / 4294967296.0
}

// shuffle runs an in-place Fisher–Yates over items, drawing from the shared
// PRNG stream. Index selection is int(next() * (i+1)) to match the
// published maps.
func (m *mulberry32) shuffle(items []string) {
	for i := len(items) - 1; i > 0; i-- {
		j := int(m.next() * float64(i+1))
		items[i], items[j] = items[j], items[i]
	}
}
