package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTier(t *testing.T) {
	cases := map[string]Tier{
		"beginner":     Beginner,
		"Beginner":     Beginner,
		"beg":          Beginner,
		"b":            Beginner,
		"초보":           Beginner,
		" inter ":      Intermediate,
		"중수":           Intermediate,
		"ADV":          Advanced,
		"고수":           Advanced,
		"advanced":     Advanced,
		"intermediate": Intermediate,
	}
	for raw, want := range cases {
		got, err := NormalizeTier(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := NormalizeTier("pro")
	assert.Error(t, err)
	_, err = NormalizeTier("")
	assert.Error(t, err)
}

func TestNormalizeLabel(t *testing.T) {
	cases := map[string]string{
		"a7":     "A07",
		"A07":    "A07",
		" b3 ":   "B03",
		"w 04":   "W04",
		"c12":    "C12",
		"":       "",
		"  ":     "",
		"hello":  "HELLO",
		"A123":   "A123", // too long to be a code, returned as-is upcased
		"d05":    "D05",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeLabel(raw), "input %q", raw)
	}
}
