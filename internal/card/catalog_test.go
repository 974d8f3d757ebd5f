package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()

	assert.Equal(t, 42, cat.Len())
	assert.Equal(t, map[Type]int{Base: 14, Condition: 10, Coop: 9, Marathon: 5, Wild: 4}, cat.CountByType())

	d, ok := cat.Get("C05")
	require.True(t, ok)
	assert.Equal(t, Coop, d.Type)
	assert.Equal(t, 1, d.Stars)
	assert.Equal(t, "Thursday meeting", d.Title)

	assert.False(t, cat.Has("Z01"))
	assert.Equal(t, Type(""), cat.TypeOf("Z01"))
}

func TestCodesByType_SortedCopy(t *testing.T) {
	cat := DefaultCatalog()

	codes := cat.CodesByType(Wild)
	assert.Equal(t, []string{"W01", "W02", "W03", "W04"}, codes)

	// Mutating the returned slice must not affect the catalog.
	codes[0] = "W99"
	assert.Equal(t, []string{"W01", "W02", "W03", "W04"}, cat.CodesByType(Wild))
}

func TestNewCatalog_Rejects(t *testing.T) {
	cases := []struct {
		name string
		defs []Def
	}{
		{"empty", nil},
		{"malformed code", []Def{{Code: "A1", Type: Base, Stars: 1, Title: "x"}}},
		{"unknown type", []Def{{Code: "X01", Type: Type("X"), Stars: 1, Title: "x"}}},
		{"type mismatch", []Def{{Code: "A01", Type: Condition, Stars: 1, Title: "x"}}},
		{"bad stars", []Def{{Code: "A01", Type: Base, Stars: 4, Title: "x"}}},
		{"duplicate", []Def{
			{Code: "A01", Type: Base, Stars: 1, Title: "x"},
			{Code: "A01", Type: Base, Stars: 2, Title: "y"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.defs)
			assert.Error(t, err)
		})
	}
}

func TestDefs_SortedByCode(t *testing.T) {
	cat := DefaultCatalog()
	defs := cat.Defs()
	require.Len(t, defs, 42)
	for i := 1; i < len(defs); i++ {
		assert.Less(t, defs[i-1].Code, defs[i].Code)
	}
}
