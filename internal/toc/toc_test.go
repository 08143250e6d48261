package toc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ChrisShen93/xstate/internal/foundation/errors"
)

func page() []Heading {
	return []Heading{
		{Level: 1, Text: "Machines", ID: "machines"},
		{Level: 2, Text: "Configuration", ID: "configuration"},
		{Level: 3, Text: "Options", ID: "options"},
		{Level: 4, Text: "Guards", ID: "guards"},
		{Level: 2, Text: "Extending", ID: "extending"},
	}
}

func TestFilter_DefaultLevels(t *testing.T) {
	got := Filter(page(), DefaultConfig())
	assert.Equal(t, []Heading{
		{Level: 2, Text: "Configuration", ID: "configuration"},
		{Level: 3, Text: "Options", ID: "options"},
		{Level: 2, Text: "Extending", ID: "extending"},
	}, got)
}

func TestFilter_EdgeCases(t *testing.T) {
	assert.Equal(t, page(), Filter(page(), Config{MinLevel: 1, MaxLevel: 6}))
	assert.Empty(t, Filter(nil, DefaultConfig()))
	assert.NotNil(t, Filter(nil, DefaultConfig()))
	assert.Empty(t, Filter(page(), Config{MinLevel: 5, MaxLevel: 6}))
	assert.Empty(t, Filter(page(), Config{MinLevel: 4, MaxLevel: 2}))
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(2, 3)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	for _, bad := range [][2]int{{0, 3}, {2, 7}, {4, 3}, {-1, -1}} {
		_, err := NewConfig(bad[0], bad[1])
		require.Error(t, err, "levels %v", bad)
		assert.True(t, errors.HasCode(err, errors.CodeInvalidTOC))
	}
}

func TestNest(t *testing.T) {
	roots := Nest(page())
	require.Len(t, roots, 1)
	top := roots[0]
	assert.Equal(t, "machines", top.ID)
	require.Len(t, top.Children, 2)
	assert.Equal(t, "configuration", top.Children[0].ID)
	assert.Equal(t, "options", top.Children[0].Children[0].ID)
	assert.Equal(t, "guards", top.Children[0].Children[0].Children[0].ID)
	assert.Equal(t, "extending", top.Children[1].ID)

	flat := Nest(Filter(page(), DefaultConfig()))
	require.Len(t, flat, 2)
	assert.Len(t, flat[0].Children, 1)
	assert.Empty(t, Nest(nil))
}

// Filter output is an order-preserving subsequence of its input.
func TestFilter_SubsequenceProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(rt, "n")
		headings := make([]Heading, n)
		for i := range headings {
			headings[i] = Heading{Level: rapid.IntRange(1, 6).Draw(rt, "level"), ID: string(rune('a' + i%26))}
		}
		lo := rapid.IntRange(1, 6).Draw(rt, "min")
		hi := rapid.IntRange(lo, 6).Draw(rt, "max")

		got := Filter(headings, Config{MinLevel: lo, MaxLevel: hi})

		j := 0
		for _, h := range headings {
			if j < len(got) && got[j] == h {
				j++
			}
		}
		if j != len(got) {
			rt.Fatalf("output is not a subsequence of the input")
		}
		for _, h := range got {
			if h.Level < lo || h.Level > hi {
				rt.Fatalf("heading level %d outside [%d,%d]", h.Level, lo, hi)
			}
		}
		if lo == 1 && hi == 6 && len(got) != len(headings) {
			rt.Fatalf("full range must keep every heading")
		}
	})
}
