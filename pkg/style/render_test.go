package style

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSingleRule(t *testing.T) {
	s := New(Sel("ul", Decl("color", "red"), Decl("width", 25)))
	out, err := s.Render()
	require.NoError(t, err)
	assert.Equal(t, "ul {\n    color: red;\n    width: 25 px;\n}\n", out)
}

func TestRenderFromMap(t *testing.T) {
	s := FromMap(map[string]any{"ul": map[string]any{"color": "red", "width": 25}})
	out, err := s.Render()
	require.NoError(t, err)
	assert.Equal(t, "ul {\n    color: red;\n    width: 25 px;\n}\n", out)
}

func TestRenderGolden(t *testing.T) {
	tests := []struct {
		name  string
		sheet *StyleSheet
	}{
		{
			name: "nested",
			sheet: New(
				Sel("body",
					Decl("font-family", "sans-serif;"),
					Decl("margin", 0),
					Sel("header",
						Decl("height", 64),
						Sel(".logo", Decl("float", "left")),
					),
				),
				Sel("footer", Decl("opacity", 0.5)),
			),
		},
		{
			name: "nested_only",
			sheet: New(
				Sel("nav",
					Sel("ul", Decl("list-style", "none")),
					Sel("a:hover", Decl("color", "red")),
				),
			),
		},
		{
			name: "trimmed",
			sheet: New(
				Sel(" table ",
					Decl("border: ", "1px solid black ;"),
					Decl("width;", uint8(80)),
				),
			),
		},
	}

	g := goldie.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.sheet.Render()
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(out))
		})
	}
}

func TestRenderWithParent(t *testing.T) {
	s := New(Decl("color", "red"), Sel("span", Decl("margin", 1)))
	out, err := s.RenderWith("  .card ", 2)
	require.NoError(t, err)
	assert.Equal(t, ".card {\n  color: red;\n}\n.card span {\n  margin: 1 px;\n}\n", out)
}

func TestRenderFlatWithoutSelector(t *testing.T) {
	_, err := New(Decl("color", "red")).Render()
	assert.ErrorIs(t, err, ErrValidation)

	_, err = (&StyleSheet{}).Render()
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRenderMixedTopLevel(t *testing.T) {
	// Top-level declarations alongside nested rule sets are written under an
	// empty selector.
	s := New(Decl("color", "red"), Sel("p", Decl("margin", 0)))
	out, err := s.Render()
	require.NoError(t, err)
	assert.Equal(t, " {\n    color: red;\n}\np {\n    margin: 0 px;\n}\n", out)
}

func TestRenderNumbers(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{25, "25 px"},
		{int64(-3), "-3 px"},
		{uint8(4), "4 px"},
		{25.0, "25 px"},
		{2.5, "2.5 px"},
		{float32(0.5), "0.5 px"},
	}
	for _, tt := range tests {
		got, ok := formatValue(tt.value)
		require.True(t, ok, "%T", tt.value)
		assert.Equal(t, tt.want, got)
	}

	out, err := New(Sel("p", Decl("width", 25.0))).Render()
	require.NoError(t, err)
	assert.Equal(t, "p {\n    width: 25 px;\n}\n", out)
}

func TestRenderBadValue(t *testing.T) {
	tests := map[string]*StyleSheet{
		"slice":    New(Sel("p", Decl("margin", []int{1, 2}))),
		"nil":      New(Sel("p", Decl("margin", nil))),
		"bool":     New(Sel("p", Decl("hidden", true))),
		"nilsheet": New(Rule{Key: "p", Value: (*StyleSheet)(nil)}),
	}
	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := s.Render()
			assert.ErrorIs(t, err, ErrUnrenderable)
			assert.Empty(t, out)
		})
	}
}

func TestRenderEmptyNestedRule(t *testing.T) {
	out, err := New(Sel("p")).Render()
	require.NoError(t, err)
	assert.Empty(t, out)
}
