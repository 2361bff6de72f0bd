package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemanticLinks(t *testing.T) {
	tests := []struct {
		name string
		href string
	}{
		{"mvp", "https://unpkg.com/mvp.css"},
		{"sakura", "https://unpkg.com/sakura.css/css/sakura.css"},
		{"sakura:vader", "https://unpkg.com/sakura.css/css/sakura-vader.css"},
		{"simple", "https://cdn.simplecss.org/simple.min.css"},
		{"tacit", "https://cdn.jsdelivr.net/gh/yegor256/tacit@gh-pages/tacit-css-1.8.1.min.css"},
		{"pico", "https://cdn.jsdelivr.net/npm/@picocss/pico@2/css/pico.min.css"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := Semantic(tt.name)
			require.True(t, ok)
			out, err := n.Render()
			require.NoError(t, err)
			assert.Equal(t, "<link rel='stylesheet' href='"+tt.href+"' />", out)
		})
	}

	_, ok := Semantic("bootstrap")
	assert.False(t, ok)
	_, ok = Semantic("sakura:")
	assert.False(t, ok)
}

func TestSakuraFlavour(t *testing.T) {
	out, err := Sakura(SakuraDarkSolarized).Render()
	require.NoError(t, err)
	assert.Contains(t, out, "sakura-dark-solarized.css")
}
