package components

import (
	"strings"

	"github.com/vango-dev/tagkit/pkg/tag"
)

// Stylesheet links for classless CSS frameworks.
// See https://github.com/troxler/awesome-css-frameworks.

// SakuraFlavour selects a Sakura theme.
type SakuraFlavour string

const (
	SakuraDefault       SakuraFlavour = ""
	SakuraDarkSolarized SakuraFlavour = "dark-solarized"
	SakuraDark          SakuraFlavour = "dark"
	SakuraEarthly       SakuraFlavour = "earthly"
	SakuraInk           SakuraFlavour = "ink"
	SakuraPink          SakuraFlavour = "pink"
	SakuraRadical       SakuraFlavour = "radical"
	SakuraVader         SakuraFlavour = "vader"
)

func stylesheet(href string) *tag.Node {
	return tag.Link(tag.Rel("stylesheet"), tag.Href(href))
}

// MVP links MVP.css, https://andybrewer.github.io/mvp/.
func MVP() *tag.Node {
	return stylesheet("https://unpkg.com/mvp.css")
}

// Sakura links Sakura, https://oxal.org/projects/sakura/.
func Sakura(flavour SakuraFlavour) *tag.Node {
	if flavour == SakuraDefault {
		return stylesheet("https://unpkg.com/sakura.css/css/sakura.css")
	}
	return stylesheet("https://unpkg.com/sakura.css/css/sakura-" + string(flavour) + ".css")
}

// Simple links Simple.css.
func Simple() *tag.Node {
	return stylesheet("https://cdn.simplecss.org/simple.min.css")
}

// Tacit links Tacit.
func Tacit() *tag.Node {
	return stylesheet("https://cdn.jsdelivr.net/gh/yegor256/tacit@gh-pages/tacit-css-1.8.1.min.css")
}

// Pico links Pico CSS v2.
func Pico() *tag.Node {
	return stylesheet("https://cdn.jsdelivr.net/npm/@picocss/pico@2/css/pico.min.css")
}

// Semantic returns the framework link for name: mvp, sakura, simple, tacit
// or pico. A sakura flavour may follow a colon, as in "sakura:dark".
func Semantic(name string) (*tag.Node, bool) {
	switch name {
	case "mvp":
		return MVP(), true
	case "sakura":
		return Sakura(SakuraDefault), true
	case "simple":
		return Simple(), true
	case "tacit":
		return Tacit(), true
	case "pico":
		return Pico(), true
	}
	if flavour, ok := strings.CutPrefix(name, "sakura:"); ok && flavour != "" {
		return Sakura(SakuraFlavour(flavour)), true
	}
	return nil, false
}
