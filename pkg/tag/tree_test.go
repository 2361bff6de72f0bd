package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTree(t *testing.T) {
	doc := Html(
		Head(Title("t")),
		Body(Div(ID("x"), "hi", Raw("<b>")), Br()),
	)
	want := `<html>
├── <head>
│   └── <title>
│       └── "t"
└── <body>
    ├── <div id='x'>
    │   ├── "hi"
    │   └── raw "<b>"
    └── <br />
`
	assert.Equal(t, want, doc.Tree())
}

func TestTreeEmpty(t *testing.T) {
	assert.Equal(t, "<p>\n", P().Tree())
}
