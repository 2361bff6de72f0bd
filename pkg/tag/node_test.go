package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKinds(t *testing.T) {
	n, err := New(KindDiv, ID("main"), "text")
	require.NoError(t, err)
	assert.Equal(t, KindDiv, n.Kind())
	assert.Equal(t, "div", n.Name())
	assert.Equal(t, 1, n.Len())

	_, err = New(KindCustom)
	assert.ErrorIs(t, err, ErrUsage)

	_, err = New(Kind(250))
	assert.ErrorIs(t, err, ErrUsage)
}

func TestSingleLetterTagsUseBareNames(t *testing.T) {
	tests := map[string]*Node{
		"a": A(), "b": B(), "i": I(), "p": P(), "q": Q(), "s": S(), "u": U(),
	}
	for name, n := range tests {
		assert.Equal(t, name, n.Name())
		out, err := n.Render()
		require.NoError(t, err)
		assert.Equal(t, "<"+name+"></"+name+">", out)
	}
}

func TestNewCustom(t *testing.T) {
	n, err := NewCustom(" My-Widget ", "x")
	require.NoError(t, err)
	assert.Equal(t, KindCustom, n.Kind())
	assert.Equal(t, "my-widget", n.Name())
	assert.False(t, n.SelfClosing())

	known, err := NewCustom("BR")
	require.NoError(t, err)
	assert.Equal(t, KindBr, known.Kind())
	assert.True(t, known.SelfClosing())

	_, err = NewCustom("  ")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestSelfClosingRejectsChildren(t *testing.T) {
	for _, k := range Kinds() {
		if !k.SelfClosing() {
			continue
		}
		t.Run(k.Name(), func(t *testing.T) {
			_, err := New(k, "child")
			assert.ErrorIs(t, err, ErrValidation)

			_, err = New(k, Span())
			assert.ErrorIs(t, err, ErrValidation)

			n, err := New(k, ID("x"))
			require.NoError(t, err)
			out, err := n.Render()
			require.NoError(t, err)
			assert.Equal(t, "<"+k.Name()+" id='x' />", out)
			assert.NotContains(t, out, "</")
		})
	}
}

func TestSelfClosingKinds(t *testing.T) {
	want := []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "source", "track", "wbr"}
	var got []string
	for _, k := range Kinds() {
		if k.SelfClosing() {
			got = append(got, k.Name())
		}
	}
	assert.ElementsMatch(t, want, got)
}

func TestConstructorPanicsOnMisuse(t *testing.T) {
	assert.Panics(t, func() { Img(Span()) })
	assert.NotPanics(t, func() { Img(Src("a.png"), nil) })
}

func TestLookupKind(t *testing.T) {
	k, ok := LookupKind("TABLE")
	require.True(t, ok)
	assert.Equal(t, KindTable, k)

	_, ok = LookupKind("blink")
	assert.False(t, ok)

	assert.Equal(t, "custom", KindCustom.String())
}

func TestConditionalArguments(t *testing.T) {
	n := Div(
		AttrIf(false, ID("hidden")),
		AttrIf(true, Class("shown")),
		If(false, Span("no")),
		If(true, Span("yes")),
		[]*Node{nil, Em("e")},
		[]any{"a", []Attr{Data("k", "v")}},
	)
	out, err := n.Render()
	require.NoError(t, err)
	assert.Equal(t, "<div class='shown' data-k='v'><span>yes</span><em>e</em>a</div>", out)
}

func TestAttributesOrderAndOverwrite(t *testing.T) {
	n := Div(ID("a"), Class("x"))
	n.SetAttr("title", "t").SetAttr("id", "b")
	assert.Equal(t, []string{"id", "class", "title"}, n.Attributes().Keys())

	v, ok := n.Attr("id")
	require.True(t, ok)
	assert.Equal(t, "b", v)

	n.Attributes().Delete("class")
	assert.Equal(t, []string{"id", "title"}, n.Attributes().Keys())
	assert.Equal(t, 2, n.Attributes().Len())
}

func TestClone(t *testing.T) {
	orig := Div(ID("root"), P("one", Span("two")))
	c := orig.Clone()
	assert.Equal(t, orig, c)

	require.NoError(t, c.AddChild(Hr()))
	c.SetAttr("id", "copy")
	assert.Equal(t, 1, orig.Len())
	v, _ := orig.Attr("id")
	assert.Equal(t, "root", v)
}

func TestStringAndGoString(t *testing.T) {
	assert.Equal(t, "<div id='main'>", Div(ID("main"), "x").String())
	assert.Equal(t, "<br />", Br().String())
	assert.Equal(t, "tag.Node{ul, 2 children}", Ul(Li(), Li()).GoString())
}

func TestWireKey(t *testing.T) {
	tests := map[string]string{
		"class_":     "class",
		"for_":       "for",
		"as_":        "as",
		"hx_get":     "hx-get",
		"data_foo_":  "data-foo",
		"aria-label": "aria-label",
		"plain":      "plain",
		"trailing__": "trailing",
	}
	for in, want := range tests {
		assert.Equal(t, want, WireKey(in), in)
	}
}

func TestClasses(t *testing.T) {
	a := Classes("btn", []string{"", "large"}, map[string]bool{"z": true, "active": true, "off": false})
	assert.Equal(t, "btn large active z", a.Value)
}

func TestRange(t *testing.T) {
	items := []string{"a", "", "c"}
	nodes := Range(items, func(s string, i int) *Node {
		if s == "" {
			return nil
		}
		return Li(Textf("%d:%s", i, s))
	})
	out, err := Ul(nodes).Render()
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>0:a</li><li>2:c</li></ul>", out)
}

func TestWhenAndIfElse(t *testing.T) {
	called := false
	assert.Nil(t, When(false, func() *Node { called = true; return Div() }))
	assert.False(t, called)
	assert.Equal(t, "span", IfElse(false, Div(), Span()).Name())
}
