package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChild(t *testing.T) {
	n := Ul()
	require.NoError(t, n.AddChild(Li("a"), []*Node{Li("b"), nil}, "text"))
	out, err := n.Render()
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>a</li><li>b</li>text</ul>", out)

	require.NoError(t, n.AddChild())
	assert.Equal(t, 3, n.Len())
}

func TestAddChildRejectsAttributes(t *testing.T) {
	n := Div()
	err := n.AddChild(Span(), ID("x"))
	assert.ErrorIs(t, err, ErrUsage)
	assert.Equal(t, 0, n.Len())
}

func TestAddChildSelfClosing(t *testing.T) {
	err := Br().AddChild("x")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddChildSelf(t *testing.T) {
	n := Div()
	assert.ErrorIs(t, n.AddChild(n), ErrCyclicGraph)
	assert.Equal(t, 0, n.Len())
}

func TestAddChildCycleAtDepth(t *testing.T) {
	const depth = 1500

	root := Div(ID("root"))
	cur := root
	nodes := []*Node{root}
	for i := 0; i < depth; i++ {
		next := Div()
		require.NoError(t, cur.AddChild(next))
		nodes = append(nodes, next)
		cur = next
	}

	before := root.Clone()

	for _, target := range []*Node{nodes[depth], nodes[depth/2], nodes[1]} {
		err := target.AddChild(root)
		assert.ErrorIs(t, err, ErrCyclicGraph)
	}
	// An ancestor at any depth counts, not only the root.
	assert.ErrorIs(t, nodes[depth].AddChild(nodes[depth-1]), ErrCyclicGraph)

	assert.Equal(t, before, root)
}

func TestAddChildIsAtomic(t *testing.T) {
	parent := Div()
	child := Section()
	require.NoError(t, parent.AddChild(child))

	err := child.AddChild(P("ok"), Span(), Article(parent))
	assert.ErrorIs(t, err, ErrCyclicGraph)
	assert.Equal(t, 0, child.Len())
}

func TestAddChildSharedSubtree(t *testing.T) {
	shared := Span("s")
	a := Div(shared)
	b := Div(shared)
	n := Section()
	require.NoError(t, n.AddChild(a, b))
	assert.ErrorIs(t, shared.AddChild(n), ErrCyclicGraph)
}

func TestAddHeadWithoutHead(t *testing.T) {
	doc := Html(Body(H1("x")))
	require.NoError(t, doc.AddHead(Title("t")))
	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, "<html><head><title>t</title></head><body><h1>x</h1></body></html>", out)
}

func TestAddHeadMergesInPlace(t *testing.T) {
	doc := Html(Body(), Head(ID("h"), Title("a")))
	require.NoError(t, doc.AddHead(Meta(Charset("utf-8")), Link(Rel("icon"))))

	require.Equal(t, 2, doc.Len())
	head, ok := doc.Children()[1].(*Node)
	require.True(t, ok)
	assert.Equal(t, KindHead, head.Kind())

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t,
		"<html><body></body><head id='h'><title>a</title><meta charset='utf-8' /><link rel='icon' /></head></html>",
		out)

	require.NoError(t, doc.AddHead(Script(Src("/x.js"))))
	heads, err := doc.Select(KindHead)
	require.NoError(t, err)
	assert.Len(t, heads, 1)
	assert.Equal(t, 4, heads[0].Len())
}

func TestAddHeadErrors(t *testing.T) {
	doc := Html()
	assert.ErrorIs(t, doc.AddHead(doc), ErrCyclicGraph)
	assert.ErrorIs(t, doc.AddHead(Class("x")), ErrUsage)
	assert.ErrorIs(t, Hr().AddHead(Title("t")), ErrValidation)
	assert.Equal(t, 0, doc.Len())

	require.NoError(t, doc.AddHead())
	assert.Equal(t, 0, doc.Len())
}
