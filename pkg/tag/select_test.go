package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		if s, ok := n.Children()[0].(string); ok {
			out[i] = s
		}
	}
	return out
}

func TestSelectPop(t *testing.T) {
	doc := Html(Div(), Span(), P())
	got, err := doc.Select("div", PopMatches())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, KindDiv, got[0].Kind())
	assert.Equal(t, 2, doc.Len())
}

func TestSelectByKindAndName(t *testing.T) {
	doc := Ul(Li("a"), Li("b"), P("c"))

	byKind, err := doc.Select(KindLi)
	require.NoError(t, err)
	byName, err := doc.Select("LI")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, texts(byKind))
	assert.Equal(t, byKind, byName)
	assert.Equal(t, 3, doc.Len())
}

func TestSelectCustomName(t *testing.T) {
	doc := Div(CustomElement("x-card", "one"), Span())
	got, err := doc.Select("x-card")
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, texts(got))
}

func TestSelectRecursiveOrder(t *testing.T) {
	doc := Div(
		P("1"),
		Section(P("2"), Div(P("3"))),
		P("4"),
	)
	got, err := doc.Select(KindP, Recurse())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4", "2", "3"}, texts(got))

	direct, err := doc.Select(KindP)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, texts(direct))
}

func TestSelectDoesNotDescendIntoMatches(t *testing.T) {
	doc := Body(Div("outer", Div("inner")))
	got, err := doc.Select(KindDiv, Recurse())
	require.NoError(t, err)
	assert.Equal(t, []string{"outer"}, texts(got))
}

func TestSelectFirstMatch(t *testing.T) {
	doc := Div(Section(P("deep")), P("direct"))

	got, err := doc.Select(KindP, Recurse(), FirstMatch())
	require.NoError(t, err)
	assert.Equal(t, []string{"deep"}, texts(got))

	got, err = doc.Select(KindP, FirstMatch())
	require.NoError(t, err)
	assert.Equal(t, []string{"direct"}, texts(got))
}

func TestSelectNoMatch(t *testing.T) {
	doc := Div(Span())

	got, err := doc.Select(KindTable, Recurse())
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = doc.Select(KindTable, PopMatches())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, doc.Len())
}

func TestSelectInvalidSelectors(t *testing.T) {
	doc := Div(Span())

	_, err := doc.Select(Span())
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), "T004")

	_, err = doc.Select(42)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, err.Error(), "T006")

	_, err = doc.Select(KindCustom)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestSelectPopRecursive(t *testing.T) {
	doc := Div(
		Span("a"),
		P(Span("b"), Em(), Span("c")),
		Span("d"),
	)
	got, err := doc.Select(KindSpan, Recurse(), PopMatches())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d", "b", "c"}, texts(got))

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, "<div><p><em></em></p></div>", out)
}

func TestSelectRoundTrip(t *testing.T) {
	doc := Html(
		Head(Title("t")),
		Body(
			Div(ID("a"), P("1"), Span("x")),
			P("2"),
			Section(Div(P("3")), P("4"), Em("e")),
			P("5"),
		),
	)
	want, err := doc.Render()
	require.NoError(t, err)

	for _, sel := range []any{KindP, "div", KindSpan, KindHead} {
		matches, err := doc.SelectMatches(sel, Recurse(), PopMatches())
		require.NoError(t, err)
		require.NotEmpty(t, matches)

		popped, err := doc.Render()
		require.NoError(t, err)
		assert.NotEqual(t, want, popped)

		require.NoError(t, Reinsert(matches))
		got, err := doc.Render()
		require.NoError(t, err)
		assert.Equal(t, want, got, "selector %v", sel)
	}
}

func TestReinsertValidates(t *testing.T) {
	doc := Div()
	assert.ErrorIs(t, Reinsert([]Match{{Parent: doc, Index: 3, Node: P()}}), ErrUsage)
	assert.ErrorIs(t, Reinsert([]Match{{Index: 0, Node: P()}}), ErrUsage)
	assert.ErrorIs(t, Reinsert([]Match{{Parent: doc, Index: 0, Node: doc}}), ErrCyclicGraph)
}

func TestPop(t *testing.T) {
	doc := Div(P("1"), P("2"))

	p, err := doc.Pop(KindP)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, texts([]*Node{p}))
	assert.Equal(t, 1, doc.Len())

	_, err = doc.Pop(KindTable)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPopOrDefault(t *testing.T) {
	doc := Div(Header("h"))

	def := Title("default")
	got, err := doc.PopOrDefault(KindTitle, def)
	require.NoError(t, err)
	assert.Same(t, def, got)

	got, err = doc.PopOrDefault(KindHeader, def)
	require.NoError(t, err)
	assert.Equal(t, KindHeader, got.Kind())
	assert.Equal(t, 0, doc.Len())

	_, err = doc.PopOrDefault(Div(), def)
	assert.ErrorIs(t, err, ErrUsage)
}
