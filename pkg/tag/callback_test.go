package tag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type route struct {
	path    string
	handler CallbackFunc
	methods []string
}

type fakeRegistrar struct {
	routes []route
	err    error
}

func (f *fakeRegistrar) RegisterRoute(path string, handler CallbackFunc, methods []string) error {
	if f.err != nil {
		return f.err
	}
	f.routes = append(f.routes, route{path: path, handler: handler, methods: methods})
	return nil
}

func hello(context.Context) (*Node, error) {
	return P("hello"), nil
}

func TestAttachCallbackDefaults(t *testing.T) {
	reg := &fakeRegistrar{}
	btn := Button("Go")
	require.NoError(t, btn.AttachCallback(reg, Callback{Func: hello}))

	require.Len(t, reg.routes, 1)
	r := reg.routes[0]
	assert.True(t, strings.HasPrefix(r.path, CallbackPrefix))
	assert.Equal(t, []string{"GET"}, r.methods)
	assert.Equal(t, r.path, btn.CallbackRoute())

	got, err := r.handler(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p", got.Name())

	out, err := btn.Render()
	require.NoError(t, err)
	assert.Equal(t, "<button hx-get='"+r.path+"' hx-swap='innerHTML'>Go</button>", out)
}

func TestAttachCallbackUniquePaths(t *testing.T) {
	reg := &fakeRegistrar{}
	require.NoError(t, Div().AttachCallback(reg, Callback{Func: hello}))
	require.NoError(t, Div().AttachCallback(reg, Callback{Func: hello}))
	require.Len(t, reg.routes, 2)
	assert.NotEqual(t, reg.routes[0].path, reg.routes[1].path)
}

func TestAttachCallbackKeyedPathIsStable(t *testing.T) {
	reg := &fakeRegistrar{}
	a, b, c := Div(), Div(), Div()
	require.NoError(t, a.AttachCallback(reg, Callback{Func: hello, Key: "refresh"}))
	require.NoError(t, b.AttachCallback(reg, Callback{Func: hello, Key: "refresh"}))
	require.NoError(t, c.AttachCallback(reg, Callback{Func: hello, Key: "other"}))

	assert.Equal(t, a.CallbackRoute(), b.CallbackRoute())
	assert.NotEqual(t, a.CallbackRoute(), c.CallbackRoute())
	assert.Equal(t, CallbackPath("refresh"), a.CallbackRoute())
	assert.True(t, strings.HasPrefix(a.CallbackRoute(), CallbackPrefix))
}

func TestAttachCallbackOptions(t *testing.T) {
	reg := &fakeRegistrar{}
	form := Form()
	err := form.AttachCallback(reg, Callback{
		Func:      hello,
		Method:    "POST",
		OnEvent:   "click",
		OnScript:  "log()",
		PushURL:   "/next",
		Swap:      "outerHTML",
		Target:    "#out",
		Trigger:   "submit",
		Vals:      map[string]any{"n": 1},
		Boost:     true,
		Confirm:   "Sure?",
		Headers:   map[string]string{"X-A": "b"},
		Indicator: "#spin",
		Sync:      "queue last",
		Validate:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"POST"}, reg.routes[0].methods)

	assert.Equal(t, []string{
		"hx-post", "hx-on:click", "hx-push-url", "hx-swap", "hx-target", "hx-trigger",
		"hx-vals", "hx-boost", "hx-confirm", "hx-headers", "hx-indicator", "hx-sync", "hx-validate",
	}, form.Attributes().Keys())

	vals, _ := form.Attr("hx-vals")
	assert.JSONEq(t, `{"n":1}`, vals.(string))

	out, err := form.Render()
	require.NoError(t, err)
	assert.Contains(t, out, `hx-vals='{&quot;n&quot;:1}'`)
	assert.Contains(t, out, "hx-boost='true'")
}

func TestAttachCallbackRequestConfig(t *testing.T) {
	reg := &fakeRegistrar{}
	n := Div()
	require.NoError(t, n.AttachCallback(reg, Callback{
		Func:          hello,
		RequestConfig: map[string]any{"timeout": 100},
	}))
	v, ok := n.Attr("hx-request")
	require.True(t, ok)
	assert.JSONEq(t, `{"timeout":100}`, v.(string))

	m := Div()
	require.NoError(t, m.AttachCallback(reg, Callback{
		Func:          hello,
		Request:       `"timeout":5`,
		RequestConfig: map[string]any{"ignored": true},
	}))
	v, _ = m.Attr("hx-request")
	assert.Equal(t, `"timeout":5`, v)
}

func TestAttachCallbackErrors(t *testing.T) {
	reg := &fakeRegistrar{}
	n := Div()

	assert.ErrorIs(t, n.AttachCallback(nil, Callback{Func: hello}), ErrUsage)
	assert.ErrorIs(t, n.AttachCallback(reg, Callback{}), ErrUsage)
	assert.ErrorIs(t, n.AttachCallback(reg, Callback{Func: hello, Method: "trace"}), ErrUsage)

	boom := errors.New("router closed")
	err := n.AttachCallback(&fakeRegistrar{err: boom}, Callback{Func: hello})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, ErrUsage)

	err = n.AttachCallback(reg, Callback{Func: hello, Vals: map[string]any{"f": func() {}}})
	assert.ErrorIs(t, err, ErrUsage)

	assert.Empty(t, reg.routes)
	assert.Equal(t, 0, n.Attributes().Len())
	assert.Empty(t, n.CallbackRoute())
}
