package tag

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/vango-dev/tagkit/internal/errors"
)

// CallbackPrefix is the path prefix of every route created by
// AttachCallback.
const CallbackPrefix = "/tagkit-callbacks/"

// CallbackFunc produces the fragment returned when a callback route is hit.
// Request-scoped values travel in ctx.
type CallbackFunc func(ctx context.Context) (*Node, error)

// RouteRegistrar registers callback routes with the serving layer.
// Methods are uppercase HTTP method names.
type RouteRegistrar interface {
	RegisterRoute(path string, handler CallbackFunc, methods []string) error
}

// Callback describes a server round trip triggered from an element. Zero
// fields are not rendered. Method defaults to get and Swap to innerHTML.
//
// Each field maps to the htmx attribute of the same name, see
// https://htmx.org/reference/.
type Callback struct {
	Func CallbackFunc

	// Key names the callback. Attaching callbacks with the same key always
	// yields the same path, so re-rendering a tree re-registers the route
	// instead of adding a new one. Without a key every attachment gets a
	// fresh random path.
	Key string

	// Method is one of get, post, put, patch or delete.
	Method string

	// OnEvent and OnScript render as hx-on:<event>='<script>'.
	OnEvent  string
	OnScript string

	PushURL   string
	Select    string
	SelectOOB string
	Swap      string
	SwapOOB   string
	Target    string
	Trigger   string

	// Vals and Headers are encoded as JSON.
	Vals    map[string]any
	Headers map[string]string

	Boost       bool
	Confirm     string
	Disable     bool
	DisabledElt string
	Disinherit  string
	Encoding    string
	Ext         string
	History     bool
	HistoryElt  bool
	Include     string
	Indicator   string
	Inherit     string
	Params      string
	Preserve    bool
	Prompt      string
	ReplaceURL  string

	// Request is written as-is; RequestConfig is encoded as JSON and used
	// when Request is empty.
	Request       string
	RequestConfig map[string]any

	Sync     string
	Validate bool
}

var callbackMethods = map[string]bool{
	"get":    true,
	"post":   true,
	"put":    true,
	"patch":  true,
	"delete": true,
}

// AttachCallback registers cb.Func with reg under a new unique path and sets
// hx-<method> and the other hx-* attributes on n. The path is returned by
// CallbackRoute afterwards.
//
// Nothing on n changes when validation, encoding or registration fails.
func (n *Node) AttachCallback(reg RouteRegistrar, cb Callback) error {
	if reg == nil {
		return errors.New("T007").WithDetail("no route registrar")
	}
	if cb.Func == nil {
		return errors.New("T007").WithDetail("callback has no function")
	}
	method := strings.ToLower(cb.Method)
	if method == "" {
		method = "get"
	}
	if !callbackMethods[method] {
		return errors.New("T007").
			WithDetailf("method %q", cb.Method).
			WithSuggestion("Use get, post, put, patch or delete")
	}

	attrs, err := cb.attributes()
	if err != nil {
		return err
	}

	path := CallbackPath(cb.Key)
	if err := reg.RegisterRoute(path, cb.Func, []string{strings.ToUpper(method)}); err != nil {
		return errors.New("T007").WithDetailf("registering %s", path).Wrap(err)
	}

	n.callbackRoute = path
	n.attrs.Set("hx-"+method, path)
	for _, a := range attrs {
		n.attrs.Set(a.Key, a.Value)
	}
	return nil
}

// callbackSpace namespaces the name-based UUIDs derived from callback keys.
var callbackSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://htmx.org/tagkit/callbacks"))

// CallbackPath returns the route path for a callback key: a name-based
// UUID under CallbackPrefix, or a random one when key is empty.
func CallbackPath(key string) string {
	if key == "" {
		return CallbackPrefix + uuid.NewString()
	}
	return CallbackPrefix + uuid.NewSHA1(callbackSpace, []byte(key)).String()
}

// attributes lists the hx-* attributes for every non-zero option.
func (cb Callback) attributes() ([]Attr, error) {
	var out []Attr
	str := func(key, v string) {
		if v != "" {
			out = append(out, Attr{Key: key, Value: v})
		}
	}
	flag := func(key string, v bool) {
		if v {
			out = append(out, Attr{Key: key, Value: "true"})
		}
	}
	encode := func(key string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return errors.New("T007").WithDetailf("encoding %s", key).Wrap(err)
		}
		out = append(out, Attr{Key: key, Value: string(b)})
		return nil
	}

	if cb.OnEvent != "" {
		out = append(out, Attr{Key: "hx-on:" + cb.OnEvent, Value: cb.OnScript})
	}
	str("hx-push-url", cb.PushURL)
	str("hx-select", cb.Select)
	str("hx-select-oob", cb.SelectOOB)
	swap := cb.Swap
	if swap == "" {
		swap = "innerHTML"
	}
	str("hx-swap", swap)
	str("hx-swap-oob", cb.SwapOOB)
	str("hx-target", cb.Target)
	str("hx-trigger", cb.Trigger)
	if len(cb.Vals) > 0 {
		if err := encode("hx-vals", cb.Vals); err != nil {
			return nil, err
		}
	}
	flag("hx-boost", cb.Boost)
	str("hx-confirm", cb.Confirm)
	flag("hx-disable", cb.Disable)
	str("hx-disabled-elt", cb.DisabledElt)
	str("hx-disinherit", cb.Disinherit)
	str("hx-encoding", cb.Encoding)
	str("hx-ext", cb.Ext)
	if len(cb.Headers) > 0 {
		if err := encode("hx-headers", cb.Headers); err != nil {
			return nil, err
		}
	}
	flag("hx-history", cb.History)
	flag("hx-history-elt", cb.HistoryElt)
	str("hx-include", cb.Include)
	str("hx-indicator", cb.Indicator)
	str("hx-inherit", cb.Inherit)
	str("hx-params", cb.Params)
	flag("hx-preserve", cb.Preserve)
	str("hx-prompt", cb.Prompt)
	str("hx-replace-url", cb.ReplaceURL)
	if cb.Request != "" {
		str("hx-request", cb.Request)
	} else if len(cb.RequestConfig) > 0 {
		if err := encode("hx-request", cb.RequestConfig); err != nil {
			return nil, err
		}
	}
	str("hx-sync", cb.Sync)
	flag("hx-validate", cb.Validate)
	return out, nil
}
