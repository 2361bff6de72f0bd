package tag

import (
	"sort"
	"strings"
)

// Attr represents a single attribute passed to an element constructor.
// An Attr with an empty key is ignored, which allows conditional attributes.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attributes is an insertion-ordered attribute map. Setting an existing key
// replaces its value in place.
type Attributes struct {
	keys   []string
	values map[string]any
}

// Set stores value under key.
func (a *Attributes) Set(key string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Delete removes key, keeping the order of the remaining keys.
func (a *Attributes) Delete(key string) {
	if _, ok := a.values[key]; !ok {
		return
	}
	delete(a.values, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.keys)
}

// Keys returns the keys in insertion order.
func (a *Attributes) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Each calls fn for every attribute in insertion order.
func (a *Attributes) Each(fn func(key string, value any)) {
	for _, k := range a.keys {
		fn(k, a.values[k])
	}
}

func (a *Attributes) clone() Attributes {
	if len(a.keys) == 0 {
		return Attributes{}
	}
	c := Attributes{
		keys:   make([]string, len(a.keys)),
		values: make(map[string]any, len(a.values)),
	}
	copy(c.keys, a.keys)
	for k, v := range a.values {
		c.values[k] = v
	}
	return c
}

// booleanAttrs render as bare presence flags when their value is a bool.
var booleanAttrs = map[string]bool{
	"autofocus":       true,
	"checked":         true,
	"disabled":        true,
	"multiple":        true,
	"readonly":        true,
	"required":        true,
	"webkitdirectory": true,
}

// IsBooleanAttr reports whether the wire attribute name is a presence flag.
func IsBooleanAttr(name string) bool {
	return booleanAttrs[name]
}

// WireKey converts an attribute key into its wire name: trailing underscores
// mark reserved words (class_, for_, as_) and are dropped, remaining
// underscores become hyphens (hx_get -> hx-get).
func WireKey(key string) string {
	key = strings.TrimRight(key, "_")
	return strings.ReplaceAll(key, "_", "-")
}

// Attribute creates an Attr with an arbitrary key. The key is normalized
// with WireKey at render time.
func Attribute(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return Attribute("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return Attribute("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return Attribute("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return Attribute("title", title) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id='123'
func Data(key, value string) Attr { return Attribute("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return Attribute("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return Attribute("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return Attribute("aria-hidden", hidden) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return Attribute("lang", lang) }

// Link attributes

func Href(url string) Attr     { return Attribute("href", url) }
func Target(target string) Attr { return Attribute("target", target) }
func Rel(rel string) Attr       { return Attribute("rel", rel) }

// Form attributes

func Name(name string) Attr          { return Attribute("name", name) }
func Value(value string) Attr        { return Attribute("value", value) }
func Type(t string) Attr             { return Attribute("type", t) }
func Placeholder(text string) Attr   { return Attribute("placeholder", text) }
func Action(url string) Attr         { return Attribute("action", url) }
func Method(method string) Attr      { return Attribute("method", method) }
func For(id string) Attr             { return Attribute("for", id) }
func FormAttr(id string) Attr        { return Attribute("form", id) }
func Autocomplete(value string) Attr { return Attribute("autocomplete", value) }

// Presence flags

func Checked() Attr         { return Attribute("checked", true) }
func Disabled() Attr        { return Attribute("disabled", true) }
func Required() Attr        { return Attribute("required", true) }
func Readonly() Attr        { return Attribute("readonly", true) }
func Multiple() Attr        { return Attribute("multiple", true) }
func Autofocus() Attr       { return Attribute("autofocus", true) }
func WebkitDirectory() Attr { return Attribute("webkitdirectory", true) }

// Media and metadata attributes

func Src(url string) Attr          { return Attribute("src", url) }
func Alt(text string) Attr         { return Attribute("alt", text) }
func Width(w int) Attr             { return Attribute("width", w) }
func Height(h int) Attr            { return Attribute("height", h) }
func Charset(charset string) Attr  { return Attribute("charset", charset) }
func Content(content string) Attr  { return Attribute("content", content) }
func HttpEquiv(value string) Attr  { return Attribute("http-equiv", value) }
func As(value string) Attr         { return Attribute("as_", value) }
func Colspan(n int) Attr           { return Attribute("colspan", n) }
func Rowspan(n int) Attr           { return Attribute("rowspan", n) }
func Crossorigin(value string) Attr { return Attribute("crossorigin", value) }
func Integrity(value string) Attr  { return Attribute("integrity", value) }

// Conditional attributes

// AttrIf returns a when condition holds and an empty Attr otherwise.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Classes merges class values, keeping only the map entries set to true.
// Map entries are added in sorted order so output stays deterministic.
// Accepts string, []string and map[string]bool.
func Classes(classes ...any) Attr {
	var result []string
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			if v != "" {
				result = append(result, v)
			}
		case []string:
			for _, s := range v {
				if s != "" {
					result = append(result, s)
				}
			}
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for class, include := range v {
				if include && class != "" {
					keys = append(keys, class)
				}
			}
			sort.Strings(keys)
			result = append(result, keys...)
		}
	}
	return Attribute("class", strings.Join(result, " "))
}
