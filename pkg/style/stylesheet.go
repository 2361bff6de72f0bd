package style

import (
	"sort"
)

// Rule is one stylesheet entry: a property declaration or a nested rule
// set keyed by its selector.
type Rule struct {
	Key   string
	Value any
}

// Decl returns a property declaration. value is a string or a number.
func Decl(property string, value any) Rule {
	return Rule{Key: property, Value: value}
}

// Sel returns a nested rule set for selector.
func Sel(selector string, rules ...Rule) Rule {
	return Rule{Key: selector, Value: New(rules...)}
}

// StyleSheet is an insertion-ordered mapping of keys to rule values.
// The zero value is an empty stylesheet.
type StyleSheet struct {
	keys   []string
	values map[string]any
}

// New builds a stylesheet from rules. A repeated key replaces the earlier
// value and keeps its position.
func New(rules ...Rule) *StyleSheet {
	s := &StyleSheet{}
	for _, r := range rules {
		s.Set(r.Key, r.Value)
	}
	return s
}

// FromMap builds a stylesheet from a plain mapping. Keys are taken in sorted
// order. Nested map[string]any and map[string]string values become nested
// stylesheets.
func FromMap(m map[string]any) *StyleSheet {
	s := &StyleSheet{}
	for _, k := range sortedKeys(m) {
		s.Set(k, fromMapValue(m[k]))
	}
	return s
}

func fromMapValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return FromMap(t)
	case map[string]string:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = val
		}
		return FromMap(m)
	default:
		return v
	}
}

// Set stores value under key and returns s for chaining.
func (s *StyleSheet) Set(key string, value any) *StyleSheet {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
	return s
}

// Get returns the value stored under key.
func (s *StyleSheet) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of top-level entries.
func (s *StyleSheet) Len() int {
	return len(s.keys)
}

// Items returns the top-level entries in insertion order.
func (s *StyleSheet) Items() []Rule {
	out := make([]Rule, len(s.keys))
	for i, k := range s.keys {
		out[i] = Rule{Key: k, Value: s.values[k]}
	}
	return out
}

// Merge returns the shallow union of s and other. Values from other win for
// keys present in both; keys keep their first position and keys only in
// other are appended. Neither operand is modified.
func (s *StyleSheet) Merge(other *StyleSheet) *StyleSheet {
	out := &StyleSheet{}
	for _, k := range s.keys {
		out.Set(k, s.values[k])
	}
	if other != nil {
		for _, k := range other.keys {
			out.Set(k, other.values[k])
		}
	}
	return out
}

// MergeMap is Merge with a plain mapping as the right operand. Map keys are
// taken in sorted order.
func (s *StyleSheet) MergeMap(m map[string]any) *StyleSheet {
	return s.Merge(FromMap(m))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
