package style

import (
	"strconv"
	"strings"

	"github.com/vango-dev/tagkit/internal/errors"
)

// DefaultIndent is the number of spaces before each declaration.
const DefaultIndent = 4

const trimChars = " ;:"

// Render flattens the stylesheet to CSS text with the default indent.
func (s *StyleSheet) Render() (string, error) {
	return s.RenderWith("", DefaultIndent)
}

// RenderWith flattens the stylesheet under parent, the selector applied to
// top-level declarations.
//
// Each level writes its declarations as one block, then the blocks of its
// nested rule sets in order. A level without nested rule sets needs a
// selector: rendering a flat stylesheet with an empty parent fails with
// ErrValidation. Values other than strings, numbers and rule sets fail with
// ErrUnrenderable. No output is returned on error.
func (s *StyleSheet) RenderWith(parent string, indent int) (string, error) {
	if indent < 0 {
		indent = 0
	}
	var b strings.Builder
	if err := s.write(&b, strings.TrimSpace(parent), strings.Repeat(" ", indent)); err != nil {
		return "", err
	}
	return b.String(), nil
}

type declaration struct {
	property string
	value    string
}

type nestedRules struct {
	selector string
	sheet    *StyleSheet
}

func (s *StyleSheet) write(b *strings.Builder, parent, pad string) error {
	var decls []declaration
	var nested []nestedRules

	for _, k := range s.keys {
		switch v := s.values[k].(type) {
		case *StyleSheet:
			nested = append(nested, nestedRules{selector: k, sheet: v})
		case map[string]any, map[string]string:
			nested = append(nested, nestedRules{selector: k, sheet: fromMapValue(v).(*StyleSheet)})
		default:
			value, ok := formatValue(v)
			if !ok {
				return errors.New("S002").WithDetailf("%q has type %T", k, v)
			}
			decls = append(decls, declaration{property: strings.TrimRight(k, trimChars), value: value})
		}
	}

	if len(nested) == 0 && parent == "" {
		return errors.New("S001").
			WithSuggestion("Wrap the declarations in a selector or render with a parent selector")
	}

	if len(decls) > 0 {
		b.WriteString(parent)
		b.WriteString(" {\n")
		for _, d := range decls {
			b.WriteString(pad)
			b.WriteString(d.property)
			b.WriteString(": ")
			b.WriteString(d.value)
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}

	for _, n := range nested {
		if n.sheet == nil {
			return errors.New("S002").WithDetailf("%q is a nil rule set", n.selector)
		}
		sel := strings.TrimSpace(parent + " " + n.selector)
		if err := n.sheet.write(b, sel, pad); err != nil {
			return err
		}
	}
	return nil
}

// formatValue renders a declaration value. Strings lose trailing separators;
// numbers get a " px" suffix. Floats use the shortest exact form, so a whole
// float prints without a fraction: 25.0 renders as "25 px" and 2.5 as "2.5 px".
func formatValue(v any) (string, bool) {
	var num string
	switch t := v.(type) {
	case string:
		return strings.TrimRight(t, trimChars), true
	case int:
		num = strconv.Itoa(t)
	case int8:
		num = strconv.FormatInt(int64(t), 10)
	case int16:
		num = strconv.FormatInt(int64(t), 10)
	case int32:
		num = strconv.FormatInt(int64(t), 10)
	case int64:
		num = strconv.FormatInt(t, 10)
	case uint:
		num = strconv.FormatUint(uint64(t), 10)
	case uint8:
		num = strconv.FormatUint(uint64(t), 10)
	case uint16:
		num = strconv.FormatUint(uint64(t), 10)
	case uint32:
		num = strconv.FormatUint(uint64(t), 10)
	case uint64:
		num = strconv.FormatUint(t, 10)
	case float32:
		num = strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		num = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return "", false
	}
	return num + " px", true
}
