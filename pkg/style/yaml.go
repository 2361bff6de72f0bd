package style

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/tagkit/internal/errors"
)

// FromYAML builds a stylesheet from a YAML mapping, keeping document order:
//
//	body:
//	  color: black
//	  h1:
//	    font-size: 24
//
// Integer and float scalars become numbers, other scalars strings.
func FromYAML(data []byte) (*StyleSheet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("S004").Wrap(err)
	}
	if doc.Kind == 0 {
		return &StyleSheet{}, nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, errors.New("S004").WithDetail("expected a single document")
	}
	return sheetFromNode(doc.Content[0])
}

// LoadYAML reads and parses a YAML stylesheet file.
func LoadYAML(path string) (*StyleSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("S004").WithDetailf("reading %s", path).Wrap(err)
	}
	return FromYAML(data)
}

func sheetFromNode(n *yaml.Node) (*StyleSheet, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errors.New("S004").WithDetailf("line %d: expected a mapping", n.Line)
	}
	s := &StyleSheet{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, errors.New("S004").WithDetailf("line %d: selector must be a scalar", key.Line)
		}
		v, err := valueFromNode(val)
		if err != nil {
			return nil, err
		}
		s.Set(key.Value, v)
	}
	return s, nil
}

func valueFromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return sheetFromNode(n)
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!int":
			if v, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
				return v, nil
			}
		case "!!float":
			if v, err := strconv.ParseFloat(n.Value, 64); err == nil {
				return v, nil
			}
		}
		return n.Value, nil
	case yaml.AliasNode:
		return valueFromNode(n.Alias)
	default:
		return nil, errors.New("S004").WithDetailf("line %d: unsupported value", n.Line)
	}
}
