package style

import (
	"strings"

	"github.com/aymerick/douceur/parser"

	"github.com/vango-dev/tagkit/internal/errors"
)

// FromDeclarations parses inline declarations such as the content of a
// style attribute into a flat stylesheet:
//
//	FromDeclarations("color: red; font-size: 16px;")
//
// Every non-blank statement must contain exactly one colon, otherwise
// FromDeclarations fails with ErrValidation. !important is kept as part of
// the value.
func FromDeclarations(text string) (*StyleSheet, error) {
	var stmts []string
	for _, stmt := range strings.Split(text, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if n := strings.Count(stmt, ":"); n != 1 {
			return nil, errors.New("S003").WithDetailf("%q has %d colons", strings.TrimSpace(stmt), n)
		}
		stmts = append(stmts, stmt)
	}

	s := &StyleSheet{}
	if len(stmts) == 0 {
		return s, nil
	}

	decls, err := parser.ParseDeclarations(strings.Join(stmts, ";") + ";")
	if err != nil {
		return nil, errors.New("S003").Wrap(err)
	}
	for _, d := range decls {
		key := strings.Trim(d.Property, " :;\n")
		if key == "" {
			return nil, errors.New("S003").WithDetail("declaration without property")
		}
		value := strings.Trim(d.Value, " :;\n")
		if d.Important {
			value += " !important"
		}
		s.Set(key, value)
	}
	return s, nil
}
