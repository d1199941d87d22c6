package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/adk-format/adk/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("ident", func(params ...any) (any, error) {
			n, err := GetPath(doc, params[0].(string))
			if err != nil {
				return nil, err
			}
			if n.Type != ir.StructType {
				return nil, fmt.Errorf("%q is a %s", params[0], n.Type)
			}
			return n.Identifier, nil
		},
			new(func(string) string)),
		expr.Function("getpath", func(params ...any) (any, error) {
			n, err := GetPath(doc, params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(n), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := GetPath(doc, params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// GetPath returns the node at the dotted member path relative to doc.
func GetPath(doc *ir.Node, path string) (*ir.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("no document")
	}
	if path == "" || path == "." {
		return doc, nil
	}
	n := doc
	for _, name := range strings.Split(path, ".") {
		if n.Type != ir.StructType {
			return nil, fmt.Errorf("%q: %s is not a structure", path, n.Name)
		}
		c, ok := n.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%q: no member %q", path, name)
		}
		n = c
	}
	return n, nil
}
