package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/adk-format/adk/format"
	"github.com/adk-format/adk/ir"
	"github.com/adk-format/adk/token"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

// identifierKey is the key holding a structure's identifier.
const identifierKey = "identifier"

type EncState struct {
	depth, indent int
	escape        bool
	newline       bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{escape: true}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if err := node.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	var err error
	switch es.format {
	case format.TextFormat:
		err = encodeText(node, w, es)
	case format.JSONFormat:
		es.escape = true
		if err = checkKeys(node); err == nil {
			err = encodeText(node, w, es)
		}
	case format.YAMLFormat:
		err = encodeYAML(node, w, es)
		es.newline = false
	case format.IRFormat:
		err = encodeIR(node, w, es)
	default:
		err = fmt.Errorf("%w: unknown format %d", ErrEncoding, es.format)
	}
	if err != nil {
		return err
	}
	if es.newline {
		return writeString(w, "\n")
	}
	return nil
}

func encodeText(node *ir.Node, w io.Writer, es *EncState) error {
	if !node.Root {
		if err := writeField(w, es, node.Type, node.Name); err != nil {
			return err
		}
	}
	return encodeValue(node, w, es)
}

func encodeValue(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.LeafType:
		return writeColored(w, es, ir.LeafType, ValueColor, quote(node.Value, es))
	case ir.StructType:
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
	}
	if err := writeColored(w, es, ir.StructType, SepColor, "{"); err != nil {
		return err
	}
	es.depth++
	if err := writeNL(w, es); err != nil {
		return err
	}
	if err := writeColored(w, es, ir.StructType, FieldColor, quote(identifierKey, es)); err != nil {
		return err
	}
	if err := writeColon(w, es, ir.StructType); err != nil {
		return err
	}
	if err := writeColored(w, es, ir.StructType, IdentifierColor, quote(node.Identifier, es)); err != nil {
		return err
	}
	for _, child := range node.Children {
		if child == nil {
			return fmt.Errorf("%w: nil child in %q", ErrEncoding, node.Identifier)
		}
		if err := writeColored(w, es, ir.StructType, SepColor, ","); err != nil {
			return err
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, es, child.Type, child.Name); err != nil {
			return err
		}
		if err := encodeValue(child, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, ir.StructType, SepColor, "}")
}

func quote(v string, es *EncState) string {
	if es.escape {
		return token.Quote(v)
	}
	return token.QuoteVerbatim(v)
}

func writeField(w io.Writer, es *EncState, t ir.Type, name string) error {
	if err := writeColored(w, es, t, FieldColor, quote(name, es)); err != nil {
		return err
	}
	return writeColon(w, es, t)
}

func writeColon(w io.Writer, es *EncState, t ir.Type) error {
	sep := ":"
	if es.indent > 0 {
		sep = ": "
	}
	return writeColored(w, es, t, SepColor, sep)
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.indent <= 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeColored(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// ToYAML returns the YAML data model of node: ordered maps for structures
// and quoted strings for leaves.
func ToYAML(node *ir.Node) (any, error) {
	v, err := yamlValue(node)
	if err != nil {
		return nil, err
	}
	if node.Root {
		return v, nil
	}
	return yaml.MapSlice{{Key: node.Name, Value: v}}, nil
}

// checkKeys rejects structures with a member named like the identifier key.
// The text parser keeps the first such key as the identifier, but JSON and
// YAML consumers cannot hold both.
func checkKeys(node *ir.Node) error {
	return node.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type != ir.StructType {
			return false, nil
		}
		return true, keyClash(n)
	})
}

func keyClash(n *ir.Node) error {
	if _, ok := n.Lookup(identifierKey); ok {
		return fmt.Errorf("%w: member %q of %q clashes with the identifier key", ErrEncoding, identifierKey, n.Identifier)
	}
	return nil
}

// yamlString is always written as a double quoted scalar, so leaves such
// as "true" or ".inf" read back as strings.
type yamlString string

func (s yamlString) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(s))), nil
}

func yamlValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.LeafType:
		return yamlString(node.Value), nil
	case ir.StructType:
	default:
		return nil, fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
	}
	res := make(yaml.MapSlice, 0, len(node.Children)+1)
	if err := keyClash(node); err != nil {
		return nil, err
	}
	res = append(res, yaml.MapItem{Key: identifierKey, Value: yamlString(node.Identifier)})
	for _, child := range node.Children {
		if child == nil {
			return nil, fmt.Errorf("%w: nil child in %q", ErrEncoding, node.Identifier)
		}
		cv, err := yamlValue(child)
		if err != nil {
			return nil, err
		}
		res = append(res, yaml.MapItem{Key: child.Name, Value: cv})
	}
	return res, nil
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := ToYAML(node)
	if err != nil {
		return err
	}
	var yopts []yaml.EncodeOption
	if es.indent > 0 {
		yopts = append(yopts, yaml.Indent(es.indent))
	}
	d, err := yaml.MarshalWithOptions(v, yopts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func encodeIR(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := json.Marshal(node)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if es.indent > 0 {
		buf := bytes.NewBuffer(nil)
		if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		d = buf.Bytes()
	}
	_, err = w.Write(d)
	return err
}
