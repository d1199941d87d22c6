package patch

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/adk-format/adk/debug"
	"github.com/adk-format/adk/encode"
	"github.com/adk-format/adk/format"
	"github.com/adk-format/adk/gomap"
	"github.com/adk-format/adk/ir"
	"github.com/adk-format/adk/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Apply applies the RFC 6902 operations ops to a copy of node.
func Apply(node *ir.Node, ops []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrPatch, err)
	}
	return run(node, "json patch", p.Apply)
}

// Merge applies the RFC 7386 merge patch doc to a copy of node.
func Merge(node *ir.Node, doc []byte) (*ir.Node, error) {
	return run(node, "merge patch", func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, doc)
	})
}

// CreateMerge returns a merge patch turning from into to.
func CreateMerge(from, to *ir.Node) ([]byte, error) {
	fd, err := MarshalJSON(from)
	if err != nil {
		return nil, err
	}
	td, err := MarshalJSON(to)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

// ApplyValue encodes v, applies ops and decodes the result back into v.
// v must be a non-nil pointer to a registered type.
func ApplyValue(v any, ops []byte, opts ...gomap.Option) error {
	mOpts := make([]gomap.MapOption, len(opts))
	uOpts := make([]gomap.UnmapOption, len(opts))
	for i, o := range opts {
		mOpts[i], uOpts[i] = o, o
	}
	node, err := gomap.Encode(v, mOpts...)
	if err != nil {
		return err
	}
	res, err := Apply(node, ops)
	if err != nil {
		return err
	}
	return gomap.Decode(res, v, uOpts...)
}

// MarshalJSON writes node as a root JSON document.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrPatch)
	}
	root := node.Clone()
	root.Name = ""
	root.AsRoot()
	var buf bytes.Buffer
	if err := encode.Encode(root, &buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return buf.Bytes(), nil
}

func run(node *ir.Node, what string, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	d, err := MarshalJSON(node)
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, what, err)
	}
	if debug.Patch() {
		debug.Logf("%s: %s -> %s\n", what, d, out)
	}
	res, err := parse.Parse(out, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("%w: result: %w", ErrPatch, err)
	}
	keepOrder(node, res)
	res.Name, res.Root = node.Name, node.Root
	return res, nil
}

// keepOrder sorts the children of patched structures in the order of
// their counterparts in orig.
func keepOrder(orig, patched *ir.Node) {
	if orig.Type != ir.StructType || patched.Type != ir.StructType {
		return
	}
	pos := make(map[string]int, len(orig.Children))
	for i, c := range orig.Children {
		pos[c.Name] = i
	}
	slices.SortStableFunc(patched.Children, func(a, b *ir.Node) int {
		ia, aok := pos[a.Name]
		ib, bok := pos[b.Name]
		switch {
		case aok && bok:
			return ia - ib
		case aok:
			return -1
		case bok:
			return 1
		}
		return 0
	})
	for _, c := range patched.Children {
		if o, ok := orig.Lookup(c.Name); ok {
			keepOrder(o, c)
		}
	}
}
