package libdiff

import (
	"errors"
	"fmt"
	"slices"

	"github.com/adk-format/adk/ir"
)

// ErrConflict is returned by Apply when a change does not fit the tree.
var ErrConflict = errors.New("diff conflict")

// Apply replays changes, as returned by Diff, on a copy of node.  Deleted
// and replaced nodes must equal the From side of their change.
func Apply(node *ir.Node, changes []Change) (*ir.Node, error) {
	var res *ir.Node
	if node != nil {
		res = node.Clone()
	}
	for i := range changes {
		var err error
		res, err = apply(res, &changes[i])
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func apply(root *ir.Node, c *Change) (*ir.Node, error) {
	if len(c.Path) == 0 {
		if c.Kind != Replace {
			return nil, fmt.Errorf("%w: %s at root", ErrConflict, c.Kind)
		}
		if !sameNode(root, c.From) {
			return nil, fmt.Errorf("%w: root differs from replaced value", ErrConflict)
		}
		if c.To == nil {
			return nil, nil
		}
		res := c.To.Clone()
		res.Name, res.Root = root.Name, root.Root
		return res, nil
	}
	parent := root
	for _, name := range c.Path[:len(c.Path)-1] {
		if parent == nil || parent.Type != ir.StructType {
			return nil, fmt.Errorf("%w: %s is not inside a structure", ErrConflict, c.PathString())
		}
		next, ok := parent.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s: no member %q", ErrConflict, c.PathString(), name)
		}
		parent = next
	}
	if parent == nil || parent.Type != ir.StructType {
		return nil, fmt.Errorf("%w: %s is not inside a structure", ErrConflict, c.PathString())
	}
	name := c.Path[len(c.Path)-1]
	i := slices.IndexFunc(parent.Children, func(n *ir.Node) bool { return n.Name == name })

	switch c.Kind {
	case Insert:
		if i != -1 {
			return nil, fmt.Errorf("%w: %s already present", ErrConflict, c.PathString())
		}
		if c.Index < 0 || c.Index > len(parent.Children) {
			return nil, fmt.Errorf("%w: %s: index %d out of range", ErrConflict, c.PathString(), c.Index)
		}
		parent.Children = slices.Insert(parent.Children, c.Index, child(c.To, name))
	case Delete:
		if i == -1 || !sameNode(parent.Children[i], c.From) {
			return nil, fmt.Errorf("%w: %s: deleted value not found", ErrConflict, c.PathString())
		}
		parent.Children = slices.Delete(parent.Children, i, i+1)
	case Replace:
		if i == -1 || !sameNode(parent.Children[i], c.From) {
			return nil, fmt.Errorf("%w: %s: replaced value not found", ErrConflict, c.PathString())
		}
		if c.To == nil {
			return nil, fmt.Errorf("%w: %s: nil replacement", ErrConflict, c.PathString())
		}
		parent.Children[i] = child(c.To, name)
	default:
		return nil, fmt.Errorf("%w: unknown change %s", ErrConflict, c.Kind)
	}
	return root, nil
}

func child(n *ir.Node, name string) *ir.Node {
	res := n.Clone()
	res.Name = name
	res.Root = false
	return res
}

// sameNode compares content, ignoring the node names.
func sameNode(a, b *ir.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name == b.Name {
		return ir.Equal(a, b)
	}
	return ir.Equal(child(a, ""), child(b, ""))
}
