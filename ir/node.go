package ir

import (
	"fmt"
)

type Node struct {
	Type Type
	Name string
	Root bool

	// Value holds the text of a leaf.
	Value string

	// Identifier and Children are set on structures.
	Identifier string
	Children   []*Node
}

func FromLeaf(name, value string) *Node {
	return &Node{
		Type:  LeafType,
		Name:  name,
		Value: value,
	}
}

func NewStruct(name, identifier string) *Node {
	return &Node{
		Type:       StructType,
		Name:       name,
		Identifier: identifier,
	}
}

// FromStruct creates a structure node holding children in the given order.
func FromStruct(name, identifier string, children ...*Node) (*Node, error) {
	res := NewStruct(name, identifier)
	res.Children = make([]*Node, 0, len(children))
	for _, c := range children {
		if err := res.Append(c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// AsRoot marks y as the root of an encoding and returns it.
func (y *Node) AsRoot() *Node {
	y.Root = true
	return y
}

func (y *Node) WithName(name string) *Node {
	y.Name = name
	return y
}

// Append adds child as the last child of the structure y.
func (y *Node) Append(child *Node) error {
	if y.Type != StructType {
		return fmt.Errorf("%w: cannot append to %s %q", ErrNotStruct, y.Type, y.Name)
	}
	if child == nil {
		return fmt.Errorf("%w: nil child in %q", ErrMalformed, y.Identifier)
	}
	if _, ok := y.Lookup(child.Name); ok {
		return fmt.Errorf("%w: %q in %q", ErrDuplicateChild, child.Name, y.Identifier)
	}
	child.Root = false
	y.Children = append(y.Children, child)
	return nil
}

func (y *Node) Lookup(name string) (*Node, bool) {
	for _, c := range y.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

func (y *Node) Get(name string) *Node {
	c, _ := y.Lookup(name)
	return c
}

func (y *Node) Len() int {
	return len(y.Children)
}

// Names returns the child names of y in order.
func (y *Node) Names() []string {
	res := make([]string, len(y.Children))
	for i, c := range y.Children {
		res[i] = c.Name
	}
	return res
}

// ToMap indexes the children of a structure by name.  It returns nil
// for leaves.
func ToMap(y *Node) map[string]*Node {
	if y.Type != StructType {
		return nil
	}
	res := make(map[string]*Node, len(y.Children))
	for _, c := range y.Children {
		res[c.Name] = c
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Name = y.Name
	dst.Root = y.Root
	dst.Value = y.Value
	dst.Identifier = y.Identifier
	dst.Children = nil
	if y.Children != nil {
		dst.Children = make([]*Node, len(y.Children))
		for i, c := range y.Children {
			dst.Children[i] = c.Clone()
		}
	}
	return dst
}

// Validate checks the shape constraints of the tree rooted at y.
func (y *Node) Validate() error {
	return y.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		switch n.Type {
		case LeafType:
			if len(n.Children) != 0 {
				return false, fmt.Errorf("%w: leaf %q has %d children", ErrMalformed, n.Name, len(n.Children))
			}
			return false, nil
		case StructType:
			seen := make(map[string]bool, len(n.Children))
			for _, c := range n.Children {
				if c == nil {
					return false, fmt.Errorf("%w: nil child in %q", ErrMalformed, n.Identifier)
				}
				if seen[c.Name] {
					return false, fmt.Errorf("%w: %q in %q", ErrDuplicateChild, c.Name, n.Identifier)
				}
				seen[c.Name] = true
			}
			return true, nil
		default:
			return false, fmt.Errorf("%w: unknown type %d", ErrMalformed, n.Type)
		}
	})
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Children {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) String() string {
	switch y.Type {
	case LeafType:
		return fmt.Sprintf("%s=%q", y.Name, y.Value)
	default:
		return fmt.Sprintf("%s<%s>[%d]", y.Name, y.Identifier, len(y.Children))
	}
}
