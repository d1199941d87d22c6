package libdiff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adk-format/adk/ir"
)

type Kind int

const (
	// Insert adds To as a child of the structure at the parent path.
	Insert Kind = iota
	// Delete removes the child From.
	Delete
	// Replace swaps From for To.
	Replace
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Change describes one difference between two trees.  Path holds the child
// names from the root to the changed node; it is empty when the roots
// themselves differ.
type Change struct {
	Path []string
	Kind Kind
	From *ir.Node
	To   *ir.Node

	// Index is the position of an inserted child among the children of
	// its parent in the target tree.
	Index int
}

// PathString returns Path joined with dots, "." for the root.
func (c *Change) PathString() string {
	if len(c.Path) == 0 {
		return "."
	}
	return strings.Join(c.Path, ".")
}

func (c *Change) String() string {
	switch c.Kind {
	case Insert:
		return fmt.Sprintf("+ %s %s", c.PathString(), short(c.To))
	case Delete:
		return fmt.Sprintf("- %s %s", c.PathString(), short(c.From))
	default:
		if c.From != nil && c.To != nil && c.From.Type == ir.LeafType && c.To.Type == ir.LeafType {
			return fmt.Sprintf("~ %s %s", c.PathString(), c.TextDiff())
		}
		return fmt.Sprintf("~ %s %s -> %s", c.PathString(), short(c.From), short(c.To))
	}
}

func short(n *ir.Node) string {
	if n == nil {
		return "nil"
	}
	if n.Type == ir.LeafType {
		return strconv.Quote(n.Value)
	}
	return "<" + n.Identifier + ">"
}
