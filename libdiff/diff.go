package libdiff

import (
	"strings"

	"github.com/adk-format/adk/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes which turn from into to, or nil when the trees
// are equal.  Names of root nodes are not compared.
//
// Within a structure all deletions are listed first, followed by the
// changes to common children and the insertions in target order.
func Diff(from, to *ir.Node) []Change {
	if from == nil || to == nil {
		if from == to {
			return nil
		}
		return []Change{{Kind: Replace, From: from, To: to}}
	}
	return diffNode(nil, from, to, nil)
}

func diffNode(path []string, from, to *ir.Node, res []Change) []Change {
	switch {
	case from.Type != to.Type:
	case from.Type == ir.LeafType:
		if from.Value == to.Value {
			return res
		}
	case from.Identifier == to.Identifier:
		return diffStruct(path, from, to, res)
	}
	return append(res, Change{Path: path, Kind: Replace, From: from, To: to})
}

// children are aligned by name
func diffStruct(path []string, from, to *ir.Node, res []Change) []Change {
	fieldMap := map[string]rune{}
	fromRunes := mapNamesTo(fieldMap, from)
	toRunes := mapNamesTo(fieldMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi := 0
	for i := range diffs {
		diff := &diffs[i]
		for range diff.Text {
			switch diff.Type {
			case diffpatch.DiffDelete:
				f := from.Children[fi]
				res = append(res, Change{Path: childPath(path, f.Name), Kind: Delete, From: f})
				fi++
			case diffpatch.DiffEqual:
				fi++
			}
		}
	}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		for range diff.Text {
			switch diff.Type {
			case diffpatch.DiffDelete:
				fi++
			case diffpatch.DiffEqual:
				f, t := from.Children[fi], to.Children[ti]
				res = diffNode(childPath(path, f.Name), f, t, res)
				fi++
				ti++
			case diffpatch.DiffInsert:
				t := to.Children[ti]
				res = append(res, Change{Path: childPath(path, t.Name), Kind: Insert, To: t, Index: ti})
				ti++
			}
		}
	}
	return res
}

func mapNamesTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Children))
	for i, c := range node.Children {
		r, ok := m[c.Name]
		if !ok {
			r = rune(len(m) + 1)
			m[c.Name] = r
		}
		rs[i] = r
	}
	return rs
}

func childPath(path []string, name string) []string {
	res := make([]string, len(path)+1)
	copy(res, path)
	res[len(path)] = name
	return res
}

// TextDiff renders a character level diff of the leaf values of c,
// deletions as [-text-] and insertions as {+text+}.  Structures are
// rendered by identifier.
func (c *Change) TextDiff() string {
	var b strings.Builder
	for _, d := range c.textDiffs() {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// PrettyText is TextDiff with ANSI colors for terminals.
func (c *Change) PrettyText() string {
	return diffpatch.New().DiffPrettyText(c.textDiffs())
}

func (c *Change) textDiffs() []diffpatch.Diff {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(leafText(c.From), leafText(c.To), false)
	return dmp.DiffCleanupSemantic(diffs)
}

func leafText(n *ir.Node) string {
	switch {
	case n == nil:
		return ""
	case n.Type == ir.LeafType:
		return n.Value
	default:
		return short(n)
	}
}
