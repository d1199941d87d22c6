package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Leaves sort before structures.  Nodes of the same type compare by name,
// then by value (leaves) or identifier and children in order (structures).
// The Root flag is not compared.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	switch a.Type {
	case LeafType:
		return strings.Compare(a.Value, b.Value)
	case StructType:
		return compareStructs(a, b)
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareStructs(a, b *Node) int {
	if c := strings.Compare(a.Identifier, b.Identifier); c != 0 {
		return c
	}
	lenA := len(a.Children)
	lenB := len(b.Children)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Children[i], b.Children[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
