package ir

import (
	"encoding/binary"
	"hash/fnv"
	"io"
)

const nilChildHash = 0x6e696c

// Hash returns a 64-bit hash of the node.
// The hash depends on child order and is the same in every process.
// Nil children hash to a fixed marker.  It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}
	h := fnv.New64a()
	var b [8]byte

	h.Write([]byte{byte(n.Type)})
	writeString(h, n.Name)

	switch n.Type {
	case LeafType:
		writeString(h, n.Value)
	case StructType:
		writeString(h, n.Identifier)
		for _, c := range n.Children {
			v := uint64(nilChildHash)
			if c != nil {
				v = c.Hash()
			}
			binary.LittleEndian.PutUint64(b[:], v)
			h.Write(b[:])
		}
	}
	return h.Sum64()
}

// length prefixed so that ("ab","c") and ("a","bc") differ.
func writeString(h io.Writer, s string) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(len(s)))
	h.Write(b[:])
	h.Write([]byte(s))
}
