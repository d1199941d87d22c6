// Package ir provides the intermediate representation (IR) produced by the
// encoder and consumed by the printer and the decoder.
//
// # Overview
//
// A serialized value is represented as a tree of *Node. The IR is
// independent of the Go type the value came from: once a value has been
// encoded, the only trace of its type is the Identifier of each structure
// node, which is informational and never drives decoding.
//
// # Node Types
//
// The IR is a tagged union over two node types:
//
//   - LeafType: one primitive value held as text in Value
//   - StructType: a type Identifier plus an ordered list of named Children
//
// Every node carries a Name, which is the member name it was encoded from.
// The top level node of an encoding is marked Root and usually has an empty
// name.
//
// # Creating Nodes
//
//	x := ir.FromLeaf("x", "3")
//	y := ir.FromLeaf("y", "4")
//	pt, err := ir.FromStruct("b", "Point", x, y)
//
// # Structure Constraints
//
// Child names are unique within a structure; Append and FromStruct reject
// duplicates with ErrDuplicateChild. Children keep insertion order, which is
// member declaration order for encoder output. A structure owns its children
// exclusively: nodes carry no parent pointers and must not be shared between
// trees. Use Clone to copy a subtree into another tree.
//
// # Comparison and Hashing
//
//	equal := ir.Compare(a, b) == 0
//	sum := node.Hash()
//
// Hash is stable across processes, so it may be stored or compared between
// runs.
//
// # JSON Interoperability
//
// Nodes marshal to and from JSON as a self describing dump of the tree
// (type, name, value, identifier, children). This is distinct from the text
// format produced by package encode.
//
// # Thread Safety
//
// Nodes are built once and then only read. Concurrent reads are safe;
// concurrent mutation is not.
//
// # Related Packages
//
//   - github.com/adk-format/adk/gomap - converts Go values to and from IR
//   - github.com/adk-format/adk/encode - prints IR as text
//   - github.com/adk-format/adk/parse - parses text into IR
package ir
