// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to value trees.
//
// A tree is written as escaped JSON text, patched with
// github.com/evanphx/json-patch and parsed back with parse.ParseJSON.
// Paths address members by name:
//
//	ops := []byte(`[{"op":"replace","path":"/b/x","value":"5"}]`)
//	patched, err := patch.Apply(node, ops)
//
// Patches may write numbers and booleans; they become leaf text.  Arrays
// and null are not values of a tree and make the result fail to parse, as
// does removing an "identifier" key.  A tree with a member named
// "identifier" cannot be written as JSON and is rejected.  Members which
// survive a patch keep their order; added members follow them.
package patch
