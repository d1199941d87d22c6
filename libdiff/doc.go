// Package libdiff computes structural differences between value trees.
//
// # Usage
//
//	// Compute the changes turning one tree into another
//	changes := libdiff.Diff(oldNode, newNode)
//
//	// Replay them
//	patched, err := libdiff.Apply(oldNode, changes)
//
// Children of structures are aligned by name with a sequence diff, so a
// renamed or reordered member shows up as a delete and an insert while
// members present on both sides are compared recursively.
//
// # Related Packages
//
//   - github.com/adk-format/adk/ir - value trees
//   - github.com/adk-format/adk/patch - JSON patches over value trees
package libdiff
