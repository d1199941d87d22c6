// Package gomap converts between Go values and value trees, driven by the
// type metadata registered in package meta.
//
// # Usage
//
//	// Encode a registered value
//	node, err := gomap.Encode(line)
//
//	// Encode straight to text
//	d, err := gomap.ToText(line)
//	// {"identifier":"Line","a":{"identifier":"Point","x":"0","y":"0"},...}
//
//	// Decode
//	var back shapes.Line
//	err = gomap.FromText(d, &back)
//
//	// Decode with a private registry, failing on missing fields
//	err = gomap.Decode(node, &back, gomap.WithRegistry(r), gomap.Strict(true))
//
// Primitives (bools, integers, floats and strings) become leaves holding
// their text; registered enums become leaves holding the item name; registered
// aggregates become structures whose identifier is the registered type name
// and whose children follow member declaration order.  Any other type is
// reported as a *meta.UnsupportedTypeError.
//
// Decoding is lenient by default: a member with no corresponding child keeps
// its zero value.  Errors carry the dotted path of the member which failed.
//
// # Related Packages
//
//   - github.com/adk-format/adk/meta - type registration
//   - github.com/adk-format/adk/ir - value tree representation
//   - github.com/adk-format/adk/encode - Encode value trees to text
package gomap
