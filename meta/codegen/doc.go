// Package codegen generates registration code for package meta.
//
// Types opt in with a directive in their doc comment:
//
//	//adk:reflect
//	type Point struct {
//		X int32 `adk:"x"`
//		Y int32 `adk:"y"`
//		tmp []byte `adk:"-"`
//	}
//
//	//adk:enum
//	type Color int
//
// Both directives accept name=N to register the type under a name other
// than its Go name.  Struct members are named by the adk tag, or by the
// field name with a lower case first letter when there is no tag.  A tag
// of "-" skips the field and the option char (`adk:"glyph,char"`) marks a
// rune or byte field holding a single character.  The items of an enum are
// the constants of its type, in declaration order.
//
// The generated file defines a Register function registering everything
// with a *meta.Registry, and an init function calling it with
// meta.Default.
//
// # Related Packages
//
//   - github.com/adk-format/adk/meta - registration
//   - github.com/adk-format/adk/cmd/adk-codegen - command line driver
package codegen
