// Package meta holds the registration table describing which Go types may be
// serialized and how.
//
// A struct type is registered with its ordered members.  Each member carries
// its name, its declared type and an accessor reaching the field inside an
// instance:
//
//	type Point struct{ X, Y int32 }
//
//	meta.MustRegister[Point](meta.Default, "Point",
//		meta.Field("x", func(p *Point) *int32 { return &p.X }),
//		meta.Field("y", func(p *Point) *int32 { return &p.Y }),
//	)
//
// Integer enumerations are registered with their named items:
//
//	meta.MustRegisterEnum(meta.Default, "Color",
//		meta.Item("Red", Red),
//		meta.Item("Green", Green),
//	)
//
// Registration normally happens in init functions, either written by hand or
// generated by the codegen subpackage.  The encoder and decoder in package
// gomap consult a Registry; they never inspect struct fields on their own.
//
// # Related Packages
//
//   - github.com/adk-format/adk/gomap - encoding and decoding driven by a Registry
//   - github.com/adk-format/adk/meta/codegen - generation of registration code
package meta
