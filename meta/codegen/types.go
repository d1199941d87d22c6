package codegen

// Package describes the generated file of one Go package.
type Package struct {
	// Name is the Go package name.
	Name string
	// Path is the import path.
	Path string
	// Dir is the package directory.
	Dir string
	// Func is the name of the generated registration function.
	Func string

	// Imports are the import specs of the generated file, sorted.
	Imports []string

	Enums   []*Enum
	Structs []*Struct
}

type Enum struct {
	// GoName is the name of the Go type, Name the registered name.
	GoName string
	Name   string
	Items  []*Item
}

type Item struct {
	Name  string
	Const string
}

type Struct struct {
	GoName string
	Name   string
	Fields []*Field
}

type Field struct {
	// GoName is the struct field, Name the member name.
	GoName string
	Name   string
	// Type is the field type as written in the generated package.
	Type string
	Char bool
}
