// Package eval evaluates expressions over value trees.
//
// Expressions use the expr language (github.com/expr-lang/expr).  The
// members of the root structure are the variables of the expression; a
// leaf is its text and a structure is a map of its members:
//
//	// {"identifier":"Line","a":{...},"b":{"identifier":"Point","x":"3","y":"4"},"label":"diag"}
//	v, err := eval.Eval(node, `int(b.x) * int(b.y)`) // 12
//	ok, err := eval.Match(node, `label startsWith "di"`) // true
//
// A root leaf is available as the variable value.  The functions
// ident(path), getpath(path), haspath(path) and getenv(name) are also
// defined; paths are dotted member names relative to the root, with "" or
// "." naming the root itself.
//
// # Related Packages
//
//   - github.com/adk-format/adk/ir - value trees
package eval
