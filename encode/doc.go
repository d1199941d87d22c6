// Package encode writes value trees as text.
//
// # Usage
//
//	node, err := gomap.Encode(line)
//	...
//	err = encode.Encode(node, os.Stdout)
//
//	// pretty printed, colored
//	err = encode.Encode(node, os.Stdout, encode.EncodeIndent(2), encode.EncodeColors(encode.NewColors()))
//
//	// YAML
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// The default text format writes a structure as
//
//	{"identifier":"Point","x":"3","y":"4"}
//
// with children in tree order and every leaf quoted.  A node which is not
// the root of its tree is preceded by its quoted name and a colon.
//
// # Related Packages
//
//   - github.com/adk-format/adk/ir - value tree representation
//   - github.com/adk-format/adk/parse - Parse text to value trees
package encode
