// Package parse reads documents written by package encode back into value
// trees.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"identifier":"Point","x":"3","y":"4"}`))
//	if err != nil {
//	    return err
//	}
//
//	// plain JSON, keys in any order, bare numbers
//	node, err := parse.Parse(data, parse.ParseJSON())
//
// Malformed input is always reported as an error wrapping ErrParse; no
// partial tree is returned.  Errors from the text and json formats carry the
// position of the offending token.
//
// # Related Packages
//
//   - github.com/adk-format/adk/ir - value tree representation
//   - github.com/adk-format/adk/encode - Encode value trees to text
//   - github.com/adk-format/adk/token - Tokenization
package parse
