// Package format enumerates the document formats understood by the encode
// and parse packages.
//
//   - text: the compact structure format, every leaf a quoted string
//   - json: the text format read leniently (any key order, bare scalars)
//   - yaml: block YAML with the same shape
//   - ir: a JSON dump of the value tree itself
//
// # Related Packages
//
//   - github.com/adk-format/adk/parse - Parse documents to value trees
//   - github.com/adk-format/adk/encode - Encode value trees to documents
package format
