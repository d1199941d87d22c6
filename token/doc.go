// Package token splits structure documents into tokens.
//
// The text format has only braces, colons, commas and double quoted
// strings.  When bare literals are enabled, unquoted runs such as numbers
// and booleans are returned as TLiteral tokens so that plain JSON can be
// read as well.
package token
