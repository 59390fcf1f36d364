// Package pattern implements the STIX 2.1 pattern expression language:
// lexer, recursive-descent parser, AST, canonical printer, and a fluent
// builder.
//
// A pattern is one or more bracketed observation expressions joined by
// FOLLOWEDBY, optionally followed by a qualifier:
//
//	[file:hashes.MD5 = 'abc123']
//	[file:name = 'malware.exe' AND file:size > 1000]
//	[ipv4-addr:value = '10.0.0.1'] FOLLOWEDBY [url:value = 'http://evil.example'] WITHIN 300 SECONDS
//
// Operator precedence inside an observation expression, highest to lowest:
// NOT, AND, OR. All binary operators are left-associative and parentheses
// override precedence.
//
// Parsing is syntax-only: object types and property paths are not checked
// against any schema. ValidateWithRegistry optionally restricts object-type
// prefixes to a caller-supplied set and compile-checks MATCHES regex
// literals, but semantic evaluation against observed data is out of scope.
//
// The printer emits a canonical form (upper-case operators, single spaces,
// single-quoted strings) and the package guarantees that printing any AST and
// re-parsing the output yields a structurally equal AST.
package pattern
