// Package types defines the dialects, formatting rules and options shared by
// the formatter packages.
//
// A Dialect is either INI or REG. Dialect.Rules returns what differs between
// them: the key/value separator, the comparison key used to sort entries,
// and the prefixes of the standalone .reg header line.
//
// This package has no dependencies beyond the standard library.
package types
