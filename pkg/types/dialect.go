package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Dialect identifies one of the supported key/value file kinds.
type Dialect uint8

const (
	// DialectUnknown is the zero value; Format treats it as INI.
	DialectUnknown Dialect = iota
	// DialectINI is a Windows-style INI file.
	DialectINI
	// DialectREG is a Windows Registry export file (.reg).
	DialectREG
)

// SortKey selects what entries within a section are compared on.
type SortKey uint8

const (
	// SortByKey compares entries on the key text alone.
	SortByKey SortKey = iota
	// SortByLine compares entries on the reassembled "key=value" text.
	SortByLine
)

// Rules captures everything that differs between dialects.
type Rules struct {
	// Separator is written between key and value.
	Separator string
	// SortKey picks the comparison key for entry ordering.
	SortKey SortKey
	// HeaderPrefixes lists line prefixes recognized as the standalone file
	// header. Empty means the dialect has no header.
	HeaderPrefixes []string
}

var (
	iniRules = Rules{
		Separator: " = ",
		SortKey:   SortByKey,
	}
	regRules = Rules{
		Separator: "=",
		SortKey:   SortByLine,
		HeaderPrefixes: []string{
			"Windows Registry Editor Version",
			"REGEDIT4",
		},
	}
)

// Rules returns the formatting rules of d. Unknown dialects get INI rules.
func (d Dialect) Rules() Rules {
	if d == DialectREG {
		return regRules
	}
	return iniRules
}

func (d Dialect) String() string {
	switch d {
	case DialectINI:
		return "ini"
	case DialectREG:
		return "reg"
	default:
		return "unknown"
	}
}

// ParseDialect maps a dialect identifier ("ini", "reg") to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ini":
		return DialectINI, nil
	case "reg":
		return DialectREG, nil
	default:
		return DialectUnknown, fmt.Errorf("types: unknown dialect %q (must be ini or reg)", s)
	}
}

// Extensions maps lower-case file extensions (with the leading dot) to dialects.
type Extensions map[string]Dialect

// DefaultExtensions returns the built-in extension table.
func DefaultExtensions() Extensions {
	return Extensions{
		".ini": DialectINI,
		".inf": DialectINI,
		".cfg": DialectINI,
		".reg": DialectREG,
	}
}

// Lookup returns the dialect registered for the extension of path.
func (e Extensions) Lookup(path string) (Dialect, bool) {
	d, ok := e[strings.ToLower(filepath.Ext(path))]
	return d, ok
}
