// Package ast provides the in-memory model of an INI or Windows Registry
// export (.reg) document.
//
// A Document is an ordered table of sections. Each Section carries the
// comments that preceded its header, any opaque lines found in its body, and
// its entries. An Entry is one key/value line together with its inline
// comment and the comment lines directly above it.
//
// # Section Table
//
// Sections are stored as a slice plus an index from header text to slice
// position, so lookup is constant time and iteration follows the order in
// which headers first appeared. A header seen twice resolves to the same
// Section:
//
//	doc := ast.NewDocument()
//	s := doc.Section("[General]")
//	s.Entries = append(s.Entries, &ast.Entry{Key: "a", Value: "1"})
//	same := doc.Section("[General]") // same == s
//
// The model is built fresh for every format call and holds no references to
// the input once parsing is done.
package ast
