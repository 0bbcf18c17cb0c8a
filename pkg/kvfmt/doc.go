/*
Package kvfmt formats Windows-style INI files and Windows Registry export
(.reg) files into a canonical, diff-friendly layout.

# Quick Start

Format a document held in memory:

	out := kvfmt.Format(types.DialectINI, "b=2\na=1\n")
	// out == "a = 1\nb = 2\n"

Format file contents, keeping their encoding, BOM and line endings:

	out, err := kvfmt.FormatBytes(data, types.FormatOptions{Dialect: types.DialectREG})

# Canonical Layout

  - Lines are trimmed; blank lines appear only as separators after a
    section body and before trailing comments.
  - Comment lines are written as "; text" and stay directly above the entry
    or section header that followed them in the input.
  - Entries within a section are sorted with a locale-aware, stable
    comparison. INI compares keys; .reg compares whole "name=data" lines.
    Sections keep their input order; repeated headers merge.
  - INI entries are written "key = value", .reg entries "name=data". An
    inline comment is written " ; text" after the entry.
  - A .reg header line ("Windows Registry Editor Version 5.00" or
    "REGEDIT4") is written first, followed by a blank line.
  - Lines that are not comments, headers or key/value pairs are kept
    verbatim, ahead of the section's sorted entries.

Formatting never fails and is idempotent: formatting formatted text returns
it unchanged.
*/
package kvfmt
