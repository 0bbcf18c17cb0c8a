package kvtext

import (
	"strings"
	"unicode"

	"github.com/joshuapare/iniregfmt/pkg/ast"
	"github.com/joshuapare/iniregfmt/pkg/types"
)

// parseState is the accumulator threaded through the line fold.
type parseState struct {
	doc     *ast.Document
	current *ast.Section
	pending []string // comments awaiting the next entry or header
	seq     int
}

// Parse folds normalized lines into a document model. Entries of every
// section are sorted when the section is left and at end of input.
func Parse(d types.Dialect, lines []string) *ast.Document {
	rules := d.Rules()
	srt := newSorter(rules)

	doc := ast.NewDocument()
	st := parseState{doc: doc, current: doc.Section("")}
	for _, line := range lines {
		st = step(rules, srt, st, line)
	}
	srt.sort(st.current)
	doc.Trailing = st.pending
	return doc
}

// step classifies one line and returns the next state.
func step(rules types.Rules, srt *sorter, st parseState, line string) parseState {
	switch {
	case line == "":
		return st

	case strings.HasPrefix(line, CommentPrefix):
		st.pending = append(st.pending, normalizeComment(line))
		return st

	case isSectionHeader(line):
		srt.sort(st.current)
		st.current = st.doc.Section(line)
		st.current.HeaderComments = append(st.current.HeaderComments, st.pending...)
		st.pending = nil
		return st

	case st.doc.Header == "" && isFileHeader(rules, line):
		st.doc.Header = line
		return st
	}

	entry, ok := parseEntry(line)
	if !ok {
		st.current.Opaque = append(st.current.Opaque, line)
		return st
	}
	entry.LeadingComments = st.pending
	entry.Seq = st.seq
	st.current.Entries = append(st.current.Entries, entry)
	st.pending = nil
	st.seq++
	return st
}

// normalizeComment rewrites ";   text" as "; text". A comment with no text
// stays ";".
func normalizeComment(line string) string {
	text := strings.TrimLeftFunc(line[len(CommentPrefix):], unicode.IsSpace)
	if text == "" {
		return CommentPrefix
	}
	return CommentLead + text
}

// isSectionHeader requires both brackets, so a lone "[" is not a header.
func isSectionHeader(line string) bool {
	return len(line) >= len(SectionOpenBracket)+len(SectionCloseBracket) &&
		strings.HasPrefix(line, SectionOpenBracket) &&
		strings.HasSuffix(line, SectionCloseBracket)
}

func isFileHeader(rules types.Rules, line string) bool {
	for _, prefix := range rules.HeaderPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// parseEntry splits a key/value line. The first ';' starts the inline
// comment and the first '=' before it separates key from value. Lines with
// no '=' ahead of the comment are not entries.
func parseEntry(line string) (*ast.Entry, bool) {
	kv, comment, hasComment := splitInlineComment(line)
	key, value, ok := strings.Cut(kv, ValueAssignment)
	if !ok {
		return nil, false
	}
	return &ast.Entry{
		Key:        strings.TrimSpace(key),
		Value:      strings.TrimSpace(value),
		Comment:    comment,
		HasComment: hasComment,
	}, true
}

func splitInlineComment(line string) (kv, comment string, ok bool) {
	parts := strings.Split(line, CommentPrefix)
	if len(parts) == 1 {
		return line, "", false
	}
	fragments := parts[1:]
	for i, f := range fragments {
		fragments[i] = strings.TrimSpace(f)
	}
	comment = strings.TrimSpace(strings.Join(fragments, CommentFragmentSeparator))
	return parts[0], comment, comment != ""
}
