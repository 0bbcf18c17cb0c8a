package kvtext

import (
	"strings"

	"github.com/joshuapare/iniregfmt/pkg/ast"
	"github.com/joshuapare/iniregfmt/pkg/types"
)

// Emit serializes doc in canonical layout.
//
// Sections come out in model order: header comments, header line, opaque
// lines, then entries with their leading comments. A blank line follows
// every section with a body. Comments left over at end of input come last.
// The result ends with a single "\n", or is empty when there is nothing to
// write.
func Emit(d types.Dialect, doc *ast.Document) string {
	rules := d.Rules()
	var lines []string

	if doc.Header != "" {
		lines = append(lines, doc.Header, "")
	}

	for _, s := range doc.Sections() {
		lines = append(lines, s.HeaderComments...)
		if !s.IsGlobal() {
			lines = append(lines, s.Name)
		}
		lines = append(lines, s.Opaque...)
		for _, e := range s.Entries {
			lines = append(lines, e.LeadingComments...)
			lines = append(lines, entryLine(rules, e))
		}
		if !s.Empty() {
			lines = append(lines, "")
		}
	}

	if len(doc.Trailing) > 0 {
		lines = append(lines, doc.Trailing...)
		lines = append(lines, "")
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(LF)
	}
	return b.String()
}

// entryText is "key = value" (or "key=value") without the inline comment.
func entryText(rules types.Rules, e *ast.Entry) string {
	return strings.TrimSpace(e.Key + rules.Separator + e.Value)
}

// entryLine is the full output line of e. An entry such as "[a = ]" keeps
// a bare ";" so it is not parsed as a header on the next run.
func entryLine(rules types.Rules, e *ast.Entry) string {
	line := entryText(rules, e)
	switch {
	case e.HasComment:
		line += InlineCommentLead + e.Comment
	case isSectionHeader(line):
		line += EmptyCommentTail
	}
	return line
}
