package kvtext

import "strings"

// Normalize splits text into trimmed lines.
//
// Both "\n" and "\r\n" terminate a line. Leading and trailing whitespace is
// removed from every line; internal whitespace is untouched. Blank lines are
// kept as empty strings: collapsing them is left to the parser, which never
// re-emits input blank lines.
func Normalize(text string) []string {
	text = strings.TrimPrefix(text, UTF8BOMRune)
	if text == "" {
		return nil
	}
	lines := strings.Split(text, LF)
	for i, line := range lines {
		lines[i] = strings.TrimSpace(strings.TrimSuffix(line, CR))
	}
	return lines
}
