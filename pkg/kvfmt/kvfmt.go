package kvfmt

import (
	"strings"

	"github.com/joshuapare/iniregfmt/internal/kvtext"
	"github.com/joshuapare/iniregfmt/pkg/ast"
	"github.com/joshuapare/iniregfmt/pkg/types"
)

// Format returns text in canonical layout for dialect d.
func Format(d types.Dialect, text string) string {
	return kvtext.Format(d, text)
}

// FormatBytes formats encoded file contents. The result uses the input's
// encoding and BOM; see types.FormatOptions for line endings.
func FormatBytes(data []byte, opts types.FormatOptions) ([]byte, error) {
	return kvtext.FormatBytes(data, opts)
}

// Analyze parses text and counts its sections, entries and comments.
func Analyze(d types.Dialect, text string) ast.Stats {
	return kvtext.Analyze(d, text)
}

// Decode returns data as UTF-8 text, honouring a BOM or the declared
// encoding.
func Decode(data []byte, encoding string) (string, error) {
	return kvtext.DecodeText(data, encoding)
}

// Detect picks a dialect for a file, first by extension using exts (nil
// means types.DefaultExtensions), then by looking for a .reg header line in
// data. It returns false when neither applies.
func Detect(path string, data []byte, exts types.Extensions) (types.Dialect, bool) {
	if exts == nil {
		exts = types.DefaultExtensions()
	}
	if d, ok := exts.Lookup(path); ok {
		return d, true
	}
	if hasRegHeader(data) {
		return types.DialectREG, true
	}
	return types.DialectUnknown, false
}

func hasRegHeader(data []byte) bool {
	text, err := kvtext.DecodeText(data, "")
	if err != nil {
		return false
	}
	for _, line := range kvtext.Normalize(text) {
		if line == "" || strings.HasPrefix(line, kvtext.CommentPrefix) {
			continue
		}
		for _, prefix := range types.DialectREG.Rules().HeaderPrefixes {
			if strings.HasPrefix(line, prefix) {
				return true
			}
		}
		return false
	}
	return false
}

// CheckEncoding reports whether encoding is supported by Decode and
// FormatBytes.
func CheckEncoding(encoding string) error {
	return kvtext.CheckEncoding(encoding)
}
