package types

// LineEnding selects the line terminator of formatted output.
type LineEnding string

const (
	// LineEndingAuto keeps "\r\n" when the input used it, "\n" otherwise.
	LineEndingAuto LineEnding = "auto"
	// LineEndingLF always writes "\n".
	LineEndingLF LineEnding = "lf"
	// LineEndingCRLF always writes "\r\n".
	LineEndingCRLF LineEnding = "crlf"
)

// Encoding names accepted by FormatOptions.
const (
	EncodingUTF8        = "UTF-8"
	EncodingUTF16LE     = "UTF-16LE"
	EncodingWindows1252 = "WINDOWS-1252"
)

// FormatOptions controls byte-level formatting around the text core.
type FormatOptions struct {
	// Dialect of the document.
	Dialect Dialect

	// InputEncoding declares the text encoding when no BOM is present
	// (e.g., "UTF-16LE" for regedit.exe exports). Empty means UTF-8.
	// A BOM in the input always wins.
	InputEncoding string

	// LineEnding of the output. Empty means LineEndingAuto.
	LineEnding LineEnding
}
