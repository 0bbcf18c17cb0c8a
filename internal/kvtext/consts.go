package kvtext

const (
	// ============================================================================
	// Structural Tokens
	// ============================================================================

	// SectionOpenBracket starts a section header line
	SectionOpenBracket = "["

	// SectionCloseBracket ends a section header line
	SectionCloseBracket = "]"

	// ValueAssignment separates a key from its value; only the first one on a
	// line splits
	ValueAssignment = "="

	// CommentPrefix marks a comment line and starts an inline comment
	CommentPrefix = ";"

	// CommentLead is the normalized prefix of a non-empty comment
	CommentLead = "; "

	// InlineCommentLead is written between an entry and its inline comment
	InlineCommentLead = " ; "

	// CommentFragmentSeparator joins the ';'-delimited fragments of an
	// inline comment
	CommentFragmentSeparator = "; "

	// EmptyCommentTail ends an entry line that would otherwise read back as
	// a section header
	EmptyCommentTail = " ;"

	// ============================================================================
	// Line Endings
	// ============================================================================

	// CRLF is the Windows line ending (carriage return + line feed)
	CRLF = "\r\n"

	// CR is the carriage return character
	CR = "\r"

	// LF is the line feed character, the only terminator the text core emits
	LF = "\n"

	// ============================================================================
	// Encodings
	// ============================================================================

	// UTF8BOMRune is the byte order mark as it appears in decoded text
	UTF8BOMRune = "\uFEFF"

	// EncodingCP1252 is accepted as an alias of Windows-1252
	EncodingCP1252 = "CP1252"
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)
