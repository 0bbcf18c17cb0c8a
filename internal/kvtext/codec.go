package kvtext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/iniregfmt/pkg/types"
)

var errUnsupportedEncoding = errors.New("kvtext: unsupported encoding")

// source records how a document was stored so it can be written back the
// same way.
type source struct {
	enc  encoding.Encoding // nil for UTF-8
	bom  []byte
	crlf bool
}

// FormatBytes decodes data, formats it and encodes the result the way the
// input was stored: same encoding, same BOM, and "\r\n" line endings when
// the input used them (unless opts.LineEnding forces one).
func FormatBytes(data []byte, opts types.FormatOptions) ([]byte, error) {
	text, src, err := decodeInput(data, opts.InputEncoding)
	if err != nil {
		return nil, err
	}
	return encodeOutput(Format(opts.Dialect, text), src, opts.LineEnding)
}

// DecodeText returns data as UTF-8 text. It is the decoding half of
// FormatBytes.
func DecodeText(data []byte, enc string) (string, error) {
	text, _, err := decodeInput(data, enc)
	return text, err
}

// decodeInput converts input data to UTF-8 text. A BOM overrides enc.
func decodeInput(data []byte, enc string) (string, source, error) {
	var src source
	switch {
	case bytes.HasPrefix(data, UTF16LEBOM):
		src.enc = utf16LE()
		src.bom = UTF16LEBOM
		data = data[len(UTF16LEBOM):]
	case bytes.HasPrefix(data, UTF8BOM):
		src.bom = UTF8BOM
		data = data[len(UTF8BOM):]
	default:
		e, err := lookupEncoding(enc)
		if err != nil {
			return "", src, err
		}
		src.enc = e
	}

	if src.enc != nil {
		decoded, _, err := transform.Bytes(src.enc.NewDecoder(), data)
		if err != nil {
			return "", src, fmt.Errorf("kvtext: decoding input: %w", err)
		}
		data = decoded
	}

	text := string(data)
	src.crlf = strings.Contains(text, CRLF)
	return text, src, nil
}

// encodeOutput converts formatted text back to the source representation.
func encodeOutput(text string, src source, le types.LineEnding) ([]byte, error) {
	switch le {
	case "", types.LineEndingAuto:
		if src.crlf {
			text = strings.ReplaceAll(text, LF, CRLF)
		}
	case types.LineEndingCRLF:
		text = strings.ReplaceAll(text, LF, CRLF)
	case types.LineEndingLF:
	default:
		return nil, fmt.Errorf("kvtext: unknown line ending %q", le)
	}

	out := []byte(text)
	if src.enc != nil {
		encoded, _, err := transform.Bytes(src.enc.NewEncoder(), out)
		if err != nil {
			return nil, fmt.Errorf("kvtext: encoding output: %w", err)
		}
		out = encoded
	}
	if len(src.bom) == 0 {
		return out, nil
	}
	buf := make([]byte, 0, len(src.bom)+len(out))
	buf = append(buf, src.bom...)
	return append(buf, out...), nil
}

// lookupEncoding maps an encoding name to a decoder. UTF-8 returns nil.
func lookupEncoding(enc string) (encoding.Encoding, error) {
	switch strings.ToUpper(strings.TrimSpace(enc)) {
	case "", types.EncodingUTF8, "UTF8":
		return nil, nil
	case types.EncodingUTF16LE, "UTF16LE":
		return utf16LE(), nil
	case types.EncodingWindows1252, EncodingCP1252:
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedEncoding, enc)
	}
}

// utf16LE leaves BOM handling to the codec so a BOM-less input stays BOM-less.
func utf16LE() encoding.Encoding {
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
}

// CheckEncoding reports whether enc names an encoding the codec supports.
func CheckEncoding(enc string) error {
	_, err := lookupEncoding(enc)
	return err
}
