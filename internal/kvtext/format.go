package kvtext

import (
	"github.com/joshuapare/iniregfmt/pkg/ast"
	"github.com/joshuapare/iniregfmt/pkg/types"
)

// Format runs the whole pipeline on one document: normalize, parse and sort,
// then reassemble. It never fails; lines it does not understand are passed
// through.
func Format(d types.Dialect, text string) string {
	return Emit(d, Parse(d, Normalize(text)))
}

// Analyze parses text and reports what it contains.
func Analyze(d types.Dialect, text string) ast.Stats {
	return Parse(d, Normalize(text)).Stats()
}
