package kvtext

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/joshuapare/iniregfmt/pkg/ast"
	"github.com/joshuapare/iniregfmt/pkg/types"
)

// sorter orders the entries of a section. It owns a collator, which is not
// safe for concurrent use, so one sorter serves exactly one format call.
type sorter struct {
	rules    types.Rules
	collator *collate.Collator
}

func newSorter(rules types.Rules) *sorter {
	return &sorter{
		rules:    rules,
		collator: collate.New(language.Und),
	}
}

// sort orders s.Entries ascending by the dialect's comparison key. Entries
// that compare equal keep their relative order.
func (s *sorter) sort(sec *ast.Section) {
	if len(sec.Entries) < 2 {
		return
	}
	slices.SortStableFunc(sec.Entries, func(a, b *ast.Entry) int {
		return s.collator.CompareString(s.key(a), s.key(b))
	})
}

func (s *sorter) key(e *ast.Entry) string {
	if s.rules.SortKey == types.SortByLine {
		return entryText(s.rules, e)
	}
	return e.Key
}
