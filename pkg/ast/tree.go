package ast

// Document is the parsed model of one INI or .reg file.
//
// Sections are kept in first-seen order. Lookup by header text goes through
// an index so duplicate headers merge into the section created first.
type Document struct {
	// Header is the standalone .reg header line ("" when absent).
	Header string

	// Trailing holds comments left pending at end of input, with no entry or
	// section header after them.
	Trailing []string

	sections []*Section
	index    map[string]int
}

// Section is a named block of entries. The global section has an empty Name
// and collects content that appears before any header.
type Section struct {
	// Name is the header line including brackets, e.g. "[General]".
	Name string

	// HeaderComments are the comment lines that preceded the header.
	HeaderComments []string

	// Opaque holds lines that are neither comment, header nor entry, in
	// input order.
	Opaque []string

	// Entries are in input order until the section is sorted.
	Entries []*Entry
}

// Entry is a single key/value line.
type Entry struct {
	Key   string
	Value string

	// Comment is the inline comment text without its leading ';'.
	Comment    string
	HasComment bool

	// LeadingComments are the comment lines directly above the entry.
	LeadingComments []string

	// Seq is the position of the entry in the input, across all sections.
	Seq int
}

// NewDocument creates an empty document holding only the global section.
func NewDocument() *Document {
	d := &Document{index: make(map[string]int)}
	d.Section("")
	return d
}

// Section returns the section named name, appending a new one when the name
// has not been seen yet.
func (d *Document) Section(name string) *Section {
	if i, ok := d.index[name]; ok {
		return d.sections[i]
	}
	s := &Section{Name: name}
	d.index[name] = len(d.sections)
	d.sections = append(d.sections, s)
	return s
}

// Lookup returns the section named name without creating it.
func (d *Document) Lookup(name string) (*Section, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.sections[i], true
}

// Sections returns the sections in first-seen order. The global section is
// always first.
func (d *Document) Sections() []*Section {
	return d.sections
}

// IsGlobal reports whether s is the implicit section before any header.
func (s *Section) IsGlobal() bool {
	return s.Name == ""
}

// Empty reports whether the section emits no body lines.
func (s *Section) Empty() bool {
	return len(s.Entries) == 0 && len(s.Opaque) == 0
}
