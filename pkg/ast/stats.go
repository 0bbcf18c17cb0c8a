package ast

// Stats summarizes a parsed document.
type Stats struct {
	HasHeader bool `json:"has_header"`
	Sections  int  `json:"sections"`
	Entries   int  `json:"entries"`
	Comments  int  `json:"comments"`
	Inline    int  `json:"inline_comments"`
	Opaque    int  `json:"opaque_lines"`
}

// Stats counts the contents of d. The global section is counted only when
// it holds something.
func (d *Document) Stats() Stats {
	st := Stats{
		HasHeader: d.Header != "",
		Comments:  len(d.Trailing),
	}
	for _, s := range d.sections {
		if s.IsGlobal() && s.Empty() && len(s.HeaderComments) == 0 {
			continue
		}
		st.Sections++
		st.Comments += len(s.HeaderComments)
		st.Opaque += len(s.Opaque)
		for _, e := range s.Entries {
			st.Entries++
			st.Comments += len(e.LeadingComments)
			if e.HasComment {
				st.Inline++
			}
		}
	}
	return st
}
