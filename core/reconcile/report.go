package reconcile

// Report lists the names that appear on only one side of a reconciliation.
type Report struct {
	// DesignerOnly holds names indexed from the designer but never seen in the resx.
	DesignerOnly []string `json:"designer_only" yaml:"designer_only"`
	// ResxOnly holds names kept in the resx that the designer does not set.
	ResxOnly []string `json:"resx_only" yaml:"resx_only"`
}

// BuildReport computes both set differences between the designer index and
// the seen resx entries, each in the insertion order of its source.
func BuildReport(designer, seen *Index) Report {
	report := Report{
		DesignerOnly: []string{},
		ResxOnly:     []string{},
	}

	for _, name := range designer.Keys() {
		if !seen.Has(name) {
			report.DesignerOnly = append(report.DesignerOnly, name)
		}
	}
	for _, name := range seen.Keys() {
		if !designer.Has(name) {
			report.ResxOnly = append(report.ResxOnly, name)
		}
	}

	return report
}

// Lines renders the report as run log lines.
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.DesignerOnly)+len(r.ResxOnly))
	for _, name := range r.DesignerOnly {
		lines = append(lines, "*** "+name+" in Designer.cs but not resx")
	}
	for _, name := range r.ResxOnly {
		lines = append(lines, "*** "+name+" in resx but not Designer.cs")
	}
	return lines
}

// Empty reports whether both sides matched.
func (r Report) Empty() bool {
	return len(r.DesignerOnly) == 0 && len(r.ResxOnly) == 0
}
