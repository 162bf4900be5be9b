package reconcile

import "regexp"

// Match is what a LineRecognizer extracted from a line.
// Value is empty for recognizers that only identify a name.
type Match struct {
	Name  string
	Value string
}

// LineRecognizer recognises one fixed line shape.
type LineRecognizer interface {
	Recognize(line string) (Match, bool)
}

// PatternRecognizer is a LineRecognizer backed by a regular expression.
// The first capture group is the name; the second, if present, the value.
type PatternRecognizer struct {
	re *regexp.Regexp
}

// NewPatternRecognizer compiles expr. It panics if expr is invalid.
func NewPatternRecognizer(expr string) *PatternRecognizer {
	return &PatternRecognizer{re: regexp.MustCompile(expr)}
}

// Recognize implements LineRecognizer.
func (p *PatternRecognizer) Recognize(line string) (Match, bool) {
	groups := p.re.FindStringSubmatch(line)
	if groups == nil {
		return Match{}, false
	}
	m := Match{Name: groups[1]}
	if len(groups) > 2 {
		m.Value = groups[2]
	}
	return m, true
}

// The patterns need not be precise about the value contents: the generated
// designer code and the resx file both present them the same way.
var (
	// this.okButton.Size = new System.Drawing.Size(75, 23);
	designerGeometry = NewPatternRecognizer(`^\s*(\S+) = new System\.(?:Drawing|Windows\.Forms)\.(?:SizeF?|Point|Location|Padding)\((.+)\);`)
	// this.mainSplitter.SplitterDistance = 240;
	designerSplitter = NewPatternRecognizer(`^\s*(\S+Splitter(?:Distance|Width)) = (\d+)`)

	// <data name="okButton.Size" type="System.Drawing.Size, System.Drawing">
	resxGeometry = NewPatternRecognizer(`<data name="\$?([^"]+)" type="System\.(?:Drawing\.(?:SizeF?|Point|Location)|Windows\.Forms\.Padding)`)
	// <data name="mainSplitter.SplitterDistance" type="System.Int32, mscorlib">
	resxSplitter = NewPatternRecognizer(`<data name="\$?([^"]+\.Splitter(?:Distance|Width))"`)

	// <value>75, 23</value>
	resxValue = regexp.MustCompile(`^\s*<value>(.+)</value>\s*$`)
)

// DesignerRecognizers returns the assignment shapes understood in Designer.cs files.
func DesignerRecognizers() []LineRecognizer {
	return []LineRecognizer{designerGeometry, designerSplitter}
}

// ResxRecognizers returns the <data> opening-tag shapes treated as geometry entries.
func ResxRecognizers() []LineRecognizer {
	return []LineRecognizer{resxGeometry, resxSplitter}
}

// recognize returns the first match among recognizers.
func recognize(recognizers []LineRecognizer, line string) (Match, bool) {
	for _, r := range recognizers {
		if m, ok := r.Recognize(line); ok {
			return m, true
		}
	}
	return Match{}, false
}

// extractValue returns the payload of a <value>…</value> line.
func extractValue(line string) (string, bool) {
	groups := resxValue.FindStringSubmatch(line)
	if groups == nil {
		return "", false
	}
	return groups[1], true
}
