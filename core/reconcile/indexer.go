package reconcile

import (
	"fmt"
	"io"
	"strings"

	"fixresx/core/utils"
)

const thisPrefix = "this."

// NormalizeName strips a leading "this." unless what follows has no further
// dot, so "this.okButton.Size" and "okButton.Size" share one identity while
// the form's own "this.ClientSize" keeps its prefix.
func NormalizeName(name string) string {
	if rest, ok := strings.CutPrefix(name, thisPrefix); ok && strings.Contains(rest, ".") {
		return rest
	}
	return name
}

// NormalizeValue removes float suffixes so "75F, 23F" becomes "75, 23".
func NormalizeValue(value string) string {
	return strings.ReplaceAll(value, "F", "")
}

// IndexDesigner scans designer source text and indexes its geometry assignments.
// Lines matching none of the recognizers are ignored. If no recognizers are
// given, DesignerRecognizers is used. A later assignment to the same name wins.
func IndexDesigner(r io.Reader, recognizers ...LineRecognizer) (*Index, error) {
	if len(recognizers) == 0 {
		recognizers = DesignerRecognizers()
	}

	index := NewIndex()
	lr := utils.NewLineReader(r)
	for {
		line, ok := lr.Next()
		if !ok {
			break
		}
		m, matched := recognize(recognizers, line)
		if !matched {
			continue
		}
		index.Set(NormalizeName(m.Name), NormalizeValue(m.Value))
	}

	if err := lr.Err(); err != nil {
		return nil, fmt.Errorf("failed to read designer source: %w", err)
	}
	return index, nil
}
