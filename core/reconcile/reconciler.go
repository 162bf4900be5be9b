package reconcile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fixresx/core/utils"

	"go.uber.org/zap"
)

// commentClose ends the schema comment that opens every resx file.
const commentClose = "-->"

// Options configures a Reconciler.
type Options struct {
	// Strict makes an unexpected property a fatal error.
	Strict bool
	// License is written verbatim in place of the template's header.
	License []byte
	// Recognizers identify geometry entries. Defaults to ResxRecognizers.
	Recognizers []LineRecognizer
}

// Result is what a reconciliation produced besides the rewritten text.
type Result struct {
	// Outcomes holds one decision per recognised entry, in file order.
	Outcomes []Outcome
	// Seen maps resx entry names to their original values. Skipped entries are removed.
	Seen *Index
	// Newline is the line terminator used for the output.
	Newline string
}

// LogLines returns the run log lines for the outcomes.
func (r *Result) LogLines() []string {
	lines := make([]string, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if line := o.LogLine(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Count returns how many outcomes are of the given kind.
func (r *Result) Count(kind OutcomeKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Reconciler rewrites resx geometry entries from a designer Index.
type Reconciler struct {
	opts   Options
	logger *zap.Logger
}

// NewReconciler creates a Reconciler. A nil logger disables logging.
func NewReconciler(opts Options, logger *zap.Logger) *Reconciler {
	if len(opts.Recognizers) == 0 {
		opts.Recognizers = ResxRecognizers()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{opts: opts, logger: logger}
}

// Reconcile streams template to out. The license block comes first, the
// template header up to the first "-->" line is dropped, and every geometry
// entry (opening tag, value line, closing tag) is rewritten, dropped or copied.
// Any other line is copied unchanged.
//
// In strict mode an entry that is neither indexed nor exempt aborts the run
// with ErrUnexpectedProperty; the partial output must then be discarded.
func (r *Reconciler) Reconcile(index *Index, template io.Reader, out io.Writer) (*Result, error) {
	w := bufio.NewWriter(out)
	if _, err := w.Write(r.opts.License); err != nil {
		return nil, fmt.Errorf("failed to write license block: %w", err)
	}

	lr := utils.NewLineReader(template)
	for {
		line, ok := lr.Next()
		if !ok || strings.Contains(line, commentClose) {
			break
		}
	}

	result := &Result{Seen: NewIndex()}
	emit := func(lines ...string) {
		for _, line := range lines {
			w.WriteString(line)
			w.WriteString(lr.Newline(utils.CRLF))
		}
	}

	for {
		line, ok := lr.Next()
		if !ok {
			break
		}

		m, matched := recognize(r.opts.Recognizers, line)
		if !matched {
			emit(line)
			continue
		}

		// The entry is assumed to span exactly three lines.
		entry := []string{line}
		valueLine, hasValue := lr.Next()
		if !hasValue {
			emit(entry...)
			break
		}
		entry = append(entry, valueLine)
		if closeLine, hasClose := lr.Next(); hasClose {
			entry = append(entry, closeLine)
		}

		oldValue, ok := extractValue(valueLine)
		if !ok {
			r.logger.Debug("Malformed value line, copying entry", zap.String("name", m.Name))
			emit(entry...)
			continue
		}

		name := m.Name
		result.Seen.Set(name, oldValue)

		if newValue, found := index.Get(name); found {
			entry[1] = strings.Replace(valueLine, oldValue, newValue, 1)
			result.Outcomes = append(result.Outcomes, Outcome{Kind: OutcomeReplaced, Name: name, Value: newValue})
			emit(entry...)
			continue
		}

		if IsExempt(name) {
			result.Seen.Delete(name)
			result.Outcomes = append(result.Outcomes, Outcome{Kind: OutcomeSkipped, Name: name})
			continue
		}

		if r.opts.Strict {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedProperty, name)
		}

		r.logger.Warn("Property not in designer file, copying entry", zap.String("name", name))
		result.Outcomes = append(result.Outcomes, Outcome{Kind: OutcomeUnchanged, Name: name, Line: valueLine})
		emit(entry...)
	}

	if err := lr.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resx template: %w", err)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to write resx output: %w", err)
	}

	result.Newline = lr.Newline(utils.CRLF)
	return result, nil
}

// IsExempt reports whether name ends with one of ExemptSuffixes.
func IsExempt(name string) bool {
	for _, suffix := range ExemptSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
