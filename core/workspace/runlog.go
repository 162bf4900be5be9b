package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimestampFormat is used in the run log header.
const TimestampFormat = "2006-01-02 15:04:05"

// RunLog collects the lines describing one run.
type RunLog struct {
	lines []string
}

// NewRunLog starts a log with the run header and a blank separator line.
func NewRunLog(base string, at time.Time) *RunLog {
	return &RunLog{
		lines: []string{fmt.Sprintf("FixResx - %s - %s", base, at.Format(TimestampFormat)), ""},
	}
}

// Add appends lines verbatim.
func (l *RunLog) Add(lines ...string) {
	l.lines = append(l.lines, lines...)
}

// Flag appends a highlighted diagnostic line.
func (l *RunLog) Flag(message string) {
	l.lines = append(l.lines, "*** "+message+" ***")
}

// Lines returns a copy of the collected lines.
func (l *RunLog) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// String renders the log followed by a blank line, as it is written to disk.
func (l *RunLog) String() string {
	return strings.Join(l.lines, "\n") + "\n\n"
}

// AppendTo appends the log to path, creating the file and its directory if needed.
func (l *RunLog) AppendTo(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}
	if _, err := f.WriteString(l.String()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write run log: %w", err)
	}
	return f.Close()
}
