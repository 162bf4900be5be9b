package utils

import (
	"bufio"
	"io"
	"strings"
)

// Line terminators recognised by LineReader.
const (
	CRLF = "\r\n"
	LF   = "\n"
)

// LineReader reads text one line at a time and remembers the terminator used
// by the first complete line, so a rewritten file can keep the same convention.
type LineReader struct {
	r       *bufio.Reader
	newline string
	err     error
}

// NewLineReader wraps r in a LineReader.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next line without its terminator.
// It returns false at end of input or on a read error; call Err to tell them apart.
func (lr *LineReader) Next() (string, bool) {
	if lr.err != nil {
		return "", false
	}

	line, err := lr.r.ReadString('\n')
	if err != nil {
		lr.err = err
		if err != io.EOF || line == "" {
			return "", false
		}
		// Final line without a terminator.
		return strings.TrimSuffix(line, "\r"), true
	}

	if lr.newline == "" {
		if strings.HasSuffix(line, CRLF) {
			lr.newline = CRLF
		} else {
			lr.newline = LF
		}
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

// Err returns the first read error other than io.EOF.
func (lr *LineReader) Err() error {
	if lr.err == io.EOF {
		return nil
	}
	return lr.err
}

// Newline returns the terminator of the first complete line read so far,
// or fallback when no complete line has been seen.
func (lr *LineReader) Newline(fallback string) string {
	if lr.newline == "" {
		return fallback
	}
	return lr.newline
}

// ReadLines reads all of r and returns its lines without terminators.
func ReadLines(r io.Reader) ([]string, error) {
	lr := NewLineReader(r)
	var lines []string
	for {
		line, ok := lr.Next()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	return lines, lr.Err()
}
