package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestLineReader(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		newline string
	}{
		{"LF", "a\nb\n", []string{"a", "b"}, LF},
		{"CRLF", "a\r\nb\r\n", []string{"a", "b"}, CRLF},
		{"No trailing terminator", "a\r\nb", []string{"a", "b"}, CRLF},
		{"Single unterminated line", "only", []string{"only"}, "fallback"},
		{"Empty lines kept", "a\n\nb\n", []string{"a", "", "b"}, LF},
		{"Empty input", "", nil, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := NewLineReader(strings.NewReader(tt.input))
			var got []string
			for {
				line, ok := lr.Next()
				if !ok {
					break
				}
				got = append(got, line)
			}
			require.NoError(t, lr.Err())
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.newline, lr.Newline("fallback"))
		})
	}
}

func TestLineReader_Error(t *testing.T) {
	lr := NewLineReader(failingReader{})
	_, ok := lr.Next()
	assert.False(t, ok)
	assert.EqualError(t, lr.Err(), "disk on fire")

	// Subsequent calls keep failing without reading again.
	_, ok = lr.Next()
	assert.False(t, ok)
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("one\r\ntwo\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)

	_, err = ReadLines(failingReader{})
	assert.Error(t, err)
}
