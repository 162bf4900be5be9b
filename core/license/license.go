package license

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed header.xml
var defaultHeader []byte

// Default returns a copy of the embedded license block.
func Default() []byte {
	out := make([]byte, len(defaultHeader))
	copy(out, defaultHeader)
	return out
}

// Load returns the contents of path, or the embedded block when path is empty.
func Load(path string) ([]byte, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read license block: %w", err)
	}
	return data, nil
}
