// Package rom loads CHIP-8 program files from disk for the host shells.
package rom

import (
	"fmt"
	"os"
)

// MaxSize is the largest program that fits above the interpreter area.
const MaxSize = 4096 - 0x200

// Load reads a program file and validates its size. The bytes are passed to
// the interpreter verbatim; no format checking happens here.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("ROM file %q is empty", path)
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("ROM file %q is %d bytes, limit is %d", path, len(data), MaxSize)
	}
	return data, nil
}
