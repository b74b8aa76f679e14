package rom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "game.ch8", []byte{0x60, 0x05, 0x12, 0x00})
	data, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 4, len(data))
	assert.Equal(t, byte(0x60), data[0])
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ch8"))
	assert.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	path := writeFile(t, "empty.ch8", nil)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadTooLarge(t *testing.T) {
	path := writeFile(t, "big.ch8", make([]byte, MaxSize+1))
	_, err := Load(path)
	assert.Error(t, err)

	path = writeFile(t, "max.ch8", make([]byte, MaxSize))
	_, err = Load(path)
	assert.NoError(t, err)
}
