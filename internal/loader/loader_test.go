package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/assert"
)

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoad(t *testing.T) {
	data := []byte{0x6A, 0x05, 0x12, 0x00}
	path := createTempFile(t, data)

	rom, err := New().Load(path)
	assert.NoError(t, err)
	assert.Equal(t, data, rom)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New().Load(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.True(t, errors.Is(err, ErrRomLoadFailed))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadSizeLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"maximum size", memory.MaxROMSize, false},
		{"too large", memory.MaxROMSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom, err := New().Read(bytes.NewReader(make([]byte, tt.size)))
			if tt.wantErr {
				assert.True(t, errors.Is(err, memory.ErrRomTooLarge))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.size, len(rom))
		})
	}
}
