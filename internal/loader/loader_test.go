package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})

		mem := memory.New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		n, err := New().Load(opts, mem)
		assert.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, 0x1234, mem.ReadWord(memory.ProgramStart))
		assert.Equal(t, 0x5678, mem.ReadWord(memory.ProgramStart+2))
		assert.Equal(t, 0, mem.Byte(memory.ProgramStart-1))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{Input: "/nonexistent/file.ch8"},
		}

		_, err := New().Load(opts, memory.New())
		assert.Error(t, err)
		assert.ErrorContains(t, err, "opening file")
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		_, err := New().Load(opts, memory.New())
		assert.True(t, errors.Is(err, ErrEmptyROM))
	})
}

func TestLoadFromBytes(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "small ROM", size: 2},
		{name: "largest ROM", size: memory.MaxProgramSize},
		{name: "oversized ROM", size: memory.MaxProgramSize + 1, wantErr: true},
		{name: "empty ROM", size: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, tt.size)
			for i := range data {
				data[i] = byte(i)
			}

			mem := memory.New()
			n, err := New().LoadFromBytes(data, mem)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.size, n)
			assert.Equal(t, data[tt.size-1], mem.Byte(uint16(memory.ProgramStart+tt.size-1)))
		})
	}
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
