// Package loader handles ROM file loading operations.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/chip8vm/internal/options"
)

// ErrEmptyROM is returned for ROM files without any data.
var ErrEmptyROM = errors.New("empty ROM")

// Loader handles loading ROM files from disk into machine memory.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file named by the options and writes it to memory at the
// program start address. It returns the size of the ROM in bytes.
func (l *Loader) Load(opts options.Program, mem *memory.Memory) (int, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return 0, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	return l.load(file, mem)
}

// LoadFromBytes writes the ROM data to memory at the program start address.
func (l *Loader) LoadFromBytes(data []byte, mem *memory.Memory) (int, error) {
	return l.load(bytes.NewReader(data), mem)
}

func (l *Loader) load(r io.Reader, mem *memory.Memory) (int, error) {
	n, err := mem.LoadReader(memory.ProgramStart, r)
	if err != nil {
		return 0, fmt.Errorf("loading ROM (maximum size is %d bytes): %w", memory.MaxProgramSize, err)
	}
	if n == 0 {
		return 0, ErrEmptyROM
	}
	return n, nil
}
