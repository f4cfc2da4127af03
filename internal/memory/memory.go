// Package memory implements the 4KB CHIP-8 address space.
package memory

import (
	"fmt"
	"io"

	"github.com/retroenv/chip8vm/internal/instruction"
)

// CHIP-8 memory layout constants.
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// Size is the total size of the address space.
	Size = 0x1000

	// ProgramStart is the memory address where CHIP-8 programs are loaded.
	ProgramStart = 0x200

	// FontStart is the address of the first font glyph.
	FontStart = 0x000

	// GlyphSize is the number of bytes of a font glyph.
	GlyphSize = 5

	// MaxProgramSize is the largest program that fits between ProgramStart and the end of memory.
	MaxProgramSize = Size - ProgramStart
)

// font contains the 16 hexadecimal digit glyphs, one row per byte using the high 4 bits.
var font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the byte addressable main memory. It does not check addresses beyond the
// bounds of the underlying array, callers are expected to validate computed ranges.
type Memory struct {
	bytes [Size]byte
}

// New returns a zeroed memory.
func New() *Memory {
	return &Memory{}
}

// GlyphAddress returns the address of the font glyph for the given hex digit.
func GlyphAddress(digit uint8) uint16 {
	return FontStart + uint16(digit)*GlyphSize
}

// Glyph returns a copy of the font data of the given hex digit.
func Glyph(digit uint8) []byte {
	start := int(digit&0xF) * GlyphSize
	glyph := make([]byte, GlyphSize)
	copy(glyph, font[start:start+GlyphSize])
	return glyph
}

// LoadFont installs the hexadecimal digit font at FontStart.
func (m *Memory) LoadFont() {
	copy(m.bytes[FontStart:], font[:])
}

// LoadProgram encodes the instructions and writes them at consecutive
// 2 byte offsets starting at addr.
func (m *Memory) LoadProgram(addr uint16, program []instruction.Instruction) error {
	if int(addr)+2*len(program) > Size {
		return fmt.Errorf("program of %d instructions does not fit at address $%03X", len(program), addr)
	}

	for i, ins := range program {
		m.SetWord(addr+uint16(2*i), ins.Encode())
	}
	return nil
}

// LoadBytes writes raw program bytes starting at addr.
func (m *Memory) LoadBytes(addr uint16, data []byte) error {
	if int(addr)+len(data) > Size {
		return fmt.Errorf("program of %d bytes does not fit at address $%03X", len(data), addr)
	}

	copy(m.bytes[addr:], data)
	return nil
}

// LoadReader reads raw program bytes from the reader and writes them starting at addr.
// It returns the number of bytes loaded.
func (m *Memory) LoadReader(addr uint16, r io.Reader) (int, error) {
	limit := Size - int(addr)
	if limit < 0 {
		return 0, fmt.Errorf("load address $%04X is outside of memory", addr)
	}

	// read one byte more than fits to detect oversized programs
	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return 0, fmt.Errorf("reading program: %w", err)
	}
	if err := m.LoadBytes(addr, data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// Byte returns the byte at addr.
func (m *Memory) Byte(addr uint16) byte {
	return m.bytes[addr]
}

// SetByte sets the byte at addr.
func (m *Memory) SetByte(addr uint16, value byte) {
	m.bytes[addr] = value
}

// ReadWord reads the big endian word at addr.
func (m *Memory) ReadWord(addr uint16) uint16 {
	return uint16(m.bytes[addr])<<8 | uint16(m.bytes[addr+1])
}

// SetWord writes a big endian word at addr.
func (m *Memory) SetWord(addr, value uint16) {
	m.bytes[addr] = byte(value >> 8)
	m.bytes[addr+1] = byte(value)
}

// Slice returns the n bytes starting at addr. The returned slice aliases the memory.
func (m *Memory) Slice(addr uint16, n int) []byte {
	return m.bytes[int(addr) : int(addr)+n]
}
