package memory

import (
	"bytes"
	"testing"

	"github.com/retroenv/chip8vm/internal/instruction"
	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	m := New()
	for addr := 0; addr < Size; addr++ {
		if m.Byte(uint16(addr)) != 0 {
			t.Fatalf("memory at $%03X is not zeroed", addr)
		}
	}
}

func TestLoadFont(t *testing.T) {
	m := New()
	m.LoadFont()

	// glyph "0"
	assert.Equal(t, []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}, m.Slice(GlyphAddress(0), GlyphSize))
	// glyph "A"
	assert.Equal(t, []byte{0xF0, 0x90, 0xF0, 0x90, 0x90}, m.Slice(GlyphAddress(0xA), GlyphSize))
	// glyph "F" is the last one
	assert.Equal(t, []byte{0xF0, 0x80, 0xF0, 0x80, 0x80}, m.Slice(GlyphAddress(0xF), GlyphSize))
	assert.Equal(t, byte(0), m.Byte(GlyphAddress(0xF)+GlyphSize))
}

func TestGlyphAddress(t *testing.T) {
	assert.Equal(t, uint16(0), GlyphAddress(0))
	assert.Equal(t, uint16(50), GlyphAddress(0xA))
	assert.Equal(t, uint16(75), GlyphAddress(0xF))
}

func TestGlyph(t *testing.T) {
	glyph := Glyph(0xB)
	assert.Equal(t, []byte{0xE0, 0x90, 0xE0, 0x90, 0xE0}, glyph)

	// returned data is a copy
	glyph[0] = 0
	assert.Equal(t, byte(0xE0), Glyph(0xB)[0])
}

func TestLoadProgram(t *testing.T) {
	m := New()
	err := m.LoadProgram(ProgramStart, []instruction.Instruction{
		instruction.LdByte{X: 0, Byte: 7},
		instruction.Add{X: 1, Y: 2},
		instruction.Jp{Addr: 0xFFF},
	})
	assert.NoError(t, err)

	assert.Equal(t, uint16(0x6007), m.ReadWord(ProgramStart))
	assert.Equal(t, uint16(0x8124), m.ReadWord(ProgramStart+2))
	assert.Equal(t, uint16(0x1FFF), m.ReadWord(ProgramStart+4))
	assert.Equal(t, uint16(0), m.ReadWord(ProgramStart+6))
}

func TestLoadProgramTooLarge(t *testing.T) {
	m := New()
	err := m.LoadProgram(Size-2, []instruction.Instruction{instruction.Cls{}, instruction.Cls{}})
	assert.Error(t, err)
}

func TestLoadBytes(t *testing.T) {
	m := New()
	assert.NoError(t, m.LoadBytes(ProgramStart, []byte{0x12, 0x34, 0x56}))
	assert.Equal(t, uint16(0x1234), m.ReadWord(ProgramStart))
	assert.Equal(t, byte(0x56), m.Byte(ProgramStart+2))

	assert.NoError(t, m.LoadBytes(ProgramStart, make([]byte, MaxProgramSize)))
	assert.Error(t, m.LoadBytes(ProgramStart, make([]byte, MaxProgramSize+1)))
}

func TestLoadReader(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"empty", 0, false},
		{"small", 4, false},
		{"full", MaxProgramSize, false},
		{"too large", MaxProgramSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := bytes.Repeat([]byte{0xAB}, tt.size)
			m := New()

			n, err := m.LoadReader(ProgramStart, bytes.NewReader(data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.size, n)
			if tt.size > 0 {
				assert.Equal(t, byte(0xAB), m.Byte(ProgramStart+uint16(tt.size)-1))
			}
		})
	}
}

func TestWords(t *testing.T) {
	m := New()
	m.SetWord(0xFFE, 0xBEEF)
	assert.Equal(t, byte(0xBE), m.Byte(0xFFE))
	assert.Equal(t, byte(0xEF), m.Byte(0xFFF))
	assert.Equal(t, uint16(0xBEEF), m.ReadWord(0xFFE))

	m.SetByte(0x300, 0x42)
	assert.Equal(t, []byte{0x42, 0x00}, m.Slice(0x300, 2))
}
