package instruction

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// sysName is the mnemonic of the legacy machine code call, which has no entry in the
// CHIP-8 instruction table.
const sysName = "sys"

// formatAddr formats instructions with a single address parameter (JP addr, CALL addr).
func formatAddr(name string, addr Address) string {
	return fmt.Sprintf("%s $%03X", name, encodeAddr(addr))
}

// formatRegByte formats instructions with a register and an immediate byte (SE Vx, byte).
func formatRegByte(name string, x Register, b uint8) string {
	return fmt.Sprintf("%s V%X, $%02X", name, x&0xF, b)
}

// formatRegReg formats register to register instructions (OR Vx, Vy).
func formatRegReg(name string, x, y Register) string {
	return fmt.Sprintf("%s V%X, V%X", name, x&0xF, y&0xF)
}

// formatReg formats instructions with a single register parameter (SKP Vx).
func formatReg(name string, x Register) string {
	return fmt.Sprintf("%s V%X", name, x&0xF)
}

func (Cls) String() string      { return chip8.ClsInst.Name }
func (Ret) String() string      { return chip8.RetInst.Name }
func (i Sys) String() string    { return formatAddr(sysName, i.Addr) }
func (i Jp) String() string     { return formatAddr(chip8.JpInst.Name, i.Addr) }
func (i Call) String() string   { return formatAddr(chip8.CallInst.Name, i.Addr) }
func (i Se) String() string     { return formatRegByte(chip8.SeInst.Name, i.X, i.Byte) }
func (i Sne) String() string    { return formatRegByte(chip8.SneInst.Name, i.X, i.Byte) }
func (i SeReg) String() string  { return formatRegReg(chip8.SeInst.Name, i.X, i.Y) }
func (i SneReg) String() string { return formatRegReg(chip8.SneInst.Name, i.X, i.Y) }
func (i LdByte) String() string { return formatRegByte(chip8.LdInst.Name, i.X, i.Byte) }
func (i LdReg) String() string  { return formatRegReg(chip8.LdInst.Name, i.X, i.Y) }
func (i Or) String() string     { return formatRegReg(chip8.OrInst.Name, i.X, i.Y) }
func (i And) String() string    { return formatRegReg(chip8.AndInst.Name, i.X, i.Y) }
func (i Xor) String() string    { return formatRegReg(chip8.XorInst.Name, i.X, i.Y) }
func (i Add) String() string    { return formatRegReg(chip8.AddInst.Name, i.X, i.Y) }
func (i Sub) String() string    { return formatRegReg(chip8.SubInst.Name, i.X, i.Y) }
func (i Subn) String() string   { return formatRegReg(chip8.SubnInst.Name, i.X, i.Y) }
func (i Rnd) String() string    { return formatRegByte(chip8.RndInst.Name, i.X, i.Byte) }
func (i Skp) String() string    { return formatReg(chip8.SkpInst.Name, i.X) }
func (i Sknp) String() string   { return formatReg(chip8.SknpInst.Name, i.X) }

// Shift instructions only print VX, VY is ignored by the interpreter.
func (i Shr) String() string { return formatReg(chip8.ShrInst.Name, i.X) }
func (i Shl) String() string { return formatReg(chip8.ShlInst.Name, i.X) }

func (i AddByte) String() string {
	return formatRegByte(chip8.AddInst.Name, i.X, i.Byte)
}

func (i LdI) String() string {
	return fmt.Sprintf("%s I, $%03X", chip8.LdInst.Name, encodeAddr(i.Addr))
}

func (i JpV0) String() string {
	return fmt.Sprintf("%s V0, $%03X", chip8.JpInst.Name, encodeAddr(i.Addr))
}

func (i Drw) String() string {
	return fmt.Sprintf("%s V%X, V%X, $%X", chip8.DrwInst.Name, i.X&0xF, i.Y&0xF, i.N&0xF)
}

func (i AddI) String() string {
	return fmt.Sprintf("%s I, V%X", chip8.AddInst.Name, i.X&0xF)
}

func (i LdRegDT) String() string {
	return fmt.Sprintf("%s V%X, DT", chip8.LdInst.Name, i.X&0xF)
}

func (i LdKey) String() string {
	return fmt.Sprintf("%s V%X, K", chip8.LdInst.Name, i.X&0xF)
}

func (i LdDT) String() string {
	return fmt.Sprintf("%s DT, V%X", chip8.LdInst.Name, i.X&0xF)
}

func (i LdST) String() string {
	return fmt.Sprintf("%s ST, V%X", chip8.LdInst.Name, i.X&0xF)
}

func (i LdFont) String() string {
	return fmt.Sprintf("%s F, V%X", chip8.LdInst.Name, i.X&0xF)
}

func (i LdBCD) String() string {
	return fmt.Sprintf("%s B, V%X", chip8.LdInst.Name, i.X&0xF)
}

func (i StoreRegs) String() string {
	return fmt.Sprintf("%s [I], V%X", chip8.LdInst.Name, i.X&0xF)
}

func (i LoadRegs) String() string {
	return fmt.Sprintf("%s V%X, [I]", chip8.LdInst.Name, i.X&0xF)
}

// IsSkip returns whether the instruction conditionally skips the next instruction.
func IsSkip(ins Instruction) bool {
	return chip8.SkipInstructions.Contains(Mnemonic(ins))
}

// Mnemonic returns the instruction name without parameters.
func Mnemonic(ins Instruction) string {
	name, _, _ := strings.Cut(ins.String(), " ")
	return name
}
