package instruction

// Register is the index of one of the 16 general purpose registers V0-VF.
type Register uint8

// VF is the flag register that receives carry, borrow, shifted out bits and draw collisions.
const VF Register = 0xF

// Address is a 12-bit memory address embedded in an opcode.
type Address uint16

// Nibble is a 4-bit immediate, used as sprite height by DRW.
type Nibble uint8

// Instruction is one decoded CHIP-8 operation. The set of implementations is closed,
// every implementation is a comparable value type declared in this package.
type Instruction interface {
	// Encode returns the 16-bit opcode word of the instruction.
	// Operands are masked to their field widths.
	Encode() uint16
	// String returns the instruction in assembly notation for diagnostics.
	String() string

	instruction()
}

// Cls clears the display (00E0).
type Cls struct{}

// Ret returns from a subroutine (00EE).
type Ret struct{}

// Sys is the legacy machine code routine call (0nnn). It is executed as no-op.
// Addr never holds 0x0E0 or 0x0EE, those words decode as Cls and Ret.
type Sys struct{ Addr Address }

// Jp jumps to Addr (1nnn).
type Jp struct{ Addr Address }

// Call calls the subroutine at Addr (2nnn).
type Call struct{ Addr Address }

// Se skips the next instruction if VX == Byte (3xkk).
type Se struct {
	X    Register
	Byte uint8
}

// Sne skips the next instruction if VX != Byte (4xkk).
type Sne struct {
	X    Register
	Byte uint8
}

// SeReg skips the next instruction if VX == VY (5xy0).
type SeReg struct{ X, Y Register }

// LdByte sets VX = Byte (6xkk).
type LdByte struct {
	X    Register
	Byte uint8
}

// AddByte sets VX = VX + Byte (7xkk), VF receives the carry.
type AddByte struct {
	X    Register
	Byte uint8
}

// LdReg sets VX = VY (8xy0).
type LdReg struct{ X, Y Register }

// Or sets VX = VX | VY (8xy1).
type Or struct{ X, Y Register }

// And sets VX = VX & VY (8xy2).
type And struct{ X, Y Register }

// Xor sets VX = VX ^ VY (8xy3).
type Xor struct{ X, Y Register }

// Add sets VX = VX + VY (8xy4), VF receives the carry.
type Add struct{ X, Y Register }

// Sub sets VX = VX - VY (8xy5), VF is 1 when no borrow occurred.
type Sub struct{ X, Y Register }

// Shr shifts VX right by one (8xy6), VF receives the bit shifted out.
type Shr struct{ X, Y Register }

// Subn sets VX = VY - VX (8xy7), VF is 1 when no borrow occurred.
type Subn struct{ X, Y Register }

// Shl shifts VX left by one (8xyE), VF receives the bit shifted out.
type Shl struct{ X, Y Register }

// SneReg skips the next instruction if VX != VY (9xy0).
type SneReg struct{ X, Y Register }

// LdI sets I = Addr (Annn).
type LdI struct{ Addr Address }

// JpV0 jumps to Addr + V0 (Bnnn).
type JpV0 struct{ Addr Address }

// Rnd sets VX = random byte & Byte (Cxkk).
type Rnd struct {
	X    Register
	Byte uint8
}

// Drw draws an N byte sprite from memory at I at position (VX, VY) (Dxyn).
type Drw struct {
	X, Y Register
	N    Nibble
}

// Skp skips the next instruction if the key VX is down (Ex9E).
type Skp struct{ X Register }

// Sknp skips the next instruction if the key VX is up (ExA1).
type Sknp struct{ X Register }

// LdRegDT sets VX = DT (Fx07).
type LdRegDT struct{ X Register }

// LdKey waits for a key press and stores the key in VX (Fx0A).
type LdKey struct{ X Register }

// LdDT sets DT = VX (Fx15).
type LdDT struct{ X Register }

// LdST sets ST = VX (Fx18).
type LdST struct{ X Register }

// AddI sets I = I + VX (Fx1E).
type AddI struct{ X Register }

// LdFont sets I to the font glyph address of digit VX (Fx29).
type LdFont struct{ X Register }

// LdBCD stores the decimal digits of VX at I, I+1 and I+2 (Fx33).
type LdBCD struct{ X Register }

// StoreRegs stores V0..VX into memory starting at I (Fx55).
type StoreRegs struct{ X Register }

// LoadRegs loads V0..VX from memory starting at I (Fx65).
type LoadRegs struct{ X Register }

func (Cls) instruction()       {}
func (Ret) instruction()       {}
func (Sys) instruction()       {}
func (Jp) instruction()        {}
func (Call) instruction()      {}
func (Se) instruction()        {}
func (Sne) instruction()       {}
func (SeReg) instruction()     {}
func (LdByte) instruction()    {}
func (AddByte) instruction()   {}
func (LdReg) instruction()     {}
func (Or) instruction()        {}
func (And) instruction()       {}
func (Xor) instruction()       {}
func (Add) instruction()       {}
func (Sub) instruction()       {}
func (Shr) instruction()       {}
func (Subn) instruction()      {}
func (Shl) instruction()       {}
func (SneReg) instruction()    {}
func (LdI) instruction()       {}
func (JpV0) instruction()      {}
func (Rnd) instruction()       {}
func (Drw) instruction()       {}
func (Skp) instruction()       {}
func (Sknp) instruction()      {}
func (LdRegDT) instruction()   {}
func (LdKey) instruction()     {}
func (LdDT) instruction()      {}
func (LdST) instruction()      {}
func (AddI) instruction()      {}
func (LdFont) instruction()    {}
func (LdBCD) instruction()     {}
func (StoreRegs) instruction() {}
func (LoadRegs) instruction()  {}
