package instruction

// Fields contains the nibble split of an opcode word.
type Fields struct {
	A, X, Y, Z uint8
	YZ         uint8
	XYZ        uint16
}

// Split extracts the nibbles, the low byte and the low 12 bits of an opcode word.
func Split(word uint16) Fields {
	return Fields{
		A:   uint8((word & 0xF000) >> 12),
		X:   uint8((word & 0x0F00) >> 8),
		Y:   uint8((word & 0x00F0) >> 4),
		Z:   uint8(word & 0x000F),
		YZ:  uint8(word & 0x00FF),
		XYZ: word & 0x0FFF,
	}
}

// Decode returns the instruction encoded by the given opcode word.
// The boolean result is false for words that are not assigned to any instruction.
func Decode(word uint16) (Instruction, bool) {
	f := Split(word)
	x := Register(f.X)
	y := Register(f.Y)
	addr := Address(f.XYZ)

	switch f.A {
	case 0x0:
		switch f.XYZ {
		case 0x0E0:
			return Cls{}, true
		case 0x0EE:
			return Ret{}, true
		default:
			return Sys{Addr: addr}, true
		}
	case 0x1:
		return Jp{Addr: addr}, true
	case 0x2:
		return Call{Addr: addr}, true
	case 0x3:
		return Se{X: x, Byte: f.YZ}, true
	case 0x4:
		return Sne{X: x, Byte: f.YZ}, true
	case 0x5:
		if f.Z == 0 {
			return SeReg{X: x, Y: y}, true
		}
	case 0x6:
		return LdByte{X: x, Byte: f.YZ}, true
	case 0x7:
		return AddByte{X: x, Byte: f.YZ}, true
	case 0x8:
		return decodeArithmetic(f.Z, x, y)
	case 0x9:
		if f.Z == 0 {
			return SneReg{X: x, Y: y}, true
		}
	case 0xA:
		return LdI{Addr: addr}, true
	case 0xB:
		return JpV0{Addr: addr}, true
	case 0xC:
		return Rnd{X: x, Byte: f.YZ}, true
	case 0xD:
		return Drw{X: x, Y: y, N: Nibble(f.Z)}, true
	case 0xE:
		switch f.YZ {
		case 0x9E:
			return Skp{X: x}, true
		case 0xA1:
			return Sknp{X: x}, true
		}
	case 0xF:
		return decodeMisc(f.YZ, x)
	}
	return nil, false
}

// decodeArithmetic decodes the 8xy_ register to register group.
func decodeArithmetic(z uint8, x, y Register) (Instruction, bool) {
	switch z {
	case 0x0:
		return LdReg{X: x, Y: y}, true
	case 0x1:
		return Or{X: x, Y: y}, true
	case 0x2:
		return And{X: x, Y: y}, true
	case 0x3:
		return Xor{X: x, Y: y}, true
	case 0x4:
		return Add{X: x, Y: y}, true
	case 0x5:
		return Sub{X: x, Y: y}, true
	case 0x6:
		return Shr{X: x, Y: y}, true
	case 0x7:
		return Subn{X: x, Y: y}, true
	case 0xE:
		return Shl{X: x, Y: y}, true
	}
	return nil, false
}

// decodeMisc decodes the Fx__ timer, keyboard and memory group.
func decodeMisc(yz uint8, x Register) (Instruction, bool) {
	switch yz {
	case 0x07:
		return LdRegDT{X: x}, true
	case 0x0A:
		return LdKey{X: x}, true
	case 0x15:
		return LdDT{X: x}, true
	case 0x18:
		return LdST{X: x}, true
	case 0x1E:
		return AddI{X: x}, true
	case 0x29:
		return LdFont{X: x}, true
	case 0x33:
		return LdBCD{X: x}, true
	case 0x55:
		return StoreRegs{X: x}, true
	case 0x65:
		return LoadRegs{X: x}, true
	}
	return nil, false
}

func encodeX(x Register) uint16 {
	return uint16(x&0xF) << 8
}

func encodeXY(x, y Register) uint16 {
	return encodeX(x) | uint16(y&0xF)<<4
}

func encodeAddr(a Address) uint16 {
	return uint16(a) & 0x0FFF
}

// The layout of each opcode word is noted in the type documentation.

func (Cls) Encode() uint16 { return 0x00E0 }

func (Ret) Encode() uint16 { return 0x00EE }

func (i Sys) Encode() uint16 { return encodeAddr(i.Addr) }

func (i Jp) Encode() uint16 { return 0x1000 | encodeAddr(i.Addr) }

func (i Call) Encode() uint16 { return 0x2000 | encodeAddr(i.Addr) }

func (i Se) Encode() uint16 { return 0x3000 | encodeX(i.X) | uint16(i.Byte) }

func (i Sne) Encode() uint16 { return 0x4000 | encodeX(i.X) | uint16(i.Byte) }

func (i SeReg) Encode() uint16 { return 0x5000 | encodeXY(i.X, i.Y) }

func (i LdByte) Encode() uint16 { return 0x6000 | encodeX(i.X) | uint16(i.Byte) }

func (i AddByte) Encode() uint16 { return 0x7000 | encodeX(i.X) | uint16(i.Byte) }

func (i LdReg) Encode() uint16 { return 0x8000 | encodeXY(i.X, i.Y) }

func (i Or) Encode() uint16 { return 0x8001 | encodeXY(i.X, i.Y) }

func (i And) Encode() uint16 { return 0x8002 | encodeXY(i.X, i.Y) }

func (i Xor) Encode() uint16 { return 0x8003 | encodeXY(i.X, i.Y) }

func (i Add) Encode() uint16 { return 0x8004 | encodeXY(i.X, i.Y) }

func (i Sub) Encode() uint16 { return 0x8005 | encodeXY(i.X, i.Y) }

func (i Shr) Encode() uint16 { return 0x8006 | encodeXY(i.X, i.Y) }

func (i Subn) Encode() uint16 { return 0x8007 | encodeXY(i.X, i.Y) }

func (i Shl) Encode() uint16 { return 0x800E | encodeXY(i.X, i.Y) }

func (i SneReg) Encode() uint16 { return 0x9000 | encodeXY(i.X, i.Y) }

func (i LdI) Encode() uint16 { return 0xA000 | encodeAddr(i.Addr) }

func (i JpV0) Encode() uint16 { return 0xB000 | encodeAddr(i.Addr) }

func (i Rnd) Encode() uint16 { return 0xC000 | encodeX(i.X) | uint16(i.Byte) }

func (i Drw) Encode() uint16 { return 0xD000 | encodeXY(i.X, i.Y) | uint16(i.N&0xF) }

func (i Skp) Encode() uint16 { return 0xE09E | encodeX(i.X) }

func (i Sknp) Encode() uint16 { return 0xE0A1 | encodeX(i.X) }

func (i LdRegDT) Encode() uint16 { return 0xF007 | encodeX(i.X) }

func (i LdKey) Encode() uint16 { return 0xF00A | encodeX(i.X) }

func (i LdDT) Encode() uint16 { return 0xF015 | encodeX(i.X) }

func (i LdST) Encode() uint16 { return 0xF018 | encodeX(i.X) }

func (i AddI) Encode() uint16 { return 0xF01E | encodeX(i.X) }

func (i LdFont) Encode() uint16 { return 0xF029 | encodeX(i.X) }

func (i LdBCD) Encode() uint16 { return 0xF033 | encodeX(i.X) }

func (i StoreRegs) Encode() uint16 { return 0xF055 | encodeX(i.X) }

func (i LoadRegs) Encode() uint16 { return 0xF065 | encodeX(i.X) }
