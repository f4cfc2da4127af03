package vm

import (
	"github.com/pkg/errors"
	"github.com/retroenv/chip8vm/internal/instruction"
	"github.com/retroenv/chip8vm/internal/memory"
)

// instructionSize is the size of every CHIP-8 instruction in bytes.
const instructionSize = 2

// skip advances PC to the next instruction.
func (m *Machine) skip() {
	m.pc += instructionSize
}

// execute runs a decoded instruction. PC is advanced before the instruction
// runs, so CALL pushes the address of the following instruction and the
// conditional skips advance once more.
func (m *Machine) execute(ins instruction.Instruction) error {
	m.skip()

	switch i := ins.(type) {
	case instruction.Cls:
		m.display.Clear()
	case instruction.Ret:
		if m.sp == 0 {
			return ErrStackUnderflow
		}
		m.sp--
		m.pc = m.stack[m.sp]
	case instruction.Sys:
		// machine code routines are not supported by interpreters, ignored
	case instruction.Jp:
		m.pc = uint16(i.Addr)
	case instruction.JpV0:
		m.pc = uint16(i.Addr) + uint16(m.v[0])
	case instruction.Call:
		if int(m.sp) >= StackSize {
			return ErrStackOverflow
		}
		m.stack[m.sp] = m.pc
		m.sp++
		m.pc = uint16(i.Addr)

	case instruction.Se:
		m.skipIf(m.v[i.X] == i.Byte)
	case instruction.Sne:
		m.skipIf(m.v[i.X] != i.Byte)
	case instruction.SeReg:
		m.skipIf(m.v[i.X] == m.v[i.Y])
	case instruction.SneReg:
		m.skipIf(m.v[i.X] != m.v[i.Y])
	case instruction.Skp:
		return m.skipOnKey(i.X, true)
	case instruction.Sknp:
		return m.skipOnKey(i.X, false)

	case instruction.LdByte:
		m.v[i.X] = i.Byte
	case instruction.LdReg:
		m.v[i.X] = m.v[i.Y]
	case instruction.Or:
		m.v[i.X] |= m.v[i.Y]
	case instruction.And:
		m.v[i.X] &= m.v[i.Y]
	case instruction.Xor:
		m.v[i.X] ^= m.v[i.Y]
	case instruction.Add:
		m.add(i.X, m.v[i.Y])
	case instruction.AddByte:
		m.add(i.X, i.Byte)
	case instruction.Sub:
		m.sub(i.X, m.v[i.X], m.v[i.Y])
	case instruction.Subn:
		m.sub(i.X, m.v[i.Y], m.v[i.X])
	case instruction.Shr:
		vx := m.v[i.X]
		m.v[i.X] = vx >> 1
		m.v[instruction.VF] = vx & 0x01
	case instruction.Shl:
		vx := m.v[i.X]
		m.v[i.X] = vx << 1
		m.v[instruction.VF] = vx >> 7
	case instruction.Rnd:
		m.v[i.X] = uint8(m.rng.Intn(256)) & i.Byte

	case instruction.LdI:
		m.i = uint16(i.Addr)
	case instruction.AddI:
		m.i += uint16(m.v[i.X])
	case instruction.LdRegDT:
		m.v[i.X] = m.dt
	case instruction.LdDT:
		m.dt = m.v[i.X]
	case instruction.LdST:
		m.st = m.v[i.X]
	case instruction.LdKey:
		m.waiting = true
		m.waitReg = i.X
	case instruction.LdFont:
		m.i = memory.GlyphAddress(m.v[i.X])
	case instruction.LdBCD:
		return m.storeBCD(i.X)
	case instruction.StoreRegs:
		return m.storeRegisters(i.X)
	case instruction.LoadRegs:
		return m.loadRegisters(i.X)

	case instruction.Drw:
		return m.draw(i)

	default:
		return errors.Errorf("unsupported instruction type %T", ins)
	}
	return nil
}

func (m *Machine) skipIf(condition bool) {
	if condition {
		m.skip()
	}
}

// skipOnKey skips the next instruction if the state of the key named by VX
// matches the expected state.
func (m *Machine) skipOnKey(x instruction.Register, down bool) error {
	key := m.v[x]
	if int(key) >= KeyCount {
		return errors.Wrapf(ErrInvalidKey, "key $%02X", key)
	}
	m.skipIf(m.keys[key] == down)
	return nil
}

// add sets VX = VX + value and VF to the carry.
func (m *Machine) add(x instruction.Register, value uint8) {
	sum := uint16(m.v[x]) + uint16(value)
	m.v[x] = uint8(sum)
	m.v[instruction.VF] = uint8(sum >> 8)
}

// sub sets VX = a - b and VF to 1 if no borrow occurred.
func (m *Machine) sub(x instruction.Register, a, b uint8) {
	m.v[x] = a - b
	if a >= b {
		m.v[instruction.VF] = 1
	} else {
		m.v[instruction.VF] = 0
	}
}

// checkRange verifies that the n bytes starting at I are inside of memory.
func (m *Machine) checkRange(n int) error {
	if int(m.i)+n > memory.Size {
		return errors.Wrapf(ErrOutOfBounds, "I $%04X + %d bytes", m.i, n)
	}
	return nil
}

// storeBCD stores the decimal hundreds, tens and ones of VX at I, I+1 and I+2.
func (m *Machine) storeBCD(x instruction.Register) error {
	if err := m.checkRange(3); err != nil {
		return err
	}

	vx := m.v[x]
	m.memory.SetByte(m.i, vx/100)
	m.memory.SetByte(m.i+1, (vx/10)%10)
	m.memory.SetByte(m.i+2, vx%10)
	return nil
}

// storeRegisters copies V0..VX to memory starting at I.
func (m *Machine) storeRegisters(x instruction.Register) error {
	n := int(x) + 1
	if err := m.checkRange(n); err != nil {
		return err
	}
	copy(m.memory.Slice(m.i, n), m.v[:n])
	return nil
}

// loadRegisters copies memory starting at I to V0..VX.
func (m *Machine) loadRegisters(x instruction.Register) error {
	n := int(x) + 1
	if err := m.checkRange(n); err != nil {
		return err
	}
	copy(m.v[:n], m.memory.Slice(m.i, n))
	return nil
}

// draw blits the N byte sprite at I to (VX, VY) and sets VF to the collision flag.
func (m *Machine) draw(ins instruction.Drw) error {
	n := int(ins.N)
	if err := m.checkRange(n); err != nil {
		return err
	}

	sprite := m.memory.Slice(m.i, n)
	collision := m.display.Draw(int(m.v[ins.X]), int(m.v[ins.Y]), sprite)
	if collision {
		m.v[instruction.VF] = 1
	} else {
		m.v[instruction.VF] = 0
	}
	return nil
}
