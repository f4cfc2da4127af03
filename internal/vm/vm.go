// Package vm implements the CHIP-8 virtual machine: registers, stack, timers, keypad
// and the fetch-decode-execute loop over the owned memory and display.
//
// The machine is not safe for concurrent use, the owner has to serialize all calls.
// It has no clock of its own: Step is expected to be called at about 500 Hz and Tick
// at 60 Hz, the ratio between both is up to the caller.
package vm

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/instruction"
	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

const (
	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16
	// StackSize is the number of return addresses the call stack can hold.
	StackSize = 16
	// KeyCount is the number of keys of the hexadecimal keypad.
	KeyCount = 16

	// Sentinel is the program counter value that ends Run. Test programs jump
	// there to signal completion.
	Sentinel = 0xFFF
)

// Config contains the machine settings.
type Config struct {
	Seed  int64 // random number generator seed, 0 seeds from the current time
	Trace bool  // log every executed instruction at debug level
}

// Machine is a CHIP-8 interpreter instance.
type Machine struct {
	logger *log.Logger
	rng    *rand.Rand
	trace  bool

	v     [RegisterCount]uint8
	i     uint16
	pc    uint16
	sp    uint8
	stack [StackSize]uint16
	dt    uint8
	st    uint8
	keys  [KeyCount]bool

	waiting bool                 // LD Vx, K is waiting for a key press
	waitReg instruction.Register // register receiving the pressed key

	memory  *memory.Memory
	display *display.Display
}

// New returns a machine with zeroed registers, memory and display.
func New(logger *log.Logger, cfg Config) *Machine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Machine{
		logger:  logger,
		rng:     rand.New(rand.NewSource(seed)),
		trace:   cfg.Trace,
		memory:  memory.New(),
		display: display.New(),
	}
}

// Memory returns the main memory, to be used by program loaders before execution starts.
func (m *Machine) Memory() *memory.Memory {
	return m.memory
}

// Display returns the frame buffer. Renderers must only read from it.
func (m *Machine) Display() *display.Display {
	return m.display
}

// Jump sets the program counter.
func (m *Machine) Jump(addr uint16) {
	m.pc = addr
}

// Tick decrements the delay timer. The sound timer is left for the front end,
// which can observe it with ST.
func (m *Machine) Tick() {
	if m.dt > 0 {
		m.dt--
	}
}

// KeyDown marks the key as pressed. A pending LD Vx, K is resolved with the key
// if the key was not already down. Keys outside of the keypad are ignored.
func (m *Machine) KeyDown(key uint8) {
	if int(key) >= KeyCount {
		return
	}

	if m.waiting && !m.keys[key] {
		m.v[m.waitReg] = key
		m.waiting = false
	}
	m.keys[key] = true
}

// KeyUp marks the key as released. Keys outside of the keypad are ignored.
func (m *Machine) KeyUp(key uint8) {
	if int(key) >= KeyCount {
		return
	}
	m.keys[key] = false
}

// Step fetches, decodes and executes the instruction at PC. While the machine
// waits for a key press it does nothing. A failing instruction leaves the machine
// unchanged with PC pointing at it.
func (m *Machine) Step() error {
	if m.waiting {
		return nil
	}

	pc := m.pc
	if int(pc) > memory.Size-2 {
		return errors.Wrapf(ErrOutOfBounds, "pc $%04X", pc)
	}

	word := m.memory.ReadWord(pc)
	ins, ok := instruction.Decode(word)
	if !ok {
		return errors.Wrapf(ErrDecode, "opcode $%04X at $%03X", word, pc)
	}

	if m.trace {
		m.logger.Debug("Executing",
			log.Hex("pc", pc),
			log.String("instruction", ins.String()))
	}

	if err := m.execute(ins); err != nil {
		m.pc = pc
		return errors.Wrapf(err, "executing '%s' at $%03X", ins, pc)
	}

	if m.trace && instruction.IsSkip(ins) && m.pc == pc+4 {
		m.logger.Debug("Skipped next instruction", log.Hex("pc", pc))
	}
	return nil
}

// Run sets PC to start and steps until PC reaches the sentinel address, an error
// occurs or the context is canceled.
func (m *Machine) Run(ctx context.Context, start, sentinel uint16) error {
	m.pc = start
	for m.pc != sentinel {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// V returns the value of the register.
func (m *Machine) V(x instruction.Register) uint8 {
	return m.v[x&0xF]
}

// I returns the address register.
func (m *Machine) I() uint16 {
	return m.i
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// SP returns the stack pointer.
func (m *Machine) SP() uint8 {
	return m.sp
}

// Stack returns a copy of the call stack.
func (m *Machine) Stack() [StackSize]uint16 {
	return m.stack
}

// DT returns the delay timer.
func (m *Machine) DT() uint8 {
	return m.dt
}

// ST returns the sound timer.
func (m *Machine) ST() uint8 {
	return m.st
}

// Key returns whether the key is currently pressed.
func (m *Machine) Key(key uint8) bool {
	if int(key) >= KeyCount {
		return false
	}
	return m.keys[key]
}

// WaitingForKey returns the register that receives the next key press
// and whether the machine is waiting for one.
func (m *Machine) WaitingForKey() (instruction.Register, bool) {
	return m.waitReg, m.waiting
}
