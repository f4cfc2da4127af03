package vm

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/chip8vm/internal/instruction"
	"github.com/retroenv/chip8vm/internal/memory"
)

// Dump writes a human readable snapshot of the registers, timers, the next
// instruction and the call stack to w.
func (m *Machine) Dump(w io.Writer) error {
	var sb strings.Builder

	for x := range RegisterCount {
		fmt.Fprintf(&sb, " V%X ", x)
	}
	sb.WriteByte('\n')
	for _, v := range m.v {
		fmt.Fprintf(&sb, " %02X ", v)
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "I:  $%04X\n", m.i)
	fmt.Fprintf(&sb, "PC: $%04X  %s\n", m.pc, m.nextInstruction())
	fmt.Fprintf(&sb, "SP: %d\n", m.sp)
	fmt.Fprintf(&sb, "DT: $%02X  ST: $%02X\n", m.dt, m.st)
	if m.waiting {
		fmt.Fprintf(&sb, "waiting for key into V%X\n", m.waitReg)
	}

	sb.WriteByte('\n')
	for i, addr := range m.stack {
		marker := ' '
		if i == int(m.sp) {
			marker = '>'
		}
		fmt.Fprintf(&sb, "%cS%X: $%04X\n", marker, i, addr)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// nextInstruction returns the disassembly of the instruction at PC.
func (m *Machine) nextInstruction() string {
	if int(m.pc) > memory.Size-2 {
		return "????"
	}
	ins, ok := instruction.Decode(m.memory.ReadWord(m.pc))
	if !ok {
		return "????"
	}
	return ins.String()
}
