package runner

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/retroenv/chip8vm/internal/instruction"
	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newMachine(t *testing.T, program ...instruction.Instruction) *vm.Machine {
	t.Helper()

	m := vm.New(log.NewTestLogger(t), vm.Config{Seed: 1})
	m.Memory().LoadFont()
	assert.NoError(t, m.Memory().LoadProgram(memory.ProgramStart, program))
	m.Jump(memory.ProgramStart)
	return m
}

// loop is an endless program counting V0 up.
var loop = []instruction.Instruction{
	instruction.AddByte{X: 0, Byte: 1},
	instruction.Jp{Addr: memory.ProgramStart},
}

func TestRunFrames(t *testing.T) {
	m := newMachine(t, loop...)
	r := New(log.NewTestLogger(t), m, Config{StepsPerTick: 8, Frames: 3})

	res, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, res.Frames)
	assert.Equal(t, 24, res.Cycles)
	assert.False(t, res.Finished)
	assert.Equal(t, 12, m.V(0))
}

func TestRunCycles(t *testing.T) {
	m := newMachine(t, loop...)
	r := New(log.NewTestLogger(t), m, Config{StepsPerTick: 8, Cycles: 11})

	res, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 11, res.Cycles)
	assert.Equal(t, 1, res.Frames)
	assert.Equal(t, 6, m.V(0))
}

func TestRunTicksTimers(t *testing.T) {
	m := newMachine(t,
		instruction.LdByte{X: 0, Byte: 10},
		instruction.LdDT{X: 0},
		instruction.Jp{Addr: memory.ProgramStart + 4},
	)
	r := New(log.NewTestLogger(t), m, Config{StepsPerTick: 2, Frames: 4})

	_, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 6, m.DT())
}

func TestRunUntilSentinel(t *testing.T) {
	m := newMachine(t,
		instruction.LdByte{X: 1, Byte: 9},
		instruction.Jp{Addr: vm.Sentinel},
	)
	r := New(log.NewTestLogger(t), m, Config{StepsPerTick: 10})

	res, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.True(t, res.Finished)
	assert.Equal(t, 2, res.Cycles)
	assert.Equal(t, 9, m.V(1))
}

func TestRunHaltsOnError(t *testing.T) {
	m := newMachine(t,
		instruction.LdByte{X: 1, Byte: 9},
		instruction.Ret{},
		instruction.LdByte{X: 2, Byte: 9},
	)
	r := New(log.NewTestLogger(t), m, Config{StepsPerTick: 10})

	res, err := r.Run(context.Background())
	assert.True(t, errors.Is(err, vm.ErrStackUnderflow))
	assert.Equal(t, 1, res.Cycles)
	assert.Equal(t, memory.ProgramStart+2, m.PC())
	assert.Equal(t, 0, m.V(2))
}

func TestRunCanceled(t *testing.T) {
	m := newMachine(t, loop...)
	r := New(log.NewTestLogger(t), m, Config{StepsPerTick: 10, Interval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	res, err := r.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, res.Frames)
}

func TestRunPaced(t *testing.T) {
	m := newMachine(t, loop...)
	r := New(log.NewTestLogger(t), m, Config{StepsPerTick: 1, Frames: 3, Interval: time.Millisecond})

	start := time.Now()
	res, err := r.Run(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, res.Frames)
	assert.True(t, time.Since(start) >= 2*time.Millisecond)
}

func TestReport(t *testing.T) {
	m := newMachine(t,
		instruction.LdFont{X: 0},
		instruction.Drw{X: 0, Y: 0, N: 5},
		instruction.Jp{Addr: vm.Sentinel},
	)
	r := New(log.NewTestLogger(t), m, Config{StepsPerTick: 10})

	res, err := r.Run(context.Background())
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, r.Report(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "3 instructions, 0 frames")
	assert.Contains(t, out, "####....")
	assert.Contains(t, out, "#..#....")
	assert.Contains(t, out, "PC: $0FFF  ????")
}
