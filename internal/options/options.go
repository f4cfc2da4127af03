// Package options contains the program options.
package options

// Default values of the emulation options.
const (
	DefaultStepRate = 500
	DefaultTickRate = 60
	DefaultScale    = 10
)

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
}

// Flags contains behavior options.
type Flags struct {
	System   string `flag:"s" usage:"target system: chip8 (default: auto-detect)"`
	Headless bool   `flag:"headless" usage:"run without a window and print the display on exit"`
	Cycles   int    `flag:"cycles" usage:"headless mode: stop after this many instructions (0: unlimited)"`
	Frames   int    `flag:"frames" usage:"headless mode: stop after this many 60 Hz frames (0: unlimited)"`
	Seed     int64  `flag:"seed" usage:"random number generator seed (0: seed from time)"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction, implies -debug"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Emulation contains the pacing and presentation options.
type Emulation struct {
	Scale    int `flag:"scale" usage:"window pixels per display pixel" default:"10"`
	StepRate int `flag:"rate" usage:"instructions executed per second" default:"500"`
	TickRate int `flag:"tick" usage:"timer ticks per second" default:"60"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Emulation
}

// StepsPerTick returns how many instructions run between two timer ticks,
// at least one.
func (e Emulation) StepsPerTick() int {
	if e.TickRate <= 0 {
		return 1
	}
	n := e.StepRate / e.TickRate
	if n < 1 {
		return 1
	}
	return n
}
