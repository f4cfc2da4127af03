// Package runner drives a machine without a window. It executes a fixed number
// of instructions per timer tick, optionally paced in real time, until a budget
// is used up, the program ends or fails, or the context is canceled.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// Config controls the headless run.
type Config struct {
	StepsPerTick int           // instructions executed between two timer ticks
	Frames       int           // stop after this many ticks, 0 for no limit
	Cycles       int           // stop after this many instructions, 0 for no limit
	Interval     time.Duration // real time between two ticks, 0 runs unpaced
}

// Result describes how far a run got.
type Result struct {
	Cycles   int  // executed instructions
	Frames   int  // timer ticks
	Finished bool // program jumped to the sentinel address
}

// Runner executes a machine headless.
type Runner struct {
	logger  *log.Logger
	machine *vm.Machine
	cfg     Config
}

// New returns a runner for the machine.
func New(logger *log.Logger, machine *vm.Machine, cfg Config) *Runner {
	if cfg.StepsPerTick < 1 {
		cfg.StepsPerTick = 1
	}
	return &Runner{
		logger:  logger,
		machine: machine,
		cfg:     cfg,
	}
}

// Run executes frames until a stop condition is reached. The first step error
// halts the machine and is returned together with the progress made.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var res Result

	var tick <-chan time.Time
	if r.cfg.Interval > 0 {
		ticker := time.NewTicker(r.cfg.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for r.cfg.Frames == 0 || res.Frames < r.cfg.Frames {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("running: %w", err)
		}

		done, err := r.frame(&res)
		if err != nil {
			r.logger.Debug("Machine halted", log.Err(err), log.Hex("pc", r.machine.PC()))
			return res, err
		}
		if done {
			return res, nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return res, fmt.Errorf("running: %w", ctx.Err())
			case <-tick:
			}
		}
	}
	return res, nil
}

// frame executes the steps of one tick and then ticks the timers. It returns
// true when the run is complete.
func (r *Runner) frame(res *Result) (bool, error) {
	for range r.cfg.StepsPerTick {
		if r.machine.PC() == vm.Sentinel {
			res.Finished = true
			return true, nil
		}
		if r.cfg.Cycles > 0 && res.Cycles >= r.cfg.Cycles {
			return true, nil
		}

		if err := r.machine.Step(); err != nil {
			return false, err
		}
		res.Cycles++
	}

	r.machine.Tick()
	res.Frames++
	return false, nil
}

// Report writes the display contents followed by the machine state.
func (r *Runner) Report(w io.Writer, res Result) error {
	if _, err := fmt.Fprintf(w, "%d instructions, %d frames\n\n", res.Cycles, res.Frames); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if _, err := io.WriteString(w, r.machine.Display().String()); err != nil {
		return fmt.Errorf("writing display: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if err := r.machine.Dump(w); err != nil {
		return fmt.Errorf("writing machine state: %w", err)
	}
	return nil
}
