// Package pipeline orchestrates the emulation workflow stages: loading the ROM,
// setting up the machine and handing it to the headless runner or the window.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/retroenv/chip8vm/internal/detector"
	"github.com/retroenv/chip8vm/internal/frontend"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/memory"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the ROM and runs it. In headless mode the final display and
// machine state are written to the writer.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) error {
	m, err := p.Prepare(opts)
	if err != nil {
		return err
	}

	if opts.Headless {
		return p.runHeadless(ctx, opts, m, writer)
	}

	game := frontend.New(p.logger, m, frontend.Config{
		Title:        "chip8vm - " + opts.Input,
		Scale:        opts.Scale,
		TickRate:     opts.TickRate,
		StepsPerTick: opts.StepsPerTick(),
	})
	if err := game.Run(); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Prepare creates a machine with the font and the ROM loaded and PC set to
// the program start.
func (p *Pipeline) Prepare(opts options.Program) (*vm.Machine, error) {
	if system := p.detector.Detect(opts); system != arch.CHIP8System {
		return nil, fmt.Errorf("unsupported system '%s'", system)
	}

	m := vm.New(p.logger, vm.Config{
		Seed:  opts.Seed,
		Trace: opts.Trace,
	})
	m.Memory().LoadFont()

	size, err := p.loader.Load(opts, m.Memory())
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}
	m.Jump(memory.ProgramStart)

	p.printInfo(opts, size)
	return m, nil
}

func (p *Pipeline) runHeadless(ctx context.Context, opts options.Program, m *vm.Machine, writer io.Writer) error {
	cfg := runner.Config{
		StepsPerTick: opts.StepsPerTick(),
		Frames:       opts.Frames,
		Cycles:       opts.Cycles,
	}
	// without a budget the run lasts until canceled, pace it like the window
	if cfg.Frames == 0 && cfg.Cycles == 0 {
		cfg.Interval = time.Second / time.Duration(opts.TickRate)
	}

	r := runner.New(p.logger, m, cfg)
	res, runErr := r.Run(ctx)

	if err := r.Report(writer, res); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("executing ROM: %w", runErr)
	}
	return nil
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	mode := "window"
	if opts.Headless {
		mode = "headless"
	}
	p.logger.Info("Running Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.String("mode", mode),
		log.Int("rate", opts.StepRate),
	)
}
