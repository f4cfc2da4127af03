// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8vm/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	return parse(os.Args[0], os.Args[1:])
}

func parse(name string, arguments []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	if err := validateOptions(opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage message and the flag defaults.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: chip8vm [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions checks the numeric option ranges.
func validateOptions(opts options.Program) error {
	switch {
	case opts.Scale < 1:
		return fmt.Errorf("invalid scale %d: must be at least 1", opts.Scale)
	case opts.TickRate < 1:
		return fmt.Errorf("invalid tick rate %d: must be at least 1", opts.TickRate)
	case opts.StepRate < opts.TickRate:
		return fmt.Errorf("invalid instruction rate %d: must be at least the tick rate %d", opts.StepRate, opts.TickRate)
	case opts.Cycles < 0:
		return fmt.Errorf("invalid cycle limit %d", opts.Cycles)
	case opts.Frames < 0:
		return fmt.Errorf("invalid frame limit %d", opts.Frames)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.System, "s", "", "system of the ROM file (chip8) - if not auto-detected from file extension")
	flags.BoolVar(&opts.Headless, "headless", false, "run without a window and print the display when the run ends")
	flags.IntVar(&opts.Cycles, "cycles", 0, "headless mode: stop after this many executed instructions, 0 for no limit")
	flags.IntVar(&opts.Frames, "frames", 0, "headless mode: stop after this many timer frames, 0 for no limit")
	flags.Int64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 seeds from the current time")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "size of a display pixel in window pixels")
	flags.IntVar(&opts.StepRate, "rate", options.DefaultStepRate, "number of instructions executed per second")
	flags.IntVar(&opts.TickRate, "tick", options.DefaultTickRate, "number of timer ticks per second")
}
