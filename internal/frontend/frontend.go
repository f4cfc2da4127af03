// Package frontend implements the desktop window of the emulator. It renders
// the display, translates keyboard events to the keypad and paces the machine:
// every update runs a fixed number of instructions followed by one timer tick.
package frontend

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// Config contains the window and pacing settings.
type Config struct {
	Title        string
	Scale        int // window pixels per display pixel
	TickRate     int // updates per second, one timer tick each
	StepsPerTick int // instructions executed per update
}

var (
	pixelOn  = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	pixelOff = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
)

// Game implements ebiten.Game for a machine.
type Game struct {
	logger  *log.Logger
	machine *vm.Machine
	cfg     Config

	image  *ebiten.Image
	pixels []byte
	held   [vm.KeyCount]bool // keypad state forwarded to the machine
	err    error             // step error that halted the machine
}

// New returns a game driving the machine.
func New(logger *log.Logger, machine *vm.Machine, cfg Config) *Game {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.StepsPerTick < 1 {
		cfg.StepsPerTick = 1
	}
	return &Game{
		logger:  logger,
		machine: machine,
		cfg:     cfg,
		pixels:  make([]byte, display.Width*display.Height*4),
	}
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(display.Width*g.cfg.Scale, display.Height*g.cfg.Scale)
	ebiten.SetWindowTitle(g.cfg.Title)
	if g.cfg.TickRate > 0 {
		ebiten.SetTPS(g.cfg.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return g.err
}

// Update forwards the keyboard state and advances the machine by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(quitKey) {
		return ebiten.Termination
	}

	g.updateKeys(padState(ebiten.IsKeyPressed))
	g.frame()
	return nil
}

// updateKeys forwards keypad keys that changed state since the last update.
func (g *Game) updateKeys(pressed [vm.KeyCount]bool) {
	for pad, down := range pressed {
		if down == g.held[pad] {
			continue
		}
		if down {
			g.machine.KeyDown(uint8(pad))
		} else {
			g.machine.KeyUp(uint8(pad))
		}
	}
	g.held = pressed
}

// padState returns the keypad keys that have at least one of their
// physical keys held down.
func padState(isPressed func(ebiten.Key) bool) [vm.KeyCount]bool {
	var pressed [vm.KeyCount]bool
	for key, pad := range keyMap {
		if isPressed(key) {
			pressed[pad] = true
		}
	}
	return pressed
}

// frame runs the instructions of one update and ticks the timers. After the
// first failing instruction the machine stays halted.
func (g *Game) frame() {
	if g.err != nil {
		return
	}

	for range g.cfg.StepsPerTick {
		if err := g.machine.Step(); err != nil {
			g.err = err
			g.logger.Debug("Machine halted", log.Err(err), log.Hex("pc", g.machine.PC()))
			return
		}
	}
	g.machine.Tick()
}

// Draw renders the display scaled to the window and the halt reason, if any.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.image == nil {
		g.image = ebiten.NewImage(display.Width, display.Height)
	}

	fillPixels(g.machine.Display(), g.pixels)
	g.image.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cfg.Scale), float64(g.cfg.Scale))
	screen.DrawImage(g.image, op)

	if g.err != nil {
		ebitenutil.DebugPrintAt(screen, "halted: "+g.err.Error(), 2, 2)
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return display.Width * g.cfg.Scale, display.Height * g.cfg.Scale
}

// fillPixels converts the display to RGBA pixel data.
func fillPixels(d *display.Display, pixels []byte) {
	for y := range display.Height {
		for x := range display.Width {
			c := pixelOff
			if d.At(x, y) {
				c = pixelOn
			}
			offset := (y*display.Width + x) * 4
			pixels[offset] = c.R
			pixels[offset+1] = c.G
			pixels[offset+2] = c.B
			pixels[offset+3] = c.A
		}
	}
}
