package frontend

import "github.com/hajimehoshi/ebiten/v2"

// keyMap maps physical keys to keypad keys. Digits are available on the main
// row and the numeric keypad, the arrow keys act as 2, 4, 6 and 8.
var keyMap = map[ebiten.Key]uint8{
	ebiten.Key0: 0x0, ebiten.KeyNumpad0: 0x0,
	ebiten.Key1: 0x1, ebiten.KeyNumpad1: 0x1,
	ebiten.Key2: 0x2, ebiten.KeyNumpad2: 0x2, ebiten.KeyArrowUp: 0x2,
	ebiten.Key3: 0x3, ebiten.KeyNumpad3: 0x3,
	ebiten.Key4: 0x4, ebiten.KeyNumpad4: 0x4, ebiten.KeyArrowLeft: 0x4,
	ebiten.Key5: 0x5, ebiten.KeyNumpad5: 0x5,
	ebiten.Key6: 0x6, ebiten.KeyNumpad6: 0x6, ebiten.KeyArrowRight: 0x6,
	ebiten.Key7: 0x7, ebiten.KeyNumpad7: 0x7,
	ebiten.Key8: 0x8, ebiten.KeyNumpad8: 0x8, ebiten.KeyArrowDown: 0x8,
	ebiten.Key9: 0x9, ebiten.KeyNumpad9: 0x9,
	ebiten.KeyA: 0xA,
	ebiten.KeyB: 0xB,
	ebiten.KeyC: 0xC,
	ebiten.KeyD: 0xD,
	ebiten.KeyE: 0xE,
	ebiten.KeyF: 0xF,
}

// quitKey closes the window.
const quitKey = ebiten.KeyEscape
