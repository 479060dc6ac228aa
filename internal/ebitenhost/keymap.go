package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// keyMap maps the left side of a QWERTY keyboard to the hexadecimal keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var keyMap = map[ebiten.Key]byte{
	ebiten.KeyX: 0x0,
	ebiten.Key1: 0x1,
	ebiten.Key2: 0x2,
	ebiten.Key3: 0x3,
	ebiten.KeyQ: 0x4,
	ebiten.KeyW: 0x5,
	ebiten.KeyE: 0x6,
	ebiten.KeyA: 0x7,
	ebiten.KeyS: 0x8,
	ebiten.KeyD: 0x9,
	ebiten.KeyZ: 0xA,
	ebiten.KeyC: 0xB,
	ebiten.Key4: 0xC,
	ebiten.KeyR: 0xD,
	ebiten.KeyF: 0xE,
	ebiten.KeyV: 0xF,
}
