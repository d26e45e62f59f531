package ui

import (
	"snake-game/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// keyNames maps raylib key codes to input key names.
var keyNames = map[int32]input.Key{
	rl.KeyUp:     input.KeyUp,
	rl.KeyRight:  input.KeyRight,
	rl.KeyDown:   input.KeyDown,
	rl.KeyLeft:   input.KeyLeft,
	rl.KeySpace:  input.KeySpace,
	rl.KeyEscape: input.KeyEsc,
	rl.KeyW:      "w",
	rl.KeyA:      "a",
	rl.KeyS:      "s",
	rl.KeyD:      "d",
	rl.KeyH:      "h",
	rl.KeyJ:      "j",
	rl.KeyK:      "k",
	rl.KeyL:      "l",
	rl.KeyQ:      "q",
}

// PollKeys adds every key pressed since the last frame to f.
func PollKeys(f *input.Frame) {
	for code, key := range keyNames {
		if rl.IsKeyPressed(code) {
			f.Press(key)
		}
	}
}
