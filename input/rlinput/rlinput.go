// Package rlinput reads input.State from the raylib window. It is kept apart
// from package input so headless code and tests never link raylib.
package rlinput

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/input"
)

var keys = map[input.Key]int32{
	input.KeySpace:     rl.KeySpace,
	input.KeyOne:       rl.KeyOne,
	input.KeyTwo:       rl.KeyTwo,
	input.KeyThree:     rl.KeyThree,
	input.KeyTab:       rl.KeyTab,
	input.KeyBackspace: rl.KeyBackspace,
	input.KeyGrave:     rl.KeyGrave,
	input.KeyEscape:    rl.KeyEscape,
	input.KeyLeft:      rl.KeyLeft,
	input.KeyRight:     rl.KeyRight,
	input.KeyUp:        rl.KeyUp,
	input.KeyDown:      rl.KeyDown,
	input.KeyPlus:      rl.KeyEqual,
	input.KeyMinus:     rl.KeyMinus,
	input.KeyHome:      rl.KeyHome,
	input.KeyF11:       rl.KeyF11,
}

// Window reads input from the raylib window. Only valid after rl.InitWindow.
type Window struct {
	// PointerCaptured hides wheel and drag while the mouse is over a UI panel.
	PointerCaptured bool
}

var _ input.State = Window{}

func (Window) JustPressed(k input.Key) bool {
	code, ok := keys[k]
	if !ok {
		return false
	}
	if k == input.KeyPlus && rl.IsKeyPressed(rl.KeyKpAdd) {
		return true
	}
	if k == input.KeyMinus && rl.IsKeyPressed(rl.KeyKpSubtract) {
		return true
	}
	return rl.IsKeyPressed(code)
}

func (Window) Down(k input.Key) bool {
	code, ok := keys[k]
	return ok && rl.IsKeyDown(code)
}

func (w Window) Wheel() float32 {
	if w.PointerCaptured {
		return 0
	}
	return rl.GetMouseWheelMove()
}

// Drag pans with the left or middle mouse button, like a pan camera.
func (w Window) Drag() (float32, float32) {
	if w.PointerCaptured {
		return 0, 0
	}
	if !rl.IsMouseButtonDown(rl.MouseButtonLeft) && !rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		return 0, 0
	}
	d := rl.GetMouseDelta()
	return d.X, d.Y
}
