// Package input abstracts keyboard and mouse state so simulation code can be
// driven by raylib in windowed mode and by a plain Set in tests and headless runs.
package input

// Key identifies a key the simulation reacts to.
type Key uint8

const (
	KeyNone Key = iota
	KeySpace
	KeyOne
	KeyTwo
	KeyThree
	KeyTab
	KeyBackspace
	KeyGrave
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPlus
	KeyMinus
	KeyHome
	KeyF11
	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:      "none",
	KeySpace:     "space",
	KeyOne:       "1",
	KeyTwo:       "2",
	KeyThree:     "3",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyGrave:     "`",
	KeyEscape:    "escape",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyPlus:      "+",
	KeyMinus:     "-",
	KeyHome:      "home",
	KeyF11:       "f11",
}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Pressed reports keys that went down this frame.
type Pressed interface {
	JustPressed(k Key) bool
}

// Held reports keys that are currently down.
type Held interface {
	Down(k Key) bool
}

// Pointer reports mouse movement used for camera control.
type Pointer interface {
	// Wheel returns the wheel movement this frame.
	Wheel() float32
	// Drag returns the mouse delta in screen pixels while the pan button is held.
	Drag() (dx, dy float32)
}

// State is everything a frame reads from the user.
type State interface {
	Pressed
	Held
	Pointer
}

// Set is an in-memory State. The zero value has nothing pressed.
type Set struct {
	pressed [keyCount]bool
	held    [keyCount]bool
	wheel   float32
	dragX   float32
	dragY   float32
}

// Press marks keys as just pressed.
func (s *Set) Press(keys ...Key) {
	for _, k := range keys {
		if k < keyCount {
			s.pressed[k] = true
		}
	}
}

// Hold marks keys as held down.
func (s *Set) Hold(keys ...Key) {
	for _, k := range keys {
		if k < keyCount {
			s.held[k] = true
		}
	}
}

// Scroll sets the wheel movement.
func (s *Set) Scroll(v float32) {
	s.wheel = v
}

// DragBy sets the pointer drag delta.
func (s *Set) DragBy(dx, dy float32) {
	s.dragX, s.dragY = dx, dy
}

// Clear resets the set for the next frame.
func (s *Set) Clear() {
	*s = Set{}
}

func (s *Set) JustPressed(k Key) bool {
	return k < keyCount && s.pressed[k]
}

func (s *Set) Down(k Key) bool {
	return k < keyCount && s.held[k]
}

func (s *Set) Wheel() float32 {
	return s.wheel
}

func (s *Set) Drag() (float32, float32) {
	return s.dragX, s.dragY
}
