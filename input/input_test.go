package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPressAndClear(t *testing.T) {
	var s Set
	assert.False(t, s.JustPressed(KeySpace))

	s.Press(KeySpace, KeyTab)
	s.Hold(KeyLeft)
	s.Scroll(1.5)
	s.DragBy(3, -4)

	assert.True(t, s.JustPressed(KeySpace))
	assert.True(t, s.JustPressed(KeyTab))
	assert.False(t, s.JustPressed(KeyOne))
	assert.True(t, s.Down(KeyLeft))
	assert.False(t, s.Down(KeySpace), "pressed is not held")
	assert.Equal(t, float32(1.5), s.Wheel())
	dx, dy := s.Drag()
	assert.Equal(t, float32(3), dx)
	assert.Equal(t, float32(-4), dy)

	s.Clear()
	assert.False(t, s.JustPressed(KeySpace))
	assert.False(t, s.Down(KeyLeft))
	assert.Zero(t, s.Wheel())
}

func TestOutOfRangeKeysIgnored(t *testing.T) {
	var s Set
	s.Press(Key(200))
	assert.False(t, s.JustPressed(Key(200)))
	assert.Equal(t, "unknown", Key(200).String())
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "space", KeySpace.String())
	assert.Equal(t, "`", KeyGrave.String())
	assert.Equal(t, "backspace", KeyBackspace.String())
}
