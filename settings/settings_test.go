package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/ecosim/config"
	"github.com/pthm-cable/ecosim/input"
)

func testSettings() Settings {
	return Default(config.SettingsConfig{
		ShowPlots:    true,
		TimeScale:    1,
		MinTimeScale: 0,
		MaxTimeScale: 8,
	})
}

func press(s *Settings, keys ...input.Key) {
	var in input.Set
	in.Press(keys...)
	s.HandleKeyboard(&in)
}

func TestDefault(t *testing.T) {
	s := testSettings()
	assert.Equal(t, 1.0, s.TimeScale)
	assert.True(t, s.ShowPlots)
	assert.False(t, s.EnableGizmos)
	assert.Equal(t, "free", s.CameraMode())
}

func TestKeyOneTogglesFollowBoid(t *testing.T) {
	s := testSettings()
	s.CameraFollowPredator = true
	s.CameraClampCenter = true

	press(&s, input.KeyOne)
	assert.True(t, s.CameraFollowBoid)
	assert.False(t, s.CameraFollowPredator)
	assert.False(t, s.CameraClampCenter)

	press(&s, input.KeyOne)
	assert.False(t, s.CameraFollowBoid)
}

func TestKeyTwoTogglesFollowPredator(t *testing.T) {
	s := testSettings()
	s.CameraFollowBoid = true

	press(&s, input.KeyTwo)
	assert.True(t, s.CameraFollowPredator)
	assert.False(t, s.CameraFollowBoid)
	assert.False(t, s.CameraClampCenter)
	assert.Equal(t, "follow predator", s.CameraMode())
}

func TestKeyThreeTogglesClampCenter(t *testing.T) {
	s := testSettings()
	s.CameraFollowBoid = true
	s.CameraFollowPredator = true

	press(&s, input.KeyThree)
	assert.True(t, s.CameraClampCenter)
	assert.False(t, s.CameraFollowBoid)
	assert.False(t, s.CameraFollowPredator)
}

func TestAtMostOneCameraMode(t *testing.T) {
	seqs := [][]input.Key{
		{input.KeyOne, input.KeyTwo},
		{input.KeyTwo, input.KeyThree},
		{input.KeyThree, input.KeyOne},
		{input.KeyOne, input.KeyTwo, input.KeyThree},
	}

	for _, seq := range seqs {
		s := testSettings()
		for _, k := range seq {
			press(&s, k)
			n := 0
			for _, on := range []bool{s.CameraFollowBoid, s.CameraFollowPredator, s.CameraClampCenter} {
				if on {
					n++
				}
			}
			assert.LessOrEqual(t, n, 1, "sequence %v", seq)
		}
	}
}

func TestDisplayToggles(t *testing.T) {
	s := testSettings()

	press(&s, input.KeyTab)
	assert.True(t, s.EnableGizmos)

	press(&s, input.KeyBackspace)
	assert.False(t, s.ShowPlots)

	press(&s, input.KeyGrave)
	assert.True(t, s.ShowPlotSettings)

	press(&s, input.KeyTab, input.KeyBackspace, input.KeyGrave)
	assert.False(t, s.EnableGizmos)
	assert.True(t, s.ShowPlots)
	assert.False(t, s.ShowPlotSettings)
}

func TestNoKeysNoChange(t *testing.T) {
	s := testSettings()
	before := s
	press(&s)
	assert.Equal(t, before, s)
}

func TestSetTimeScaleClamps(t *testing.T) {
	s := testSettings()

	s.SetTimeScale(3)
	assert.Equal(t, 3.0, s.TimeScale)

	s.SetTimeScale(-1)
	assert.Equal(t, 0.0, s.TimeScale)

	s.SetTimeScale(100)
	assert.Equal(t, 8.0, s.TimeScale)
}
