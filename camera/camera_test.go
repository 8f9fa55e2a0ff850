package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Should be centered on world
	assert.Equal(t, float32(1280), cam.X)
	assert.Equal(t, float32(720), cam.Y)
	assert.Equal(t, float32(1), cam.Zoom)
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(1280, 720)
	assert.InDelta(t, 640, sx, 0.01)
	assert.InDelta(t, 360, sy, 0.01)
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(1.7)

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		assert.InDelta(t, tc.sx, sx, 0.01, "screen x via (%f,%f)", wx, wy)
		assert.InDelta(t, tc.sy, sy, 0.01, "screen y via (%f,%f)", wx, wy)
	}
}

func TestPanClampsToWorld(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.X = 100

	cam.Pan(-500, 0)
	assert.Equal(t, float32(0), cam.X, "X clamps to the left edge")

	cam.Pan(0, 5000)
	assert.Equal(t, float32(1440), cam.Y, "Y clamps to the bottom edge")
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// MinZoom is the zoom that fits the whole world: min(1280/2560, 720/1440) = 0.5
	assert.Equal(t, float32(0.5), cam.MinZoom)

	cam.SetZoom(0.1) // Below min
	assert.Equal(t, float32(0.5), cam.Zoom)

	cam.SetZoom(10.0) // Above max
	assert.Equal(t, float32(4), cam.Zoom)
}

func TestMinZoomFitsWorld(t *testing.T) {
	cam := New(800, 600, 1600, 800)

	// min(800/1600, 600/800) = 0.5; the wider dimension limits
	assert.InDelta(t, 0.5, cam.MinZoom, 0.001)

	cam.SetZoom(cam.MinZoom)
	visibleW := cam.ViewportW / cam.Zoom
	assert.InDelta(t, cam.WorldW, visibleW, 0.01, "visible width at min zoom")
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)

	// Visible range in world coords: (640, 360) to (1920, 1080)
	assert.True(t, cam.IsVisible(1280, 720, 10), "center")
	assert.False(t, cam.IsVisible(2400, 1300, 10), "far point")
	assert.True(t, cam.IsVisible(600, 720, 100), "edge point with large radius")
}

func TestLerpTo(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.X, cam.Y = 0, 0

	cam.LerpTo(100, 200, 0.5)
	assert.Equal(t, float32(50), cam.X)
	assert.Equal(t, float32(100), cam.Y)

	cam.LerpTo(100, 200, 5) // t clamps to 1
	assert.Equal(t, float32(100), cam.X)
	assert.Equal(t, float32(200), cam.Y)
}

func TestClampCenterConverges(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.X, cam.Y = 0, 0

	cam.ClampCenter(0.05)
	// One step moves 5% of the way
	assert.InDelta(t, 64, cam.X, 0.01)
	assert.InDelta(t, 36, cam.Y, 0.01)

	for i := 0; i < 500; i++ {
		cam.ClampCenter(0.05)
	}
	assert.InDelta(t, 1280, cam.X, 0.5)
	assert.InDelta(t, 720, cam.Y, 0.5)
}

func TestReset(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.X = 500
	cam.Y = 500
	cam.Zoom = 2.5

	cam.Reset()

	assert.Equal(t, float32(1280), cam.X)
	assert.Equal(t, float32(720), cam.Y)
	assert.Equal(t, float32(1), cam.Zoom)
}

func TestResizeRaisesZoom(t *testing.T) {
	cam := New(1280, 720, 2560, 1440)
	cam.SetZoom(cam.MinZoom)

	cam.Resize(2560, 1440)
	assert.Equal(t, float32(1), cam.MinZoom)
	assert.Equal(t, float32(1), cam.Zoom)
}
