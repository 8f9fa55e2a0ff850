package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "eco-sim", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)

	wantW := float32(cfg.World.Cols * cfg.Assets.TileW)
	assert.Equal(t, wantW, cfg.Derived.WorldW)
	assert.Positive(t, cfg.Derived.DT32)
	assert.Equal(t, 1.0, cfg.Settings.TimeScale)
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	data := "boids:\n  initial: 7\nsettings:\n  time_scale: 2.5\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Boids.Initial)
	assert.Equal(t, 2.5, cfg.Settings.TimeScale)
	// Untouched fields keep their defaults
	assert.Equal(t, 8, cfg.Predators.Initial)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("assets:\n  tile_w: 0\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err, "zero tile width")
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Boids.Max = 1234

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1234, loaded.Boids.Max)
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() { global = saved }()

	assert.Panics(t, func() { Cfg() })
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{"#1b1f2a", RGBA{R: 0x1b, G: 0x1f, B: 0x2a, A: 0xff}, false},
		{"ff6b6b", RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}, false},
		{"#10203040", RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{" #000000 ", RGBA{A: 0xff}, false},
		{"#fff", RGBA{}, true},
		{"#gg0000", RGBA{}, true},
		{"", RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseHexColor(%q)", tt.in)
			continue
		}
		if assert.NoError(t, err, "ParseHexColor(%q)", tt.in) {
			assert.Equal(t, tt.want, got, "ParseHexColor(%q)", tt.in)
		}
	}
}

func TestDefaultPalette(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	p, err := cfg.Colors.Palette()
	require.NoError(t, err)
	assert.Equal(t, RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}, p.Predator)

	cfg.Colors.Food = "green"
	_, err = cfg.Colors.Palette()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colors.food")
}
