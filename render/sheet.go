// Package render draws the tile map and entities with raylib, using the sprite
// sheet when one is loaded and plain shapes otherwise.
package render

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ecosim/atlas"
	"github.com/pthm-cable/ecosim/config"
)

// Sheet owns the sprite sheet texture. It satisfies sim.Assets so the
// simulation's setup state loads it on the first frame.
type Sheet struct {
	cfg     config.AssetsConfig
	texture rl.Texture2D
	loaded  bool
}

// NewSheet creates an unloaded sheet.
func NewSheet(cfg config.AssetsConfig) *Sheet {
	return &Sheet{cfg: cfg}
}

// LoadAtlas loads the sheet texture and checks it is large enough for the
// configured grid. Requires an open window.
func (s *Sheet) LoadAtlas() (*atlas.Atlas, error) {
	path := s.cfg.SpriteSheetPath
	if path == "" {
		return nil, errors.New("no sprite sheet configured")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("sprite sheet: %w", err)
	}

	a, err := atlas.FromGrid(float32(s.cfg.TileW), float32(s.cfg.TileH), s.cfg.Rows, s.cfg.Cols)
	if err != nil {
		return nil, err
	}

	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return nil, fmt.Errorf("sprite sheet %s: texture failed to load", path)
	}
	w, h := a.SheetSize()
	if w > float32(tex.Width) || h > float32(tex.Height) {
		rl.UnloadTexture(tex)
		return nil, fmt.Errorf("sprite sheet %s is %dx%d, layout needs %.0fx%.0f", path, tex.Width, tex.Height, w, h)
	}

	s.Unload()
	s.texture = tex
	s.loaded = true
	return a, nil
}

// Texture returns the sheet texture and whether it is loaded.
func (s *Sheet) Texture() (rl.Texture2D, bool) {
	if s == nil {
		return rl.Texture2D{}, false
	}
	return s.texture, s.loaded
}

// Unload releases the texture.
func (s *Sheet) Unload() {
	if s == nil || !s.loaded {
		return
	}
	rl.UnloadTexture(s.texture)
	s.texture = rl.Texture2D{}
	s.loaded = false
}
