// Package atlas maps sprite indices to source rectangles on a grid-based sprite sheet.
package atlas

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned for sprite indices outside the sheet.
var ErrIndexOutOfRange = errors.New("atlas: sprite index out of range")

// Rect is a source rectangle on the sheet, in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Atlas describes a sheet of equally sized tiles laid out in rows and columns.
type Atlas struct {
	TileW, TileH       float32
	Rows, Cols         int
	PaddingX, PaddingY float32 // gap between tiles
	OffsetX, OffsetY   float32 // margin before the first tile
}

// FromGrid builds an atlas of rows x cols tiles of tileW x tileH pixels with no
// padding or offset.
func FromGrid(tileW, tileH float32, rows, cols int) (*Atlas, error) {
	a := &Atlas{TileW: tileW, TileH: tileH, Rows: rows, Cols: cols}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the atlas geometry.
func (a *Atlas) Validate() error {
	if a.TileW <= 0 || a.TileH <= 0 {
		return fmt.Errorf("atlas: tile size must be positive, got %vx%v", a.TileW, a.TileH)
	}
	if a.Rows <= 0 || a.Cols <= 0 {
		return fmt.Errorf("atlas: grid must be positive, got %dx%d", a.Rows, a.Cols)
	}
	if a.PaddingX < 0 || a.PaddingY < 0 || a.OffsetX < 0 || a.OffsetY < 0 {
		return errors.New("atlas: padding and offset must not be negative")
	}
	return nil
}

// Len returns the number of tiles.
func (a *Atlas) Len() int {
	return a.Rows * a.Cols
}

// Rect returns the source rectangle of the tile at index, counted row-major.
func (a *Atlas) Rect(index int) (Rect, error) {
	if index < 0 || index >= a.Len() {
		return Rect{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, a.Len())
	}
	col := index % a.Cols
	row := index / a.Cols
	return Rect{
		X: a.OffsetX + float32(col)*(a.TileW+a.PaddingX),
		Y: a.OffsetY + float32(row)*(a.TileH+a.PaddingY),
		W: a.TileW,
		H: a.TileH,
	}, nil
}

// SheetSize returns the minimum texture size that holds every tile.
func (a *Atlas) SheetSize() (w, h float32) {
	w = a.OffsetX + float32(a.Cols)*a.TileW + float32(a.Cols-1)*a.PaddingX
	h = a.OffsetY + float32(a.Rows)*a.TileH + float32(a.Rows-1)*a.PaddingY
	return w, h
}

// Sprite indices on the default sheet.
const (
	SpriteBoid     = 0
	SpritePredator = 1
	SpriteFood     = 2
	SpriteWater    = 8
	SpriteSand     = 9
	SpriteGrass    = 10
	SpriteForest   = 11
)
