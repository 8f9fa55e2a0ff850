// Package world generates and queries the tile map the simulation runs on.
package world

import (
	"math/rand"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/ecosim/atlas"
	"github.com/pthm-cable/ecosim/config"
)

// TileKind is the terrain type of a tile.
type TileKind uint8

const (
	Water TileKind = iota
	Sand
	Grass
	Forest
	numKinds
)

func (k TileKind) String() string {
	switch k {
	case Water:
		return "water"
	case Sand:
		return "sand"
	case Grass:
		return "grass"
	case Forest:
		return "forest"
	default:
		return "unknown"
	}
}

// Walkable reports whether agents may move over this tile.
func (k TileKind) Walkable() bool {
	return k != Water
}

// Fertile reports whether food plants may grow on this tile.
func (k TileKind) Fertile() bool {
	return k == Grass || k == Forest
}

// Sprite returns the atlas index used to draw this tile.
func (k TileKind) Sprite() int {
	switch k {
	case Sand:
		return atlas.SpriteSand
	case Grass:
		return atlas.SpriteGrass
	case Forest:
		return atlas.SpriteForest
	default:
		return atlas.SpriteWater
	}
}

// TileMap is a fixed grid of terrain tiles.
type TileMap struct {
	cols, rows   int
	tileW, tileH float32
	tiles        []TileKind
}

// Generate builds a tile map from fractal OpenSimplex noise. The same seed always
// produces the same map.
func Generate(wc config.WorldConfig, tileW, tileH float32, seed int64) *TileMap {
	m := &TileMap{
		cols:  wc.Cols,
		rows:  wc.Rows,
		tileW: tileW,
		tileH: tileH,
		tiles: make([]TileKind, wc.Cols*wc.Rows),
	}

	noise := opensimplex.NewNormalized(seed)
	octaves := max(wc.Octaves, 1)

	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			v := fbm(noise, float64(col)*wc.NoiseScale, float64(row)*wc.NoiseScale, octaves, wc.Lacunarity, wc.Gain)
			m.tiles[row*m.cols+col] = classify(v, wc)
		}
	}

	return m
}

// NewUniform builds a map where every tile has the same kind.
func NewUniform(cols, rows int, tileW, tileH float32, kind TileKind) *TileMap {
	m := &TileMap{cols: cols, rows: rows, tileW: tileW, tileH: tileH, tiles: make([]TileKind, cols*rows)}
	for i := range m.tiles {
		m.tiles[i] = kind
	}
	return m
}

// fbm sums octaves of normalized noise, returning a value in [0, 1].
func fbm(n opensimplex.Noise, x, y float64, octaves int, lacunarity, gain float64) float64 {
	var sum, norm float64
	amp, freq := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		sum += amp * n.Eval2(x*freq, y*freq)
		norm += amp
		amp *= gain
		freq *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

func classify(v float64, wc config.WorldConfig) TileKind {
	switch {
	case v < wc.WaterLevel:
		return Water
	case v < wc.SandLevel:
		return Sand
	case v > wc.ForestLevel:
		return Forest
	default:
		return Grass
	}
}

// Cols returns the number of tile columns.
func (m *TileMap) Cols() int { return m.cols }

// Rows returns the number of tile rows.
func (m *TileMap) Rows() int { return m.rows }

// TileSize returns the size of one tile in world units.
func (m *TileMap) TileSize() (float32, float32) { return m.tileW, m.tileH }

// Size returns the world dimensions covered by the map.
func (m *TileMap) Size() (w, h float32) {
	return float32(m.cols) * m.tileW, float32(m.rows) * m.tileH
}

// At returns the tile at a grid cell. Cells outside the map are water.
func (m *TileMap) At(col, row int) TileKind {
	if col < 0 || row < 0 || col >= m.cols || row >= m.rows {
		return Water
	}
	return m.tiles[row*m.cols+col]
}

// Set overwrites a tile. Out-of-range cells are ignored.
func (m *TileMap) Set(col, row int, k TileKind) {
	if col < 0 || row < 0 || col >= m.cols || row >= m.rows {
		return
	}
	m.tiles[row*m.cols+col] = k
}

// Cell returns the grid cell containing a world position.
func (m *TileMap) Cell(x, y float32) (col, row int) {
	col = int(floor(x / m.tileW))
	row = int(floor(y / m.tileH))
	return col, row
}

// TileAt returns the tile under a world position.
func (m *TileMap) TileAt(x, y float32) TileKind {
	return m.At(m.Cell(x, y))
}

// TileCenter returns the world position of a cell's centre.
func (m *TileMap) TileCenter(col, row int) (float32, float32) {
	return (float32(col) + 0.5) * m.tileW, (float32(row) + 0.5) * m.tileH
}

// Counts returns the number of tiles of each kind.
func (m *TileMap) Counts() map[TileKind]int {
	counts := make(map[TileKind]int, numKinds)
	for _, k := range m.tiles {
		counts[k]++
	}
	return counts
}

// RandomTile returns a random position inside a tile that satisfies accept.
// Returns false if no tile qualifies.
func (m *TileMap) RandomTile(rng *rand.Rand, accept func(TileKind) bool) (x, y float32, ok bool) {
	// Rejection sampling first; maps are mostly land.
	for i := 0; i < 64; i++ {
		col := rng.Intn(m.cols)
		row := rng.Intn(m.rows)
		if accept(m.At(col, row)) {
			return m.jitter(rng, col, row)
		}
	}

	var candidates []int
	for i, k := range m.tiles {
		if accept(k) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return 0, 0, false
	}
	idx := candidates[rng.Intn(len(candidates))]
	return m.jitter(rng, idx%m.cols, idx/m.cols)
}

// RandomWalkable returns a random position on a walkable tile.
func (m *TileMap) RandomWalkable(rng *rand.Rand) (float32, float32, bool) {
	return m.RandomTile(rng, TileKind.Walkable)
}

func (m *TileMap) jitter(rng *rand.Rand, col, row int) (float32, float32, bool) {
	// Stay strictly inside the tile so TileAt agrees with the chosen cell.
	x := float32(col)*m.tileW + rng.Float32()*m.tileW*0.99
	y := float32(row)*m.tileH + rng.Float32()*m.tileH*0.99
	return x, y, true
}

func floor(v float32) float32 {
	i := float32(int(v))
	if v < 0 && i != v {
		i--
	}
	return i
}
