// Package systems provides the simulation rules: spatial indexing, flocking,
// hunting, grazing, energy and reproduction.
package systems

// Neighbor holds a nearby item with precomputed spatial data.
// This avoids recomputing delta and distance in steering code.
type Neighbor struct {
	Index  int32   // index into the slice the grid was built from
	DX, DY float32 // delta from query origin to the neighbor
	DistSq float32 // squared distance (avoid sqrt in hot path)
}

// SpatialGrid provides O(1) neighbor lookups using a cell-based grid over a
// bounded world. It stores indices into a caller-owned slice of positions.
type SpatialGrid struct {
	cellSize float32
	cols     int
	rows     int
	width    float32
	height   float32
	cells    [][]int32 // flat grid of index lists
	xs, ys   []float32 // positions of inserted items, by index
}

// NewSpatialGrid creates a spatial grid covering the given world size.
func NewSpatialGrid(width, height, cellSize float32) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]int32, cols*rows)
	for i := range cells {
		cells[i] = make([]int32, 0, 8) // pre-allocate small capacity
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		width:    width,
		height:   height,
		cells:    cells,
	}
}

// Clear removes all items from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	g.xs = g.xs[:0]
	g.ys = g.ys[:0]
}

// Insert adds the item with the given index at a position.
// Indices must be inserted densely from 0 after each Clear.
func (g *SpatialGrid) Insert(index int32, x, y float32) {
	for int(index) >= len(g.xs) {
		g.xs = append(g.xs, 0)
		g.ys = append(g.ys, 0)
	}
	g.xs[index] = x
	g.ys[index] = y

	idx := g.cellIndex(x, y)
	g.cells[idx] = append(g.cells[idx], index)
}

// Len returns the number of indexed items.
func (g *SpatialGrid) Len() int {
	return len(g.xs)
}

// MaxQueryResults caps the number of neighbors returned by spatial queries.
// This prevents density spikes from causing unbounded work.
const MaxQueryResults = 128

// QueryRadiusInto finds items within radius and appends to dst (up to MaxQueryResults).
// Returns the updated slice. Reuse dst across calls to avoid allocations.
// Pass exclude = -1 to keep every item.
func (g *SpatialGrid) QueryRadiusInto(dst []Neighbor, x, y, radius float32, exclude int32) []Neighbor {
	cellRadius := int(radius/g.cellSize) + 1

	centerCol := g.clampCol(int(x / g.cellSize))
	centerRow := g.clampRow(int(y / g.cellSize))

	radiusSq := radius * radius

	for dr := -cellRadius; dr <= cellRadius; dr++ {
		row := centerRow + dr
		if row < 0 || row >= g.rows {
			continue
		}
		for dc := -cellRadius; dc <= cellRadius; dc++ {
			col := centerCol + dc
			if col < 0 || col >= g.cols {
				continue
			}

			for _, i := range g.cells[row*g.cols+col] {
				if i == exclude {
					continue
				}

				dx := g.xs[i] - x
				dy := g.ys[i] - y
				distSq := dx*dx + dy*dy

				if distSq <= radiusSq {
					dst = append(dst, Neighbor{Index: i, DX: dx, DY: dy, DistSq: distSq})
					if len(dst) >= MaxQueryResults {
						return dst
					}
				}
			}
		}
	}

	return dst
}

// Nearest returns the closest item within radius accepted by keep, or -1.
func (g *SpatialGrid) Nearest(x, y, radius float32, exclude int32, keep func(int32) bool) (Neighbor, bool) {
	best := Neighbor{Index: -1}
	bestSq := radius*radius + 1

	cellRadius := int(radius/g.cellSize) + 1
	centerCol := g.clampCol(int(x / g.cellSize))
	centerRow := g.clampRow(int(y / g.cellSize))

	for dr := -cellRadius; dr <= cellRadius; dr++ {
		row := centerRow + dr
		if row < 0 || row >= g.rows {
			continue
		}
		for dc := -cellRadius; dc <= cellRadius; dc++ {
			col := centerCol + dc
			if col < 0 || col >= g.cols {
				continue
			}
			for _, i := range g.cells[row*g.cols+col] {
				if i == exclude || (keep != nil && !keep(i)) {
					continue
				}
				dx := g.xs[i] - x
				dy := g.ys[i] - y
				d := dx*dx + dy*dy
				if d <= radius*radius && d < bestSq {
					bestSq = d
					best = Neighbor{Index: i, DX: dx, DY: dy, DistSq: d}
				}
			}
		}
	}

	return best, best.Index >= 0
}

// cellIndex returns the flat index for a world position.
func (g *SpatialGrid) cellIndex(x, y float32) int {
	return g.clampRow(int(y/g.cellSize))*g.cols + g.clampCol(int(x/g.cellSize))
}

func (g *SpatialGrid) clampCol(col int) int {
	if col < 0 {
		return 0
	}
	if col >= g.cols {
		return g.cols - 1
	}
	return col
}

func (g *SpatialGrid) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row >= g.rows {
		return g.rows - 1
	}
	return row
}
