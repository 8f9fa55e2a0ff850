package systems

import "github.com/pthm-cable/ecosim/world"

// lookahead is how many ticks ahead terrain is checked for water.
const lookahead = 6

// AvoidTerrain soft-turns a velocity away from the map edges and from water
// ahead. margin is the edge distance where turning starts.
func AvoidTerrain(x, y, vx, vy float32, tm *world.TileMap, margin, turn float32) (float32, float32) {
	w, h := tm.Size()

	if x < margin {
		vx += turn
	}
	if x > w-margin {
		vx -= turn
	}
	if y < margin {
		vy += turn
	}
	if y > h-margin {
		vy -= turn
	}

	ax := x + vx*lookahead
	ay := y + vy*lookahead
	if !tm.TileAt(ax, ay).Walkable() {
		col, row := tm.Cell(ax, ay)
		cx, cy := tm.TileCenter(col, row)
		dx := x - cx
		dy := y - cy
		d := velocityMagnitude(dx, dy)
		if d > 0 {
			vx += dx / d * turn * 2
			vy += dy / d * turn * 2
		}
	}

	return vx, vy
}

// Move advances a position by a velocity. Moves that would leave the map or land
// on an unwalkable tile are refused and the velocity is reversed.
func Move(x, y, vx, vy float32, tm *world.TileMap) (nx, ny, nvx, nvy float32) {
	nx, ny = x+vx, y+vy
	w, h := tm.Size()

	if nx < 0 || nx >= w || ny < 0 || ny >= h || !tm.TileAt(nx, ny).Walkable() {
		return x, y, -vx, -vy
	}
	return nx, ny, vx, vy
}
