package physics

import "math"

// cellSize is about twice the largest asteroid radius.
const cellSize = 80.0

// spatialGrid is a broad-phase bucket grid sized to the world.
type spatialGrid struct {
	cols, rows int
	cells      [][]uint32
}

func newSpatialGrid(w, h float64) spatialGrid {
	cols := int(math.Ceil(w/cellSize)) + 1
	rows := int(math.Ceil(h/cellSize)) + 1
	return spatialGrid{
		cols:  cols,
		rows:  rows,
		cells: make([][]uint32, cols*rows),
	}
}

// clear resets all cells, keeping allocated capacity.
func (g *spatialGrid) clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// span returns the clamped cell range covered by a circle's bounding box.
func (g *spatialGrid) span(x, y, radius float64) (minCX, minCY, maxCX, maxCY int) {
	minCX = g.clampCol(int(math.Floor((x - radius) / cellSize)))
	maxCX = g.clampCol(int(math.Floor((x + radius) / cellSize)))
	minCY = g.clampRow(int(math.Floor((y - radius) / cellSize)))
	maxCY = g.clampRow(int(math.Floor((y + radius) / cellSize)))
	return
}

func (g *spatialGrid) clampCol(c int) int {
	return min(max(c, 0), g.cols-1)
}

func (g *spatialGrid) clampRow(r int) int {
	return min(max(r, 0), g.rows-1)
}

// insertCircle adds a slot to every cell its bounding box touches.
func (g *spatialGrid) insertCircle(x, y, radius float64, slot uint32) {
	minCX, minCY, maxCX, maxCY := g.span(x, y, radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			idx := cy*g.cols + cx
			g.cells[idx] = append(g.cells[idx], slot)
		}
	}
}

// queryBuf appends candidate slots near a circle to buf. Results may repeat.
func (g *spatialGrid) queryBuf(x, y, radius float64, buf []uint32) []uint32 {
	minCX, minCY, maxCX, maxCY := g.span(x, y, radius)
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			buf = append(buf, g.cells[cy*g.cols+cx]...)
		}
	}
	return buf
}

// circlesOverlap checks if two circles touch.
func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	radSum := r1 + r2
	return dx*dx+dy*dy <= radSum*radSum
}
