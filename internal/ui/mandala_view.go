package ui

import (
	"mindala/internal/mandala"
)

// GridView renders the mandala chart as a 9×9 board of cells grouped into
// nine 3×3 grids. The cursor moves in visual coordinates so arrow keys cross
// grid boundaries naturally.
type GridView struct {
	cursorRow int // 0..8 in the 9×9 board
	cursorCol int
}

// NewGridView creates a grid view with the cursor on the chart's main theme
func NewGridView() *GridView {
	return &GridView{cursorRow: 4, cursorCol: 4}
}

// Cursor returns the grid and cell index under the cursor
func (v *GridView) Cursor() (grid, cell int) {
	grid = (v.cursorRow/3)*3 + v.cursorCol/3
	cell = (v.cursorRow%3)*3 + v.cursorCol%3
	return grid, cell
}

// SetCursor places the cursor on a specific grid and cell
func (v *GridView) SetCursor(grid, cell int) {
	if grid < 0 || grid >= mandala.GridCount || cell < 0 || cell >= mandala.CellCount {
		return
	}
	v.cursorRow = (grid/3)*3 + cell/3
	v.cursorCol = (grid%3)*3 + cell%3
}

// Move shifts the cursor by (dx, dy) board positions, clamped to the board
func (v *GridView) Move(dx, dy int) {
	v.cursorCol = clamp(v.cursorCol+dx, 0, 8)
	v.cursorRow = clamp(v.cursorRow+dy, 0, 8)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// cellWidth returns the interior width of one cell for a given screen width.
// The board uses 10 vertical border columns.
func cellWidth(screenWidth int) int {
	w := (screenWidth - 10) / 9
	if w < 3 {
		w = 3
	}
	return w
}

// boardGeometry computes the layout: per-cell width, per-cell height and the
// top-left origin that centers the board in the given area.
func boardGeometry(screenWidth, areaHeight int) (cw, chh, x0, y0 int) {
	cw = cellWidth(screenWidth)
	// 9 cell rows plus 4 horizontal border rows
	chh = (areaHeight - 4) / 9
	if chh < 1 {
		chh = 1
	}
	boardWidth := 9*cw + 10
	boardHeight := 9*chh + 4
	x0 = (screenWidth - boardWidth) / 2
	if x0 < 0 {
		x0 = 0
	}
	y0 = (areaHeight - boardHeight) / 2
	if y0 < 0 {
		y0 = 0
	}
	return cw, chh, x0, y0
}

// HitTest maps a screen position to the grid and cell under it
func (v *GridView) HitTest(x, y, screenWidth, areaTop, areaHeight int) (grid, cell int, ok bool) {
	cw, chh, x0, y0 := boardGeometry(screenWidth, areaHeight)
	y0 += areaTop

	col := -1
	for c := 0; c < 9; c++ {
		left := x0 + cellLeft(c, cw)
		if x >= left && x < left+cw {
			col = c
			break
		}
	}
	row := -1
	for r := 0; r < 9; r++ {
		top := y0 + cellTop(r, chh)
		if y >= top && y < top+chh {
			row = r
			break
		}
	}
	if col < 0 || row < 0 {
		return 0, 0, false
	}
	grid = (row/3)*3 + col/3
	cell = (row%3)*3 + col%3
	return grid, cell, true
}

// cellLeft returns the x offset of cell column c relative to the board origin.
// A border column precedes every cell, with an extra one before each grid
// group; that works out to one border per cell plus the left edge.
func cellLeft(c int, cw int) int {
	return 1 + c*(cw+1)
}

// cellTop returns the y offset of cell row r relative to the board origin.
// Horizontal borders appear at the top edge and after every grid row.
func cellTop(r int, chh int) int {
	return 1 + r*chh + r/3
}

// Render draws the board into the rows [areaTop, areaTop+areaHeight). When an
// editor is active its input replaces the cursor cell's text.
func (v *GridView) Render(screen *Screen, chart *mandala.Chart, editor *LineEditor, areaTop, areaHeight int) {
	screenWidth, _ := screen.Size()
	cw, chh, x0, y0 := boardGeometry(screenWidth, areaHeight)
	y0 += areaTop

	border := screen.GridBorderStyle()
	boardWidth := 9*cw + 10

	// horizontal border rows, one above each grid row and one below the board
	for _, r := range []int{0, 3, 6} {
		y := y0 + cellTop(r, chh) - 1
		for x := x0; x < x0+boardWidth; x++ {
			screen.SetCell(x, y, '─', border)
		}
	}
	// the bottom border sits after the last cell row
	yBottom := y0 + cellTop(8, chh) + chh
	for x := x0; x < x0+boardWidth; x++ {
		screen.SetCell(x, yBottom, '─', border)
	}

	// vertical borders, one before each cell column and one after the last
	for r := 0; r < 9; r++ {
		for dy := 0; dy < chh; dy++ {
			y := y0 + cellTop(r, chh) + dy
			for c := 0; c <= 9; c++ {
				x := x0 + cellLeft(c, cw) - 1
				ch := '·'
				if c%3 == 0 {
					ch = '│'
				}
				screen.SetCell(x, y, ch, border)
			}
		}
	}

	curGrid, curCell := v.Cursor()

	for g := 0; g < mandala.GridCount; g++ {
		for c := 0; c < mandala.CellCount; c++ {
			row := (g/3)*3 + c/3
			col := (g%3)*3 + c%3
			x := x0 + cellLeft(col, cw)
			y := y0 + cellTop(row, chh)

			style := screen.GridCellStyle()
			if g == mandala.CenterGrid || c == mandala.CenterCell {
				style = screen.GridThemeCellStyle()
			}
			isCursor := g == curGrid && c == curCell
			if isCursor {
				style = screen.GridCursorStyle()
			}

			for dy := 0; dy < chh; dy++ {
				for dx := 0; dx < cw; dx++ {
					screen.SetCell(x+dx, y+dy, ' ', style)
				}
			}

			if isCursor && editor != nil && editor.IsActive() {
				editor.Render(screen, x, y, cw)
				continue
			}

			text := chart.Cell(g, c)
			if text != "" {
				screen.DrawStringLimited(x, y, TruncateToWidthWithEllipsis(text, cw), cw, style)
			}
		}
	}

	// status line under the board naming the cursor position
	label := mandala.PositionName(curGrid)
	if curCell == mandala.CenterCell {
		if curGrid == mandala.CenterGrid {
			label = "Main theme"
		} else {
			label += " theme"
		}
	}
	if yBottom+1 < areaTop+areaHeight {
		screen.FillLine(0, yBottom+1, screen.TreeNormalStyle())
		screen.DrawStringLimited(x0, yBottom+1, label, boardWidth, screen.HeaderStyle())
	}
}
