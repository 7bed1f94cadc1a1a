// Package mandala implements the fixed 9-grid-of-9-cells mandala chart: a
// center grid surrounded by eight theme grids, with index-based mirroring
// between the center grid's outer cells and the outer grids' center cells.
package mandala

// Grid and cell indexes run 0..8 in reading order; index 4 is the center.
const (
	GridCount  = 9
	CellCount  = 9
	CenterGrid = 4
	CenterCell = 4
)

// positionNames maps a grid index to its display name. Index 4 is the
// center grid and is named separately.
var positionNames = [GridCount]string{
	"Top-Left", "Top", "Top-Right",
	"Left", "Center", "Right",
	"Bottom-Left", "Bottom", "Bottom-Right",
}

// Grid is one 3×3 block of cells
type Grid struct {
	Cells [CellCount]string `json:"cells"`
}

// Chart is the whole mandala: nine grids in reading order, the center grid
// at index 4. A Chart is a value type; copying it copies all cells.
type Chart struct {
	Grids [GridCount]Grid `json:"grids"`
}

// New returns an empty chart
func New() *Chart {
	return &Chart{}
}

// PositionName returns the display name of a grid index ("Center", "Top-Left", ...)
func PositionName(grid int) string {
	if grid < 0 || grid >= GridCount {
		return ""
	}
	return positionNames[grid]
}

// Cell returns the text of grid g, cell c, or "" for out-of-range indexes
func (ch *Chart) Cell(g, c int) string {
	if g < 0 || g >= GridCount || c < 0 || c >= CellCount {
		return ""
	}
	return ch.Grids[g].Cells[c]
}

// SetCell returns a new chart with grid g, cell c set to text, applying the
// mirror rules:
//
//   - center grid cell i (i != 4) mirrors to outer grid i's center cell
//   - outer grid g's center cell mirrors back to center grid cell g
//   - the chart's main theme (center grid, center cell) has no mirror
//
// Out-of-range indexes return the chart unchanged.
func (ch *Chart) SetCell(g, c int, text string) *Chart {
	if g < 0 || g >= GridCount || c < 0 || c >= CellCount {
		return ch
	}
	next := *ch
	next.Grids[g].Cells[c] = text
	if g == CenterGrid && c != CenterCell {
		next.Grids[c].Cells[CenterCell] = text
	}
	if g != CenterGrid && c == CenterCell {
		next.Grids[CenterGrid].Cells[g] = text
	}
	return &next
}

// IsEmpty reports whether no cell in the chart has text
func (ch *Chart) IsEmpty() bool {
	for g := range ch.Grids {
		for c := range ch.Grids[g].Cells {
			if ch.Grids[g].Cells[c] != "" {
				return false
			}
		}
	}
	return true
}

// Normalize re-applies the mirror rules from the center grid outward, used
// after bulk loads (import, snapshot) where the two sides may disagree. The
// center grid wins.
func (ch *Chart) Normalize() *Chart {
	next := *ch
	for i := 0; i < GridCount; i++ {
		if i == CenterGrid {
			continue
		}
		if t := next.Grids[CenterGrid].Cells[i]; t != "" {
			next.Grids[i].Cells[CenterCell] = t
		} else if t := next.Grids[i].Cells[CenterCell]; t != "" {
			next.Grids[CenterGrid].Cells[i] = t
		}
	}
	return &next
}
