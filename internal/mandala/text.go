package mandala

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Parse reads the sectioned mandala text format:
//
//	## Center Grid
//	- [4] main theme
//	- [0] idea
//	## Top-Left Grid
//	- [4] idea
//	- supporting point
//
// A header selects the current grid; list lines fill cells. An explicit
// [index] targets that cell, a bare line fills the first empty slot.
// Unknown headers, out-of-range indexes and stray lines are skipped; Parse
// is forgiving and never fails. The result is normalized so center and
// outer grids agree.
func Parse(content string) *Chart {
	ch := &Chart{}
	grid := -1
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "##") {
			grid = gridForHeader(line)
			continue
		}
		if grid < 0 || !strings.HasPrefix(line, "-") {
			continue
		}
		idx, text := parseCellLine(strings.TrimSpace(line[1:]))
		if text == "" {
			continue
		}
		if idx < 0 {
			idx = firstEmptyCell(&ch.Grids[grid])
		}
		if idx < 0 || idx >= CellCount {
			continue
		}
		ch.Grids[grid].Cells[idx] = text
	}
	return ch.Normalize()
}

// gridForHeader matches "## Center Grid" / "## <Position> Grid" and returns
// the grid index, or -1 for an unknown header.
func gridForHeader(line string) int {
	name := strings.TrimSpace(strings.TrimPrefix(line, "##"))
	name = strings.TrimSuffix(name, "Grid")
	name = strings.TrimSpace(name)
	for i, pos := range positionNames {
		if strings.EqualFold(name, pos) {
			return i
		}
	}
	return -1
}

// parseCellLine splits an optional "[index]" prefix from the cell text.
// Returns index -1 when no usable index is present.
func parseCellLine(s string) (int, string) {
	if strings.HasPrefix(s, "[") {
		if end := strings.Index(s, "]"); end > 0 {
			idx, err := strconv.Atoi(strings.TrimSpace(s[1:end]))
			if err == nil {
				return idx, strings.TrimSpace(s[end+1:])
			}
		}
	}
	return -1, strings.TrimSpace(s)
}

func firstEmptyCell(g *Grid) int {
	for i, cell := range g.Cells {
		if cell == "" {
			return i
		}
	}
	return -1
}

// Write linearizes a chart to the sectioned text format. The center grid
// comes first, then the outer grids in reading order; grids without any
// text are omitted, cells carry explicit indexes so the output round-trips.
func Write(ch *Chart) string {
	var sb strings.Builder
	writeGrid(&sb, ch, CenterGrid)
	for g := 0; g < GridCount; g++ {
		if g == CenterGrid {
			continue
		}
		writeGrid(&sb, ch, g)
	}
	return sb.String()
}

func writeGrid(sb *strings.Builder, ch *Chart, g int) {
	empty := true
	for _, cell := range ch.Grids[g].Cells {
		if cell != "" {
			empty = false
			break
		}
	}
	if empty {
		return
	}
	fmt.Fprintf(sb, "## %s Grid\n", PositionName(g))
	for i, cell := range ch.Grids[g].Cells {
		if cell == "" {
			continue
		}
		fmt.Fprintf(sb, "- [%d] %s\n", i, cell)
	}
}
