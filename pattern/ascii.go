package pattern

import (
	"math"
	"strings"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/nodebreak/geom"
)

// ASCII renders bricks inside bounds as a text grid of the given column
// count. Each brick is drawn with the first letter of its node class; cells
// are twice as tall as they are wide to roughly match terminal glyphs.
func ASCII(bricks []Brick, bounds cp.BB, cols int) string {
	if cols <= 0 || bounds.R <= bounds.L || bounds.T <= bounds.B {
		return ""
	}
	cellW := (bounds.R - bounds.L) / float64(cols)
	cellH := cellW * 2
	rows := int(math.Ceil((bounds.T - bounds.B) / cellH))

	grid := make([][]byte, rows)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", cols))
	}

	size := geom.KindRectangle.Size()
	for _, b := range bricks {
		mark := byte('#')
		if b.Class != "" {
			mark = b.Class[0]
		}
		c0 := int(math.Floor((b.Pos.X - bounds.L) / cellW))
		c1 := int(math.Ceil((b.Pos.X+size.X-bounds.L)/cellW)) - 1
		r0 := int(math.Floor((b.Pos.Y - bounds.B) / cellH))
		r1 := int(math.Ceil((b.Pos.Y+size.Y-bounds.B)/cellH)) - 1
		for r := max(r0, 0); r <= min(r1, rows-1); r++ {
			for c := max(c0, 0); c <= min(c1, cols-1); c++ {
				grid[r][c] = mark
			}
		}
	}

	var sb strings.Builder
	border := "+" + strings.Repeat("-", cols) + "+\n"
	sb.WriteString(border)
	for _, line := range grid {
		sb.WriteByte('|')
		sb.Write(line)
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
