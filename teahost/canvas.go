package teahost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

type cellKind uint8

const (
	kindText cellKind = iota
	kindBorder
	kindCurrent
	kindHeld
	kindTitle
	kindHelp
)

// cell holds one grapheme cluster. An empty cluster is covered by the wide
// cluster to its left.
type cell struct {
	cluster string
	kind    cellKind
}

// canvas is a grid of styled cells that is rendered to a string once per
// view. Writes outside the clip rectangle are dropped.
type canvas struct {
	width, height int
	cells         []cell

	clipX, clipY, clipW, clipH int
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
	for i := range c.cells {
		c.cells[i] = cell{cluster: " "}
	}
	c.clip(0, 0, width, height)
	return c
}

func (c *canvas) clip(x, y, width, height int) {
	c.clipX, c.clipY, c.clipW, c.clipH = x, y, width, height
}

func (c *canvas) set(x, y int, cluster string, kind cellKind) {
	if x < c.clipX || x >= c.clipX+c.clipW || y < c.clipY || y >= c.clipY+c.clipH {
		return
	}
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{cluster: cluster, kind: kind}
}

// print writes text from x up to maxWidth cells and returns the width used.
// A cluster that does not fit entirely is not printed.
func (c *canvas) print(x, y, maxWidth int, text string, kind cellKind) int {
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		width := g.Width()
		if used+width > maxWidth {
			break
		}
		if width == 0 {
			continue
		}
		c.set(x+used, y, g.Str(), kind)
		for i := 1; i < width; i++ {
			c.set(x+used+i, y, "", kind)
		}
		used += width
	}
	return used
}

func (c *canvas) fill(x, y, width, height int, kind cellKind) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			c.set(col, row, " ", kind)
		}
	}
}

// plain returns the canvas text without styling.
func (c *canvas) plain() string {
	return c.render(nil)
}

// render joins the rows, styling each run of cells of the same kind.
func (c *canvas) render(style func(cellKind) lipgloss.Style) string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := c.cells[y*c.width : (y+1)*c.width]
		for start := 0; start < len(row); {
			kind := row[start].kind
			run.Reset()
			end := start
			for ; end < len(row) && row[end].kind == kind; end++ {
				run.WriteString(row[end].cluster)
			}
			if style == nil {
				out.WriteString(run.String())
			} else {
				out.WriteString(style(kind).Render(run.String()))
			}
			start = end
		}
	}
	return out.String()
}
