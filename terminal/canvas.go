package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-golf/core"
	"github.com/lixenwraith/vi-golf/vmath"
)

// grid maps the logical playfield onto a block of terminal cells
type grid struct {
	cols, rows    int
	width, height float64 // Logical size
}

func (g grid) cellW() float64 { return g.width / float64(g.cols) }
func (g grid) cellH() float64 { return g.height / float64(g.rows) }

// center returns the logical coordinates of a cell's center
func (g grid) center(cx, cy int) vmath.Vec2 {
	return vmath.V2((float64(cx)+0.5)*g.cellW(), (float64(cy)+0.5)*g.cellH())
}

// cell returns the cell containing logical point p, unclamped
func (g grid) cell(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X / g.cellW())), int(math.Floor(p.Y / g.cellH()))
}

// span returns the half-open cell range covering logical interval [lo, hi)
func span(lo, hi, size float64, limit int) (int, int) {
	from := int(math.Floor(lo / size))
	to := int(math.Ceil(hi / size))
	if from < 0 {
		from = 0
	}
	if to > limit {
		to = limit
	}
	return from, to
}

// screenCanvas rasterizes draw calls onto a tcell screen
// Shapes paint cell backgrounds; text keeps the background under it
type screenCanvas struct {
	screen tcell.Screen
	grid   grid
	bg     []tcell.Color
}

func newScreenCanvas(screen tcell.Screen, g grid) *screenCanvas {
	return &screenCanvas{
		screen: screen,
		grid:   g,
		bg:     make([]tcell.Color, g.cols*g.rows),
	}
}

func toColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (cv *screenCanvas) paint(cx, cy int, c tcell.Color) {
	if cx < 0 || cy < 0 || cx >= cv.grid.cols || cy >= cv.grid.rows {
		return
	}
	cv.bg[cy*cv.grid.cols+cx] = c
	cv.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(c))
}

func (cv *screenCanvas) Clear(c core.RGB) {
	col := toColor(c)
	for cy := 0; cy < cv.grid.rows; cy++ {
		for cx := 0; cx < cv.grid.cols; cx++ {
			cv.paint(cx, cy, col)
		}
	}
}

// FillCircle paints cells whose center lies inside the circle, and always the cell holding its center
func (cv *screenCanvas) FillCircle(center vmath.Vec2, radius float64, c core.RGB) {
	col := toColor(c)
	g := cv.grid
	x0, x1 := span(center.X-radius, center.X+radius, g.cellW(), g.cols)
	y0, y1 := span(center.Y-radius, center.Y+radius, g.cellH(), g.rows)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if vmath.Distance(g.center(cx, cy), center) <= radius {
				cv.paint(cx, cy, col)
			}
		}
	}
	cx, cy := g.cell(center)
	cv.paint(cx, cy, col)
}

// FillRect paints every cell the rectangle overlaps
func (cv *screenCanvas) FillRect(r vmath.Rect, c core.RGB) {
	col := toColor(c)
	g := cv.grid
	x0, x1 := span(r.X, r.X+r.Width, g.cellW(), g.cols)
	y0, y1 := span(r.Y, r.Y+r.Height, g.cellH(), g.rows)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			cv.paint(cx, cy, col)
		}
	}
}

// StrokeRect paints the border cells of the rectangle's cell range
func (cv *screenCanvas) StrokeRect(r vmath.Rect, c core.RGB) {
	col := toColor(c)
	g := cv.grid
	x0, x1 := span(r.X, r.X+r.Width, g.cellW(), g.cols)
	y0, y1 := span(r.Y, r.Y+r.Height, g.cellH(), g.rows)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for cx := x0; cx < x1; cx++ {
		cv.paint(cx, y0, col)
		cv.paint(cx, y1-1, col)
	}
	for cy := y0; cy < y1; cy++ {
		cv.paint(x0, cy, col)
		cv.paint(x1-1, cy, col)
	}
}

// Line samples the segment at half-cell steps; width is at most one cell
func (cv *screenCanvas) Line(from, to vmath.Vec2, width float64, c core.RGB) {
	col := toColor(c)
	g := cv.grid
	step := math.Min(g.cellW(), g.cellH()) / 2
	n := int(math.Ceil(vmath.Distance(from, to)/step)) + 1
	d := to.Sub(from)
	for i := 0; i <= n; i++ {
		p := from.Add(d.Scale(float64(i) / float64(n)))
		cx, cy := g.cell(p)
		cv.paint(cx, cy, col)
	}
}

// Text writes s one rune per cell starting at the cell holding pos
func (cv *screenCanvas) Text(s string, pos vmath.Vec2, size int, c core.RGB) {
	fg := toColor(c)
	g := cv.grid
	cx, cy := g.cell(pos)
	if cy < 0 || cy >= g.rows {
		return
	}
	for _, r := range s {
		if cx >= g.cols {
			return
		}
		if cx >= 0 {
			bg := cv.bg[cy*g.cols+cx]
			cv.screen.SetContent(cx, cy, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
		cx++
	}
}

// background returns the color last painted at a cell
func (cv *screenCanvas) background(cx, cy int) tcell.Color {
	return cv.bg[cy*cv.grid.cols+cx]
}
