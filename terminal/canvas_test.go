package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-golf/core"
	"github.com/lixenwraith/vi-golf/vmath"
)

// newTestCanvas is a 10x10 cell canvas over a 100x100 logical plane
func newTestCanvas(t *testing.T) *screenCanvas {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(10, 10)
	t.Cleanup(screen.Fini)
	return newScreenCanvas(screen, grid{cols: 10, rows: 10, width: 100, height: 100})
}

func countPainted(cv *screenCanvas, c core.RGB) int {
	want := toColor(c)
	n := 0
	for _, bg := range cv.bg {
		if bg == want {
			n++
		}
	}
	return n
}

func TestCanvasFillCircleSubCell(t *testing.T) {
	cv := newTestCanvas(t)
	cv.Clear(core.RGBBackground)

	// Radius 2 covers no cell center; the containing cell is still painted
	cv.FillCircle(vmath.V2(51, 52), 2, core.RGBBall)
	if cv.background(5, 5) != toColor(core.RGBBall) {
		t.Error("Expected cell holding the center to be painted")
	}
	if n := countPainted(cv, core.RGBBall); n != 1 {
		t.Errorf("Expected exactly one painted cell, got %d", n)
	}
}

func TestCanvasFillCircle(t *testing.T) {
	cv := newTestCanvas(t)
	cv.FillCircle(vmath.V2(50, 50), 16, core.RGBBall)

	// Cell centers within 16 of (50,50): the inner 2x2 block plus two on each side
	if n := countPainted(cv, core.RGBBall); n != 12 {
		t.Errorf("Expected 12 painted cells, got %d", n)
	}
}

func TestCanvasFillRect(t *testing.T) {
	cv := newTestCanvas(t)
	cv.FillRect(vmath.Rect{X: 15, Y: 20, Width: 20, Height: 5}, core.RGBObstacle)

	// Columns 1..3, row 2
	if n := countPainted(cv, core.RGBObstacle); n != 3 {
		t.Errorf("Expected 3 painted cells, got %d", n)
	}
	for cx := 1; cx <= 3; cx++ {
		if cv.background(cx, 2) != toColor(core.RGBObstacle) {
			t.Errorf("Expected cell (%d, 2) painted", cx)
		}
	}
}

func TestCanvasStrokeRect(t *testing.T) {
	cv := newTestCanvas(t)
	cv.StrokeRect(vmath.Rect{Width: 100, Height: 100}, core.RGBBoundary)

	if n := countPainted(cv, core.RGBBoundary); n != 36 {
		t.Errorf("Expected 36 border cells, got %d", n)
	}
	if cv.background(5, 5) == toColor(core.RGBBoundary) {
		t.Error("Interior must stay unpainted")
	}
}

func TestCanvasLine(t *testing.T) {
	cv := newTestCanvas(t)
	cv.Line(vmath.V2(5, 55), vmath.V2(95, 55), 5, core.RGBAimLine)

	for cx := 0; cx < 10; cx++ {
		if cv.background(cx, 5) != toColor(core.RGBAimLine) {
			t.Errorf("Expected cell (%d, 5) on the line", cx)
		}
	}
}

func TestCanvasTextKeepsBackground(t *testing.T) {
	cv := newTestCanvas(t)
	cv.Clear(core.RGBBackground)
	cv.Text("Hi", vmath.V2(20, 20), 30, core.RGBHUDText)
	cv.screen.Show()

	cells, w, _ := cv.screen.(tcell.SimulationScreen).GetContents()
	cell := cells[2*w+2]
	if string(cell.Runes) != "H" {
		t.Errorf("Expected 'H' at (2, 2), got %q", string(cell.Runes))
	}
	fg, bg, _ := cell.Style.Decompose()
	if bg != toColor(core.RGBBackground) || fg != toColor(core.RGBHUDText) {
		t.Errorf("Unexpected text style fg=%v bg=%v", fg, bg)
	}
}

func TestCanvasClipsOffscreen(t *testing.T) {
	cv := newTestCanvas(t)
	cv.FillRect(vmath.Rect{X: -50, Y: -50, Width: 20, Height: 20}, core.RGBObstacle)
	cv.Text("far", vmath.V2(95, 500), 30, core.RGBHUDText)

	if n := countPainted(cv, core.RGBObstacle); n != 0 {
		t.Errorf("Expected nothing painted off screen, got %d", n)
	}
}
