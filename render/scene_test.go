package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-golf/core"
	"github.com/lixenwraith/vi-golf/engine"
	"github.com/lixenwraith/vi-golf/vmath"
)

// recordingCanvas logs every draw call as a compact string
type recordingCanvas struct {
	calls []string
	rects []vmath.Rect
	texts []string
}

func (r *recordingCanvas) Clear(c core.RGB) {
	r.calls = append(r.calls, "clear")
}

func (r *recordingCanvas) FillCircle(center vmath.Vec2, radius float64, c core.RGB) {
	r.calls = append(r.calls, fmt.Sprintf("circle(%g,%g,%g)", center.X, center.Y, radius))
}

func (r *recordingCanvas) FillRect(rect vmath.Rect, c core.RGB) {
	r.calls = append(r.calls, "rect")
	r.rects = append(r.rects, rect)
}

func (r *recordingCanvas) StrokeRect(rect vmath.Rect, c core.RGB) {
	r.calls = append(r.calls, "outline")
}

func (r *recordingCanvas) Line(from, to vmath.Vec2, width float64, c core.RGB) {
	r.calls = append(r.calls, fmt.Sprintf("line(%g,%g->%g,%g)", from.X, from.Y, to.X, to.Y))
}

func (r *recordingCanvas) Text(s string, pos vmath.Vec2, size int, c core.RGB) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, s)
}

func TestDrawOrderIdle(t *testing.T) {
	s := engine.NewState(engine.DefaultCourse())
	cv := &recordingCanvas{}

	Draw(cv, &s)

	want := []string{
		"clear",
		"outline",
		"circle(960,360,20)", // hole
		"circle(320,360,15)", // ball
		"rect", "rect", // obstacles
		"circle(200,500,30)", "rect", // tree 1
		"circle(800,150,30)", "rect", // tree 2
		"rect", // power track, no fill at zero power
		"text", "text",
	}
	if strings.Join(cv.calls, " ") != strings.Join(want, " ") {
		t.Errorf("Unexpected draw order:\n got: %v\nwant: %v", cv.calls, want)
	}
	if cv.texts[0] != "Score: 0" || cv.texts[1] != "Hole: 1" {
		t.Errorf("Unexpected HUD text %v", cv.texts)
	}
}

func TestDrawWhileDragging(t *testing.T) {
	s := engine.NewState(engine.DefaultCourse())
	s.Ball.IsBeingDragged = true
	s.Aim.Begin(s.Ball.Position)
	s.Aim.Track(vmath.V2(420, 360), s.Ball.Position, s.Course.Rules)
	cv := &recordingCanvas{}

	Draw(cv, &s)

	joined := strings.Join(cv.calls, " ")
	if !strings.Contains(joined, "line(320,360->370,360)") {
		t.Errorf("Expected aim line, got %v", cv.calls)
	}
	if cv.texts[len(cv.texts)-1] != "Drag to aim" {
		t.Errorf("Expected hint text last, got %v", cv.texts)
	}

	// Power 10 of 50 fills 60 of 300 pixels
	fill := cv.rects[len(cv.rects)-1]
	if fill.Width != 60 || fill.X != 20 || fill.Y != 680 {
		t.Errorf("Expected power fill 60px at (20, 680), got %+v", fill)
	}
}

func TestTreeTrunkGeometry(t *testing.T) {
	cv := &recordingCanvas{}
	drawTree(cv, vmath.V2(200, 500))

	trunk := cv.rects[0]
	want := vmath.Rect{X: 190, Y: 530, Width: 20, Height: 50}
	if trunk != want {
		t.Errorf("Expected trunk %+v, got %+v", want, trunk)
	}
}

func TestPowerBarFill(t *testing.T) {
	tests := []struct {
		power, max float64
		want       int
	}{
		{0, 50, 0},
		{10, 50, 60},
		{50, 50, 300},
		{33.3, 50, 199},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := PowerBarFill(tt.power, tt.max); got != tt.want {
			t.Errorf("PowerBarFill(%v, %v) = %d, want %d", tt.power, tt.max, got, tt.want)
		}
	}
}
