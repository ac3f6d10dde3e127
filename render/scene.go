package render

import (
	"fmt"

	"github.com/lixenwraith/vi-golf/constants"
	"github.com/lixenwraith/vi-golf/core"
	"github.com/lixenwraith/vi-golf/engine"
	"github.com/lixenwraith/vi-golf/vmath"
)

// Draw renders one frame of s onto cv
// Reads state only; layering follows call order
func Draw(cv Canvas, s *engine.State) {
	c := s.Course

	cv.Clear(core.RGBBackground)
	cv.StrokeRect(c.Bounds(), core.RGBBoundary)

	cv.FillCircle(s.Hole.Position, float64(s.Hole.Radius), core.RGBHole)
	cv.FillCircle(s.Ball.Position, float64(s.Ball.Radius), core.RGBBall)

	for _, o := range c.Obstacles {
		cv.FillRect(o, core.RGBObstacle)
	}
	for _, t := range c.Trees {
		drawTree(cv, t)
	}

	if s.Aim.Dragging && s.Aim.ShowIndicator {
		cv.Line(s.Ball.Position, s.Aim.Indicator, constants.AimLineWidth, core.RGBAimLine)
	}

	drawHUD(cv, s)
}

func drawTree(cv Canvas, at vmath.Vec2) {
	cv.FillCircle(at, constants.TreeCanopyRadius, core.RGBTreeCanopy)
	cv.FillRect(vmath.Rect{
		X:      at.X + constants.TreeTrunkOffsetX,
		Y:      at.Y + constants.TreeTrunkOffsetY,
		Width:  constants.TreeTrunkWidth,
		Height: constants.TreeTrunkHeight,
	}, core.RGBTreeTrunk)
}

// PowerBarFill returns the filled width of the power bar in whole pixels
func PowerBarFill(power, maxPower float64) int {
	if maxPower <= 0 {
		return 0
	}
	return int(power * constants.PowerBarWidth / maxPower)
}

func drawHUD(cv Canvas, s *engine.State) {
	barY := float64(s.Course.Height - constants.PowerBarBottomOffset)
	cv.FillRect(vmath.Rect{
		X:      constants.PowerBarX,
		Y:      barY,
		Width:  constants.PowerBarWidth,
		Height: constants.PowerBarHeight,
	}, core.RGBPowerTrack)

	if fill := PowerBarFill(s.Aim.Power, s.Course.Rules.MaxPower); fill > 0 {
		cv.FillRect(vmath.Rect{
			X:      constants.PowerBarX,
			Y:      barY,
			Width:  float64(fill),
			Height: constants.PowerBarHeight,
		}, core.RGBPowerBar)
	}

	cv.Text(fmt.Sprintf("Score: %d", s.Score), vmath.V2(constants.HUDTextX, constants.ScoreTextY), constants.HUDFontSize, core.RGBHUDText)
	cv.Text(fmt.Sprintf("Hole: %d", s.HoleCount), vmath.V2(constants.HUDTextX, constants.HoleTextY), constants.HUDFontSize, core.RGBHUDText)

	if s.Ball.IsBeingDragged {
		cv.Text(constants.HintText, vmath.V2(constants.HUDTextX, constants.HintTextY), constants.HUDFontSize, core.RGBHUDText)
	}
}
