package core

// RGB stores explicit 8-bit color channels, decoupled from tcell and ebiten
type RGB struct {
	R, G, B uint8
}

// Course palette
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBWhite      = RGB{255, 255, 255}
	RGBDarkGreen  = RGB{0, 100, 0}
	RGBTreeCanopy = RGB{34, 139, 34}
	RGBTreeTrunk  = RGB{139, 69, 19}
	RGBBall       = RGB{243, 213, 91}
	RGBPowerBar   = RGB{255, 0, 0}
	RGBDarkGray   = RGB{80, 80, 80}
)

// Semantic aliases used by the scene
var (
	RGBBackground = RGBDarkGreen
	RGBBoundary   = RGBWhite
	RGBHole       = RGBBlack
	RGBObstacle   = RGBDarkGray
	RGBPowerTrack = RGBDarkGray
	RGBAimLine    = RGBWhite
	RGBHUDText    = RGBWhite
)

// RGBA implements color.Color, fully opaque
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}
