package window

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/vi-golf/core"
	"github.com/lixenwraith/vi-golf/vmath"
)

// Debug font cell in pixels
const (
	glyphWidth  = 6
	glyphHeight = 16

	maxLabels = 32
)

// imageCanvas draws onto an ebiten image in logical pixels
type imageCanvas struct {
	dst    *ebiten.Image
	labels *labelCache
}

func (cv imageCanvas) Clear(c core.RGB) {
	cv.dst.Fill(c)
}

func (cv imageCanvas) FillCircle(center vmath.Vec2, radius float64, c core.RGB) {
	vector.DrawFilledCircle(cv.dst, float32(center.X), float32(center.Y), float32(radius), c, true)
}

func (cv imageCanvas) FillRect(r vmath.Rect, c core.RGB) {
	vector.DrawFilledRect(cv.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func (cv imageCanvas) StrokeRect(r vmath.Rect, c core.RGB) {
	vector.StrokeRect(cv.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, c, false)
}

func (cv imageCanvas) Line(from, to vmath.Vec2, width float64, c core.RGB) {
	vector.StrokeLine(cv.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), c, true)
}

// Text draws the debug font scaled to size pixels per line and tinted to c
func (cv imageCanvas) Text(s string, pos vmath.Vec2, size int, c core.RGB) {
	img := cv.labels.get(s)
	if img == nil {
		return
	}
	k := textScale(size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(c)
	cv.dst.DrawImage(img, op)
}

// textScale converts a line height in pixels to a debug font scale factor
func textScale(size int) float64 {
	if size <= 0 {
		return 1
	}
	return float64(size) / glyphHeight
}

// textExtent returns the unscaled pixel size of s in the debug font
func textExtent(s string) (int, int) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	cols := 0
	for _, l := range lines {
		cols = max(cols, utf8.RuneCountInString(l))
	}
	return cols * glyphWidth, len(lines) * glyphHeight
}

// labelCache keeps white pre-rendered strings; HUD text changes rarely
type labelCache struct {
	images map[string]*ebiten.Image
}

func newLabelCache() *labelCache {
	return &labelCache{images: make(map[string]*ebiten.Image)}
}

// get returns the rendered label, or nil for text with no visible extent
func (lc *labelCache) get(s string) *ebiten.Image {
	if img, ok := lc.images[s]; ok {
		return img
	}
	w, h := textExtent(s)
	if w == 0 || h == 0 {
		return nil
	}
	if len(lc.images) >= maxLabels {
		lc.clear()
	}
	img := ebiten.NewImage(w, h)
	ebitenutil.DebugPrint(img, s)
	lc.images[s] = img
	return img
}

func (lc *labelCache) clear() {
	for k, img := range lc.images {
		img.Deallocate()
		delete(lc.images, k)
	}
}
