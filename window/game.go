// Package window runs the game in a desktop window through ebiten.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-golf/constants"
	"github.com/lixenwraith/vi-golf/engine"
	"github.com/lixenwraith/vi-golf/render"
	"github.com/lixenwraith/vi-golf/vmath"
)

// Options configures the window frontend
type Options struct {
	Width, Height int // Logical course size, also the window size
	FPS           int
	Title         string
}

// Game implements ebiten.Game over a session
type Game struct {
	session *engine.Session
	opts    Options
	logger  zerolog.Logger
	labels  *labelCache

	// Replaced in tests; ebiten input state is only valid inside the game loop
	input func() engine.Input
	quit  func() bool
}

// New creates the window game; Run opens the window
func New(session *engine.Session, opts Options, logger zerolog.Logger) *Game {
	if opts.Width <= 0 || opts.Height <= 0 {
		c := session.State().Course
		opts.Width, opts.Height = c.Width, c.Height
	}
	if opts.FPS <= 0 {
		opts.FPS = constants.TargetFPS
	}
	if opts.Title == "" {
		opts.Title = constants.WindowTitle
	}

	return &Game{
		session: session,
		opts:    opts,
		logger:  logger.With().Str("component", "window").Logger(),
		labels:  newLabelCache(),
		input:   sampleInput,
		quit:    quitRequested,
	}
}

func sampleInput() engine.Input {
	x, y := ebiten.CursorPosition()
	return engine.Input{
		Pointer:  vmath.V2(float64(x), float64(y)),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Update advances the session one frame
func (g *Game) Update() error {
	if g.quit() {
		g.logger.Info().Msg("Quit requested")
		return ebiten.Termination
	}
	g.session.Tick(g.input())
	return nil
}

// Draw renders the current state
func (g *Game) Draw(screen *ebiten.Image) {
	st := g.session.State()
	render.Draw(imageCanvas{dst: screen, labels: g.labels}, &st)
}

// Layout keeps the logical course size regardless of window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Run opens the window and blocks until it closes
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetTPS(g.opts.FPS)

	g.logger.Info().
		Int("width", g.opts.Width).
		Int("height", g.opts.Height).
		Int("tps", g.opts.FPS).
		Msg("Window frontend running")

	return ebiten.RunGame(g)
}
