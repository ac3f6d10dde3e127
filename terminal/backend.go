// Package terminal runs the game inside a terminal through tcell.
// The logical course is scaled onto the cell grid; the bottom row carries a status line.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-golf/constants"
	"github.com/lixenwraith/vi-golf/core"
	"github.com/lixenwraith/vi-golf/engine"
	"github.com/lixenwraith/vi-golf/render"
)

// Options configures the terminal frontend
type Options struct {
	Width, Height int           // Logical course size
	FrameInterval time.Duration // Tick period
	Status        func() string // Optional status line text
}

// Backend drives a session from tcell events and a frame ticker
type Backend struct {
	screen  tcell.Screen
	session *engine.Session
	opts    Options
	logger  zerolog.Logger

	grid    grid
	pointer pointer
}

// NewScreen opens the terminal with mouse reporting enabled
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// New creates a backend over an initialized screen
func New(screen tcell.Screen, session *engine.Session, opts Options, logger zerolog.Logger) *Backend {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = constants.FrameUpdateInterval
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		c := session.State().Course
		opts.Width, opts.Height = c.Width, c.Height
	}

	b := &Backend{
		screen:  screen,
		session: session,
		opts:    opts,
		logger:  logger.With().Str("component", "terminal").Logger(),
	}
	b.resize()
	return b
}

func (b *Backend) resize() {
	cols, rows := b.screen.Size()
	if cols < 1 {
		cols = 1
	}
	if rows > 1 {
		rows-- // Status line
	}
	if rows < 1 {
		rows = 1
	}
	b.grid = grid{
		cols:   cols,
		rows:   rows,
		width:  float64(b.opts.Width),
		height: float64(b.opts.Height),
	}
}

// Run blocks until a quit key, ctx cancellation, or the screen closing
// The caller owns the screen and calls Fini after Run returns
func (b *Backend) Run(ctx context.Context) error {
	ticker := time.NewTicker(b.opts.FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := b.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	b.logger.Info().
		Int("cols", b.grid.cols).
		Int("rows", b.grid.rows).
		Dur("interval", b.opts.FrameInterval).
		Msg("Terminal frontend running")

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !b.handle(ev) {
				b.logger.Info().Msg("Quit requested")
				return nil
			}

		case <-ticker.C:
			b.frame()
		}
	}
}

// handle processes one terminal event, returning false on quit
func (b *Backend) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		b.pointer.observe(ev, b.grid)

	case *tcell.EventResize:
		b.screen.Sync()
		b.resize()
		b.logger.Debug().Int("cols", b.grid.cols).Int("rows", b.grid.rows).Msg("Resized")
	}
	return true
}

// frame ticks the session once and redraws
func (b *Backend) frame() []engine.Event {
	events := b.session.Tick(b.pointer.sample())

	st := b.session.State()
	render.Draw(newScreenCanvas(b.screen, b.grid), &st)
	b.drawStatus()
	b.screen.Show()

	return events
}

func (b *Backend) drawStatus() {
	cols, rows := b.screen.Size()
	if rows <= b.grid.rows || b.opts.Status == nil {
		return
	}

	y := b.grid.rows
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range b.opts.Status() {
		if x >= cols {
			break
		}
		b.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		b.screen.SetContent(x, y, ' ', nil, style)
	}
}
