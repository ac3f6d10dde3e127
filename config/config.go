package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-golf/constants"
	"github.com/lixenwraith/vi-golf/engine"
	"github.com/lixenwraith/vi-golf/vmath"
)

// Backend names
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

const (
	envPrefix  = "VIGOLF"
	configName = "vi-golf"
)

var (
	// ErrUnknownBackend is returned when backend is neither window nor terminal
	ErrUnknownBackend = errors.New("unknown backend")

	// ErrInvalidVolume is returned when audio.volume is outside [0, 1]
	ErrInvalidVolume = errors.New("audio volume out of range")
)

// Config is the resolved runtime configuration
type Config struct {
	Backend string  `mapstructure:"backend"`
	Seed    uint64  `mapstructure:"seed"`
	Screen  Screen  `mapstructure:"screen"`
	Physics Physics `mapstructure:"physics"`
	Ball    Ball    `mapstructure:"ball"`
	Hole    Hole    `mapstructure:"hole"`
	Aim     Aim     `mapstructure:"aim"`
	Course  Course  `mapstructure:"course"`
	Audio   Audio   `mapstructure:"audio"`
	Log     Log     `mapstructure:"log"`
}

type Screen struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	FPS    int `mapstructure:"fps"`
}

type Physics struct {
	Friction      float64 `mapstructure:"friction"`
	RestThreshold float64 `mapstructure:"restThreshold"`
}

type Ball struct {
	Radius int     `mapstructure:"radius"`
	StartX float64 `mapstructure:"startX"`
	StartY float64 `mapstructure:"startY"`
}

type Hole struct {
	Radius int     `mapstructure:"radius"`
	StartX float64 `mapstructure:"startX"`
	StartY float64 `mapstructure:"startY"`
	Margin int     `mapstructure:"margin"`
}

type Aim struct {
	MaxPower        float64 `mapstructure:"maxPower"`
	PowerScale      float64 `mapstructure:"powerScale"`
	MinLaunch       float64 `mapstructure:"minLaunch"`
	IndicatorMin    float64 `mapstructure:"indicatorMin"`
	IndicatorLength float64 `mapstructure:"indicatorLength"`
	ProbeRadius     float64 `mapstructure:"probeRadius"`
}

// Rect is an obstacle entry in the course list
type Rect struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
	W float64 `mapstructure:"w"`
	H float64 `mapstructure:"h"`
}

// Point is a tree entry in the course list
type Point struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

type Course struct {
	Obstacles []Rect  `mapstructure:"obstacles"`
	Trees     []Point `mapstructure:"trees"`
}

type Audio struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"` // Master volume, 0.0 - 1.0
}

type Log struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"`
	Dir     string `mapstructure:"dir"`
}

// setDefaults registers the stock course and tuning
func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendWindow)
	v.SetDefault("seed", 0)

	v.SetDefault("screen.width", constants.ScreenWidth)
	v.SetDefault("screen.height", constants.ScreenHeight)
	v.SetDefault("screen.fps", constants.TargetFPS)

	v.SetDefault("physics.friction", constants.Friction)
	v.SetDefault("physics.restThreshold", constants.RestThreshold)

	v.SetDefault("ball.radius", constants.BallRadius)
	v.SetDefault("ball.startX", constants.BallStartX)
	v.SetDefault("ball.startY", constants.BallStartY)

	v.SetDefault("hole.radius", constants.HoleRadius)
	v.SetDefault("hole.startX", constants.HoleStartX)
	v.SetDefault("hole.startY", constants.HoleStartY)
	v.SetDefault("hole.margin", constants.HoleMargin)

	v.SetDefault("aim.maxPower", constants.MaxPower)
	v.SetDefault("aim.powerScale", constants.PowerScale)
	v.SetDefault("aim.minLaunch", constants.MinLaunchLength)
	v.SetDefault("aim.indicatorMin", constants.IndicatorMinLength)
	v.SetDefault("aim.indicatorLength", constants.IndicatorLength)
	v.SetDefault("aim.probeRadius", constants.PointerProbeRadius)

	v.SetDefault("course.obstacles", []map[string]any{
		{"x": 400, "y": 300, "w": 200, "h": 20},
		{"x": 600, "y": 500, "w": 20, "h": 200},
	})
	v.SetDefault("course.trees", []map[string]any{
		{"x": 200, "y": 500},
		{"x": 800, "y": 150},
	})

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)

	v.SetDefault("log.enabled", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")
}

// Flags returns the command-line flag set bound into configuration by Load
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file (default: ./vi-golf.toml or ~/.config/vi-golf/vi-golf.toml)")
	fs.StringP("backend", "b", BackendWindow, "render backend: window, terminal")
	fs.Uint64("seed", 0, "hole placement seed (0 = time based)")
	fs.Bool("audio", true, "enable sound effects")
	fs.BoolP("debug", "d", false, "write a debug log")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.String("log-dir", "logs", "log directory")
	return fs
}

// flagKeys maps flag names to configuration keys
var flagKeys = map[string]string{
	"backend":   "backend",
	"seed":      "seed",
	"audio":     "audio.enabled",
	"debug":     "log.enabled",
	"log-level": "log.level",
	"log-dir":   "log.dir",
}

// Load resolves configuration: defaults, config file, VIGOLF_* environment, then flags
// fs may be nil; it must already be parsed
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var path string
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
		path, _ = fs.GetString("config")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vi-golf")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Searched-for file is optional, an explicit path is not
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that do not belong to the course itself
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Screen.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", engine.ErrInvalidScreen, c.Screen.FPS)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidVolume, c.Audio.Volume)
	}
	return nil
}

// BuildCourse converts the configuration into a validated course
func (c *Config) BuildCourse() (*engine.Course, error) {
	course := &engine.Course{
		Width:      c.Screen.Width,
		Height:     c.Screen.Height,
		HoleMargin: c.Hole.Margin,
		BallRadius: c.Ball.Radius,
		HoleRadius: c.Hole.Radius,
		BallStart:  vmath.V2(c.Ball.StartX, c.Ball.StartY),
		HoleStart:  vmath.V2(c.Hole.StartX, c.Hole.StartY),
		Rules: engine.Rules{
			Friction:           c.Physics.Friction,
			RestThreshold:      c.Physics.RestThreshold,
			MaxPower:           c.Aim.MaxPower,
			PowerScale:         c.Aim.PowerScale,
			MinLaunchLength:    c.Aim.MinLaunch,
			IndicatorMinLength: c.Aim.IndicatorMin,
			IndicatorLength:    c.Aim.IndicatorLength,
			ProbeRadius:        c.Aim.ProbeRadius,
		},
	}

	course.Obstacles = make([]vmath.Rect, 0, len(c.Course.Obstacles))
	for _, o := range c.Course.Obstacles {
		course.Obstacles = append(course.Obstacles, vmath.Rect{X: o.X, Y: o.Y, Width: o.W, Height: o.H})
	}
	course.Trees = make([]vmath.Vec2, 0, len(c.Course.Trees))
	for _, t := range c.Course.Trees {
		course.Trees = append(course.Trees, vmath.V2(t.X, t.Y))
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}
	return course, nil
}
