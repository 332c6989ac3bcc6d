package engine

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/lineage/engine/core"
	"github.com/spaghettifunk/lineage/engine/platform"
	"github.com/spaghettifunk/lineage/engine/renderer"
	"github.com/spaghettifunk/lineage/engine/scene"
)

var ErrInvalidConfig = errors.New("invalid application config")

type WindowConfig struct {
	// The window title.
	Title string `toml:"title"`
	// Window starting position x axis, if applicable.
	PosX int `toml:"pos_x"`
	// Window starting position y axis, if applicable.
	PosY int `toml:"pos_y"`
	// Window starting width.
	Width int `toml:"width"`
	// Window starting height.
	Height int `toml:"height"`
	// Number of screen refreshes to wait before swapping buffers.
	SwapInterval int `toml:"swap_interval"`
}

type RendererConfig struct {
	// "default" or "prototype".
	Manager string `toml:"manager"`
	// Read the error queue after every frame and log what it holds.
	PollErrors bool `toml:"poll_errors"`
	// Request a debug context and route driver messages to the logger.
	DebugOutput bool `toml:"debug_output"`
	// Clear color of the default manager, RGBA in [0, 1].
	Background [4]float32 `toml:"background"`
}

type ApplicationConfig struct {
	Name     string         `toml:"name"`
	LogLevel string         `toml:"log_level"`
	Scene    string         `toml:"scene"`
	Window   WindowConfig   `toml:"window"`
	Renderer RendererConfig `toml:"renderer"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:     "Lineage",
		LogLevel: "info",
		Scene:    "multiple_cubes",
		Window: WindowConfig{
			Title:        "Lineage",
			PosX:         100,
			PosY:         100,
			Width:        800,
			Height:       600,
			SwapInterval: 1,
		},
		Renderer: RendererConfig{
			Manager:    renderer.DefaultManager.String(),
			Background: [4]float32{0.1, 0.1, 0.1, 1},
		},
	}
}

// LoadApplicationConfig reads a TOML file. Keys missing from the file keep
// their default values.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := DecodeApplicationConfig(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}

func DecodeApplicationConfig(r io.Reader) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()
	d := toml.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as TOML.
func (c *ApplicationConfig) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *ApplicationConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.SwapInterval < 0 {
		return fmt.Errorf("%w: swap interval %d", ErrInvalidConfig, c.Window.SwapInterval)
	}
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if _, err := renderer.ParseManagerKind(c.Renderer.Manager); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if _, ok := scene.Builders[c.Scene]; !ok && c.Scene != "" {
		return fmt.Errorf("%w: unknown scene %q", ErrInvalidConfig, c.Scene)
	}
	for _, v := range c.Renderer.Background {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: background component %v outside [0, 1]", ErrInvalidConfig, v)
		}
	}
	return nil
}

func (c *ApplicationConfig) BackgroundColor() mgl32.Vec4 {
	return mgl32.Vec4(c.Renderer.Background)
}

// PlatformConfig returns the window settings with an OpenGL 4.5 context.
func (c *ApplicationConfig) PlatformConfig() platform.Config {
	return platform.Config{
		Title:        c.Window.Title,
		PosX:         c.Window.PosX,
		PosY:         c.Window.PosY,
		Width:        c.Window.Width,
		Height:       c.Window.Height,
		SwapInterval: c.Window.SwapInterval,
		ContextMajor: 4,
		ContextMinor: 5,
		Debug:        c.Renderer.DebugOutput,
	}
}
