// Package config loads LocalPaint settings from defaults, an optional TOML
// file and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"LocalPaint/internal/board"
	"LocalPaint/internal/export"
	"LocalPaint/internal/state"
	"LocalPaint/internal/store"
)

const (
	AppID         = "io.localpaint.app"
	ToolbarHeight = 50
)

type Config struct {
	Window  Window  `toml:"window"`
	Brush   Brush   `toml:"brush"`
	Status  Status  `toml:"status"`
	Storage Storage `toml:"storage"`
	Export  Export  `toml:"export"`
	Share   Share   `toml:"share"`
}

// Window is the whole window; the canvas gets the height minus the
// toolbar band.
type Window struct {
	Width   int `toml:"width"`
	Height  int `toml:"height"`
	Toolbar int `toml:"toolbar"`
}

type Brush struct {
	Color      string `toml:"color"`
	Size       int    `toml:"size"`
	EraserSize int    `toml:"eraser_size"`
	Background string `toml:"background"`
}

type Status struct {
	Duration Duration `toml:"duration"`
	Revert   Duration `toml:"revert"`
}

type Storage struct {
	Key string `toml:"key"`
}

type Export struct {
	FileName string `toml:"file_name"`
	Quality  int    `toml:"quality"`
}

type Share struct {
	Enabled   bool `toml:"enabled"`
	Port      int  `toml:"port"`
	Advertise bool `toml:"advertise"`
}

// Duration reads "1.5s" style strings from TOML.
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func Default() Config {
	d := state.DefaultSettings()
	return Config{
		Window: Window{Width: 1024, Height: 768, Toolbar: ToolbarHeight},
		Brush: Brush{
			Color:      d.BrushColor,
			Size:       d.BrushSize,
			EraserSize: d.EraserSize,
			Background: d.Background,
		},
		Status: Status{
			Duration: Duration{1500 * time.Millisecond},
			Revert:   Duration{1000 * time.Millisecond},
		},
		Storage: Storage{Key: store.DefaultKey},
		Export:  Export{FileName: export.FileName, Quality: export.DefaultQuality},
		Share:   Share{Port: 8888, Advertise: true},
	}
}

// LoadFile overlays the TOML file at path on c. A missing file is not an
// error.
func (c *Config) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// RegisterFlags binds the overridable settings to fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Window.Width, "width", c.Window.Width, "Window width in pixels")
	fs.IntVar(&c.Window.Height, "height", c.Window.Height, "Window height in pixels")
	fs.StringVar(&c.Brush.Color, "color", c.Brush.Color, "Initial brush color")
	fs.StringVar(&c.Brush.Background, "background", c.Brush.Background, "Initial background color")
	fs.BoolVar(&c.Share.Enabled, "share", c.Share.Enabled, "Mirror the canvas to LAN viewers")
	fs.IntVar(&c.Share.Port, "port", c.Share.Port, "Port for the canvas mirror")
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height-c.Window.Toolbar <= 0 {
		return fmt.Errorf("window %dx%d leaves no room for the canvas", c.Window.Width, c.Window.Height)
	}
	if c.Brush.Size < state.MinSize || c.Brush.Size > state.MaxSize {
		return fmt.Errorf("brush size %d outside %d-%d", c.Brush.Size, state.MinSize, state.MaxSize)
	}
	if c.Brush.EraserSize < state.MinSize || c.Brush.EraserSize > state.MaxSize {
		return fmt.Errorf("eraser size %d outside %d-%d", c.Brush.EraserSize, state.MinSize, state.MaxSize)
	}
	for _, hex := range []string{c.Brush.Color, c.Brush.Background} {
		if _, err := state.ParseHex(hex); err != nil {
			return err
		}
	}
	if c.Share.Enabled && (c.Share.Port <= 0 || c.Share.Port > 65535) {
		return fmt.Errorf("invalid share port %d", c.Share.Port)
	}
	return nil
}

// CanvasSize is the window minus the toolbar band.
func (c Config) CanvasSize() (int, int) {
	return c.Window.Width, c.Window.Height - c.Window.Toolbar
}

// BoardOptions converts the settings for board.New. Colors are
// normalized; Validate must have passed.
func (c Config) BoardOptions() board.Options {
	w, h := c.CanvasSize()
	brush, _ := state.NormalizeHex(c.Brush.Color)
	bg, _ := state.NormalizeHex(c.Brush.Background)
	return board.Options{
		Width:  w,
		Height: h,
		Defaults: state.Defaults{
			BrushColor: brush,
			BrushSize:  c.Brush.Size,
			EraserSize: c.Brush.EraserSize,
			Background: bg,
		},
		StatusDuration: c.Status.Duration.Duration,
		RevertDuration: c.Status.Revert.Duration,
		JPEGQuality:    c.Export.Quality,
	}
}

// Load parses args into fs on top of the defaults. A -config file is applied
// first and the flags given on the command line are replayed over it.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	c := Default()
	path := fs.String("config", "", "TOML settings file")
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if *path != "" {
		set := map[string]string{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
		if err := c.LoadFile(*path); err != nil {
			return c, err
		}
		for name, v := range set {
			if err := fs.Set(name, v); err != nil {
				return c, err
			}
		}
	}
	return c, c.Validate()
}
