package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/msalah0e/graphpad/internal/graph"
)

// Config holds graphpad configuration.
type Config struct {
	Graph  GraphConfig  `toml:"graph"`
	Canvas CanvasConfig `toml:"canvas"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// GraphConfig sets the initial control values.
type GraphConfig struct {
	Name  string `toml:"name"`
	Nodes int    `toml:"nodes"`
}

// CanvasConfig describes the drawing surface in canvas units.
type CanvasConfig struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	MinX       float64 `toml:"min_x"`
	MaxX       float64 `toml:"max_x"`
	MinY       float64 `toml:"min_y"`
	MaxY       float64 `toml:"max_y"`
	NodeRadius float64 `toml:"node_radius"`
	LoopRadius float64 `toml:"loop_radius"`
}

// UIConfig controls display options.
type UIConfig struct {
	Color      bool `toml:"color"`
	ShowMatrix bool `toml:"show_matrix"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Graph: GraphConfig{Name: "My graph", Nodes: 0},
		Canvas: CanvasConfig{
			Width: 800, Height: 600,
			MinX: 100, MaxX: 700,
			MinY: 100, MaxY: 500,
			NodeRadius: 10,
			LoopRadius: graph.DefaultLoopRadius,
		},
		UI:  UIConfig{Color: true, ShowMatrix: false},
		Log: LogConfig{Level: "info"},
	}
}

// Bounds returns the node placement rectangle.
func (c *Config) Bounds() graph.Bounds {
	return graph.Bounds{MinX: c.Canvas.MinX, MaxX: c.Canvas.MaxX, MinY: c.Canvas.MinY, MaxY: c.Canvas.MaxY}
}

// Validate checks the values a loaded file may have broken.
func (c *Config) Validate() error {
	cv := c.Canvas
	if cv.Width <= 0 || cv.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %gx%g", cv.Width, cv.Height)
	}
	if cv.MinX > cv.MaxX || cv.MinY > cv.MaxY {
		return fmt.Errorf("canvas bounds are inverted: x [%g, %g], y [%g, %g]", cv.MinX, cv.MaxX, cv.MinY, cv.MaxY)
	}
	if c.Graph.Nodes < 0 {
		return fmt.Errorf("graph.nodes must not be negative, got %d", c.Graph.Nodes)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// ConfigDir returns the graphpad config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "graphpad")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LogPath returns the debug log path.
func LogPath() string {
	return filepath.Join(ConfigDir(), "graphpad.log")
}

// Load reads the config file. Missing or invalid files yield defaults.
func Load() *Config {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		return cfg
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return Default()
	}
	if cfg.Validate() != nil {
		return Default()
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the config file with defaults if it doesn't exist.
func EnsureExists() error {
	if _, err := os.Stat(Path()); err == nil {
		return nil // already exists
	}
	return Save(Default())
}
