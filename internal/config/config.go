package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ErrInvalidValue is returned when an environment variable cannot be parsed.
var ErrInvalidValue = errors.New("invalid configuration value")

// Environment keys read by Load.
const (
	KeyWindowWidth  = "SKETCH_WINDOW_WIDTH"
	KeyWindowHeight = "SKETCH_WINDOW_HEIGHT"
	KeyCanvasScale  = "SKETCH_CANVAS_SCALE"
	KeyBackground   = "SKETCH_BACKGROUND"
	KeyColor        = "SKETCH_COLOR"
	KeyTool         = "SKETCH_TOOL"
	KeyStrokeWidth  = "SKETCH_STROKE_WIDTH"
	KeyFill         = "SKETCH_FILL"
	KeyHistoryLimit = "SKETCH_HISTORY_LIMIT"
	KeyExportDir    = "SKETCH_EXPORT_DIR"
	KeyLogLevel     = "SKETCH_LOG_LEVEL"
)

// Config holds everything the sketchpad reads at startup.
type Config struct {
	WindowWidth  int
	WindowHeight int
	CanvasScale  float64

	Background  string
	Color       string
	Tool        string
	StrokeWidth float64
	Fill        bool

	// HistoryLimit caps the undo depth. Zero means unbounded.
	HistoryLimit int

	ExportDir string
	LogLevel  logrus.Level
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		WindowWidth:  1024,
		WindowHeight: 768,
		CanvasScale:  0.8,
		Background:   "#ffffff",
		Color:        "#000000",
		Tool:         "brush",
		StrokeWidth:  5,
		ExportDir:    ".",
		LogLevel:     logrus.InfoLevel,
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	var err error

	if cfg.WindowWidth, err = intValue(lookup, KeyWindowWidth, cfg.WindowWidth, 1); err != nil {
		return nil, err
	}
	if cfg.WindowHeight, err = intValue(lookup, KeyWindowHeight, cfg.WindowHeight, 1); err != nil {
		return nil, err
	}
	if cfg.HistoryLimit, err = intValue(lookup, KeyHistoryLimit, cfg.HistoryLimit, 0); err != nil {
		return nil, err
	}
	if cfg.CanvasScale, err = floatValue(lookup, KeyCanvasScale, cfg.CanvasScale); err != nil {
		return nil, err
	}
	if cfg.CanvasScale <= 0 || cfg.CanvasScale > 1 {
		return nil, fmt.Errorf("%s=%v must be in (0,1]: %w", KeyCanvasScale, cfg.CanvasScale, ErrInvalidValue)
	}
	if cfg.StrokeWidth, err = floatValue(lookup, KeyStrokeWidth, cfg.StrokeWidth); err != nil {
		return nil, err
	}
	if v, ok := lookup(KeyFill); ok && v != "" {
		if cfg.Fill, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("%s=%q: %w", KeyFill, v, ErrInvalidValue)
		}
	}
	if v, ok := lookup(KeyBackground); ok && v != "" {
		cfg.Background = v
	}
	if v, ok := lookup(KeyColor); ok && v != "" {
		cfg.Color = v
	}
	if v, ok := lookup(KeyTool); ok && v != "" {
		cfg.Tool = v
	}
	if v, ok := lookup(KeyExportDir); ok && v != "" {
		cfg.ExportDir = v
	}
	if v, ok := lookup(KeyLogLevel); ok && v != "" {
		if cfg.LogLevel, err = logrus.ParseLevel(strings.TrimSpace(v)); err != nil {
			return nil, fmt.Errorf("%s=%q: %w", KeyLogLevel, v, ErrInvalidValue)
		}
	}
	return cfg, nil
}

// SurfaceSize is the fixed raster size: a fraction of the viewport.
func (c *Config) SurfaceSize() (int, int) {
	w := int(math.Floor(float64(c.WindowWidth) * c.CanvasScale))
	h := int(math.Floor(float64(c.WindowHeight) * c.CanvasScale))
	return max(w, 1), max(h, 1)
}

func intValue(lookup func(string) (string, bool), key string, def, minimum int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < minimum {
		return 0, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
	}
	return n, nil
}

func floatValue(lookup func(string) (string, bool), key string, def float64) (float64, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidValue)
	}
	return f, nil
}
