// Package config resolves the optional fave.yaml used by the fave CLI.
package config

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/fave/pkg/fave"
	"github.com/go-drift/fave/pkg/graphics"
	"github.com/go-drift/fave/pkg/raster"
)

// FileName is the configuration file looked up in the project directory.
const FileName = "fave.yaml"

// SupportedMajor is the only fave.yaml schema major version understood.
const SupportedMajor = "v1"

// Config represents the optional fave.yaml configuration.
type Config struct {
	Version    string       `yaml:"version,omitempty"`
	Colors     ColorsConfig `yaml:"colors"`
	SparkCount int          `yaml:"spark_count,omitempty"`
	Size       float64      `yaml:"size,omitempty"`
	Images     ImagesConfig `yaml:"images"`
}

// ColorsConfig holds hex colors (#RRGGBB or #AARRGGBB).
type ColorsConfig struct {
	DotFirst   string `yaml:"dot_first,omitempty"`
	DotSecond  string `yaml:"dot_second,omitempty"`
	CircleFrom string `yaml:"circle_from,omitempty"`
	CircleTo   string `yaml:"circle_to,omitempty"`
}

// ImagesConfig holds icon paths, relative to the config directory.
type ImagesConfig struct {
	Normal   string `yaml:"normal,omitempty"`
	Selected string `yaml:"selected,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root    string
	Version string
	Button  fave.Config
}

// LoadOptional reads fave.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes fave.yaml contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads fave.yaml (if present) from dir and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir)
}

// Resolve validates the configuration and fills defaults. Relative image
// paths are resolved against dir.
func (c *Config) Resolve(dir string) (*Resolved, error) {
	version, err := validateVersion(c.Version)
	if err != nil {
		return nil, err
	}

	btn := fave.DefaultConfig()
	colors := []struct {
		key string
		raw string
		dst *graphics.Color
	}{
		{"colors.dot_first", c.Colors.DotFirst, &btn.DotFirstColor},
		{"colors.dot_second", c.Colors.DotSecond, &btn.DotSecondColor},
		{"colors.circle_from", c.Colors.CircleFrom, &btn.CircleFromColor},
		{"colors.circle_to", c.Colors.CircleTo, &btn.CircleToColor},
	}
	for _, col := range colors {
		raw := strings.TrimSpace(col.raw)
		if raw == "" {
			continue
		}
		parsed, err := graphics.ParseHex(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", col.key, err)
		}
		*col.dst = parsed
	}

	switch {
	case c.SparkCount < 0:
		return nil, fmt.Errorf("spark_count must not be negative (got %d)", c.SparkCount)
	case c.SparkCount > 0:
		btn.SparkCount = c.SparkCount
	}

	switch {
	case c.Size < 0:
		return nil, fmt.Errorf("size must not be negative (got %g)", c.Size)
	case c.Size > 0:
		btn.Size = graphics.Size{Width: c.Size, Height: c.Size}
	}

	normal, err := loadImage(dir, c.Images.Normal)
	if err != nil {
		return nil, fmt.Errorf("images.normal: %w", err)
	}
	selected, err := loadImage(dir, c.Images.Selected)
	if err != nil {
		return nil, fmt.Errorf("images.selected: %w", err)
	}
	if normal == nil {
		normal = DefaultIcon(btn.Size, false, btn.CircleFromColor)
	}
	if selected == nil {
		selected = DefaultIcon(btn.Size, true, btn.CircleFromColor)
	}
	btn.NormalImage = normal
	btn.SelectImage = selected

	return &Resolved{Root: dir, Version: version, Button: btn}, nil
}

// FindProjectRoot walks up from the current directory to find fave.yaml.
// The current directory is returned when none exists.
func FindProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := wd; ; {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}

// DefaultIcon renders a placeholder icon: an outlined disc when deselected
// and a filled one when selected.
func DefaultIcon(size graphics.Size, selected bool, col graphics.Color) image.Image {
	w := max(1, int(size.Width))
	h := max(1, int(size.Height))
	c := raster.New(w, h)
	center := graphics.Offset{X: float64(w) / 2, Y: float64(h) / 2}
	r := min(float64(w), float64(h)) * 0.35
	if selected {
		c.FillCircle(center, r, col)
	} else {
		c.StrokeCircle(center, r, max(1, r/6), graphics.RGB(170, 184, 194))
	}
	return c.Image()
}

func validateVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return SupportedMajor + ".0.0", nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("version %q is not a valid semantic version", v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return "", fmt.Errorf("unsupported %s version %s (want %s.x)", FileName, v, SupportedMajor)
	}
	return semver.Canonical(v), nil
}

func loadImage(dir, path string) (image.Image, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}
