// Package config handles viewer configuration loading.
package config

import (
	"fmt"
	"image/color"

	"github.com/philipparndt/scaffoldview/pkg/scene"
)

// Backends understood by the render command.
const (
	BackendRaylib = "raylib"
	BackendFyne   = "fyne"
	BackendPNG    = "png"
)

// Config holds all viewer settings.
type Config struct {
	Display DisplayConfig `yaml:"display" envPrefix:"DISPLAY_"`
	Style   StyleConfig   `yaml:"style" envPrefix:"STYLE_"`
	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`
	Watch   bool          `yaml:"watch" env:"WATCH"`
}

// DisplayConfig holds window and output settings.
type DisplayConfig struct {
	Backend    string `yaml:"backend" env:"BACKEND"`
	Width      int    `yaml:"width" env:"WIDTH"`
	Height     int    `yaml:"height" env:"HEIGHT"`
	Background string `yaml:"background" env:"BACKGROUND"`
	Output     string `yaml:"output" env:"OUTPUT"` // PNG path for the png backend
}

// StyleConfig holds the wireframe strokes.
type StyleConfig struct {
	LineColor      string  `yaml:"line_color" env:"LINE_COLOR"`
	LineWidth      float32 `yaml:"line_width" env:"LINE_WIDTH"`
	HighlightColor string  `yaml:"highlight_color" env:"HIGHLIGHT_COLOR"`
	HighlightWidth float32 `yaml:"highlight_width" env:"HIGHLIGHT_WIDTH"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file" env:"FILE"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Backend:    BackendRaylib,
			Width:      1200,
			Height:     900,
			Background: "#ffffff",
			Output:     "scaffold.png",
		},
		Style: StyleConfig{
			LineColor:      "#000000",
			LineWidth:      1,
			HighlightColor: "#ff0000",
			HighlightWidth: 3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks values that cannot be used as given.
func (c *Config) Validate() error {
	switch c.Display.Backend {
	case BackendRaylib, BackendFyne, BackendPNG:
	default:
		return fmt.Errorf("unknown backend %q (expected %s, %s or %s)",
			c.Display.Backend, BackendRaylib, BackendFyne, BackendPNG)
	}

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Display.Width, c.Display.Height)
	}

	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if _, err := c.Style.Styles(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed background color.
func (c *Config) BackgroundColor() (color.RGBA, error) {
	bg, err := ParseColor(c.Display.Background)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("display.background: %w", err)
	}
	return bg, nil
}

// Styles converts the configured strokes into scene styles.
func (s StyleConfig) Styles() (scene.Styles, error) {
	normal, err := ParseColor(s.LineColor)
	if err != nil {
		return scene.Styles{}, fmt.Errorf("style.line_color: %w", err)
	}
	highlight, err := ParseColor(s.HighlightColor)
	if err != nil {
		return scene.Styles{}, fmt.Errorf("style.highlight_color: %w", err)
	}
	if s.LineWidth <= 0 || s.HighlightWidth <= 0 {
		return scene.Styles{}, fmt.Errorf("stroke widths must be positive")
	}

	return scene.Styles{
		Normal:    scene.Style{Color: normal, Width: s.LineWidth},
		Highlight: scene.Style{Color: highlight, Width: s.HighlightWidth},
	}, nil
}
