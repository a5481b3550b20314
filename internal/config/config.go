// Package config loads viewer settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".focalview.yaml"

// Config is the full viewer configuration.
type Config struct {
	AssetsRoot string          `yaml:"assets_root"`
	Theme      ThemeConfig     `yaml:"theme"`
	Cell       CellConfig      `yaml:"cell"`
	Dataset    DatasetConfig   `yaml:"dataset"`
	Focal      FocalConfig     `yaml:"focal"`
	Zoom       ZoomConfig      `yaml:"zoom"`
	Scrollbar  ScrollbarConfig `yaml:"scrollbar"`
}

// ThemeConfig selects a base palette and overrides individual colours.
type ThemeConfig struct {
	Name         string `yaml:"name"`
	AccentColor  string `yaml:"accent"`
	DividerColor string `yaml:"divider"`
	MutedColor   string `yaml:"muted"`
	ThumbColor   string `yaml:"thumb"`
	LensColor    string `yaml:"lens"`
}

// CellConfig is the pixel size assumed for one terminal cell.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DatasetConfig configures the dataset viewer.
type DatasetConfig struct {
	Scenes      []string `yaml:"scenes"`
	MaxPosition int      `yaml:"max_position"`
	IntervalMS  int      `yaml:"interval_ms"`
	Autoplay    *bool    `yaml:"autoplay"`
}

// Method is one selectable comparison method.
type Method struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// FocalConfig configures the focal-stack viewer.
type FocalConfig struct {
	Stacks        []string       `yaml:"stacks"`
	InitialFrames map[string]int `yaml:"initial_frames"`
	MinFrame      int            `yaml:"min_frame"`
	MaxFrame      int            `yaml:"max_frame"`
	DefaultFrame  int            `yaml:"default_frame"`
	Methods       []Method       `yaml:"methods"`
}

// ZoomConfig configures the magnifier.
type ZoomConfig struct {
	Default     float64 `yaml:"default"`
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Step        float64 `yaml:"step"`
	LensBase    float64 `yaml:"lens_base"`
	PanelWidth  float64 `yaml:"panel_width"`
	PanelHeight float64 `yaml:"panel_height"`
}

// ScrollbarConfig configures the thumbnail scrollbar.
type ScrollbarConfig struct {
	MinThumb      float64 `yaml:"min_thumb"`
	Step          float64 `yaml:"step"`
	EndEpsilon    float64 `yaml:"end_epsilon"`
	HintThreshold float64 `yaml:"hint_threshold"`
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings that cannot drive a viewer.
func (c Config) Validate() error {
	if len(c.Dataset.Scenes) == 0 {
		return errors.New("dataset.scenes is empty")
	}
	if len(c.Focal.Stacks) == 0 {
		return errors.New("focal.stacks is empty")
	}
	if c.Focal.MaxFrame < c.Focal.MinFrame {
		return fmt.Errorf("focal.max_frame %d < min_frame %d", c.Focal.MaxFrame, c.Focal.MinFrame)
	}
	if c.Zoom.Min > c.Zoom.Max {
		return fmt.Errorf("zoom.min %.2f > zoom.max %.2f", c.Zoom.Min, c.Zoom.Max)
	}
	if len(c.Focal.Methods) == 0 {
		return errors.New("focal.methods is empty")
	}
	return nil
}

// normalize restores defaults for zero values a file may leave behind.
func (c *Config) normalize() {
	d := Default()
	if c.AssetsRoot == "" {
		c.AssetsRoot = d.AssetsRoot
	}
	if c.Cell.Width <= 0 {
		c.Cell.Width = d.Cell.Width
	}
	if c.Cell.Height <= 0 {
		c.Cell.Height = d.Cell.Height
	}
	if c.Dataset.MaxPosition <= 0 {
		c.Dataset.MaxPosition = d.Dataset.MaxPosition
	}
	if c.Dataset.IntervalMS <= 0 {
		c.Dataset.IntervalMS = d.Dataset.IntervalMS
	}
	if c.Focal.DefaultFrame <= 0 {
		c.Focal.DefaultFrame = d.Focal.DefaultFrame
	}
	if c.Zoom.Default <= 0 {
		c.Zoom.Default = d.Zoom.Default
	}
	if c.Zoom.Step <= 0 {
		c.Zoom.Step = d.Zoom.Step
	}
	if c.Zoom.LensBase <= 0 {
		c.Zoom.LensBase = d.Zoom.LensBase
	}
	if c.Zoom.PanelWidth <= 0 {
		c.Zoom.PanelWidth = d.Zoom.PanelWidth
	}
	if c.Zoom.PanelHeight <= 0 {
		c.Zoom.PanelHeight = d.Zoom.PanelHeight
	}
	if c.Scrollbar.MinThumb <= 0 {
		c.Scrollbar.MinThumb = d.Scrollbar.MinThumb
	}
	if c.Scrollbar.Step <= 0 {
		c.Scrollbar.Step = d.Scrollbar.Step
	}
}

// AutoplayEnabled reports whether the dataset viewer starts playing.
func (d DatasetConfig) AutoplayEnabled() bool {
	return d.Autoplay == nil || *d.Autoplay
}
