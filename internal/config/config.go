// Package config loads the editor configuration.
//
// Config file locations (priority order):
//  1. the -config flag
//  2. $PORTGRAPH_CONFIG
//  3. ./portgraph.yaml
//  4. $XDG_CONFIG_HOME/portgraph/config.yaml or ~/.config/portgraph/config.yaml
//
// A missing file is not an error; defaults are used.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the editor configuration.
type Config struct {
	// Scene is a YAML or JavaScript scene file. Empty uses the built-in demo.
	Scene string `yaml:"scene"`
	// DebugLog is a file receiving log output. Empty disables logging.
	DebugLog string       `yaml:"debug_log"`
	Canvas   CanvasConfig `yaml:"canvas"`
	// PanStep is how many cells the arrow keys move the camera.
	PanStep int `yaml:"pan_step" validate:"gte=1"`
}

// CanvasConfig controls how diagram coordinates map onto terminal cells.
type CanvasConfig struct {
	UnitsPerCellX float64 `yaml:"units_per_cell_x" validate:"gt=0"`
	UnitsPerCellY float64 `yaml:"units_per_cell_y" validate:"gt=0"`
	// GridX and GridY space the background dots in cells.
	GridX int `yaml:"grid_x" validate:"gte=1"`
	GridY int `yaml:"grid_y" validate:"gte=1"`
}

const (
	defaultUnitsPerCellX = 5
	defaultUnitsPerCellY = 10
	defaultGridX         = 5
	defaultGridY         = 3
	defaultPanStep       = 3
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load resolves the config path (explicit path first, then FindConfigPath)
// and loads it. It returns the path actually used, or "" for defaults.
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadFromPath(path)
	return cfg, path, err
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Canvas.UnitsPerCellX == 0 {
		c.Canvas.UnitsPerCellX = defaultUnitsPerCellX
	}
	if c.Canvas.UnitsPerCellY == 0 {
		c.Canvas.UnitsPerCellY = defaultUnitsPerCellY
	}
	if c.Canvas.GridX == 0 {
		c.Canvas.GridX = defaultGridX
	}
	if c.Canvas.GridY == 0 {
		c.Canvas.GridY = defaultGridY
	}
	if c.PanStep == 0 {
		c.PanStep = defaultPanStep
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
