package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"recipfit/internal/constants"
	rferrors "recipfit/internal/errors"
	"recipfit/internal/fit"
	"recipfit/internal/measure"
)

// LocalConfigFile is looked up in the working directory before the user config.
const LocalConfigFile = "recipfit.yaml"

var SupportedUnits = []string{
	measure.UnitCells,
	measure.UnitPixels,
	measure.UnitFixed,
}

type Config struct {
	SuffixMarker        string        `yaml:"suffix_marker"`
	AllowSingleOverflow bool          `yaml:"allow_single_overflow"`
	MinimumViableWidth  float64       `yaml:"minimum_viable_width"`
	AvailableWidth      float64       `yaml:"available_width"`
	Unit                string        `yaml:"unit"`
	Font                string        `yaml:"font"`
	HoverShowDelay      time.Duration `yaml:"hover_show_delay"`
	HoverHideDelay      time.Duration `yaml:"hover_hide_delay"`
	LogFile             string        `yaml:"log_file"`
	Verbose             bool          `yaml:"verbose"`

	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		SuffixMarker:        constants.DefaultSuffixMarker,
		AllowSingleOverflow: true,
		MinimumViableWidth:  constants.DefaultMinimumViableWidth,
		Unit:                measure.UnitCells,
		Font:                constants.DefaultFont,
		HoverShowDelay:      constants.HoverShowDelayMs * time.Millisecond,
		HoverHideDelay:      constants.HoverHideDelayMs * time.Millisecond,
		LogFile:             os.DevNull,
	}
}

// Load builds the configuration from defaults, the first config file found,
// and RECIPFIT_* environment overrides, in that order.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := findConfigFile()
	if err != nil {
		return nil, rferrors.ConfigError{Op: "locate", Err: err}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, rferrors.ConfigError{Op: "load", Err: err}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, rferrors.ConfigError{Op: "load", Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing candidate. An explicit
// RECIPFIT_CONFIG must exist; the implicit locations are optional.
func findConfigFile() (string, error) {
	if explicit := os.Getenv("RECIPFIT_CONFIG"); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("RECIPFIT_CONFIG %q: %w", explicit, err)
		}
		return explicit, nil
	}

	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

func searchPaths() []string {
	paths := []string{LocalConfigFile}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "recipfit", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "recipfit", "config.yaml"))
	}
	return paths
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", path, err)
	}
	defer f.Close()

	if err := c.decode(f); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	c.Path = path
	return nil
}

// decode overlays YAML from r onto c. Unknown keys are rejected so typos do not
// silently fall back to defaults.
func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("RECIPFIT_SUFFIX"); v != "" {
		c.SuffixMarker = v
	}

	if v := os.Getenv("RECIPFIT_ALLOW_OVERFLOW"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RECIPFIT_ALLOW_OVERFLOW value %q: %w", v, err)
		}
		c.AllowSingleOverflow = b
	}

	if v := os.Getenv("RECIPFIT_MIN_WIDTH"); v != "" {
		f, err := parseWidth(v)
		if err != nil {
			return fmt.Errorf("invalid RECIPFIT_MIN_WIDTH value %q: %w", v, err)
		}
		c.MinimumViableWidth = f
	}

	if v := os.Getenv("RECIPFIT_WIDTH"); v != "" {
		f, err := parseWidth(v)
		if err != nil {
			return fmt.Errorf("invalid RECIPFIT_WIDTH value %q: %w", v, err)
		}
		c.AvailableWidth = f
	}

	if v := os.Getenv("RECIPFIT_UNIT"); v != "" {
		c.Unit = v
	}

	if v := os.Getenv("RECIPFIT_FONT"); v != "" {
		c.Font = v
	}

	if v := os.Getenv("RECIPFIT_HOVER_SHOW_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid RECIPFIT_HOVER_SHOW_DELAY value %q: %w", v, err)
		}
		c.HoverShowDelay = d
	}

	if v := os.Getenv("RECIPFIT_HOVER_HIDE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid RECIPFIT_HOVER_HIDE_DELAY value %q: %w", v, err)
		}
		c.HoverHideDelay = d
	}

	if v := os.Getenv("RECIPFIT_LOG_FILE"); v != "" {
		c.LogFile = v
	}

	if v := os.Getenv("RECIPFIT_VERBOSE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RECIPFIT_VERBOSE value %q: %w", v, err)
		}
		c.Verbose = b
	}

	return nil
}

func parseWidth(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if !finite(f) {
		return 0, fmt.Errorf("width must be a finite number")
	}
	return f, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (c *Config) ValidateUnit() error {
	for _, u := range SupportedUnits {
		if c.Unit == u {
			return nil
		}
	}
	return fmt.Errorf("unsupported unit: %s (supported: %v)", c.Unit, SupportedUnits)
}

func (c *Config) Validate() error {
	if err := c.ValidateUnit(); err != nil {
		return fmt.Errorf("invalid unit configuration: %w", err)
	}
	if _, err := measure.ParseFontDescriptor(c.Font); err != nil {
		return fmt.Errorf("invalid font configuration: %w", err)
	}
	if !finite(c.MinimumViableWidth) || c.MinimumViableWidth < 0 {
		return fmt.Errorf("minimum_viable_width must be a non-negative number, got %v", c.MinimumViableWidth)
	}
	if !finite(c.AvailableWidth) || c.AvailableWidth < 0 {
		return fmt.Errorf("available_width must be a non-negative number, got %v", c.AvailableWidth)
	}
	if c.HoverShowDelay < 0 {
		return fmt.Errorf("hover_show_delay must be non-negative, got %v", c.HoverShowDelay)
	}
	if c.HoverHideDelay < 0 {
		return fmt.Errorf("hover_hide_delay must be non-negative, got %v", c.HoverHideDelay)
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	return nil
}

// FitConfig returns the fitting parameters for one evaluation.
func (c *Config) FitConfig() fit.Config {
	return fit.Config{
		AvailableWidth:      c.AvailableWidth,
		SuffixMarker:        c.SuffixMarker,
		AllowSingleOverflow: c.AllowSingleOverflow,
		MinimumViableWidth:  c.MinimumViableWidth,
	}
}

// FontDescriptor returns the configured root font.
func (c *Config) FontDescriptor() measure.FontDescriptor {
	d, err := measure.ParseFontDescriptor(c.Font)
	if err != nil {
		return measure.DefaultFontDescriptor()
	}
	return d
}
