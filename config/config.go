// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// OutputConfig controls the files a diagram is written to
type OutputConfig struct {
	// file formats to write, any of pdf, png and svg
	Formats []string `mapstructure:"formats"`

	// raster resolution of the png output
	DPI int `mapstructure:"dpi"`

	// page size in points, 0 fits the page to the input
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

// LayoutConfig is the geometry of gene rows, in points
type LayoutConfig struct {
	// x of sequence position 0
	Margin float64 `mapstructure:"margin"`

	// horizontal points per base
	PerBase float64 `mapstructure:"per-base"`

	// vertical distance between gene baselines
	RowSpacing float64 `mapstructure:"row-spacing"`

	// how far a span is moved when a boundary collides with one already drawn
	NestOffset float64 `mapstructure:"nest-offset"`

	ExonRise     float64 `mapstructure:"exon-rise"`
	ExonHeight   float64 `mapstructure:"exon-height"`
	IntronRise   float64 `mapstructure:"intron-rise"`
	IntronHeight float64 `mapstructure:"intron-height"`
}

// Settings is the root-level settings struct and is a mix
// of settings from a settings file, --set overrides and
// command line flags
type Settings struct {
	Output OutputConfig `mapstructure:"output"`
	Layout LayoutConfig `mapstructure:"layout"`

	// reject records containing anything but A, C, G and T
	Strict bool `mapstructure:"strict"`
}

var validFormats = []string{"pdf", "png", "svg"}

// SetDefaults registers the default value of every setting on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.formats", []string{"pdf", "png"})
	v.SetDefault("output.dpi", 96)
	v.SetDefault("output.width", 0)
	v.SetDefault("output.height", 0)

	v.SetDefault("layout.margin", 20)
	v.SetDefault("layout.per-base", 1)
	v.SetDefault("layout.row-spacing", 150)
	v.SetDefault("layout.nest-offset", 5)
	v.SetDefault("layout.exon-rise", 25)
	v.SetDefault("layout.exon-height", 50)
	v.SetDefault("layout.intron-rise", 20)
	v.SetDefault("layout.intron-height", 40)

	v.SetDefault("strict", false)
}

// Load unmarshals and validates the settings held by v
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("unable to decode settings: %w", err)
	}
	return s, s.Validate()
}

// Validate checks that the settings describe a drawable page
func (s Settings) Validate() error {
	if len(s.Output.Formats) == 0 {
		return fmt.Errorf("output.formats: at least one format is required")
	}
	for _, f := range s.Output.Formats {
		if !slices.Contains(validFormats, f) {
			return fmt.Errorf("output.formats: unknown format %q (want %s)", f, strings.Join(validFormats, ", "))
		}
	}
	if s.Output.DPI <= 0 {
		return fmt.Errorf("output.dpi must be positive, got %d", s.Output.DPI)
	}
	if s.Output.Width < 0 || s.Output.Height < 0 {
		return fmt.Errorf("output size can not be negative")
	}
	if s.Layout.PerBase <= 0 {
		return fmt.Errorf("layout.per-base must be positive, got %v", s.Layout.PerBase)
	}
	if s.Layout.RowSpacing <= 0 {
		return fmt.Errorf("layout.row-spacing must be positive, got %v", s.Layout.RowSpacing)
	}
	return nil
}

// ParseOverrides turns "key=value" arguments into a settings map
func ParseOverrides(args []string) (map[string]string, error) {
	overrides := make(map[string]string)
	for _, arg := range args {
		kv := splitOption(arg)
		if kv[0] == "" {
			return nil, fmt.Errorf("invalid override %q: missing key", arg)
		}
		if !strings.Contains(arg, "=") {
			return nil, fmt.Errorf("invalid override %q: want key=value", arg)
		}
		overrides[kv[0]] = kv[1]
	}
	return overrides, nil
}

// ApplyOverrides sets every override on v, taking precedence over files and defaults
func ApplyOverrides(v *viper.Viper, overrides map[string]string) {
	for k, val := range overrides {
		v.Set(k, val)
	}
}

// splits on the first '='
func splitOption(arg string) [2]string {
	var kv [2]string
	for i, ch := range arg {
		if ch == '=' {
			kv[0] = strings.TrimSpace(arg[:i])
			kv[1] = strings.TrimSpace(arg[i+1:])
			return kv
		}
	}
	kv[0] = strings.TrimSpace(arg)
	kv[1] = ""
	return kv
}
