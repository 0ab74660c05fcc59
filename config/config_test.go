// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"reflect"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	s, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(s.Output.Formats, []string{"pdf", "png"}) {
		t.Errorf("Output.Formats = %v", s.Output.Formats)
	}
	if s.Layout.RowSpacing != 150 || s.Layout.NestOffset != 5 || s.Layout.Margin != 20 {
		t.Errorf("Layout = %+v", s.Layout)
	}
	if s.Layout.ExonHeight != 50 || s.Layout.IntronHeight != 40 {
		t.Errorf("band heights = %v, %v", s.Layout.ExonHeight, s.Layout.IntronHeight)
	}
}

func TestOverrides(t *testing.T) {
	overrides, err := ParseOverrides([]string{"layout.per-base=0.5", "output.formats=svg,png", "strict = true"})
	if err != nil {
		t.Fatalf("ParseOverrides() error = %v", err)
	}

	v := viper.New()
	SetDefaults(v)
	ApplyOverrides(v, overrides)

	s, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Layout.PerBase != 0.5 {
		t.Errorf("Layout.PerBase = %v, want 0.5", s.Layout.PerBase)
	}
	if !reflect.DeepEqual(s.Output.Formats, []string{"svg", "png"}) {
		t.Errorf("Output.Formats = %v, want [svg png]", s.Output.Formats)
	}
	if !s.Strict {
		t.Error("Strict = false, want true")
	}
}

func TestParseOverridesErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing key", []string{"=5"}},
		{"missing equals", []string{"strict"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOverrides(tt.args); err == nil {
				t.Errorf("ParseOverrides(%v) succeeded", tt.args)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	base, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"unknown format", func(s *Settings) { s.Output.Formats = []string{"gif"} }},
		{"no formats", func(s *Settings) { s.Output.Formats = nil }},
		{"zero dpi", func(s *Settings) { s.Output.DPI = 0 }},
		{"negative width", func(s *Settings) { s.Output.Width = -1 }},
		{"zero scale", func(s *Settings) { s.Layout.PerBase = 0 }},
		{"zero row spacing", func(s *Settings) { s.Layout.RowSpacing = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			s.Output.Formats = append([]string(nil), base.Output.Formats...)
			tt.modify(&s)
			if err := s.Validate(); err == nil {
				t.Error("Validate() succeeded")
			}
		})
	}
}
