// Package config loads the slider configuration of the inputrange CLI.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/inputrange/pkg/rangeinput"
	"github.com/go-drift/inputrange/pkg/theme"
	"github.com/go-drift/inputrange/pkg/tui"
)

// FileName is the optional configuration file looked up in a directory.
const FileName = "inputrange.yaml"

//go:embed default.yaml
var defaultYAML []byte

// Config represents inputrange.yaml.
type Config struct {
	Title   string   `yaml:"title,omitempty"`
	Theme   string   `yaml:"theme,omitempty"`
	Sliders []Slider `yaml:"sliders"`
}

// Slider describes one slider.
type Slider struct {
	Title          string     `yaml:"title"`
	Min            float64    `yaml:"min"`
	Max            float64    `yaml:"max"`
	Value          ValueSpec  `yaml:"value"`
	Step           float64    `yaml:"step,omitempty"`
	Disabled       bool       `yaml:"disabled,omitempty"`
	DraggableTrack bool       `yaml:"draggable_track,omitempty"`
	WithActive     *bool      `yaml:"with_active,omitempty"`
	Suggested      *ValueSpec `yaml:"suggested,omitempty"`
	// SingleValueError is the half-width of the error band of a single value.
	SingleValueError float64 `yaml:"single_value_error,omitempty"`
	HandleSlop       float64 `yaml:"handle_slop,omitempty"`
	// LabelFormat is a fmt verb applied to label values, such as "%.2f".
	LabelFormat string `yaml:"label_format,omitempty"`
	LabelSuffix string `yaml:"label_suffix,omitempty"`
}

// ValueSpec is a slider value written either as a number or as a
// {min, max} mapping.
type ValueSpec struct {
	rangeinput.Value
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *ValueSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("line %d: value must be a number: %w", node.Line, err)
		}
		v.Value = rangeinput.Single(f)
		return nil
	case yaml.MappingNode:
		var pair struct {
			Min *float64 `yaml:"min"`
			Max *float64 `yaml:"max"`
		}
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		if pair.Min == nil || pair.Max == nil {
			return fmt.Errorf("line %d: a value mapping needs both min and max", node.Line)
		}
		v.Value = rangeinput.Pair(*pair.Min, *pair.Max)
		return nil
	default:
		return fmt.Errorf("line %d: value must be a number or a {min, max} mapping", node.Line)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (v ValueSpec) MarshalYAML() (any, error) {
	if !v.Multi {
		return v.Max, nil
	}
	return map[string]float64{"min": v.Min, "max": v.Max}, nil
}

// RangeConfig converts s into a range input configuration.
func (s Slider) RangeConfig() (rangeinput.Config, error) {
	cfg := rangeinput.Config{
		MinValue:         s.Min,
		MaxValue:         s.Max,
		Value:            s.Value.Value,
		Step:             s.Step,
		Disabled:         s.Disabled,
		DraggableTrack:   s.DraggableTrack,
		WithActive:       s.WithActive == nil || *s.WithActive,
		SingleValueError: s.SingleValueError,
		HandleSlop:       s.HandleSlop,
		LabelSuffix:      s.LabelSuffix,
	}
	if s.Suggested != nil {
		suggested := s.Suggested.Value
		cfg.SuggestedValue = &suggested
	}
	if s.LabelFormat != "" {
		if !strings.Contains(s.LabelFormat, "%") {
			return cfg, fmt.Errorf("label_format %q has no formatting verb", s.LabelFormat)
		}
		format := s.LabelFormat
		cfg.FormatLabel = func(v float64, _ rangeinput.LabelKind) string {
			return fmt.Sprintf(format, v)
		}
	}
	return cfg, nil
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Title      string
	Theme      *theme.ThemeData
	Sliders    []tui.Slider
}

// Default returns the embedded configuration.
func Default() (*Config, error) {
	return parse(defaultYAML, "default configuration")
}

// LoadOptional reads inputrange.yaml from dir if present and falls back to
// the embedded configuration.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default()
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return parse(data, FileName)
}

func parse(data []byte, name string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if len(cfg.Sliders) == 0 {
		return nil, fmt.Errorf("%s defines no sliders", name)
	}
	return &cfg, nil
}

// Resolve loads the configuration of dir and resolves defaults. Every slider
// is validated so configuration errors surface before anything is drawn.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	modulePath := modulePath(dir)

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = defaultTitle(modulePath, dir)
	}

	th, err := theme.ByName(cfg.Theme)
	if err != nil {
		return nil, err
	}

	sliders := make([]tui.Slider, 0, len(cfg.Sliders))
	for i, s := range cfg.Sliders {
		name := strings.TrimSpace(s.Title)
		if name == "" {
			name = fmt.Sprintf("Slider %d", i+1)
		}
		rc, err := s.RangeConfig()
		if err != nil {
			return nil, fmt.Errorf("slider %q: %w", name, err)
		}
		if _, err := rangeinput.New(rc); err != nil {
			return nil, fmt.Errorf("slider %q: %w", name, err)
		}
		sliders = append(sliders, tui.Slider{Title: name, Config: rc})
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Title:      title,
		Theme:      th,
		Sliders:    sliders,
	}, nil
}

// modulePath returns the module path of dir's go.mod, or "" without one.
func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		modName, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "inputrange"
	}
	return base
}
