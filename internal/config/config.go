// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML files via gopkg.in/yaml.v3; PI_TEXT_* environment overrides applied last

package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultEllipsis is appended by truncation when no ellipsis is configured.
const DefaultEllipsis = "…"

// Theme values understood by the viewer.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings holds the merged configuration.
type Settings struct {
	Ellipsis string `yaml:"ellipsis,omitempty"`
	Pad      *bool  `yaml:"pad,omitempty"`
	Strict   *bool  `yaml:"strict,omitempty"`
	Width    int    `yaml:"width,omitempty"`
	Workers  int    `yaml:"workers,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	Theme    string `yaml:"theme,omitempty"`
}

// Defaults returns the settings used when no file or variable sets a value.
func Defaults() *Settings {
	return &Settings{
		Ellipsis: DefaultEllipsis,
		Workers:  runtime.NumCPU(),
		LogLevel: "info",
		Theme:    ThemeAuto,
	}
}

// PadEnabled reports whether truncated lines are padded to the target width.
func (s *Settings) PadEnabled() bool {
	return s.Pad != nil && *s.Pad
}

// StrictEnabled reports whether slicing drops wide clusters cut by the range end.
func (s *Settings) StrictEnabled() bool {
	return s.Strict != nil && *s.Strict
}

// Load reads defaults, global settings, project settings, then environment
// overrides, in increasing precedence.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return finish(merge(merge(Defaults(), global), project))
}

// LoadFile reads a single settings file over the defaults, then applies
// environment overrides. A missing file is an error.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return finish(merge(Defaults(), s))
}

func finish(s *Settings) (*Settings, error) {
	ResolveEnvVars(s)
	if err := ApplyEnvOverrides(s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Ellipsis != "" {
		result.Ellipsis = project.Ellipsis
	}
	if project.Pad != nil {
		result.Pad = project.Pad
	}
	if project.Strict != nil {
		result.Strict = project.Strict
	}
	if project.Width != 0 {
		result.Width = project.Width
	}
	if project.Workers != 0 {
		result.Workers = project.Workers
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.Theme != "" {
		result.Theme = project.Theme
	}

	return &result
}

// Validate rejects values no command can honor.
func (s *Settings) Validate() error {
	if s.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", s.Width)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", s.Workers)
	}
	switch strings.ToLower(s.Theme) {
	case "", ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("unknown theme %q", s.Theme)
	}
	return nil
}

// ApplyEnvOverrides sets fields from PI_TEXT_* variables. Unset or empty
// variables leave the field alone.
func ApplyEnvOverrides(s *Settings) error {
	if v := os.Getenv("PI_TEXT_ELLIPSIS"); v != "" {
		s.Ellipsis = v
	}
	if v := os.Getenv("PI_TEXT_LOG_LEVEL"); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv("PI_TEXT_THEME"); v != "" {
		s.Theme = v
	}
	for name, dst := range map[string]*int{
		"PI_TEXT_WIDTH":   &s.Width,
		"PI_TEXT_WORKERS": &s.Workers,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		*dst = n
	}
	for name, dst := range map[string]**bool{
		"PI_TEXT_PAD":    &s.Pad,
		"PI_TEXT_STRICT": &s.Strict,
	} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		*dst = &b
	}
	return nil
}
