// Package config defines the jfmt configuration: the persisted settings
// read from configuration files and the run options set on the command
// line. These are plain data types; loading and merging live in
// internal/configloader.
package config

import (
	"fmt"

	"github.com/yaklabco/jfmt/pkg/style"
)

// Config is the root configuration structure.
type Config struct {
	// Style names the formatting preset.
	Style string `yaml:"style,omitempty" toml:"style,omitempty"`

	// ReflowJavadoc rewraps documentation comments. Nil keeps the default.
	ReflowJavadoc *bool `yaml:"reflow_javadoc,omitempty" toml:"reflow_javadoc,omitempty"`

	// ReorderModifiers sorts modifier keywords. Nil keeps the default.
	ReorderModifiers *bool `yaml:"reorder_modifiers,omitempty" toml:"reorder_modifiers,omitempty"`

	// IndentWidth overrides the preset's indent unit when non-zero.
	IndentWidth int `yaml:"indent_width,omitempty" toml:"indent_width,omitempty"`

	// MaxWidth overrides the preset's line width when non-zero.
	MaxWidth int `yaml:"max_width,omitempty" toml:"max_width,omitempty"`

	// Ignore contains glob patterns for paths to skip.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Jobs is the number of files formatted concurrently; 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs,omitempty" toml:"jobs,omitempty"`

	// Command line options, never persisted.

	// Mode selects what happens to formatted files.
	Mode Mode `yaml:"-" toml:"-"`

	// Format selects the report format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"-" toml:"-"`
}

// NewConfig returns a Config holding the defaults.
func NewConfig() *Config {
	on := true
	reorder := true
	return &Config{
		Style:            string(style.Default),
		ReflowJavadoc:    &on,
		ReorderModifiers: &reorder,
		Mode:             ModePrint,
		Format:           FormatText,
		Color:            "auto",
	}
}

// ToStyle converts the formatting settings into validated style options.
func (c *Config) ToStyle() (style.Options, error) {
	name := style.Default
	if c.Style != "" {
		name = style.Name(c.Style)
	}

	var opts []style.Option
	if c.ReflowJavadoc != nil {
		opts = append(opts, style.WithReflowJavadoc(*c.ReflowJavadoc))
	}
	if c.ReorderModifiers != nil {
		opts = append(opts, style.WithReorderModifiers(*c.ReorderModifiers))
	}
	if c.IndentWidth != 0 {
		opts = append(opts, style.WithIndentWidth(c.IndentWidth))
	}
	if c.MaxWidth != 0 {
		opts = append(opts, style.WithMaxWidth(c.MaxWidth))
	}

	so, err := style.New(name, opts...)
	if err != nil {
		return style.Options{}, fmt.Errorf("style options: %w", err)
	}
	return so, nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	if c.ReflowJavadoc != nil {
		v := *c.ReflowJavadoc
		clone.ReflowJavadoc = &v
	}
	if c.ReorderModifiers != nil {
		v := *c.ReorderModifiers
		clone.ReorderModifiers = &v
	}
	if c.Ignore != nil {
		clone.Ignore = append([]string(nil), c.Ignore...)
	}
	return &clone
}

// Bool returns a pointer to v, for the optional settings.
func Bool(v bool) *bool {
	return &v
}
