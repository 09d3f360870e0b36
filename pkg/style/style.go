// Package style holds the closed set of formatting presets and the options
// value passed to every formatting entry point.
//
// Presets are built once into a package-level table and handed out by
// value, so a caller can never mutate the registry.
package style

import (
	"errors"
	"fmt"
	"strings"
)

// Name identifies a preset.
type Name string

// Preset names.
const (
	Default         Name = "default"
	OperatorLeading Name = "operator-leading"
	AOSP            Name = "aosp"
)

// OperatorPlacement decides on which side of a line break an assignment or
// binary operator goes.
type OperatorPlacement uint8

const (
	// OperatorAfter keeps the operator at the end of the broken line.
	OperatorAfter OperatorPlacement = iota

	// OperatorBefore starts the continuation line with the operator.
	OperatorBefore
)

// String returns the placement name.
func (p OperatorPlacement) String() string {
	if p == OperatorBefore {
		return "before"
	}
	return "after"
}

// ContinuationUnits is the indentation, in indent units, of a continuation
// line relative to the line it continues.
const ContinuationUnits = 2

// Width limits.
const (
	MinIndentWidth = 1
	MaxIndentWidth = 8
	MinMaxWidth    = 40
	MaxMaxWidth    = 1000
)

// ErrUnknownStyle is returned for a preset name outside the registry.
var ErrUnknownStyle = errors.New("unknown style")

// Preset is a fixed bundle of layout rules.
type Preset struct {
	Name             Name
	Description      string
	Placement        OperatorPlacement
	IndentWidth      int
	MaxWidth         int
	ReflowJavadoc    bool
	ReorderModifiers bool
}

//nolint:gochecknoglobals // Read-only registry, built once.
var presets = []Preset{
	{
		Name:             Default,
		Description:      "two-space indent, operators end broken lines",
		Placement:        OperatorAfter,
		IndentWidth:      2,
		MaxWidth:         100,
		ReflowJavadoc:    true,
		ReorderModifiers: true,
	},
	{
		Name:             OperatorLeading,
		Description:      "two-space indent, operators start continuation lines",
		Placement:        OperatorBefore,
		IndentWidth:      2,
		MaxWidth:         100,
		ReflowJavadoc:    true,
		ReorderModifiers: true,
	},
	{
		Name:             AOSP,
		Description:      "four-space indent, operators end broken lines",
		Placement:        OperatorAfter,
		IndentWidth:      4,
		MaxWidth:         100,
		ReflowJavadoc:    true,
		ReorderModifiers: true,
	},
}

// Presets returns a copy of the registry in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Names returns the preset names in display order.
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = string(p.Name)
	}
	return names
}

// Lookup returns the preset with the given name.
func Lookup(name Name) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Options is the immutable configuration of one formatting run.
type Options struct {
	Style            Name
	ReflowJavadoc    bool
	ReorderModifiers bool
	IndentWidth      int
	MaxWidth         int
}

// Option adjusts Options built by New.
type Option func(*Options)

// WithReflowJavadoc turns documentation comment reflow on or off.
func WithReflowJavadoc(on bool) Option {
	return func(o *Options) { o.ReflowJavadoc = on }
}

// WithReorderModifiers turns modifier reordering on or off.
func WithReorderModifiers(on bool) Option {
	return func(o *Options) { o.ReorderModifiers = on }
}

// WithIndentWidth overrides the preset indent width.
func WithIndentWidth(width int) Option {
	return func(o *Options) { o.IndentWidth = width }
}

// WithMaxWidth overrides the preset maximum line width.
func WithMaxWidth(width int) Option {
	return func(o *Options) { o.MaxWidth = width }
}

// New builds validated options from a preset and overrides.
func New(name Name, opts ...Option) (Options, error) {
	preset, ok := Lookup(name)
	if !ok {
		return Options{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownStyle, name, strings.Join(Names(), ", "))
	}
	o := Options{
		Style:            preset.Name,
		ReflowJavadoc:    preset.ReflowJavadoc,
		ReorderModifiers: preset.ReorderModifiers,
		IndentWidth:      preset.IndentWidth,
		MaxWidth:         preset.MaxWidth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// DefaultOptions returns the options of the default preset.
func DefaultOptions() Options {
	o, err := New(Default)
	if err != nil {
		panic(err)
	}
	return o
}

// Validate checks the options for consistency.
func (o Options) Validate() error {
	if _, ok := Lookup(o.Style); !ok {
		return fmt.Errorf("%w %q (available: %s)", ErrUnknownStyle, o.Style, strings.Join(Names(), ", "))
	}
	if o.IndentWidth < MinIndentWidth || o.IndentWidth > MaxIndentWidth {
		return fmt.Errorf("indent width %d out of range [%d, %d]", o.IndentWidth, MinIndentWidth, MaxIndentWidth)
	}
	if o.MaxWidth < MinMaxWidth || o.MaxWidth > MaxMaxWidth {
		return fmt.Errorf("max width %d out of range [%d, %d]", o.MaxWidth, MinMaxWidth, MaxMaxWidth)
	}
	return nil
}

// Placement returns the operator placement rule of the selected preset.
func (o Options) Placement() OperatorPlacement {
	preset, _ := Lookup(o.Style)
	return preset.Placement
}
