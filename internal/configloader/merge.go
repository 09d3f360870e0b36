package configloader

import "github.com/yaklabco/jfmt/pkg/config"

// merge combines two configurations, with override taking precedence over base.
//   - Scalars: override wins when non-zero
//   - Optional booleans: override wins when set, so false can be layered
//   - Slices: override replaces base entirely if non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.Style != "" {
		result.Style = override.Style
	}
	if override.IndentWidth != 0 {
		result.IndentWidth = override.IndentWidth
	}
	if override.MaxWidth != 0 {
		result.MaxWidth = override.MaxWidth
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.ReflowJavadoc != nil {
		result.ReflowJavadoc = config.Bool(*override.ReflowJavadoc)
	}
	if override.ReorderModifiers != nil {
		result.ReorderModifiers = config.Bool(*override.ReorderModifiers)
	}
	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}

	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}
	result := configs[0]
	for _, c := range configs[1:] {
		result = merge(result, c)
	}
	return result
}
