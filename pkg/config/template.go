package config

import (
	"fmt"
	"strings"

	"github.com/yaklabco/jfmt/pkg/style"
)

// TemplateFormat selects the syntax of a generated configuration file.
type TemplateFormat string

const (
	TemplateYAML TemplateFormat = "yaml"
	TemplateTOML TemplateFormat = "toml"
)

// GenerateTemplate returns a commented configuration file holding the
// defaults.
func GenerateTemplate(format TemplateFormat) ([]byte, error) {
	def := style.DefaultOptions()
	presets := strings.Join(style.Names(), ", ")

	var b strings.Builder
	switch format {
	case TemplateYAML:
		fmt.Fprintf(&b, "# jfmt configuration\n\n")
		fmt.Fprintf(&b, "# Formatting preset: %s\n", presets)
		fmt.Fprintf(&b, "style: %s\n\n", def.Style)
		fmt.Fprintf(&b, "# Rewrap javadoc and /// comments to the line width\n")
		fmt.Fprintf(&b, "reflow_javadoc: %t\n\n", def.ReflowJavadoc)
		fmt.Fprintf(&b, "# Sort modifier keywords into the canonical order\n")
		fmt.Fprintf(&b, "reorder_modifiers: %t\n\n", def.ReorderModifiers)
		fmt.Fprintf(&b, "# Overrides of the preset (0 keeps the preset value)\n")
		fmt.Fprintf(&b, "# indent_width: %d\n", def.IndentWidth)
		fmt.Fprintf(&b, "# max_width: %d\n\n", def.MaxWidth)
		fmt.Fprintf(&b, "# Number of files formatted in parallel (0 = auto)\n")
		fmt.Fprintf(&b, "# jobs: 0\n\n")
		fmt.Fprintf(&b, "# Glob patterns of paths to skip\n")
		fmt.Fprintf(&b, "# ignore:\n#   - \"build/**\"\n#   - \"**/generated/**\"\n")
	case TemplateTOML:
		fmt.Fprintf(&b, "# jfmt configuration\n\n")
		fmt.Fprintf(&b, "# Formatting preset: %s\n", presets)
		fmt.Fprintf(&b, "style = %q\n\n", def.Style)
		fmt.Fprintf(&b, "# Rewrap javadoc and /// comments to the line width\n")
		fmt.Fprintf(&b, "reflow_javadoc = %t\n\n", def.ReflowJavadoc)
		fmt.Fprintf(&b, "# Sort modifier keywords into the canonical order\n")
		fmt.Fprintf(&b, "reorder_modifiers = %t\n\n", def.ReorderModifiers)
		fmt.Fprintf(&b, "# Overrides of the preset (0 keeps the preset value)\n")
		fmt.Fprintf(&b, "# indent_width = %d\n", def.IndentWidth)
		fmt.Fprintf(&b, "# max_width = %d\n\n", def.MaxWidth)
		fmt.Fprintf(&b, "# Number of files formatted in parallel (0 = auto)\n")
		fmt.Fprintf(&b, "# jobs = 0\n\n")
		fmt.Fprintf(&b, "# Glob patterns of paths to skip\n")
		fmt.Fprintf(&b, "# ignore = [\"build/**\", \"**/generated/**\"]\n")
	default:
		return nil, fmt.Errorf("unknown template format %q", format)
	}
	return []byte(b.String()), nil
}
