package configloader

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/yaklabco/jfmt/pkg/config"
	"github.com/yaklabco/jfmt/pkg/style"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "max_width").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown fields).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownColors lists valid color settings.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColors = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

// Validate checks a configuration for errors and warnings. Zero values
// mean "unset" and are accepted.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Style != "" {
		if _, ok := style.Lookup(style.Name(cfg.Style)); !ok {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "style",
				Value:   cfg.Style,
				Message: fmt.Sprintf("unknown style %q; must be one of: %s", cfg.Style, strings.Join(style.Names(), ", ")),
			})
		}
	}

	if cfg.IndentWidth != 0 && (cfg.IndentWidth < style.MinIndentWidth || cfg.IndentWidth > style.MaxIndentWidth) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "indent_width",
			Value:   cfg.IndentWidth,
			Message: fmt.Sprintf("indent_width must be between %d and %d", style.MinIndentWidth, style.MaxIndentWidth),
		})
	}

	if cfg.MaxWidth != 0 && (cfg.MaxWidth < style.MinMaxWidth || cfg.MaxWidth > style.MaxMaxWidth) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "max_width",
			Value:   cfg.MaxWidth,
			Message: fmt.Sprintf("max_width must be between %d and %d", style.MinMaxWidth, style.MaxMaxWidth),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if cfg.Format != "" {
		if _, err := config.ParseOutputFormat(string(cfg.Format)); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "format",
				Value:   cfg.Format,
				Message: err.Error(),
			})
		}
	}

	if cfg.Mode != "" && !cfg.Mode.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "mode",
			Value:   cfg.Mode,
			Message: fmt.Sprintf("invalid mode %q", cfg.Mode),
		})
	}

	if cfg.Color != "" && !knownColors[cfg.Color] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	validateIgnorePatterns(cfg, result)

	return result
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// path.Match returns an error only for malformed patterns.
		if _, err := path.Match(pattern, ""); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
			continue
		}
		if filepath.IsAbs(pattern) {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: "absolute pattern only matches absolute paths",
			})
		}
	}
}
