package config

import "fmt"

// OutputFormat specifies how results are reported.
type OutputFormat string

const (
	// FormatText prints formatted source, or the names of changed files.
	FormatText OutputFormat = "text"
	// FormatDiff prints a unified diff per changed file.
	FormatDiff OutputFormat = "diff"
	// FormatJSON prints one machine-readable document for the run.
	FormatJSON OutputFormat = "json"
)

// Mode specifies what happens to formatted output.
type Mode string

const (
	// ModePrint writes formatted source to stdout.
	ModePrint Mode = "print"
	// ModeReplace rewrites changed files in place.
	ModeReplace Mode = "replace"
	// ModeCheck only reports files whose formatting would change.
	ModeCheck Mode = "check"
)

// OutputFormats lists the accepted output formats.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatText, FormatDiff, FormatJSON}
}

// ParseOutputFormat validates a format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for _, f := range OutputFormats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (available: text, diff, json)", s)
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModePrint, ModeReplace, ModeCheck:
		return true
	default:
		return false
	}
}
