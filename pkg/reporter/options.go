package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/jfmt/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer receives the report (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter receives per-file errors and the summary (typically os.Stderr).
	ErrorWriter io.Writer

	Format config.OutputFormat
	Mode   config.Mode

	// Color is "auto", "always" or "never".
	Color string

	// ShowSummary writes a one-line summary to ErrorWriter.
	ShowSummary bool

	// Compact disables JSON indentation.
	Compact bool

	// WorkingDir is the directory displayed paths are made relative to.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      config.FormatText,
		Mode:        config.ModePrint,
		Color:       "auto",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Writer == nil {
		o.Writer = def.Writer
	}
	if o.ErrorWriter == nil {
		o.ErrorWriter = def.ErrorWriter
	}
	if o.Format == "" {
		o.Format = def.Format
	}
	if o.Mode == "" {
		o.Mode = def.Mode
	}
	if o.Color == "" {
		o.Color = def.Color
	}
	return o
}
