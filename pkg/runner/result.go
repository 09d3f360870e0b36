package runner

// FileOutcome is the result of formatting one file.
type FileOutcome struct {
	Path string

	// Original and Formatted hold the file content before and after
	// formatting. Formatted is nil when the file failed or was skipped.
	Original  []byte
	Formatted []byte

	// Changed reports whether formatting altered the content.
	Changed bool

	// Written reports whether the file was rewritten on disk.
	Written bool

	// Skipped names why the file was left alone, e.g. "generated".
	Skipped string

	// Error is set when the file could not be read, parsed or written.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesFormatted  int
	FilesChanged    int
	FilesWritten    int
	FilesSkipped    int
	FilesErrored    int
}

// Result is the outcome of a run. Files are sorted by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasChanges reports whether any file needs or received formatting.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// Errors returns the per-file errors in path order.
func (r *Result) Errors() []error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, f := range r.Files {
		if f.Error != nil {
			errs = append(errs, f.Error)
		}
	}
	return errs
}

// Add records outcome and updates the statistics.
func (r *Result) Add(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
	case outcome.Skipped != "":
		r.Stats.FilesSkipped++
	default:
		r.Stats.FilesFormatted++
		if outcome.Changed {
			r.Stats.FilesChanged++
		}
		if outcome.Written {
			r.Stats.FilesWritten++
		}
	}
}
