package logging

// Field name constants for structured logging.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Formatting.
	FieldStyle  = "style"
	FieldRanges = "ranges"
	FieldMode   = "mode"
	FieldJobs   = "jobs"
	FieldBytes  = "bytes"
	FieldEdits  = "edits"

	// Statistics.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesFormatted  = "files_formatted"
	FieldFilesChanged    = "files_changed"
	FieldFilesFailed     = "files_failed"
	FieldDuration        = "duration"

	// Version.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
