// Package runner formats many Java files concurrently: it discovers files
// under the requested paths, formats each one with a shared formatter and
// collects the outcomes in path order.
package runner

import "github.com/yaklabco/jfmt/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are files or directories to process. Empty means ".".
	Paths []string

	// WorkingDir resolves relative Paths and ignore patterns. Empty means
	// the process working directory.
	WorkingDir string

	// ExcludeGlobs are patterns of files or directories to skip. A pattern
	// without a slash matches the base name at any depth; "**" matches any
	// number of path segments.
	ExcludeGlobs []string

	// FollowSymlinks traverses directory symlinks.
	FollowSymlinks bool

	// IncludeVendored keeps paths that look vendored (vendor/, node_modules/
	// and similar) during directory walks.
	IncludeVendored bool

	// IncludeGenerated formats files marked as generated.
	IncludeGenerated bool

	// Jobs bounds the number of files formatted at once. 0 means GOMAXPROCS.
	Jobs int

	// Mode decides whether changed files are rewritten.
	Mode config.Mode

	// Backup keeps a sidecar copy of every rewritten file.
	Backup bool
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
