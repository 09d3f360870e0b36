package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yaklabco/jfmt/internal/logging"
)

// Discover returns the sorted, deduplicated absolute paths of the Java
// files named by opts. Directories are walked recursively, skipping hidden,
// vendored and excluded entries. A file named explicitly must be Java
// source; it is still subject to the exclude patterns.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if !info.IsDir() {
			if !isJava(abs) {
				return nil, fmt.Errorf("%w: %s", ErrNotJava, input)
			}
			if !matchAny(opts.ExcludeGlobs, relPath(workDir, abs)) {
				add(abs)
			}
			continue
		}

		found, err := walkDirectory(ctx, abs, workDir, opts, map[string]bool{})
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	sort.Strings(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return abs, nil
}

// relPath returns path relative to workDir with forward slashes, or the
// slash form of path itself when it lies elsewhere.
func relPath(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// walkDirectory collects Java files under root. visited holds the real
// paths of walked directories so symlink cycles end.
func walkDirectory(ctx context.Context, root, workDir string, opts Options, visited map[string]bool) ([]string, error) {
	if real, err := filepath.EvalSymlinks(root); err == nil {
		if visited[real] {
			return nil, nil
		}
		visited[real] = true
	}

	logger := logging.FromContext(ctx)
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				logger.Warn("skipping unreadable path", logging.FieldPath, path)
				return nil
			}
			return walkErr
		}

		rel := relPath(workDir, path)
		name := entry.Name()

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") || matchAny(opts.ExcludeGlobs, rel) {
				return filepath.SkipDir
			}
			if !opts.IncludeVendored && isVendored(relPath(root, path)+"/") {
				logger.Debug("skipping vendored directory", logging.FieldPath, rel)
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") || matchAny(opts.ExcludeGlobs, rel) {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				// Broken symlink.
				return nil //nolint:nilerr // skipped on purpose
			}
			if info.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				sub, err := walkDirectory(ctx, path, workDir, opts, visited)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if !isJava(name) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}
	return files, nil
}
