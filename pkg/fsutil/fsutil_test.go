package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jfmt/pkg/fsutil"
)

func writeFile(t *testing.T, dir, name, content string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), mode))
	require.NoError(t, os.Chmod(path, mode))
	return path
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "A.java", "class A {}\n", 0o640)

	content, info, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "class A {}\n", string(content))
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(len(content)), info.Size)
	assert.NotZero(t, info.Hash)
}

func TestReadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	_, _, err := fsutil.ReadFile(ctx, filepath.Join(dir, "missing.java"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)

	_, _, err = fsutil.ReadFile(ctx, dir)
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = fsutil.ReadFile(cancelled, dir)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()
	path := writeFile(t, dir, "A.java", "class A {}\n", 0o644)

	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	modified, err := fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.False(t, modified)

	// Same size and restored mtime: only the hash can tell.
	require.NoError(t, os.WriteFile(path, []byte("class B {}\n"), 0o644))
	require.NoError(t, os.Chtimes(path, info.ModTime, info.ModTime))
	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)

	require.NoError(t, os.Remove(path))
	modified, err = fsutil.CheckModified(ctx, info)
	require.NoError(t, err)
	assert.True(t, modified)

	_, err = fsutil.CheckModified(ctx, nil)
	require.ErrorIs(t, err, fsutil.ErrNilFileInfo)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "A.java")
	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestReplaceFile_PreservesMode(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not preserved on windows")
	}

	dir := t.TempDir()
	ctx := context.Background()
	path := writeFile(t, dir, "A.java", "class A{}", 0o600)

	original, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)
	require.NoError(t, fsutil.ReplaceFile(ctx, info, original, []byte("class A {}\n"), fsutil.ReplaceOptions{}))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
	assert.NoFileExists(t, fsutil.BackupPath(path))
}

func TestReplaceFile_ConcurrentModification(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()
	path := writeFile(t, dir, "A.java", "class A{}", 0o644)

	original, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("class A { int edited; }"), 0o644))
	later := info.ModTime.Add(time.Second)
	require.NoError(t, os.Chtimes(path, later, later))

	err = fsutil.ReplaceFile(ctx, info, original, []byte("class A {}\n"), fsutil.ReplaceOptions{})
	require.ErrorIs(t, err, fsutil.ErrConcurrentModification)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class A { int edited; }", string(got))
}

func TestReplaceFile_Backup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()
	path := writeFile(t, dir, "A.java", "class A{}", 0o644)

	original, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)
	require.NoError(t, fsutil.ReplaceFile(ctx, info, original, []byte("class A {}\n"), fsutil.ReplaceOptions{Backup: true}))

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "class A{}", string(backup))

	// An existing backup is kept.
	written, err := fsutil.CreateBackup(ctx, path, []byte("newer"), 0o644)
	require.NoError(t, err)
	assert.False(t, written)
	backup, err = os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "class A{}", string(backup))
}
