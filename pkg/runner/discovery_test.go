package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T, names ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("class X {}\n"), 0o644))
	}
	return root
}

func relAll(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := makeTree(t,
		"src/main/java/App.java",
		"src/main/java/Util.java",
		"src/main/resources/app.properties",
		"extra/Gen.java",
		".idea/Hidden.java",
		"node_modules/pkg/Lib.java",
		"README.md",
	)

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "defaults",
			opts: Options{},
			want: []string{"extra/Gen.java", "src/main/java/App.java", "src/main/java/Util.java"},
		},
		{
			name: "exclude directory",
			opts: Options{ExcludeGlobs: []string{"extra/**"}},
			want: []string{"src/main/java/App.java", "src/main/java/Util.java"},
		},
		{
			name: "exclude by base name",
			opts: Options{ExcludeGlobs: []string{"Util.java"}},
			want: []string{"extra/Gen.java", "src/main/java/App.java"},
		},
		{
			name: "include vendored",
			opts: Options{ExcludeGlobs: []string{"extra"}, IncludeVendored: true},
			want: []string{"node_modules/pkg/Lib.java", "src/main/java/App.java", "src/main/java/Util.java"},
		},
		{
			name: "explicit paths deduplicated",
			opts: Options{Paths: []string{"src/main/java", "src/main/java/App.java"}},
			want: []string{"src/main/java/App.java", "src/main/java/Util.java"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := tt.opts
			opts.WorkingDir = root
			files, err := Discover(context.Background(), opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, relAll(t, root, files))
		})
	}
}

func TestDiscover_ExplicitNonJava(t *testing.T) {
	t.Parallel()

	root := makeTree(t, "README.md")
	_, err := Discover(context.Background(), Options{WorkingDir: root, Paths: []string{"README.md"}})
	require.ErrorIs(t, err, ErrNotJava)

	_, err = Discover(context.Background(), Options{WorkingDir: root, Paths: []string{"Missing.java"}})
	require.Error(t, err)
}

func TestDiscover_SymlinkCycle(t *testing.T) {
	t.Parallel()

	root := makeTree(t, "a/A.java")
	if err := os.Symlink(root, filepath.Join(root, "a", "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	files, err := Discover(context.Background(), Options{WorkingDir: root, FollowSymlinks: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a/A.java"}, relAll(t, root, files))
}

func TestMatchGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"build", "build", true},
		{"build", "module/build", true},
		{"*.gen.java", "src/A.gen.java", true},
		{"build/**", "build/x/A.java", true},
		{"build/**", "build", true},
		{"build/**", "src/build/A.java", false},
		{"**/generated/**", "a/b/generated/c/D.java", true},
		{"**/generated/**", "generated", true},
		{"src/*/A.java", "src/x/A.java", true},
		{"src/*/A.java", "src/x/y/A.java", false},
		{"./src/**", "src/A.java", true},
		{"src/**/Test*.java", "src/a/b/TestA.java", true},
		{"src/**/Test*.java", "src/A.java", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchGlob(tt.pattern, tt.path), "%s ~ %s", tt.pattern, tt.path)
	}
}
