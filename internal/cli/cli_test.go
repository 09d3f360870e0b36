package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jfmt/internal/cli"
	"github.com/yaklabco/jfmt/pkg/config"
)

var testInfo = cli.BuildInfo{
	Version: "test-version",
	Commit:  "test-commit",
	Date:    "test-date",
}

// execute runs the root command with args and stdin, returning what it
// wrote to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func goldenCase(t *testing.T, name string) (string, string) {
	t.Helper()

	dir := filepath.Join("..", "..", "pkg", "format", "testdata", "default")
	input, err := os.ReadFile(filepath.Join(dir, name+".input.java"))
	require.NoError(t, err)
	output, err := os.ReadFile(filepath.Join(dir, name+".output.java"))
	require.NoError(t, err)
	return string(input), string(output)
}

func writeJava(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)
	assert.Equal(t, "jfmt", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"format", "styles", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestFormatCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	formatCmd, _, err := cmd.Find([]string{"format"})
	require.NoError(t, err)

	for _, name := range []string{
		"replace", "check", "diff", "format", "style",
		"skip-javadoc-formatting", "skip-sorting-modifiers",
		"offset", "length", "lines", "jobs", "backup", "ignore",
	} {
		assert.NotNil(t, formatCmd.Flags().Lookup(name), "missing flag --%s", name)
	}
	assert.Equal(t, "i", formatCmd.Flags().Lookup("replace").Shorthand)
	assert.Equal(t, "n", formatCmd.Flags().Lookup("check").Shorthand)
}

func TestFormat_Stdin(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "class A{}", "format", "-")
	require.NoError(t, err)
	assert.Equal(t, "class A {}\n", stdout)
	assert.Empty(t, stderr, "print mode writes no summary")
}

func TestFormat_StdinDiff(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "class A{}\n", "format", "--diff", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--- a/<stdin>")
	assert.Contains(t, stdout, "-class A{}")
	assert.Contains(t, stdout, "+class A {}")
}

func TestFormat_StdinJSON(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "class A{}\n", "format", "--format", "json", "-")
	require.NoError(t, err)

	var out struct {
		Version string `json:"version"`
		Files   []struct {
			Path    string `json:"path"`
			Changed bool   `json:"changed"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "1", out.Version)
	require.Len(t, out.Files, 1)
	assert.Equal(t, "<stdin>", out.Files[0].Path)
	assert.True(t, out.Files[0].Changed)
}

func TestFormat_StdinLines(t *testing.T) {
	t.Parallel()

	src := "class A {\n  int x=1;\n  int y = 2;\n}\n"

	tests := []struct {
		name  string
		lines string
		want  string
	}{
		{
			name:  "formats the selected line",
			lines: "2:2",
			want:  "class A {\n  int x = 1;\n  int y = 2;\n}\n",
		},
		{
			name:  "leaves other lines alone",
			lines: "3",
			want:  src,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, src, "format", "--lines", tt.lines, "-")
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestFormat_SyntaxError(t *testing.T) {
	t.Parallel()

	_, stderr, err := execute(t, "class {", "format", "-")
	require.Error(t, err)
	assert.True(t, cli.IsSilent(err), "the reporter already printed the failure")
	assert.Equal(t, cli.ExitSyntaxError, cli.ExitCode(err))
	assert.Contains(t, stderr, "<stdin>:1:")
}

func TestFormat_Check(t *testing.T) {
	t.Parallel()

	input, _ := goldenCase(t, "basic")
	dir := t.TempDir()
	path := writeJava(t, dir, "Basic.java", input)

	stdout, stderr, err := execute(t, "", "format", "--check", path)
	require.ErrorIs(t, err, cli.ErrFilesChanged)
	assert.Equal(t, cli.ExitFilesChanged, cli.ExitCode(err))
	assert.Contains(t, stdout, "Basic.java")
	assert.Contains(t, stderr, "1 need formatting")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, input, string(content), "--check never writes")
}

func TestFormat_ReplaceDirectory(t *testing.T) {
	t.Parallel()

	input, output := goldenCase(t, "basic")
	dir := t.TempDir()
	changed := writeJava(t, dir, "src/Basic.java", input)
	clean := writeJava(t, dir, "src/Clean.java", output)

	_, stderr, err := execute(t, "", "format", "-i", "--backup", dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, "2 files checked, 1 reformatted")

	content, err := os.ReadFile(changed)
	require.NoError(t, err)
	assert.Equal(t, output, string(content))

	backup, err := os.ReadFile(changed + ".jfmt.bak")
	require.NoError(t, err)
	assert.Equal(t, input, string(backup))

	_, err = os.Stat(clean + ".jfmt.bak")
	assert.True(t, os.IsNotExist(err), "unchanged files get no backup")

	_, _, err = execute(t, "", "format", "--check", dir)
	assert.NoError(t, err, "second run finds nothing to do")
}

func TestFormat_ReplaceRange(t *testing.T) {
	t.Parallel()

	src := "class A {\n  int x=1;\n  int y=2;\n}\n"
	path := writeJava(t, t.TempDir(), "A.java", src)

	_, _, err := execute(t, "", "format", "-i", "--offset", "14", "--length", "1", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class A {\n  int x = 1;\n  int y=2;\n}\n", string(content))
}

func TestFormat_UsageErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeJava(t, dir, "A.java", "class A {}\n")
	b := writeJava(t, dir, "B.java", "class B {}\n")

	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "replace and check", args: []string{"format", "-i", "-n", a}},
		{name: "replace stdin", stdin: "class A {}", args: []string{"format", "-i", "-"}},
		{name: "unknown flag", args: []string{"format", "--no-such-flag", a}},
		{name: "unknown format", args: []string{"format", "--format", "xml", a}},
		{name: "diff and format", args: []string{"format", "--diff", "--format", "json", a}},
		{name: "offset without length", args: []string{"format", "--offset", "0", a}},
		{name: "ranges on two files", args: []string{"format", "--lines", "1:1", a, b}},
		{name: "bad lines", stdin: "class A {}", args: []string{"format", "--lines", "3:1", "-"}},
		{name: "range past end", stdin: "class A {}", args: []string{"format", "--offset", "5", "--length", "100", "-"}},
		{name: "not java", args: []string{"format", writeJava(t, dir, "notes.txt", "hello")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err), "error: %v", err)
		})
	}
}

func TestFormat_MissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "format", filepath.Join(t.TempDir(), "Missing.java"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}

func TestFormat_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "jfmt.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("style: nope\n"), 0o644))

	_, _, err := execute(t, "class A {}", "--config", cfgPath, "format", "-")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestFormat_StyleFromConfig(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "jfmt.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("style: aosp\n"), 0o644))

	stdout, _, err := execute(t, "class A{int x;}", "--config", cfgPath, "format", "-")
	require.NoError(t, err)
	assert.Equal(t, "class A {\n    int x;\n}\n", stdout)

	stdout, _, err = execute(t, "class A{int x;}", "--config", cfgPath, "format", "--indent-width", "3", "-")
	require.NoError(t, err)
	assert.Equal(t, "class A {\n   int x;\n}\n", stdout, "flags override the config file")
}

func TestStylesCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "--color", "never", "styles")
	require.NoError(t, err)
	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, "operator-leading")
	assert.Contains(t, stdout, "aosp")

	stdout, _, err = execute(t, "", "styles", "--names")
	require.NoError(t, err)
	assert.Equal(t, "default\noperator-leading\naosp\n", stdout)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "jfmt")
	assert.Contains(t, stdout, "test-version")
	assert.Contains(t, stdout, "test-commit")
}

func TestInitCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, ".jfmt.yml")

	_, _, err := execute(t, "", "init", "--output", yamlPath)
	require.NoError(t, err)
	content, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	cfg, err := config.FromYAML(content)
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Style)

	_, _, err = execute(t, "", "init", "--output", yamlPath)
	require.Error(t, err, "existing file is kept without --force")
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))

	require.NoError(t, os.WriteFile(yamlPath, []byte("style: aosp\n"), 0o644))
	_, _, err = execute(t, "", "init", "--force", "--output", yamlPath)
	require.NoError(t, err)
	content, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "style: default")

	tomlPath := filepath.Join(dir, ".jfmt.toml")
	_, _, err = execute(t, "", "init", "--toml", "--output", tomlPath)
	require.NoError(t, err)
	content, err = os.ReadFile(tomlPath)
	require.NoError(t, err)
	_, err = config.FromTOML(content)
	require.NoError(t, err)
}
