package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jfmt/pkg/config"
	"github.com/yaklabco/jfmt/pkg/format"
	"github.com/yaklabco/jfmt/pkg/reporter"
	"github.com/yaklabco/jfmt/pkg/runner"
)

var workDir = filepath.FromSlash("/work")

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:      filepath.Join(workDir, "A.java"),
				Original:  []byte("class A{}\n"),
				Formatted: []byte("class A {}\n"),
				Changed:   true,
			},
			{
				Path:      filepath.Join(workDir, "B.java"),
				Original:  []byte("class B {}\n"),
				Formatted: []byte("class B {}\n"),
			},
			{
				Path:  filepath.Join(workDir, "C.java"),
				Error: &runner.FileError{Path: "C.java", Err: &format.SyntaxError{Line: 3, Column: 7, Message: "expected ;"}},
			},
		},
		Stats: runner.Stats{FilesDiscovered: 3, FilesFormatted: 2, FilesChanged: 1, FilesErrored: 1},
	}
}

func report(t *testing.T, opts reporter.Options) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	opts.Writer = &out
	opts.ErrorWriter = &errOut
	opts.Color = "never"
	opts.WorkingDir = workDir

	r, err := reporter.New(opts)
	require.NoError(t, err)
	require.NoError(t, r.Report(context.Background(), sampleResult()))
	return out.String(), errOut.String()
}

func TestTextReporter_Print(t *testing.T) {
	t.Parallel()

	out, errOut := report(t, reporter.Options{Format: config.FormatText, Mode: config.ModePrint})
	assert.Equal(t, "class A {}\nclass B {}\n", out)
	assert.Equal(t, "error: C.java:3:7: expected ;\n", errOut)
}

func TestTextReporter_CheckListsChangedFiles(t *testing.T) {
	t.Parallel()

	out, errOut := report(t, reporter.Options{Format: config.FormatText, Mode: config.ModeCheck, ShowSummary: true})
	assert.Equal(t, "A.java\n", out)
	assert.Contains(t, errOut, "error: C.java:3:7")
	assert.Contains(t, errOut, "3 files checked, 1 need formatting, 1 failed\n")
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{Format: config.FormatDiff, ShowSummary: true})
	want := "diff --git a/A.java b/A.java\n" +
		"--- a/A.java\n" +
		"+++ b/A.java\n" +
		"@@ -1,1 +1,1 @@\n" +
		"-class A{}\n" +
		"+class A {}\n" +
		"1 file changed, 1 insertion(+), 1 deletion(-)\n"
	assert.Equal(t, want, out)
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	out, errOut := report(t, reporter.Options{Format: config.FormatJSON})
	assert.Empty(t, errOut)

	var doc reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Files, 3)

	assert.Equal(t, "A.java", doc.Files[0].Path)
	assert.True(t, doc.Files[0].Changed)
	require.NotNil(t, doc.Files[0].Diff)
	assert.Equal(t, 1, doc.Files[0].Diff.Additions)

	assert.Nil(t, doc.Files[1].Diff)

	require.NotNil(t, doc.Files[2].Error)
	assert.Equal(t, 3, doc.Files[2].Error.Line)
	assert.Equal(t, 7, doc.Files[2].Error.Column)

	assert.Equal(t, 1, doc.Summary.FilesChanged)
	assert.Equal(t, 1, doc.Summary.FilesErrored)
}

func TestJSONReporter_NilResult(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := reporter.NewJSONReporter(reporter.Options{Writer: &out, Compact: true})
	require.NoError(t, r.Report(context.Background(), nil))
	assert.JSONEq(t, `{"version":"1","files":[],"summary":{"filesDiscovered":0,"filesFormatted":0,"filesChanged":0,"filesWritten":0,"filesSkipped":0,"filesErrored":0}}`, out.String())
}

func TestNew_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "sarif"})
	require.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextReporter_WriteError(t *testing.T) {
	t.Parallel()

	r := reporter.NewTextReporter(reporter.Options{Writer: failingWriter{}, ErrorWriter: &bytes.Buffer{}, Color: "never"})
	err := r.Report(context.Background(), &runner.Result{Files: []runner.FileOutcome{{Path: "A.java", Formatted: []byte("x")}}})
	require.Error(t, err)
}
