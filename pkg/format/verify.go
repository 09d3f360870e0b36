package format

import (
	"github.com/kr/pretty"

	"github.com/yaklabco/jfmt/pkg/jast"
	"github.com/yaklabco/jfmt/pkg/parser/java"
)

// maxDiffLines bounds the fingerprint differences kept in an error.
const maxDiffLines = 20

// verify re-parses out and checks that it has the syntax of the original
// file.
func verify(orig *jast.File, out []byte) error {
	formatted, err := java.Parse(out)
	if err != nil {
		return &InternalConsistencyError{Message: "formatted output does not parse: " + err.Error()}
	}
	want := jast.FingerprintOf(orig)
	got := jast.FingerprintOf(formatted)
	if want.Equal(got) {
		return nil
	}
	diff := pretty.Diff(want, got)
	if len(diff) > maxDiffLines {
		diff = diff[:maxDiffLines]
	}
	return &InternalConsistencyError{Message: "formatting changed the syntax tree", Diff: diff}
}
