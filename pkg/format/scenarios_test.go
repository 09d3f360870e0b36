package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jfmt/pkg/format"
	"github.com/yaklabco/jfmt/pkg/style"
)

//nolint:gochecknoglobals // Shared test table.
var newlines = []struct {
	name string
	nl   string
}{
	{name: "LF", nl: "\n"},
	{name: "CR", nl: "\r"},
	{name: "CRLF", nl: "\r\n"},
}

const longName = "stringWithVeryAbsurdlyLongNameToEnsureInAllCasesThatALineBreakWillBeInserted"

func join(nl string, lines ...string) string {
	return strings.Join(lines, nl)
}

func formatter(t *testing.T, name style.Name) *format.Formatter {
	t.Helper()

	opts, err := style.New(name)
	require.NoError(t, err)
	f, err := format.New(opts)
	require.NoError(t, err)
	return f
}

// formatAround reformats the units touched by the two bytes at the first
// occurrence of marker.
func formatAround(t *testing.T, f *format.Formatter, input, marker string) string {
	t.Helper()

	idx := strings.Index(input, marker)
	require.GreaterOrEqual(t, idx, 0, "marker %q not found", marker)
	out, err := f.FormatSource(input, []format.Range{{Start: idx, End: idx + 2}})
	require.NoError(t, err)
	return out
}

func builderChain(head string) []string {
	return []string{
		"class Foo {{",
		head,
		".addWithVeryLongMethodNameToTriggerLineBreak(1)",
		".addWithVeryLongMethodNameToTriggerLineBreak(2)",
		".addWithVeryLongMethodNameToTriggerLineBreak(3)",
		".build();",
		"}}",
		"",
	}
}

func TestFormatSource_DeclarationChainDefaultStyle(t *testing.T) {
	t.Parallel()

	for _, tc := range newlines {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			input := join(tc.nl, builderChain("ImmutableList<Integer> ids = ImmutableList.builder()")...)
			want := join(tc.nl,
				"class Foo {{",
				"    ImmutableList<Integer> ids =",
				"        ImmutableList.builder()",
				"            .addWithVeryLongMethodNameToTriggerLineBreak(1)",
				"            .addWithVeryLongMethodNameToTriggerLineBreak(2)",
				"            .addWithVeryLongMethodNameToTriggerLineBreak(3)",
				"            .build();",
				"}}",
				"")

			got := formatAround(t, formatter(t, style.Default), input, "addWithVeryLongMethodNameToTriggerLineBreak(2)")
			assert.Equal(t, want, got)
		})
	}
}

func TestFormatSource_DeclarationChainOperatorLeading(t *testing.T) {
	t.Parallel()

	for _, tc := range newlines {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			input := join(tc.nl, builderChain("ImmutableList<Integer> ids = ImmutableList.builder()")...)
			want := join(tc.nl,
				"class Foo {{",
				"    ImmutableList<Integer> ids",
				"        = ImmutableList.builder()",
				"            .addWithVeryLongMethodNameToTriggerLineBreak(1)",
				"            .addWithVeryLongMethodNameToTriggerLineBreak(2)",
				"            .addWithVeryLongMethodNameToTriggerLineBreak(3)",
				"            .build();",
				"}}",
				"")

			got := formatAround(t, formatter(t, style.OperatorLeading), input, "addWithVeryLongMethodNameToTriggerLineBreak(2)")
			assert.Equal(t, want, got)
		})
	}
}

func TestFormatSource_SeparateAssignmentOperatorLeading(t *testing.T) {
	t.Parallel()

	for _, tc := range newlines {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lines := builderChain("ids = ImmutableList.builder()")
			lines = append(lines[:1], append([]string{"ImmutableList<Integer> ids;"}, lines[1:]...)...)
			input := join(tc.nl, lines...)
			want := join(tc.nl,
				"class Foo {{",
				"ImmutableList<Integer> ids;",
				"    ids",
				"        = ImmutableList.builder()",
				"            .addWithVeryLongMethodNameToTriggerLineBreak(1)",
				"            .addWithVeryLongMethodNameToTriggerLineBreak(2)",
				"            .addWithVeryLongMethodNameToTriggerLineBreak(3)",
				"            .build();",
				"}}",
				"")

			got := formatAround(t, formatter(t, style.OperatorLeading), input, "addWithVeryLongMethodNameToTriggerLineBreak(2)")
			assert.Equal(t, want, got)
		})
	}
}

func TestFormatSource_CompoundAssignmentOperatorLeading(t *testing.T) {
	t.Parallel()

	as := strings.Repeat("a", 80)
	for _, tc := range newlines {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			input := join(tc.nl,
				"class Foo {{",
				"String "+longName+" = \"\";",
				longName+" += \""+as+"\";",
				"}}",
				"")
			want := join(tc.nl,
				"class Foo {{",
				"String "+longName+" = \"\";",
				"    "+longName,
				"        += \""+as+"\";",
				"}}",
				"")

			got := formatAround(t, formatter(t, style.OperatorLeading), input, "+=")
			assert.Equal(t, want, got)
		})
	}
}

func TestFormatSource_MultipleDeclaratorsOperatorLeading(t *testing.T) {
	t.Parallel()

	as, bs, cs := strings.Repeat("a", 70), strings.Repeat("b", 70), strings.Repeat("c", 70)
	for _, tc := range newlines {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			input := join(tc.nl,
				"class Foo {{",
				"String "+longName+"1 = \""+as+"\","+
					longName+"2 = \""+bs+"\","+
					longName+"3 = \""+cs+"\";",
				"}}",
				"")
			want := join(tc.nl,
				"class Foo {{",
				"    String",
				"        "+longName+"1",
				"        = \""+as+"\",",
				"        "+longName+"2",
				"        = \""+bs+"\",",
				"        "+longName+"3",
				"        = \""+cs+"\";",
				"}}",
				"")

			got := formatAround(t, formatter(t, style.OperatorLeading), input, "2")
			assert.Equal(t, want, got)
		})
	}
}
