package fix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jfmt/pkg/fix"
)

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edits   []fix.TextEdit
		wantErr string
	}{
		{name: "no edits"},
		{
			name: "adjacent edits",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: "hello"},
				{StartOffset: 5, EndOffset: 10, NewText: "world"},
			},
		},
		{
			name:    "negative start",
			edits:   []fix.TextEdit{{StartOffset: -1, EndOffset: 5}},
			wantErr: "start offset is negative",
		},
		{
			name:    "end before start",
			edits:   []fix.TextEdit{{StartOffset: 5, EndOffset: 3}},
			wantErr: "end offset is before start offset",
		},
		{
			name:    "end past content",
			edits:   []fix.TextEdit{{StartOffset: 5, EndOffset: 11}},
			wantErr: "exceeds content length 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.ValidateEdits(tt.edits, 10)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			var verr *fix.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPrepareEdits_SortsCopy(t *testing.T) {
	t.Parallel()

	edits := []fix.TextEdit{
		{StartOffset: 8, EndOffset: 9, NewText: "c"},
		{StartOffset: 0, EndOffset: 2, NewText: "a"},
		{StartOffset: 4, EndOffset: 4, NewText: "b"},
	}

	got, err := fix.PrepareEdits(edits, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 8}, []int{got[0].StartOffset, got[1].StartOffset, got[2].StartOffset})
	assert.Equal(t, 8, edits[0].StartOffset, "input must not be reordered")
}

func TestPrepareEdits_Conflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edits []fix.TextEdit
	}{
		{
			name: "overlap",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5},
				{StartOffset: 3, EndOffset: 7},
			},
		},
		{
			name: "nested",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 9},
				{StartOffset: 2, EndOffset: 3},
			},
		},
		{
			name: "two insertions at one offset",
			edits: []fix.TextEdit{
				{StartOffset: 4, EndOffset: 4, NewText: "x"},
				{StartOffset: 4, EndOffset: 4, NewText: "y"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := fix.PrepareEdits(tt.edits, 10)
			var cerr *fix.ConflictError
			require.True(t, errors.As(err, &cerr), "got %v", err)
		})
	}
}

func TestPrepareEdits_Empty(t *testing.T) {
	t.Parallel()

	got, err := fix.PrepareEdits(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
