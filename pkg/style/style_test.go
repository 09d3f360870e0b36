package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jfmt/pkg/style"
)

func TestNew_Presets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      style.Name
		placement style.OperatorPlacement
		indent    int
	}{
		{name: style.Default, placement: style.OperatorAfter, indent: 2},
		{name: style.OperatorLeading, placement: style.OperatorBefore, indent: 2},
		{name: style.AOSP, placement: style.OperatorAfter, indent: 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			t.Parallel()

			opts, err := style.New(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, opts.Style)
			assert.Equal(t, tt.placement, opts.Placement())
			assert.Equal(t, tt.indent, opts.IndentWidth)
			assert.Equal(t, 100, opts.MaxWidth)
			assert.True(t, opts.ReflowJavadoc)
			assert.True(t, opts.ReorderModifiers)
		})
	}
}

func TestNew_Overrides(t *testing.T) {
	t.Parallel()

	opts, err := style.New(style.OperatorLeading,
		style.WithReflowJavadoc(false),
		style.WithReorderModifiers(false),
		style.WithIndentWidth(3),
		style.WithMaxWidth(80),
	)
	require.NoError(t, err)

	assert.False(t, opts.ReflowJavadoc)
	assert.False(t, opts.ReorderModifiers)
	assert.Equal(t, 3, opts.IndentWidth)
	assert.Equal(t, 80, opts.MaxWidth)
	assert.Equal(t, style.OperatorBefore, opts.Placement())
}

func TestNew_UnknownStyle(t *testing.T) {
	t.Parallel()

	_, err := style.New("google-ish")
	require.ErrorIs(t, err, style.ErrUnknownStyle)
	assert.Contains(t, err.Error(), "operator-leading")
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    style.Options
		wantErr string
	}{
		{
			name: "valid",
			opts: style.Options{Style: style.Default, IndentWidth: 2, MaxWidth: 100},
		},
		{
			name:    "zero indent",
			opts:    style.Options{Style: style.Default, IndentWidth: 0, MaxWidth: 100},
			wantErr: "indent width",
		},
		{
			name:    "narrow",
			opts:    style.Options{Style: style.Default, IndentWidth: 2, MaxWidth: 10},
			wantErr: "max width",
		},
		{
			name:    "unknown style",
			opts:    style.Options{Style: "x", IndentWidth: 2, MaxWidth: 100},
			wantErr: "unknown style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPresets_ReturnsCopy(t *testing.T) {
	t.Parallel()

	list := style.Presets()
	require.Len(t, list, 3)
	list[0].IndentWidth = 99

	preset, ok := style.Lookup(style.Default)
	require.True(t, ok)
	assert.Equal(t, 2, preset.IndentWidth)
	assert.Equal(t, []string{"default", "operator-leading", "aosp"}, style.Names())
}
