package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jfmt/pkg/config"
	"github.com/yaklabco/jfmt/pkg/style"
)

func TestNewConfig_ToStyleMatchesDefaults(t *testing.T) {
	t.Parallel()

	opts, err := config.NewConfig().ToStyle()
	require.NoError(t, err)
	assert.Equal(t, style.DefaultOptions(), opts)
}

func TestToStyle_Overrides(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Style:            "aosp",
		ReflowJavadoc:    config.Bool(false),
		ReorderModifiers: config.Bool(false),
		MaxWidth:         120,
	}
	opts, err := cfg.ToStyle()
	require.NoError(t, err)
	assert.Equal(t, style.AOSP, opts.Style)
	assert.Equal(t, 4, opts.IndentWidth)
	assert.Equal(t, 120, opts.MaxWidth)
	assert.False(t, opts.ReflowJavadoc)
	assert.False(t, opts.ReorderModifiers)
}

func TestToStyle_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.Config
	}{
		{name: "unknown style", cfg: config.Config{Style: "k&r"}},
		{name: "width too small", cfg: config.Config{MaxWidth: 10}},
		{name: "indent too large", cfg: config.Config{IndentWidth: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.cfg.ToStyle()
			require.Error(t, err)
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()

	orig := config.NewConfig()
	orig.Ignore = []string{"build/**"}

	clone := orig.Clone()
	*clone.ReflowJavadoc = false
	clone.Ignore[0] = "changed"

	assert.True(t, *orig.ReflowJavadoc)
	assert.Equal(t, "build/**", orig.Ignore[0])
	assert.Nil(t, (*config.Config)(nil).Clone())
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Style:         "operator-leading",
		ReflowJavadoc: config.Bool(false),
		MaxWidth:      120,
		Ignore:        []string{"gen/**"},
		Mode:          config.ModeCheck,
	}
	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "check", "run options are not persisted")

	back, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "operator-leading", back.Style)
	assert.Equal(t, 120, back.MaxWidth)
	require.NotNil(t, back.ReflowJavadoc)
	assert.False(t, *back.ReflowJavadoc)
	assert.Nil(t, back.ReorderModifiers)
}

func TestFromYAML_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("style: aosp\nline_length: 80\n"))
	require.Error(t, err)
}

func TestFromTOML(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromTOML([]byte("style = \"aosp\"\nmax_width = 110\nignore = [\"a/**\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, "aosp", cfg.Style)
	assert.Equal(t, 110, cfg.MaxWidth)
	assert.Equal(t, []string{"a/**"}, cfg.Ignore)

	_, err = config.FromTOML([]byte("colour = \"red\"\n"))
	require.Error(t, err)
}

func TestGenerateTemplate_Parses(t *testing.T) {
	t.Parallel()

	yml, err := config.GenerateTemplate(config.TemplateYAML)
	require.NoError(t, err)
	fromYAML, err := config.FromYAML(yml)
	require.NoError(t, err)

	tml, err := config.GenerateTemplate(config.TemplateTOML)
	require.NoError(t, err)
	fromTOML, err := config.FromTOML(tml)
	require.NoError(t, err)

	for _, cfg := range []*config.Config{fromYAML, fromTOML} {
		opts, err := cfg.ToStyle()
		require.NoError(t, err)
		assert.Equal(t, style.DefaultOptions(), opts)
	}

	_, err = config.GenerateTemplate("ini")
	require.Error(t, err)
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()

	f, err := config.ParseOutputFormat("diff")
	require.NoError(t, err)
	assert.Equal(t, config.FormatDiff, f)

	_, err = config.ParseOutputFormat("sarif")
	require.Error(t, err)
	assert.True(t, config.ModeCheck.IsValid())
	assert.False(t, config.Mode("dry").IsValid())
}
