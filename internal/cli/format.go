package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jfmt/internal/configloader"
	"github.com/yaklabco/jfmt/internal/logging"
	"github.com/yaklabco/jfmt/pkg/config"
	"github.com/yaklabco/jfmt/pkg/format"
	"github.com/yaklabco/jfmt/pkg/fsutil"
	"github.com/yaklabco/jfmt/pkg/reporter"
	"github.com/yaklabco/jfmt/pkg/runner"
)

// stdinName is the display name of source read from standard input.
const stdinName = "<stdin>"

type formatFlags struct {
	replace bool
	check   bool
	diff    bool
	format  string
	compact bool
	quiet   bool

	style         string
	skipJavadoc   bool
	skipModifiers bool
	indentWidth   int
	maxWidth      int

	offsets []int
	lengths []int
	lines   []string

	jobs             int
	backup           bool
	ignore           []string
	followSymlinks   bool
	includeVendored  bool
	includeGenerated bool
}

func newFormatCommand() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:     "format [paths...|-]",
		Aliases: []string{"fmt"},
		Short:   "Format Java source files",
		Long:    formatLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
	}

	addFormatFlags(cmd, flags)

	return cmd
}

const formatLongDescription = `Format Java source files.

Without --replace the formatted source is written to standard output. With
--replace files are rewritten in place; with --check only the names of
files that would change are printed and the exit status is 1.

Directories are searched recursively for .java files, skipping hidden,
vendored and generated sources. Source is read from standard input when the
only path is "-", or when no path is given and standard input is not a
terminal.

--offset/--length and --lines restrict formatting to the declarations and
statements they touch. They apply to a single file or to standard input.

Examples:
  jfmt format Main.java             # Print the formatted file
  jfmt format -i src/               # Rewrite every file under src/
  jfmt format --check .             # List files that need formatting
  jfmt format --diff src/           # Show the changes as unified diffs
  jfmt format --lines 10:20 -i A.java
  cat A.java | jfmt format --style aosp -`

func addFormatFlags(cmd *cobra.Command, flags *formatFlags) {
	fs := cmd.Flags()
	fs.BoolVarP(&flags.replace, "replace", "i", false, "rewrite files in place")
	fs.BoolVarP(&flags.check, "check", "n", false, "list files that would change and exit 1 if any")
	fs.BoolVar(&flags.diff, "diff", false, "show changes as unified diffs (same as --format diff)")
	fs.StringVar(&flags.format, "format", string(config.FormatText), "output format: text, diff, json")
	fs.BoolVar(&flags.compact, "compact", false, "write JSON without indentation")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "omit the summary line")

	fs.StringVar(&flags.style, "style", "", "formatting style: default, operator-leading, aosp")
	fs.BoolVar(&flags.skipJavadoc, "skip-javadoc-formatting", false, "keep documentation comments as written")
	fs.BoolVar(&flags.skipModifiers, "skip-sorting-modifiers", false, "keep modifier order as written")
	fs.IntVar(&flags.indentWidth, "indent-width", 0, "columns per indentation level (0 = style default)")
	fs.IntVar(&flags.maxWidth, "max-width", 0, "maximum line width (0 = style default)")

	fs.IntSliceVar(&flags.offsets, "offset", nil, "start byte offset of a range to format (repeatable)")
	fs.IntSliceVar(&flags.lengths, "length", nil, "byte length of the range started by --offset (repeatable)")
	fs.StringArrayVar(&flags.lines, "lines", nil, "line range start:end to format, 1-based inclusive (repeatable)")

	fs.IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	fs.BoolVar(&flags.backup, "backup", false, "keep a .jfmt.bak copy of rewritten files")
	fs.StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	fs.BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symbolic links while walking directories")
	fs.BoolVar(&flags.includeVendored, "include-vendored", false, "format vendored directories too")
	fs.BoolVar(&flags.includeGenerated, "include-generated", false, "format generated sources too")
}

// cliConfig builds the configuration layer set by command line flags.
func (f *formatFlags) cliConfig(cmd *cobra.Command) (*config.Config, error) {
	if f.replace && f.check {
		return nil, usageErrorf("--replace and --check are mutually exclusive")
	}
	if f.diff && cmd.Flags().Changed("format") {
		return nil, usageErrorf("--diff and --format are mutually exclusive")
	}

	cfg := &config.Config{}

	switch {
	case f.replace:
		cfg.Mode = config.ModeReplace
	case f.check:
		cfg.Mode = config.ModeCheck
	default:
		cfg.Mode = config.ModePrint
	}

	outputFormat, err := config.ParseOutputFormat(f.format)
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	if f.diff {
		outputFormat = config.FormatDiff
	}
	cfg.Format = outputFormat

	if color, err := cmd.Flags().GetString("color"); err == nil {
		cfg.Color = color
	}

	cfg.Style = f.style
	if f.skipJavadoc {
		cfg.ReflowJavadoc = config.Bool(false)
	}
	if f.skipModifiers {
		cfg.ReorderModifiers = config.Bool(false)
	}
	cfg.IndentWidth = f.indentWidth
	cfg.MaxWidth = f.maxWidth
	cfg.Jobs = f.jobs
	cfg.Ignore = f.ignore

	return cfg, nil
}

func (f *formatFlags) hasRanges() bool {
	return len(f.offsets) > 0 || len(f.lengths) > 0 || len(f.lines) > 0
}

func runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := loadConfig(ctx, cmd, workDir, cliCfg)
	if err != nil {
		return err
	}

	opts, err := cfg.ToStyle()
	if err != nil {
		return &configloader.ValidationError{Field: "style", Value: cfg.Style, Message: err.Error()}
	}
	formatter, err := format.New(opts)
	if err != nil {
		return err
	}

	fromStdin := (len(args) == 1 && args[0] == "-") || (len(args) == 0 && !isTerminal(cmd.InOrStdin()))
	if fromStdin && cfg.Mode == config.ModeReplace {
		return usageErrorf("--replace cannot be used with standard input")
	}
	if flags.hasRanges() && !fromStdin && len(args) != 1 {
		return usageErrorf("--offset, --length and --lines need exactly one file")
	}

	var result *runner.Result
	switch {
	case fromStdin:
		result, err = formatStdin(ctx, cmd.InOrStdin(), formatter, flags)
	case flags.hasRanges():
		result, err = formatFileRanges(ctx, args[0], formatter, flags, cfg.Mode)
	default:
		result, err = runner.New(formatter).Run(ctx, runner.Options{
			Paths:            args,
			WorkingDir:       workDir,
			ExcludeGlobs:     cfg.Ignore,
			FollowSymlinks:   flags.followSymlinks,
			IncludeVendored:  flags.includeVendored,
			IncludeGenerated: flags.includeGenerated,
			Jobs:             cfg.Jobs,
			Mode:             cfg.Mode,
			Backup:           flags.backup,
		})
	}
	if err != nil {
		return err
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      cfg.Format,
		Mode:        cfg.Mode,
		Color:       cfg.Color,
		ShowSummary: !flags.quiet && !fromStdin && cfg.Mode != config.ModePrint,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if errs := result.Errors(); len(errs) > 0 {
		return &ReportedError{Err: errors.Join(errs...)}
	}
	if cfg.Mode == config.ModeCheck && result.HasChanges() {
		return ErrFilesChanged
	}
	return nil
}

// loadConfig layers the configuration files, the environment and cli.
func loadConfig(ctx context.Context, cmd *cobra.Command, workDir string, cli *config.Config) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cli,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPaths, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration resolved",
		logging.FieldStyle, cfg.Style,
		logging.FieldMode, cfg.Mode,
		logging.FieldJobs, cfg.Jobs,
	)
	return cfg, nil
}

func formatStdin(ctx context.Context, in io.Reader, formatter *format.Formatter, flags *formatFlags) (*runner.Result, error) {
	src, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read standard input: %w", err)
	}
	ranges, err := flags.ranges(src)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug("formatting standard input",
		logging.FieldBytes, len(src), logging.FieldRanges, len(ranges))

	result := &runner.Result{}
	result.Stats.FilesDiscovered = 1
	result.Add(formatSource(stdinName, src, formatter, ranges))
	return result, nil
}

func formatFileRanges(
	ctx context.Context,
	path string,
	formatter *format.Formatter,
	flags *formatFlags,
	mode config.Mode,
) (*runner.Result, error) {
	ctx = logging.WithFields(ctx, logging.FieldPath, path)
	logger := logging.FromContext(ctx)

	src, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	ranges, err := flags.ranges(src)
	if err != nil {
		return nil, err
	}
	logger.Debug("formatting ranges", logging.FieldRanges, len(ranges))

	outcome := formatSource(path, src, formatter, ranges)
	if mode == config.ModeReplace && outcome.Error == nil && outcome.Changed {
		err := fsutil.ReplaceFile(ctx, info, src, outcome.Formatted, fsutil.ReplaceOptions{Backup: flags.backup})
		if err != nil {
			if errors.Is(err, fsutil.ErrConcurrentModification) {
				logger.Warn("file changed while formatting; left untouched")
			}
			outcome.Error = err
		} else {
			outcome.Written = true
		}
	}

	result := &runner.Result{}
	result.Stats.FilesDiscovered = 1
	result.Add(outcome)
	return result, nil
}

// ranges returns the byte ranges selected by --offset/--length and --lines.
func (f *formatFlags) ranges(src []byte) ([]format.Range, error) {
	byOffset, err := byteRanges(f.offsets, f.lengths)
	if err != nil {
		return nil, err
	}
	byLine, err := lineRanges(src, f.lines)
	if err != nil {
		return nil, err
	}
	return append(byOffset, byLine...), nil
}

// formatSource formats src, or only the units touched by ranges.
func formatSource(name string, src []byte, formatter *format.Formatter, ranges []format.Range) runner.FileOutcome {
	outcome := runner.FileOutcome{Path: name, Original: src}

	formatted, err := formatter.FormatSource(string(src), ranges)
	if err != nil {
		outcome.Error = &runner.FileError{Path: name, Err: err}
		return outcome
	}
	outcome.Formatted = []byte(formatted)
	outcome.Changed = !bytes.Equal(src, outcome.Formatted)
	return outcome
}
