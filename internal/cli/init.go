package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/jfmt/internal/logging"
	"github.com/yaklabco/jfmt/pkg/config"
	"github.com/yaklabco/jfmt/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	toml   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new jfmt configuration file",
		Long: `Create a new .jfmt.yml configuration file in the current directory holding
the default settings, each with a short explanation.

An existing file is only replaced with --force, or after confirmation when
run from a terminal.

Examples:
  jfmt init                      Create .jfmt.yml
  jfmt init --toml               Create .jfmt.toml instead
  jfmt init --output custom.yml  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.toml, "toml", false, "Write TOML instead of YAML")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .jfmt.yml or .jfmt.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), "info")

	templateFormat := config.TemplateYAML
	outputPath := flags.output
	if flags.toml {
		templateFormat = config.TemplateTOML
	}
	if outputPath == "" {
		outputPath = ".jfmt.yml"
		if flags.toml {
			outputPath = ".jfmt.toml"
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		in := cmd.InOrStdin()
		if !isTerminal(in) {
			return usageErrorf("file %q already exists; use --force to overwrite", outputPath)
		}
		ok, err := confirm(in, cmd.ErrOrStderr(), fmt.Sprintf("%s exists. Overwrite?", outputPath))
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("left existing file unchanged", logging.FieldPath, outputPath)
			return nil
		}
	}

	content, err := config.GenerateTemplate(templateFormat)
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'jfmt styles' to see the available styles")

	return nil
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// confirm asks a yes/no question; anything but "y" or "yes" is no.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
