package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jfmt/internal/ui/pretty"
	"github.com/yaklabco/jfmt/pkg/style"
)

func newStylesCommand() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the formatting styles",
		Long: `List the built-in formatting styles with their indentation, line width
and operator placement. The style selected by the current configuration is
marked with "*".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if namesOnly {
				for _, name := range style.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			return runStyles(cmd)
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "print style names only")

	return cmd
}

func runStyles(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	cfg, err := loadConfig(ctx, cmd, workDir, nil)
	if err != nil {
		return err
	}

	color, err := cmd.Flags().GetString("color")
	if err != nil {
		color = "auto"
	}
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(color, out))

	if _, err := io.WriteString(out, styles.FormatPresetTable(style.Presets(), style.Name(cfg.Style))); err != nil {
		return fmt.Errorf("write styles: %w", err)
	}
	return nil
}
