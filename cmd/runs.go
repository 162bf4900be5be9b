package cmd

import (
	"context"
	"fmt"
	"io"

	"fixresx/core/workspace"
	"fixresx/feature/fixresx"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	runsBase   string
	runsLimit  int
	runsFormat string
)

// runsCmd lists recorded runs.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs (requires database.enabled)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if runsFormat != "text" && runsFormat != "yaml" {
			return fmt.Errorf("unknown format %q", runsFormat)
		}

		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		history, err := openHistory(ctx, cfg)
		if err != nil {
			return err
		}
		if history == nil {
			return fixresx.ErrHistoryDisabled
		}

		runs, err := history.List(ctx, runsBase, runsLimit)
		if err != nil {
			return err
		}
		return printRuns(cmd.OutOrStdout(), runs, runsFormat)
	},
}

func init() {
	runsCmd.Flags().StringVar(&runsBase, "base", "", "Only list runs of this form")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs (0 for all)")
	runsCmd.Flags().StringVar(&runsFormat, "format", "text", "Output format: text or yaml")
	RootCmd.AddCommand(runsCmd)
}

func printRuns(out io.Writer, runs []fixresx.RunRecord, format string) error {
	if format == "yaml" {
		return yaml.NewEncoder(out).Encode(runs)
	}

	for _, r := range runs {
		status := "installed"
		switch {
		case r.InstallError != "":
			status = "install failed: " + r.InstallError
		case r.DryRun:
			status = "dry run"
		}
		fmt.Fprintf(out, "%s  %s  %s  replaced=%d skipped=%d unchanged=%d designer_only=%d resx_only=%d  %s\n",
			r.StartedAt.Format(workspace.TimestampFormat), r.ID, r.Base,
			r.Replaced, r.Skipped, r.Unchanged, r.DesignerOnly, r.ResxOnly, status)
	}
	return nil
}
