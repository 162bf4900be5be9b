package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"fixresx/feature/fixresx"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const basePrompt = "Enter a single root pathname: "

var (
	fixLenient bool
	fixDryRun  bool
	fixSummary string
)

// fixCmd reconciles one form.
var fixCmd = &cobra.Command{
	Use:   "fix [base]",
	Short: "Rewrite the geometry entries of one localized resx",
	Long: `Reconciles <template_dir>/<base>.resx against <canonical_dir>/<base>.Designer.cs
and installs the result in <working_dir>, together with the template designer.

The base name is a path relative to each directory, without extension. When it
is omitted it is read from standard input.

Examples:
  # Reconcile one form
  fixresx fix Forms/MainForm

  # Keep unexpected properties instead of failing
  fixresx fix Forms/MainForm --lenient

  # Write <base>.resx.new only and print the report as YAML
  fixresx fix Forms/MainForm --dry-run --summary yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().BoolVar(&fixLenient, "lenient", false, "Pass unexpected properties through instead of failing")
	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false, "Leave the rewritten resx next to the working copy without installing it")
	fixCmd.Flags().StringVar(&fixSummary, "summary", "text", "Summary format: text or yaml")

	RootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	if fixSummary != "text" && fixSummary != "yaml" {
		return fmt.Errorf("unknown summary format %q", fixSummary)
	}

	var base string
	if len(args) == 1 {
		base = args[0]
	} else {
		var err error
		if base, err = promptBase(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return err
		}
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
	svc, err := newService(ctx, cfg, l)
	if err != nil {
		return err
	}

	report, err := svc.Run(ctx, base, fixresx.RunOptions{Lenient: fixLenient, DryRun: fixDryRun})
	if err != nil {
		return fmt.Errorf("fix %s: %w", base, err)
	}

	return printFixReport(cmd.OutOrStdout(), report, fixSummary)
}

// promptBase asks for the base name on in.
func promptBase(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, basePrompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read base name: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// printFixReport writes the run log lines and the outcome message, or the
// whole report as YAML.
func printFixReport(out io.Writer, report *fixresx.RunReport, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	}

	for _, line := range report.Log {
		fmt.Fprintln(out, line)
	}

	switch {
	case report.InstallError != "":
		fmt.Fprintf(out, "Exception when replacing files: %s\n", report.InstallError)
		fmt.Fprintln(out, "You may want to check for a partial update")
	case report.DryRun:
		fmt.Fprintln(out, "Dry run, nothing installed")
	default:
		fmt.Fprintln(out, "New files written")
	}
	return nil
}
