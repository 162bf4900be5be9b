package cmd

import (
	"fmt"
	"os"

	"fixresx/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where the config file and .env are looked up.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "fixresx",
	Short: "Resx geometry reconciler",
	Long: `FixResx restores the control geometry of localized WinForms resources.

Every Size, Point, Location, Padding and splitter entry of a localized .resx
file is rewritten with the value set by the unlocalized Designer.cs, and the
names found on only one side are reported.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps reads best on a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding fixresx.yaml and .env")
}
