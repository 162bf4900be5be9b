package cmd

import (
	"fmt"
	"io"
	"os"

	"fixresx/core/reconcile"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var indexFormat string

// indexEntry is one designer index entry in YAML output.
type indexEntry struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// indexCmd dumps the geometry index of a designer file.
var indexCmd = &cobra.Command{
	Use:   "index <designer-file>",
	Short: "Print the geometry values scraped from a Designer.cs file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if indexFormat != "text" && indexFormat != "yaml" {
			return fmt.Errorf("unknown format %q", indexFormat)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		index, err := reconcile.IndexDesigner(f)
		if err != nil {
			return fmt.Errorf("index %s: %w", args[0], err)
		}
		return printIndex(cmd.OutOrStdout(), index, indexFormat)
	},
}

func init() {
	indexCmd.Flags().StringVar(&indexFormat, "format", "text", "Output format: text or yaml")
	RootCmd.AddCommand(indexCmd)
}

// printIndex writes the index in designer order.
func printIndex(out io.Writer, index *reconcile.Index, format string) error {
	if format == "yaml" {
		entries := make([]indexEntry, 0, index.Len())
		for _, name := range index.Keys() {
			value, _ := index.Get(name)
			entries = append(entries, indexEntry{Name: name, Value: value})
		}
		return yaml.NewEncoder(out).Encode(entries)
	}

	for _, name := range index.Keys() {
		value, _ := index.Get(name)
		fmt.Fprintf(out, "%s = %s\n", name, value)
	}
	return nil
}
