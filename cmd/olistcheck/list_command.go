package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"olistcheck/internal/dataset"
)

func newListCommand() *cobra.Command {
	var jsonOutput bool
	var showHeaders bool

	cmd := &cobra.Command{
		Use:         "list",
		Short:       "List the required dataset files",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := dataset.Required()
			if jsonOutput {
				return writeJSON(cmd, catalog)
			}
			out := cmd.OutOrStdout()
			if showHeaders {
				for _, d := range catalog {
					fmt.Fprintf(out, "%s\n  %s\n", d.Filename, d.Header)
				}
				return nil
			}
			fmt.Fprintln(out, renderCatalogTable(catalog))
			fmt.Fprintf(out, "Source: %s\n", dataset.SourceURL)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the catalog as JSON")
	cmd.Flags().BoolVar(&showHeaders, "headers", false, "Print each file's expected header row")
	return cmd
}
