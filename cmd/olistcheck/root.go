package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	opts := &checkOptions{}

	ctx := newCommandContext(&configFlag, &opts.dataDir)

	rootCmd := &cobra.Command{
		Use:           "olistcheck",
		Short:         "Check that the Olist datasets are in place",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withLogClose(func() error { return runCheck(cmd, ctx, opts) })
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&opts.dataDir, "data-dir", "d", "", "Directory holding the dataset CSV files (default ./data)")
	rootCmd.Flags().BoolVar(&opts.samples, "samples", false, "Write sample files without prompting when datasets are missing")
	rootCmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "Never prompt; leave the data directory untouched on failure")
	rootCmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the report as JSON")
	rootCmd.MarkFlagsMutuallyExclusive("samples", "no-prompt")

	rootCmd.AddCommand(newSamplesCommand(ctx))
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
