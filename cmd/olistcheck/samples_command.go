package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"olistcheck/internal/dataset"
	"olistcheck/internal/samples"
)

func newSamplesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "Write header-only sample files into the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withLogClose(func() error {
				gen := samples.NewGenerator(cfg.Paths.DataDir, cfg.Samples.Prefix, ctx.logger())
				written, err := gen.Generate(cmd.Context(), dataset.Required())
				if err != nil {
					return fmt.Errorf("generate samples: %w", err)
				}
				if jsonOutput {
					return writeJSON(cmd, written)
				}
				newReportRenderer(cmd.OutOrStdout(), cfg.Report).renderSamples(written)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print written files as JSON")
	return cmd
}
