package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"olistcheck/internal/dataset"
	"olistcheck/internal/logging"
	"olistcheck/internal/preflight"
	"olistcheck/internal/samples"
)

var errMissingFiles = errors.New("required dataset files are missing")

type checkOptions struct {
	dataDir    string
	samples    bool
	noPrompt   bool
	jsonOutput bool
}

type checkJSON struct {
	OK            bool              `json:"ok"`
	DataDirSource string            `json:"data_dir_source,omitempty"`
	Report        preflight.Report  `json:"report"`
	Samples       []samples.Written `json:"samples,omitempty"`
}

func runCheck(cmd *cobra.Command, ctx *commandContext, opts *checkOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger := logging.NewComponentLogger(ctx.logger(), "check")
	catalog := dataset.Required()

	report, err := preflight.CheckDataFiles(cfg.Paths.DataDir, catalog)
	if err != nil {
		return err
	}
	for _, f := range report.Files {
		logger.Debug("dataset checked",
			slog.String(logging.FieldFile, f.Name),
			slog.Bool("present", f.Present),
			slog.Int64("size_bytes", f.SizeBytes),
		)
	}
	if empty := report.EmptyFiles(); len(empty) > 0 {
		logger.Warn("empty dataset files", slog.Any("files", empty))
	}
	logger.Info("data check finished",
		slog.String(logging.FieldPath, report.Dir),
		slog.String("data_dir_source", cfg.Paths.DataDirSource),
		slog.Bool("ok", report.OK()),
		slog.Int("missing", len(report.Missing)),
	)

	out := cmd.OutOrStdout()
	renderer := newReportRenderer(out, cfg.Report)
	if !opts.jsonOutput {
		renderer.renderReport(report, cfg.Paths.DataDirSource)
	}

	var written []samples.Written
	if !report.OK() {
		generate := opts.samples
		if !generate && !opts.noPrompt && !opts.jsonOutput && cfg.Samples.Prompt {
			generate, err = confirm(cmd.Context(), cmd.InOrStdin(), out, "\nCreate sample files? (y/n): ")
			if err != nil {
				return err
			}
		}
		if generate {
			gen := samples.NewGenerator(cfg.Paths.DataDir, cfg.Samples.Prefix, ctx.logger())
			written, err = gen.Generate(cmd.Context(), catalog)
			if err != nil {
				return err
			}
			if !opts.jsonOutput {
				renderer.renderSamples(written)
			}
		}
	}

	if opts.jsonOutput {
		if err := writeJSON(cmd, checkJSON{
			OK:            report.OK(),
			DataDirSource: cfg.Paths.DataDirSource,
			Report:        report,
			Samples:       written,
		}); err != nil {
			return err
		}
	}
	if !report.OK() {
		return errMissingFiles
	}
	return nil
}
