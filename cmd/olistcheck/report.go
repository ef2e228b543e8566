package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/message"

	"olistcheck/internal/config"
	"olistcheck/internal/dataset"
	"olistcheck/internal/preflight"
	"olistcheck/internal/samples"
)

type reportRenderer struct {
	out      io.Writer
	colorize bool
	printer  *message.Printer
}

func newReportRenderer(out io.Writer, cfg config.Report) *reportRenderer {
	return &reportRenderer{
		out:      out,
		colorize: colorEnabled(cfg.Color, out),
		printer:  message.NewPrinter(cfg.Tag()),
	}
}

// mib formats a mebibyte count with one decimal in the report locale.
func (r *reportRenderer) mib(v float64) string {
	return r.printer.Sprintf("%.1f", v)
}

// renderReport prints the check results. source names where the data
// directory came from and is shown only when it is not the ./data default.
func (r *reportRenderer) renderReport(report preflight.Report, source string) {
	printLines(r.out, renderSectionHeader("Olist data check", r.colorize)...)
	if source != "" {
		fmt.Fprintf(r.out, "Data directory: %s (from %s)\n", report.Dir, source)
	} else {
		fmt.Fprintf(r.out, "Data directory: %s\n", report.Dir)
	}

	fmt.Fprintln(r.out, renderFileTable(report, r.mib))

	if report.OK() {
		r.renderSuccess(report)
		return
	}
	r.renderFailure(report)
}

func (r *reportRenderer) renderSuccess(report preflight.Report) {
	present := len(report.Present())
	printLines(r.out,
		renderStatusLine("Result", statusOK, "all required files are present", r.colorize),
		renderStatusLine("Files", statusInfo, fmt.Sprintf("%d", present), r.colorize),
		renderStatusLine("Total size", statusInfo,
			fmt.Sprintf("%s MB (%s)", r.mib(report.TotalMiB()), humanize.IBytes(uint64(report.TotalBytes))), r.colorize),
	)
	if empty := report.EmptyFiles(); len(empty) > 0 {
		fmt.Fprintln(r.out, renderStatusLine("Empty files", statusWarn, strings.Join(empty, ", "), r.colorize))
	}
	fmt.Fprintf(r.out, "\nYou can run the notebook '%s' now.\n", dataset.Notebook)
}

func (r *reportRenderer) renderFailure(report preflight.Report) {
	fmt.Fprintln(r.out, renderStatusLine("Result", statusError,
		fmt.Sprintf("%d file(s) missing", len(report.Missing)), r.colorize))
	for _, name := range report.Missing {
		fmt.Fprintf(r.out, "%s  - %s\n", statusIndent, name)
	}
	printLines(r.out,
		"",
		"Next steps:",
		"  1. Visit "+dataset.SourceURL,
		"  2. Download the complete dataset",
		fmt.Sprintf("  3. Extract the CSV files into %s", report.Dir),
		"  4. Run olistcheck again to validate",
	)
}

func (r *reportRenderer) renderSamples(written []samples.Written) {
	fmt.Fprintln(r.out)
	for _, w := range written {
		fmt.Fprintln(r.out, renderStatusLine("Created", statusOK, w.Name, r.colorize))
	}
	fmt.Fprintln(r.out, "Sample files written. Use them as a reference for the expected layout.")
}
