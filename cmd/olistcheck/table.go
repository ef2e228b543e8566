package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"olistcheck/internal/dataset"
	"olistcheck/internal/preflight"
)

const (
	colFile    = "File"
	colStatus  = "Status"
	colSize    = "Size (MiB)"
	colBytes   = "Bytes"
	colColumns = "Columns"
)

func newTableWriter() table.Writer {
	style := table.StyleRounded
	style.Format.Footer = text.FormatDefault
	tw := table.NewWriter()
	tw.SetStyle(style)
	return tw
}

// fileStatusCell describes one checked file for the Status column. Plain
// "not found" is the common case and stays implied.
func fileStatusCell(f preflight.FileStatus) string {
	switch {
	case f.Present && f.Empty():
		return "empty"
	case f.Present:
		return "present"
	case f.Detail != "" && f.Detail != "not found":
		return "missing (" + f.Detail + ")"
	default:
		return "missing"
	}
}

// renderFileTable lays out a data check, one row per catalog file, with a
// footer carrying the present count and the total size. mib formats sizes in
// the report locale.
func renderFileTable(report preflight.Report, mib func(float64) string) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{colFile, colStatus, colSize, colBytes})
	for _, f := range report.Files {
		size, bytes := "-", "-"
		if f.Present {
			size = mib(f.SizeMiB())
			bytes = humanize.Comma(f.SizeBytes)
		}
		tw.AppendRow(table.Row{f.Name, fileStatusCell(f), size, bytes})
	}
	tw.AppendFooter(table.Row{
		"Total",
		fmt.Sprintf("%d/%d present", len(report.Present()), len(report.Files)),
		mib(report.TotalMiB()),
		humanize.Comma(report.TotalBytes),
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: colSize, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Name: colBytes, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	return tw.Render()
}

// renderCatalogTable lists the required files with their column counts.
func renderCatalogTable(catalog []dataset.Descriptor) string {
	tw := newTableWriter()
	tw.AppendHeader(table.Row{colFile, colColumns})
	for _, d := range catalog {
		tw.AppendRow(table.Row{d.Filename, strconv.Itoa(len(d.Columns()))})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: colColumns, Align: text.AlignRight},
	})
	return tw.Render()
}
