package main

import (
	"fmt"
	"strings"
	"testing"

	"olistcheck/internal/dataset"
	"olistcheck/internal/preflight"
)

func plainMiB(v float64) string { return fmt.Sprintf("%.1f", v) }

func TestRenderFileTableFooterTotals(t *testing.T) {
	report := preflight.Report{
		Dir: "/data",
		Files: []preflight.FileStatus{
			{Name: "a.csv", Present: true, SizeBytes: 3 * 1024 * 1024},
			{Name: "b.csv", Present: true, SizeBytes: 0},
			{Name: "c.csv", Detail: "not found"},
			{Name: "d.csv", Detail: "not a regular file"},
		},
		Missing:    []string{"c.csv", "d.csv"},
		TotalBytes: 3 * 1024 * 1024,
	}

	out := renderFileTable(report, plainMiB)

	for _, want := range []string{
		"present",
		"empty",
		"missing (not a regular file)",
		"Total",
		"2/4 present",
		"3.0",
		"3,145,728",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected table to contain %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "missing (not found)") {
		t.Fatalf("plain not-found rows should read just \"missing\"\n%s", out)
	}
}

func TestFileStatusCell(t *testing.T) {
	tests := []struct {
		name string
		file preflight.FileStatus
		want string
	}{
		{"present", preflight.FileStatus{Present: true, SizeBytes: 10}, "present"},
		{"empty", preflight.FileStatus{Present: true}, "empty"},
		{"not found", preflight.FileStatus{Detail: "not found"}, "missing"},
		{"directory", preflight.FileStatus{Detail: "not a regular file"}, "missing (not a regular file)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fileStatusCell(tt.file); got != tt.want {
				t.Fatalf("fileStatusCell = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCatalogTableColumnCounts(t *testing.T) {
	out := renderCatalogTable(dataset.Required())
	for _, d := range dataset.Required() {
		if !strings.Contains(out, d.Filename) {
			t.Fatalf("expected %s in catalog table\n%s", d.Filename, out)
		}
	}
	// olist_products_dataset.csv carries nine columns.
	line := ""
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "olist_products_dataset.csv") {
			line = l
		}
	}
	if !strings.Contains(line, " 9 ") {
		t.Fatalf("expected nine columns for products, got %q", line)
	}
}
