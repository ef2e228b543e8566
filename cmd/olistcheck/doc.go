// Package main hosts the olistcheck CLI entrypoint and command graph.
//
// Running olistcheck with no arguments checks ./data for the Olist CSV files,
// prints a report, and offers to write header-only sample files when any are
// missing. It exits 0 when every file is present and 1 otherwise.
//
// Subcommands cover the supporting chores: writing samples unconditionally,
// listing the dataset catalog, and scaffolding or validating configuration.
package main
