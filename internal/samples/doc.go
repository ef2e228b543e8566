// Package samples writes header-only placeholder CSV files that show the
// layout each Olist dataset is expected to have.
//
// Placeholders are named with a prefix (sample_ by default) so they never
// satisfy the presence check for the real datasets.
package samples
