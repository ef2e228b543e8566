// Package dataset holds the static catalog of Olist CSV files the analysis
// workflow expects, together with the header row each file must start with.
//
// The catalog is fixed at build time. Callers receive copies so the shared
// table cannot be altered at runtime.
package dataset
