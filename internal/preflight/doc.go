// Package preflight provides readiness checks for the Olist data directory.
//
// CheckDataFiles stats every catalog entry and builds a Report listing what is
// present (with sizes) and what is missing. CheckDirectoryAccess verifies a
// directory exists and is readable and writable; the sample generator runs it
// before writing placeholders.
package preflight
