// Package logging assembles the slog loggers used by olistcheck.
//
// It owns the console and JSON handlers, level parsing, and output plumbing
// (stderr plus an optional log file). Every run gets a run_id so log lines
// from one invocation can be grouped. A no-op logger is provided for tests
// and for wiring code that cannot fail.
package logging
