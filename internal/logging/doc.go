// Package logging assembles structured slog loggers and formatting helpers used
// across multitube.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes standard field keys so store, persistence, and player
// code tag log lines with group and channel identifiers the same way. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
//
// Prefer these constructors over hand-rolled slog setup so new components emit
// data with the same shape as the rest of the system.
package logging
