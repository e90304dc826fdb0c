// Package logging assembles the structured slog loggers used across ytfetch.
//
// It centralizes level and format plumbing and exposes attribute helpers so
// components emit fields with consistent keys. Output defaults to stderr:
// standard output is reserved for the result envelope that callers parse.
package logging
