// Package main hosts the ytfetch CLI entrypoint and command graph.
//
// The root command is the fetch itself: it prints a single line of JSON on
// stdout and reserves stderr for diagnostics, so the binary can run as a
// subprocess of another program. Inspection subcommands (languages, cache,
// config) are for humans and render tables on a terminal.
//
// Keep this package lean: retrieval, caching, and envelope shaping live in
// the internal packages; commands only parse flags and wire them together.
package main
