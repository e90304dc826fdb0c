// Package transcriptcache provides a local SQLite cache of fetched
// transcripts keyed by video ID and requested language.
//
// The cache lets repeated invocations for the same video be answered without
// a network call. It is disabled by default; enable it in config.toml:
//
//	[cache]
//	enabled = true
//	path = "~/.cache/ytfetch/transcripts.db"
//
// Mutations take a file lock next to the database so concurrent one-shot
// invocations serialize their writes. CLI commands for inspection and
// management:
//
//	ytfetch cache list               # List cached transcripts
//	ytfetch cache remove <video-id>  # Remove entries for a video
//	ytfetch cache clear              # Remove all entries
package transcriptcache
