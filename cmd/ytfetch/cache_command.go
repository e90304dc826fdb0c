package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ytfetch/internal/transcriptcache"
)

func newCacheCommand(cctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the transcript cache",
		Long: `Inspect and manage the local transcript cache.

The cache stores fetched transcripts keyed by video ID and requested
language, so repeated invocations can be answered without a network call.
It only fills when cache.enabled is set in the configuration.

Commands:
  list     - List cached transcripts
  remove   - Remove entries for a video (optionally one language)
  clear    - Remove all entries
  path     - Print the database location`,
	}

	cacheCmd.AddCommand(newCacheListCommand(cctx))
	cacheCmd.AddCommand(newCacheRemoveCommand(cctx))
	cacheCmd.AddCommand(newCacheClearCommand(cctx))
	cacheCmd.AddCommand(newCachePathCommand(cctx))

	return cacheCmd
}

func openCacheStore(cctx *commandContext) (*transcriptcache.Store, error) {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	store, err := transcriptcache.Open(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("open transcript cache: %w", err)
	}
	return store, nil
}

func newCacheListCommand(cctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached transcripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCacheStore(cctx)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if entries == nil {
				entries = []transcriptcache.Entry{}
			}

			return emitView(cmd, jsonOut, entries, func() string {
				return renderCacheTable(entries)
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON even on a terminal")
	return cmd
}

func newCacheRemoveCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <video-id> [language]",
		Short: "Remove cached transcripts for a video",
		Long: `Remove all cached transcripts for a video, or only the entry for one
requested language.

Example:
  ytfetch cache remove dQw4w9WgXcQ       # all languages
  ytfetch cache remove dQw4w9WgXcQ de    # only the "de" request`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCacheStore(cctx)
			if err != nil {
				return err
			}
			defer store.Close()

			language := ""
			if len(args) > 1 {
				language = strings.TrimSpace(args[1])
			}
			removed, err := store.Remove(cmd.Context(), args[0], language)
			if err != nil {
				return err
			}
			if removed == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No cached transcripts for %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached transcript(s)\n", removed)
			return nil
		},
	}
}

func newCacheClearCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached transcripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCacheStore(cctx)
			if err != nil {
				return err
			}
			defer store.Close()

			count, err := store.Count(cmd.Context())
			if err != nil {
				return err
			}
			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d cached transcript(s)\n", count)
			return nil
		},
	}
}

func newCachePathCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache database location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Cache.Path)
			return nil
		},
	}
}
