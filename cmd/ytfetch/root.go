package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "ytfetch <video-id> [language]",
		Short: "Fetch a YouTube video transcript as JSON",
		Long: `Fetch the caption transcript of a YouTube video and print it as a single
line of JSON on standard output.

The result is an envelope an external caller can parse:

  {"success":true,"data":{"videoId":"...","transcript":[...],"language":"en"}}
  {"success":false,"error":"..."}

The transcript is requested in the given language (default "en"); when that
fails for any reason the first available caption track is fetched instead.
The exit code is 0 on success and 1 on failure.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, ctx, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newLanguagesCommand(ctx))
	rootCmd.AddCommand(newCacheCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
