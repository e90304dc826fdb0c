package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ytfetch/internal/youtube"
)

type trackView struct {
	LanguageCode  string `json:"languageCode"`
	Name          string `json:"name"`
	AutoGenerated bool   `json:"autoGenerated"`
	Translatable  bool   `json:"translatable"`
}

func newLanguagesCommand(cctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "languages <video-id>",
		Short: "List the caption tracks available for a video",
		Long: `List the caption tracks a video advertises, in the order the player
returns them. Output is a table on a terminal and JSON otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := newTranscriptClient(cfg)
			if err != nil {
				return err
			}

			videoID := strings.TrimSpace(args[0])
			if id := youtube.ExtractVideoID(videoID); id != "" {
				videoID = id
			}

			tracks, err := client.ListTracks(cmd.Context(), videoID)
			if err != nil {
				return fmt.Errorf("list caption tracks: %w", err)
			}

			views := make([]trackView, 0, len(tracks))
			for _, track := range tracks {
				views = append(views, trackView{
					LanguageCode:  track.LanguageCode,
					Name:          track.Name,
					AutoGenerated: track.AutoGenerated(),
					Translatable:  track.Translatable,
				})
			}
			return emitView(cmd, jsonOut, views, func() string {
				return renderTrackTable(tracks)
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON even on a terminal")
	return cmd
}
