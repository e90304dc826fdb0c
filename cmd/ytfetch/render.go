package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"ytfetch/internal/transcriptcache"
	"ytfetch/internal/youtube"
)

// emitView writes an inspection result as indented JSON, or as the rendered
// table when stdout is a terminal and --json was not passed. The fetch
// envelope never goes through here; it has its own one-line writer.
func emitView(cmd *cobra.Command, jsonOut bool, v any, render func() string) error {
	if jsonOut || !stdoutIsTerminal() {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), render())
	return err
}

// renderTrackTable lists caption tracks in the order the player advertises
// them, which is the order the unrestricted fallback would try.
func renderTrackTable(tracks []youtube.CaptionTrack) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Code", "Name", "Kind", "Translatable"})
	for _, track := range tracks {
		kind := "manual"
		if track.AutoGenerated() {
			kind = "auto"
		}
		tw.AppendRow(table.Row{track.LanguageCode, track.Name, kind, yesNo(track.Translatable)})
	}
	return tw.Render()
}

const cacheStampLayout = "2006-01-02 15:04"

// renderCacheTable lists cache entries newest first, as List returns them.
func renderCacheTable(entries []transcriptcache.Entry) string {
	if len(entries) == 0 {
		return "Transcript cache: empty"
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Video", "Requested", "Track", "Segments", "Fetched"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	for _, entry := range entries {
		fetched := ""
		if !entry.FetchedAt.IsZero() {
			fetched = entry.FetchedAt.Local().Format(cacheStampLayout)
		}
		tw.AppendRow(table.Row{
			entry.VideoID,
			entry.RequestedLanguage,
			entry.TrackLanguage,
			strconv.Itoa(entry.SegmentCount),
			fetched,
		})
	}
	return tw.Render()
}
