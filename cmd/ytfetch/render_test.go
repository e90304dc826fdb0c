package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"ytfetch/internal/transcriptcache"
	"ytfetch/internal/youtube"
)

func TestRenderTrackTable(t *testing.T) {
	out := renderTrackTable([]youtube.CaptionTrack{
		{LanguageCode: "en", Name: "English (auto-generated)", Kind: "asr", Translatable: true},
		{LanguageCode: "de", Name: "Deutsch"},
	})

	for _, want := range []string{"Code", "Kind", "auto", "manual", "yes", "no", "Deutsch"} {
		requireContains(t, out, want)
	}
	if strings.Index(out, "en") > strings.Index(out, "de") {
		t.Fatalf("player order not preserved:\n%s", out)
	}
}

func TestRenderCacheTable(t *testing.T) {
	fetched := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	out := renderCacheTable([]transcriptcache.Entry{
		{
			VideoID:           "dQw4w9WgXcQ",
			RequestedLanguage: "fr",
			TrackLanguage:     "en",
			SegmentCount:      42,
			FetchedAt:         fetched,
		},
	})

	for _, want := range []string{"Video", "Requested", "dQw4w9WgXcQ", "fr", "42", fetched.Local().Format(cacheStampLayout)} {
		requireContains(t, out, want)
	}
}

func TestRenderCacheTableEmpty(t *testing.T) {
	if got := renderCacheTable(nil); got != "Transcript cache: empty" {
		t.Fatalf("unexpected empty rendering: %q", got)
	}
}

func TestEmitViewJSON(t *testing.T) {
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	views := []trackView{{LanguageCode: "en", Name: "English"}}
	err := emitView(cmd, true, views, func() string {
		t.Fatal("render must not run when JSON was requested")
		return ""
	})
	if err != nil {
		t.Fatalf("emitView: %v", err)
	}

	var decoded []trackView
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if len(decoded) != 1 || decoded[0].LanguageCode != "en" {
		t.Fatalf("unexpected views: %+v", decoded)
	}
}
