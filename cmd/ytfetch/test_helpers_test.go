package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

type fakeTrack struct {
	lang string
	name string
	kind string
}

type fakeWatchServer struct {
	*httptest.Server
	watchHits atomic.Int32
}

// newFakeWatchServer serves a watch page advertising the given tracks and a
// timedtext endpoint answering per-language json3 payloads.
func newFakeWatchServer(t *testing.T, tracks []fakeTrack, captions map[string]any) *fakeWatchServer {
	t.Helper()

	fake := &fakeWatchServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		fake.watchHits.Add(1)
		trackList := make([]map[string]any, 0, len(tracks))
		for _, track := range tracks {
			entry := map[string]any{
				"baseUrl":      fake.URL + "/api/timedtext?lang=" + track.lang,
				"languageCode": track.lang,
				"name":         map[string]any{"simpleText": track.name},
			}
			if track.kind != "" {
				entry["kind"] = track.kind
			}
			trackList = append(trackList, entry)
		}
		player := map[string]any{
			"playabilityStatus": map[string]any{"status": "OK"},
		}
		if len(trackList) > 0 {
			player["captions"] = map[string]any{
				"playerCaptionsTracklistRenderer": map[string]any{
					"captionTracks": trackList,
				},
			}
		}
		payload, err := json.Marshal(player)
		if err != nil {
			t.Errorf("marshal player response: %v", err)
		}
		fmt.Fprintf(w, "<html><script>var ytInitialPlayerResponse = %s;</script></html>", payload)
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		payload, ok := captions[r.URL.Query().Get("lang")]
		if !ok {
			http.Error(w, "unknown track", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(payload)
	})

	fake.Server = httptest.NewServer(mux)
	t.Cleanup(fake.Close)
	return fake
}

func singleLineEvents(text string) map[string]any {
	return map[string]any{"events": []any{
		map[string]any{
			"tStartMs":    0,
			"dDurationMs": 1500,
			"segs":        []any{map[string]any{"utf8": text}},
		},
	}}
}

// writeTestConfig writes a config file pointing retrieval at the fake server.
// extra is appended verbatim for per-test sections.
func writeTestConfig(t *testing.T, baseURL, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf("[fetch]\nbase_url = %q\ndefault_language = \"en\"\n\n[logging]\nlevel = \"error\"\n", baseURL)
	if extra != "" {
		content += "\n" + strings.TrimSpace(extra) + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
