package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// timedTextResponse mirrors the json3 timedtext payload.
type timedTextResponse struct {
	Events []timedTextEvent `json:"events"`
}

type timedTextEvent struct {
	StartMs    int64          `json:"tStartMs"`
	DurationMs int64          `json:"dDurationMs"`
	Append     int            `json:"aAppend"`
	Segs       []timedTextSeg `json:"segs"`
}

type timedTextSeg struct {
	UTF8 string `json:"utf8"`
}

// fetchTrack downloads a caption track as json3 and converts its events into
// ordered snippets.
func (c *Client) fetchTrack(ctx context.Context, videoID string, track CaptionTrack) (Transcript, error) {
	endpoint, err := url.Parse(track.BaseURL)
	if err != nil {
		return Transcript{}, fmt.Errorf("parse caption track url: %w", err)
	}
	if endpoint.Host == "" {
		endpoint = c.baseURL.ResolveReference(endpoint)
	}
	query := endpoint.Query()
	query.Set("fmt", "json3")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return Transcript{}, fmt.Errorf("build caption request: %w", err)
	}
	c.applyHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return Transcript{}, fmt.Errorf("fetch captions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Transcript{}, fmt.Errorf("caption download failed (%s): %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var payload timedTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Transcript{}, fmt.Errorf("decode captions: %w", err)
	}

	return Transcript{
		VideoID:      videoID,
		LanguageCode: track.LanguageCode,
		LanguageName: track.Name,
		Snippets:     eventsToSnippets(payload.Events),
	}, nil
}

// eventsToSnippets flattens json3 events into snippets, preserving event
// order. Append events continue the previous window on screen and carry no
// new timing, so they are skipped, as are window-only events without text.
func eventsToSnippets(events []timedTextEvent) []Snippet {
	snippets := make([]Snippet, 0, len(events))
	for _, event := range events {
		if event.Append == 1 || len(event.Segs) == 0 {
			continue
		}
		var b strings.Builder
		for _, seg := range event.Segs {
			b.WriteString(seg.UTF8)
		}
		text := b.String()
		if strings.TrimSpace(text) == "" {
			continue
		}
		snippets = append(snippets, Snippet{
			Text:     text,
			Start:    float64(event.StartMs) / 1000.0,
			Duration: float64(event.DurationMs) / 1000.0,
		})
	}
	return snippets
}
