package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const playerResponseMarker = "ytInitialPlayerResponse"

// playerResponse mirrors the slice of the embedded player JSON we consume.
type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions struct {
		Renderer struct {
			CaptionTracks []captionTrackJSON `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrackJSON struct {
	BaseURL        string    `json:"baseUrl"`
	Name           trackName `json:"name"`
	LanguageCode   string    `json:"languageCode"`
	Kind           string    `json:"kind"`
	IsTranslatable bool      `json:"isTranslatable"`
}

// trackName tolerates both shapes YouTube uses for track labels.
type trackName struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (n trackName) String() string {
	if n.SimpleText != "" {
		return n.SimpleText
	}
	var b strings.Builder
	for _, run := range n.Runs {
		b.WriteString(run.Text)
	}
	return b.String()
}

// fetchTracks downloads the watch page and returns the advertised caption
// tracks. It distinguishes an unplayable video from one that simply has no
// captions.
func (c *Client) fetchTracks(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	endpoint := c.baseURL.JoinPath("watch")
	query := endpoint.Query()
	query.Set("v", videoID)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build watch request: %w", err)
	}
	c.applyHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch watch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("watch page request failed (%s)", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read watch page: %w", err)
	}

	player, err := extractPlayerResponse(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse watch page for %s: %w", videoID, err)
	}

	status := player.PlayabilityStatus.Status
	if status != "" && status != "OK" {
		return nil, &VideoUnavailableError{
			VideoID: videoID,
			Status:  status,
			Reason:  player.PlayabilityStatus.Reason,
		}
	}

	raw := player.Captions.Renderer.CaptionTracks
	if len(raw) == 0 {
		return nil, ErrNoCaptions
	}

	tracks := make([]CaptionTrack, 0, len(raw))
	for _, entry := range raw {
		if strings.TrimSpace(entry.BaseURL) == "" || entry.LanguageCode == "" {
			continue
		}
		tracks = append(tracks, CaptionTrack{
			BaseURL:      entry.BaseURL,
			LanguageCode: entry.LanguageCode,
			Name:         entry.Name.String(),
			Kind:         entry.Kind,
			Translatable: entry.IsTranslatable,
		})
	}
	if len(tracks) == 0 {
		return nil, ErrNoCaptions
	}
	return tracks, nil
}

// extractPlayerResponse locates the ytInitialPlayerResponse assignment in the
// watch page HTML and decodes the single JSON object that follows it.
func extractPlayerResponse(page string) (*playerResponse, error) {
	idx := strings.Index(page, playerResponseMarker)
	if idx < 0 {
		return nil, fmt.Errorf("player response not found in page")
	}
	rest := page[idx+len(playerResponseMarker):]

	start := strings.IndexByte(rest, '{')
	if start < 0 {
		return nil, fmt.Errorf("player response has no object payload")
	}
	// The assignment is followed by arbitrary script text; a json.Decoder
	// reads exactly one value and ignores the rest.
	decoder := json.NewDecoder(strings.NewReader(rest[start:]))
	var player playerResponse
	if err := decoder.Decode(&player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return &player, nil
}
