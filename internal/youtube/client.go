package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://www.youtube.com"
	defaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	defaultAcceptLang  = "en-US,en;q=0.9"
	defaultHTTPTimeout = 30 * time.Second
)

// Config describes the transcript client configuration.
type Config struct {
	BaseURL        string
	UserAgent      string
	AcceptLanguage string
	HTTPClient     *http.Client
}

// Client fetches caption transcripts from YouTube.
type Client struct {
	baseURL        *url.URL
	userAgent      string
	acceptLanguage string
	http           *http.Client
}

// New creates a Client from the supplied configuration.
func New(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("youtube: parse base url: %w", err)
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	acceptLanguage := strings.TrimSpace(cfg.AcceptLanguage)
	if acceptLanguage == "" {
		acceptLanguage = defaultAcceptLang
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:        baseURL,
		userAgent:      userAgent,
		acceptLanguage: acceptLanguage,
		http:           client,
	}, nil
}

// Snippet is one timed caption unit.
type Snippet struct {
	Text     string
	Start    float64
	Duration float64
}

// CaptionTrack describes one track advertised by the player response.
type CaptionTrack struct {
	BaseURL      string
	LanguageCode string
	Name         string
	Kind         string
	Translatable bool
}

// AutoGenerated reports whether the track was machine-transcribed.
func (t CaptionTrack) AutoGenerated() bool { return t.Kind == "asr" }

// Transcript bundles fetched snippets with the identity of the source track.
type Transcript struct {
	VideoID      string
	LanguageCode string
	LanguageName string
	Snippets     []Snippet
}

// ListTracks returns the caption tracks available for the video, in the
// order the player response advertises them.
func (c *Client) ListTracks(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	if c == nil {
		return nil, errors.New("youtube: client is nil")
	}
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, errors.New("youtube: video id is empty")
	}
	return c.fetchTracks(ctx, videoID)
}

// FetchTranscript retrieves the transcript restricted to the given languages,
// tried in order. It fails with a LanguageUnavailableError when no track
// matches any of them.
func (c *Client) FetchTranscript(ctx context.Context, videoID string, languages []string) (Transcript, error) {
	if c == nil {
		return Transcript{}, errors.New("youtube: client is nil")
	}
	tracks, err := c.fetchTracks(ctx, videoID)
	if err != nil {
		return Transcript{}, err
	}
	track, err := selectTrack(tracks, languages)
	if err != nil {
		return Transcript{}, err
	}
	return c.fetchTrack(ctx, videoID, track)
}

// FetchAnyTranscript retrieves the first available caption track without any
// language restriction. It is the fallback arm when a language-restricted
// fetch fails.
func (c *Client) FetchAnyTranscript(ctx context.Context, videoID string) (Transcript, error) {
	if c == nil {
		return Transcript{}, errors.New("youtube: client is nil")
	}
	tracks, err := c.fetchTracks(ctx, videoID)
	if err != nil {
		return Transcript{}, err
	}
	return c.fetchTrack(ctx, videoID, tracks[0])
}

func (c *Client) applyHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", c.acceptLanguage)
}

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractVideoID accepts either a bare video ID or a watch/short URL and
// returns the canonical 11-character video ID, or "" when none can be found.
// Callers pass their input through unchanged when extraction fails so that
// the provider surfaces the real error.
func ExtractVideoID(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if videoIDPattern.MatchString(input) {
		return input
	}
	parsed, err := url.Parse(input)
	if err != nil {
		return ""
	}
	if id := parsed.Query().Get("v"); videoIDPattern.MatchString(id) {
		return id
	}
	// youtu.be/<id>, /shorts/<id>, /embed/<id>, /live/<id>
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) > 0 {
		if id := segments[len(segments)-1]; videoIDPattern.MatchString(id) {
			return id
		}
	}
	return ""
}
