package youtube

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCaptions indicates the video exists but advertises no caption tracks.
var ErrNoCaptions = errors.New("no captions available for this video")

// VideoUnavailableError indicates the watch page refused to play the video.
type VideoUnavailableError struct {
	VideoID string
	Status  string
	Reason  string
}

func (e *VideoUnavailableError) Error() string {
	if strings.TrimSpace(e.Reason) != "" {
		return fmt.Sprintf("video %s is unavailable: %s", e.VideoID, e.Reason)
	}
	return fmt.Sprintf("video %s is unavailable (status %s)", e.VideoID, e.Status)
}

// LanguageUnavailableError indicates no caption track matched the requested
// languages.
type LanguageUnavailableError struct {
	Requested []string
	Available []string
}

func (e *LanguageUnavailableError) Error() string {
	return fmt.Sprintf("no caption track for language(s) %s; available: %s",
		strings.Join(e.Requested, ", "), strings.Join(e.Available, ", "))
}
