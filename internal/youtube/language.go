package youtube

import (
	"strings"

	"golang.org/x/text/language"
)

// Track selection scores. Exact tag matches beat base-language matches, and
// a manually created track beats an auto-generated one at the same level.
const (
	scoreExact = 4
	scoreBase  = 2
)

// selectTrack picks the best caption track for the requested languages,
// tried in order. Requested values are BCP-47 tags; "en" matches "en-US"
// and "en-GB" tracks when no exact "en" track exists.
func selectTrack(tracks []CaptionTrack, requested []string) (CaptionTrack, error) {
	if len(tracks) == 0 {
		return CaptionTrack{}, ErrNoCaptions
	}

	for _, want := range requested {
		want = strings.TrimSpace(want)
		if want == "" {
			continue
		}
		desired, err := language.Parse(want)
		if err != nil {
			continue
		}
		if idx := bestMatch(tracks, want, desired); idx >= 0 {
			return tracks[idx], nil
		}
	}

	available := make([]string, 0, len(tracks))
	for _, track := range tracks {
		available = append(available, track.LanguageCode)
	}
	return CaptionTrack{}, &LanguageUnavailableError{
		Requested: append([]string(nil), requested...),
		Available: available,
	}
}

func bestMatch(tracks []CaptionTrack, want string, desired language.Tag) int {
	desiredBase, baseConf := desired.Base()

	best := -1
	bestScore := 0
	for i, track := range tracks {
		score := trackScore(track, want, desired, desiredBase, baseConf)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

func trackScore(track CaptionTrack, want string, desired language.Tag, desiredBase language.Base, baseConf language.Confidence) int {
	score := 0
	tag := language.Make(track.LanguageCode)
	switch {
	case strings.EqualFold(track.LanguageCode, want) || tag == desired:
		score = scoreExact
	case baseConf != language.No:
		if trackBase, conf := tag.Base(); conf != language.No && trackBase == desiredBase {
			score = scoreBase
		}
	}
	if score > 0 && !track.AutoGenerated() {
		score++
	}
	return score
}
