// Package youtube retrieves caption transcripts from YouTube's public
// endpoints.
//
// The client works in two steps: it downloads the watch page and extracts the
// embedded player response to discover the available caption tracks, then
// downloads the selected track in the json3 timedtext format and converts its
// events into ordered snippets. Track selection matches BCP-47 language tags
// and prefers manually created tracks over auto-generated ones.
package youtube
