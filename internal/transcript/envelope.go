package transcript

import (
	"encoding/json"
	"io"
)

// Payload is the data half of a success envelope.
type Payload struct {
	VideoID    string    `json:"videoId"`
	Transcript []Segment `json:"transcript"`
	Language   string    `json:"language"`
}

// Envelope is the single JSON document written to stdout. Exactly one of
// Data and Error is populated.
type Envelope struct {
	Success bool     `json:"success"`
	Data    *Payload `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// SuccessEnvelope wraps a fetched transcript.
func SuccessEnvelope(result Result) Envelope {
	segments := result.Segments
	if segments == nil {
		segments = []Segment{}
	}
	return Envelope{
		Success: true,
		Data: &Payload{
			VideoID:    result.VideoID,
			Transcript: segments,
			Language:   result.Language,
		},
	}
}

// FailureEnvelope wraps an error message.
func FailureEnvelope(message string) Envelope {
	return Envelope{Success: false, Error: message}
}

// WriteEnvelope encodes the envelope as exactly one line of JSON. Caption
// text is written verbatim, without HTML escaping.
func WriteEnvelope(w io.Writer, env Envelope) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(env)
}
