package transcript

// DefaultLanguage is requested when the caller does not name one.
const DefaultLanguage = "en"

// Segment is one caption unit. Start and Duration are seconds. Order within
// a transcript is chronological and must be preserved.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Result is a successfully fetched transcript. Language is the code of the
// caption track actually fetched, which can differ from the requested
// language after a fallback.
type Result struct {
	VideoID  string
	Language string
	Segments []Segment
}
