package transcript_test

import (
	"bytes"
	"strings"
	"testing"

	"ytfetch/internal/transcript"
)

func TestWriteEnvelopeSuccessShape(t *testing.T) {
	result := transcript.Result{
		VideoID:  "dQw4w9WgXcQ",
		Language: "en",
		Segments: []transcript.Segment{
			{Text: "hello & <world>", Start: 0, Duration: 1.5},
			{Text: "again", Start: 1.5, Duration: 2},
		},
	}

	var buf bytes.Buffer
	if err := transcript.WriteEnvelope(&buf, transcript.SuccessEnvelope(result)); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}

	out := buf.String()
	if strings.Count(out, "\n") != 1 || !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected exactly one line, got %q", out)
	}
	want := `{"success":true,"data":{"videoId":"dQw4w9WgXcQ","transcript":[{"text":"hello & <world>","start":0,"duration":1.5},{"text":"again","start":1.5,"duration":2}],"language":"en"}}` + "\n"
	if out != want {
		t.Fatalf("envelope mismatch:\n got %q\nwant %q", out, want)
	}
}

func TestWriteEnvelopeSuccessEmptyTranscript(t *testing.T) {
	var buf bytes.Buffer
	env := transcript.SuccessEnvelope(transcript.Result{VideoID: "abcdefghijk", Language: "en"})
	if err := transcript.WriteEnvelope(&buf, env); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	if !strings.Contains(buf.String(), `"transcript":[]`) {
		t.Fatalf("nil segments should encode as empty array: %q", buf.String())
	}
}

func TestWriteEnvelopeFailureShape(t *testing.T) {
	var buf bytes.Buffer
	if err := transcript.WriteEnvelope(&buf, transcript.FailureEnvelope("Video ID required")); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	want := `{"success":false,"error":"Video ID required"}` + "\n"
	if buf.String() != want {
		t.Fatalf("envelope mismatch:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestWriteEnvelopeDeterministic(t *testing.T) {
	result := transcript.Result{
		VideoID:  "abcdefghijk",
		Language: "de",
		Segments: []transcript.Segment{{Text: "hallo", Start: 0.25, Duration: 0.75}},
	}

	var first, second bytes.Buffer
	if err := transcript.WriteEnvelope(&first, transcript.SuccessEnvelope(result)); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	if err := transcript.WriteEnvelope(&second, transcript.SuccessEnvelope(result)); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("identical results must serialize identically")
	}
}
