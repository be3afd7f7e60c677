package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptAlternatesSpeakers(t *testing.T) {
	e := New(Options{})
	doc := docFromJSON(t, `{
		"Transcript": [
			{"Content": "hi"},
			{"Content": "hello"},
			{"Content": "bye"}
		]
	}`)

	got := e.Transcript(doc)
	require.NotNil(t, got)
	assert.Equal(t, "Speaker 1: hi, Speaker 2: hello, Speaker 1: bye", *got)
}

func TestTranscriptMissingContentBecomesEmpty(t *testing.T) {
	e := New(Options{})
	doc := docFromJSON(t, `{
		"Transcript": [
			{"Content": "hi"},
			{"ParticipantRole": "AGENT"}
		]
	}`)

	got := e.Transcript(doc)
	require.NotNil(t, got)
	assert.Equal(t, "Speaker 1: hi, Speaker 2: ", *got)
}

func TestTranscriptNilCases(t *testing.T) {
	e := New(Options{})

	tests := []struct {
		name string
		raw  string
	}{
		{"no transcript section", `{"JobStatus": "COMPLETED"}`},
		{"empty utterance list", `{"Transcript": []}`},
		{"transcript is an object", `{"Transcript": {"Content": "hi"}}`},
		{"transcript is a string", `{"Transcript": "hi"}`},
		{"non-map utterance entry", `{"Transcript": ["hi", "there"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, e.Transcript(docFromJSON(t, tt.raw)))
		})
	}

	assert.Nil(t, e.Transcript(nil))
}

func TestTranscriptSingleUtterance(t *testing.T) {
	e := New(Options{})
	doc := docFromJSON(t, `{"Transcript": [{"Content": "just me"}]}`)

	got := e.Transcript(doc)
	require.NotNil(t, got)
	assert.Equal(t, "Speaker 1: just me", *got)
}
