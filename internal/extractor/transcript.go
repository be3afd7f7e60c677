package extractor

import (
	"fmt"
	"strings"

	"call-analytics-go/internal/types"
)

// speakerRoster provides the alternating labels for transcript lines.
// Attribution is positional (utterance index parity), not taken from
// channel metadata, so it is an approximation of who spoke.
var speakerRoster = []string{"Speaker 1", "Speaker 2"}

// Transcript joins the document's utterance contents into one labeled
// string, e.g. "Speaker 1: hi, Speaker 2: hello, Speaker 1: bye". It
// returns nil when the document carries no utterance entries or the
// Transcript section is malformed.
func (e *Extractor) Transcript(doc types.Document) *string {
	if doc == nil {
		return nil
	}
	entries, ok := doc["Transcript"].([]any)
	if !ok || len(entries) == 0 {
		return nil
	}
	parts := make([]string, 0, len(entries))
	for i, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil
		}
		content, _ := m["Content"].(string)
		parts = append(parts, fmt.Sprintf("%s: %s", speakerRoster[i%len(speakerRoster)], content))
	}
	joined := strings.Join(parts, ", ")
	return &joined
}
