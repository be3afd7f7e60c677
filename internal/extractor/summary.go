package extractor

import "call-analytics-go/internal/types"

// summaryTags are the utterance keys that mark summarization observations,
// checked per entry in this fixed order.
var summaryTags = []string{"IssuesDetected", "OutcomesDetected", "ActionItemsDetected"}

// Summary scans every utterance entry for summarization tags and buckets
// each tagged entry's Content by tag. Buckets keep encounter order and may
// end up with unequal lengths. An absent or malformed Transcript section,
// a non-map entry, or a tagged entry without Content collapses the whole
// summary to its empty form.
func (e *Extractor) Summary(doc types.Document) types.CallSummary {
	var out types.CallSummary
	if doc == nil {
		return out
	}
	entries, ok := doc["Transcript"].([]any)
	if !ok {
		return out
	}

	type observation struct {
		tag     string
		content string
	}
	var seen []observation
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			return types.CallSummary{}
		}
		for _, tag := range summaryTags {
			if _, present := m[tag]; !present {
				continue
			}
			raw, present := m["Content"]
			if !present {
				return types.CallSummary{}
			}
			content, _ := raw.(string)
			seen = append(seen, observation{tag: tag, content: content})
		}
	}

	// Re-spread the flat scan into the three columns; append order is
	// encounter order per tag, not a sort.
	for _, o := range seen {
		switch o.tag {
		case "IssuesDetected":
			out.IssuesDetected = append(out.IssuesDetected, o.content)
		case "OutcomesDetected":
			out.OutcomesDetected = append(out.OutcomesDetected, o.content)
		case "ActionItemsDetected":
			out.ActionItemsDetected = append(out.ActionItemsDetected, o.content)
		}
	}
	return out
}
