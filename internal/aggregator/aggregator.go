package aggregator

import "call-analytics-go/internal/types"

// Stats summarizes one batch of flattened result rows. Averages cover only
// the rows where the underlying field was present.
type Stats struct {
	TotalCalls             int            `json:"total_calls"`
	EmptyTranscripts       int            `json:"empty_transcripts"`
	CustomerSentiment      map[string]int `json:"customer_sentiment"`
	CategoryCounts         map[string]int `json:"category_counts"`
	AvgTalkTimeAgentSec    *float64       `json:"avg_talk_time_agent_sec"`
	AvgTalkTimeCustomerSec *float64       `json:"avg_talk_time_customer_sec"`
}

func Collect(rows []types.ResultRow) Stats {
	sentiment := map[string]int{}
	cats := map[string]int{}
	empty := 0
	var agentSum, customerSum float64
	agentN, customerN := 0, 0
	for _, r := range rows {
		if r.Transcript == nil {
			empty++
		}
		if r.OverallSentimentCustomer != nil {
			sentiment[*r.OverallSentimentCustomer]++
		}
		for _, c := range r.MatchedCategories {
			cats[c]++
		}
		if r.TalkTimeAgentSec != nil {
			agentSum += *r.TalkTimeAgentSec
			agentN++
		}
		if r.TalkTimeCustomerSec != nil {
			customerSum += *r.TalkTimeCustomerSec
			customerN++
		}
	}
	stats := Stats{
		TotalCalls:        len(rows),
		EmptyTranscripts:  empty,
		CustomerSentiment: sentiment,
		CategoryCounts:    cats,
	}
	if agentN > 0 {
		avg := agentSum / float64(agentN)
		stats.AvgTalkTimeAgentSec = &avg
	}
	if customerN > 0 {
		avg := customerSum / float64(customerN)
		stats.AvgTalkTimeCustomerSec = &avg
	}
	return stats
}
