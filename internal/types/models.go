package types

// Document is one parsed analytics document as returned by the speech
// service for a completed call-analytics job.
type Document map[string]any

// JobStatus mirrors the wire values reported by the speech service.
type JobStatus string

const (
	StatusQueued     JobStatus = "QUEUED"
	StatusInProgress JobStatus = "IN_PROGRESS"
	StatusFailed     JobStatus = "FAILED"
	StatusCompleted  JobStatus = "COMPLETED"
)

func (s JobStatus) Valid() bool {
	switch s {
	case StatusQueued, StatusInProgress, StatusFailed, StatusCompleted:
		return true
	}
	return false
}

// ParticipantRole identifies one of the two fixed call channels.
type ParticipantRole string

const (
	RoleCustomer ParticipantRole = "CUSTOMER"
	RoleAgent    ParticipantRole = "AGENT"
)

// JobRecord is one call-analytics job: the name it was registered under,
// the recording it points at, and (after retrieval) its raw analytics
// document. RawResult stays nil for jobs that could not be fetched and is
// never mutated once attached.
type JobRecord struct {
	JobName   string   `json:"job_name"`
	JobURL    string   `json:"job_url"`
	RawResult Document `json:"-"`
}

// CallSummary holds the three summarization tag columns. A nil column means
// the tag never occurred (or the scan failed) and marshals as null.
type CallSummary struct {
	IssuesDetected      []string `json:"IssuesDetected"`
	OutcomesDetected    []string `json:"OutcomesDetected"`
	ActionItemsDetected []string `json:"ActionItemsDetected"`
}

// CallCharacteristics holds the sentiment, timing, talk-speed, and category
// fields flattened from ConversationCharacteristics and Categories. Every
// field is independently nullable; the interupted_* spelling is the
// published column name and is kept as-is.
type CallCharacteristics struct {
	OverallSentimentCustomer          *string   `json:"overall_sentiment_customer"`
	OverallSentimentAgent             *string   `json:"overall_sentiment_agent"`
	SentimentScoresAgentPerQuarter    []float64 `json:"sentiment_scores_agent_per_quarter"`
	SentimentScoresCustomerPerQuarter []float64 `json:"sentiment_scores_customer_per_quarter"`
	NonTalkTimeSec                    *float64  `json:"non_talk_time_sec"`
	InteruptedTimeAgentSec            *float64  `json:"interupted_time_agent_sec"`
	InteruptedTimeCustomerSec         *float64  `json:"interupted_time_customer_sec"`
	TalkSpeedWordsPerMinAgent         *float64  `json:"talk_speed_words_per_min_agent"`
	TalkSpeedWordsPerMinCustomer      *float64  `json:"talk_speed_words_per_min_customer"`
	TalkTimeAgentSec                  *float64  `json:"talk_time_agent_sec"`
	TalkTimeCustomerSec               *float64  `json:"talk_time_customer_sec"`
	MatchedCategories                 []string  `json:"matched_categories"`
}

// ResultRow is the flattened, fixed-schema record produced per job. Rows
// always carry the full column set; absent data is null, never a missing
// column.
type ResultRow struct {
	JobName    string  `json:"job_name"`
	JobURL     string  `json:"job_url"`
	Transcript *string `json:"transcript"`
	CallSummary
	CallCharacteristics
}
