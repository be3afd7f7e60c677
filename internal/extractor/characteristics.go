package extractor

import "call-analytics-go/internal/types"

// Path expressions for the characteristics columns, one per field.
const (
	exprOverallSentimentCustomer = "ConversationCharacteristics.Sentiment.OverallSentiment.CUSTOMER"
	exprOverallSentimentAgent    = "ConversationCharacteristics.Sentiment.OverallSentiment.AGENT"
	exprScoresAgentPerQuarter    = "ConversationCharacteristics.Sentiment.SentimentByPeriod.QUARTER.AGENT"
	exprScoresCustomerPerQuarter = "ConversationCharacteristics.Sentiment.SentimentByPeriod.QUARTER.CUSTOMER"
	exprNonTalkTime              = "ConversationCharacteristics.NonTalkTime.TotalTimeMillis"
	exprInteruptedAgent          = "ConversationCharacteristics.Interruptions.InterruptionsByInterrupter.AGENT[0].DurationMillis"
	exprInteruptedCustomer       = "ConversationCharacteristics.Interruptions.InterruptionsByInterrupter.CUSTOMER[0].DurationMillis"
	exprTalkSpeedAgent           = "ConversationCharacteristics.TalkSpeed.DetailsByParticipant.AGENT.AverageWordsPerMinute"
	exprTalkSpeedCustomer        = "ConversationCharacteristics.TalkSpeed.DetailsByParticipant.CUSTOMER.AverageWordsPerMinute"
	exprTalkTimeAgent            = "ConversationCharacteristics.TalkTime.DetailsByParticipant.AGENT.TotalTimeMillis"
	exprTalkTimeCustomer         = "ConversationCharacteristics.TalkTime.DetailsByParticipant.CUSTOMER.TotalTimeMillis"
	exprMatchedCategories        = "Categories.MatchedCategories"
)

// Characteristics flattens the sentiment, timing, talk-speed, and category
// sections into their fixed columns. Each field is one independent
// extraction; a missing or malformed section nils that field alone and
// never disturbs the rest. Time fields arrive in milliseconds and leave in
// seconds; only the first interruption per interrupter is considered.
func (e *Extractor) Characteristics(doc types.Document) types.CallCharacteristics {
	return types.CallCharacteristics{
		OverallSentimentCustomer:          e.stringField(doc, exprOverallSentimentCustomer),
		OverallSentimentAgent:             e.stringField(doc, exprOverallSentimentAgent),
		SentimentScoresAgentPerQuarter:    e.scoreList(doc, exprScoresAgentPerQuarter),
		SentimentScoresCustomerPerQuarter: e.scoreList(doc, exprScoresCustomerPerQuarter),
		NonTalkTimeSec:                    e.secondsField(doc, exprNonTalkTime),
		InteruptedTimeAgentSec:            e.secondsField(doc, exprInteruptedAgent),
		InteruptedTimeCustomerSec:         e.secondsField(doc, exprInteruptedCustomer),
		TalkSpeedWordsPerMinAgent:         e.floatField(doc, exprTalkSpeedAgent),
		TalkSpeedWordsPerMinCustomer:      e.floatField(doc, exprTalkSpeedCustomer),
		TalkTimeAgentSec:                  e.secondsField(doc, exprTalkTimeAgent),
		TalkTimeCustomerSec:               e.secondsField(doc, exprTalkTimeCustomer),
		MatchedCategories:                 e.stringList(doc, exprMatchedCategories),
	}
}
