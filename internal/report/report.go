package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/xuri/excelize/v2"

	"call-analytics-go/internal/types"
)

// Columns lists every column of the flat result schema, in order. The
// mixed-case summarization names and the interupted_* spelling are part of
// the published schema and must not change.
var Columns = []string{
	"job_name",
	"job_url",
	"transcript",
	"IssuesDetected",
	"OutcomesDetected",
	"ActionItemsDetected",
	"overall_sentiment_customer",
	"overall_sentiment_agent",
	"sentiment_scores_agent_per_quarter",
	"sentiment_scores_customer_per_quarter",
	"non_talk_time_sec",
	"interupted_time_agent_sec",
	"interupted_time_customer_sec",
	"talk_speed_words_per_min_agent",
	"talk_speed_words_per_min_customer",
	"talk_time_agent_sec",
	"talk_time_customer_sec",
	"matched_categories",
}

// Cells renders one row into string cells aligned with Columns. Null
// fields become empty cells; list fields are JSON-encoded.
func Cells(r types.ResultRow) []string {
	return []string{
		r.JobName,
		r.JobURL,
		strCell(r.Transcript),
		listCell(r.IssuesDetected),
		listCell(r.OutcomesDetected),
		listCell(r.ActionItemsDetected),
		strCell(r.OverallSentimentCustomer),
		strCell(r.OverallSentimentAgent),
		scoresCell(r.SentimentScoresAgentPerQuarter),
		scoresCell(r.SentimentScoresCustomerPerQuarter),
		floatCell(r.NonTalkTimeSec),
		floatCell(r.InteruptedTimeAgentSec),
		floatCell(r.InteruptedTimeCustomerSec),
		floatCell(r.TalkSpeedWordsPerMinAgent),
		floatCell(r.TalkSpeedWordsPerMinCustomer),
		floatCell(r.TalkTimeAgentSec),
		floatCell(r.TalkTimeCustomerSec),
		listCell(r.MatchedCategories),
	}
}

func strCell(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatCell(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func listCell(v []string) string {
	if v == nil {
		return ""
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func scoresCell(v []float64) string {
	if v == nil {
		return ""
	}
	b, _ := json.Marshal(v)
	return string(b)
}

// WriteCSV writes the header row followed by one line per result row.
func WriteCSV(w io.Writer, rows []types.ResultRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(Cells(r)); err != nil {
			return fmt.Errorf("write row %s: %w", r.JobName, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX saves the rows as a single-sheet workbook with the same layout
// as the CSV output.
func WriteXLSX(path string, rows []types.ResultRow) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		cells := Cells(r)
		vals := make([]any, len(cells))
		for j, c := range cells {
			vals[j] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return fmt.Errorf("write row %s: %w", r.JobName, err)
		}
	}
	return f.SaveAs(path)
}

// RenderTable prints a compact per-call view for terminals. The full
// schema lives in the CSV, XLSX and JSON outputs.
func RenderTable(w io.Writer, rows []types.ResultRow) error {
	table := tablewriter.NewWriter(w)
	table.Header("Job", "Transcript", "Cust Sentiment", "Agent Sentiment", "Talk Agent (s)", "Talk Cust (s)", "Categories")
	for _, r := range rows {
		table.Append([]string{
			r.JobName,
			truncate(strCell(r.Transcript), 48),
			strCell(r.OverallSentimentCustomer),
			strCell(r.OverallSentimentAgent),
			floatCell(r.TalkTimeAgentSec),
			floatCell(r.TalkTimeCustomerSec),
			strings.Join(r.MatchedCategories, ","),
		})
	}
	return table.Render()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
