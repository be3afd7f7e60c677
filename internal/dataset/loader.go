package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"call-analytics-go/internal/types"
)

// LoadRecordings reads the batch input: one analytics job per row, named by
// a job_name column, with a job_url column pointing at the recording. CSV
// is the default format; .xlsx files go through the spreadsheet path.
func LoadRecordings(path string) ([]types.JobRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadXLSX(path)
	}
	return loadCSV(path)
}

func loadCSV(path string) ([]types.JobRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recordings: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("recordings file %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	nameIdx, urlIdx := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "job_name":
			nameIdx = i
		case "job_url":
			urlIdx = i
		}
	}
	if nameIdx == -1 {
		return nil, fmt.Errorf("recordings file %s has no job_name column", path)
	}
	if urlIdx == -1 {
		return nil, fmt.Errorf("recordings file %s has no job_url column", path)
	}

	var out []types.JobRecord
	seen := make(map[string]struct{})
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec := types.JobRecord{}
		if nameIdx < len(row) {
			rec.JobName = strings.TrimSpace(row[nameIdx])
		}
		if urlIdx < len(row) {
			rec.JobURL = strings.TrimSpace(row[urlIdx])
		}
		if rec.JobName != "" {
			if _, dup := seen[rec.JobName]; dup {
				return nil, fmt.Errorf("duplicate job name %q in %s", rec.JobName, path)
			}
			seen[rec.JobName] = struct{}{}
		}
		out = append(out, rec)
	}
	return out, nil
}

// loadXLSX reads the first sheet, locating the job name and recording URL
// columns by header heuristics. Rows whose URL carries no scheme are
// skipped quietly.
func loadXLSX(path string) ([]types.JobRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	nameIdx, urlIdx := -1, -1
	for i, h := range rows[0] {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "url") || strings.Contains(l, "record") || strings.Contains(l, "audio") || strings.Contains(l, "media"):
			if urlIdx == -1 {
				urlIdx = i
			}
		case strings.Contains(l, "job") || strings.Contains(l, "name") || strings.Contains(l, "id"):
			if nameIdx == -1 {
				nameIdx = i
			}
		}
	}
	if nameIdx == -1 || urlIdx == -1 {
		return nil, fmt.Errorf("could not locate job name and url columns in %s", path)
	}

	var out []types.JobRecord
	seen := make(map[string]struct{})
	for _, row := range rows[1:] {
		rec := types.JobRecord{}
		if nameIdx < len(row) {
			rec.JobName = strings.TrimSpace(row[nameIdx])
		}
		if urlIdx < len(row) {
			rec.JobURL = strings.TrimSpace(row[urlIdx])
		}
		if !strings.Contains(rec.JobURL, "://") {
			// not a recording reference, skip quietly
			continue
		}
		if rec.JobName != "" {
			if _, dup := seen[rec.JobName]; dup {
				return nil, fmt.Errorf("duplicate job name %q in %s", rec.JobName, path)
			}
			seen[rec.JobName] = struct{}{}
		}
		out = append(out, rec)
	}
	return out, nil
}
