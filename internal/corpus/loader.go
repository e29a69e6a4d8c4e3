package corpus

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// LoadCSV reads tweets from a CSV file, taking the text from textColumn
// (zero-based). When an "id" column exists at index 0 and parses as an
// integer it is kept, otherwise the row number is used. Rows shorter than
// the text column are skipped.
func LoadCSV(path string, textColumn int, hasHeader bool) ([]Tweet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read corpus csv %s: %w", path, err)
	}
	if hasHeader && len(records) > 0 {
		records = records[1:]
	}

	tweets := make([]Tweet, 0, len(records))
	for i, rec := range records {
		if textColumn >= len(rec) {
			continue
		}
		t := Tweet{ID: int64(i + 1), Text: rec[textColumn]}
		if textColumn > 0 {
			if id, err := strconv.ParseInt(rec[0], 10, 64); err == nil {
				t.ID = id
			}
		}
		tweets = append(tweets, t)
	}
	return tweets, nil
}

// LoadJSON reads tweets from a JSON array of {id, user, text} objects.
func LoadJSON(path string) ([]Tweet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	var tweets []Tweet
	if err := json.Unmarshal(data, &tweets); err != nil {
		return nil, fmt.Errorf("parse corpus json %s: %w", path, err)
	}
	return tweets, nil
}
