package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/filefy/wordsearch-tui/internal/model"
)

// Load reads the results CSV written by the search script. A missing
// file is not an error: the script writes no CSV when nothing matched.
func Load(path string) ([]model.ResultRow, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open results: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes result rows from CSV. The first record is the header
// and is discarded. Rows decoded before a read error are returned
// along with the error.
func Parse(r io.Reader) ([]model.ResultRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows []model.ResultRow
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return rows, fmt.Errorf("failed to parse results: %w", err)
		}
		if first {
			first = false
			continue
		}
		rows = append(rows, model.RowFromRecord(record))
	}
}

// Summarize tallies rows by their reported match type.
func Summarize(rows []model.ResultRow) model.Summary {
	sum := model.Summary{Total: len(rows)}
	for _, row := range rows {
		switch {
		case strings.Contains(row.Kind, "FileName"):
			sum.FileNameMatches++
		case strings.Contains(row.Kind, "Content"):
			sum.ContentMatches++
		}
	}
	return sum
}
