package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/filefy/wordsearch-tui/internal/model"
)

// ExportConfig carries the form values the plain-text report echoes
// back.
type ExportConfig struct {
	SearchPath    string
	CaseSensitive bool
}

// Export writes rows to path, picking the format by extension: .csv
// writes a spreadsheet, anything else a plain-text report.
func Export(path string, rows []model.ResultRow, cfg ExportConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ExportCSV(path, rows)
	}
	return ExportText(path, rows, cfg)
}

func ExportCSV(path string, rows []model.ResultRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func WriteCSV(w io.Writer, rows []model.ResultRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(model.ResultColumns[:]); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	for _, row := range rows {
		fields := row.Fields()
		if err := cw.Write(fields[:]); err != nil {
			return fmt.Errorf("failed to save results: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	return nil
}

func ExportText(path string, rows []model.ResultRow, cfg ExportConfig) error {
	var b strings.Builder
	b.WriteString("WordSearch Results\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Search Path: %s\n", cfg.SearchPath)
	fmt.Fprintf(&b, "Case Sensitive: %s\n", yesNo(cfg.CaseSensitive))
	fmt.Fprintf(&b, "Total Results: %d\n\n", len(rows))
	for i, row := range rows {
		fmt.Fprintf(&b, "Result #%d:\n", i+1)
		fields := row.Fields()
		for col, title := range model.ResultColumns {
			fmt.Fprintf(&b, "  %s: %s\n", title, fields[col])
		}
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// DefaultExportName suggests a file name for a new export.
func DefaultExportName(now time.Time) string {
	return "search_results_" + now.Format("20060102_150405") + ".csv"
}
