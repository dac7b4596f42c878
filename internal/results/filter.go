package results

import (
	"regexp"
	"strings"

	"github.com/filefy/wordsearch-tui/internal/model"
)

// Matcher builds a row predicate from a filter expression. A leading
// '/' compiles the rest as a case-insensitive regex; anything else is
// a case-insensitive substring match across all columns.
func Matcher(expr string) (func(model.ResultRow) bool, error) {
	if strings.HasPrefix(expr, "/") {
		re, err := regexp.Compile("(?i)" + expr[1:])
		if err != nil {
			return nil, err
		}
		return func(row model.ResultRow) bool {
			for _, cell := range row.Fields() {
				if re.MatchString(cell) {
					return true
				}
			}
			return false
		}, nil
	}

	needle := strings.ToLower(expr)
	return func(row model.ResultRow) bool {
		for _, cell := range row.Fields() {
			if strings.Contains(strings.ToLower(cell), needle) {
				return true
			}
		}
		return false
	}, nil
}

// Filter returns the rows matching expr. A blank expression keeps
// every row.
func Filter(rows []model.ResultRow, expr string) ([]model.ResultRow, error) {
	if strings.TrimSpace(expr) == "" {
		return rows, nil
	}
	match, err := Matcher(expr)
	if err != nil {
		return nil, err
	}
	var out []model.ResultRow
	for _, row := range rows {
		if match(row) {
			out = append(out, row)
		}
	}
	return out, nil
}
