package model

import "strings"

type SearchRequest struct {
	SearchPath    string
	Terms         []string
	RegexPatterns []string
	CaseSensitive bool
	Verbose       bool
}

// SplitList turns raw multi-line input into one entry per non-blank line.
func SplitList(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
