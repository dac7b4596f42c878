package ui

import (
	"github.com/filefy/wordsearch-tui/internal/history"
	"github.com/filefy/wordsearch-tui/internal/model"
)

// Worker completion messages
type SearchDoneMsg struct {
	Output string
	Err    error
}

type ResultsLoadedMsg struct {
	Rows  []model.ResultRow
	Found bool
	Err   error
}

type ExportDoneMsg struct {
	Path string
	Err  error
}

// Persistence messages
type HistoryLoadedMsg struct {
	Entries []history.Entry
	Err     error
}

type HistorySavedMsg struct {
	Err error
}

type HistoryDeletedMsg struct {
	Err error
}

type HistoryClearedMsg struct {
	Err error
}

type ConfigSavedMsg struct {
	Err error
}

type StatusMsg struct {
	Text string
}
