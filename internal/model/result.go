package model

type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ResultColumns is the column order of the results CSV, matching the
// search scripts' output schema.
var ResultColumns = [6]string{"Type", "File Path", "File Name", "Line", "Term", "Match"}

type ResultRow struct {
	Kind     string
	FilePath string
	FileName string
	Line     string
	Term     string
	Match    string
}

func (r ResultRow) Fields() [6]string {
	return [6]string{r.Kind, r.FilePath, r.FileName, r.Line, r.Term, r.Match}
}

// RowFromRecord maps a CSV record onto a row. Short records leave the
// remaining cells blank; extra cells are dropped.
func RowFromRecord(record []string) ResultRow {
	var cells [6]string
	for i := 0; i < len(record) && i < len(cells); i++ {
		cells[i] = record[i]
	}
	return ResultRow{
		Kind:     cells[0],
		FilePath: cells[1],
		FileName: cells[2],
		Line:     cells[3],
		Term:     cells[4],
		Match:    cells[5],
	}
}

type Summary struct {
	Total           int
	FileNameMatches int
	ContentMatches  int
}
