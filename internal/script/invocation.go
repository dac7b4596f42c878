package script

import (
	"strings"

	"github.com/filefy/wordsearch-tui/internal/model"
)

// Files the search scripts read and write, relative to the install
// directory.
const (
	TermsFile   = ".terms_list"
	RegexFile   = ".regex_list"
	ResultsFile = "search_results.csv"
)

// Invocation builds the command line for one platform's search script.
type Invocation interface {
	Command() string
	Args(req model.SearchRequest) []string
}

// PosixInvocation runs the bash implementation of the search.
type PosixInvocation struct{}

func (PosixInvocation) Command() string { return "bash" }

func (PosixInvocation) Args(req model.SearchRequest) []string {
	args := []string{"File-FY.sh"}
	if path := strings.TrimSpace(req.SearchPath); path != "" {
		args = append(args, "-p", path)
	}
	if req.CaseSensitive {
		args = append(args, "-c")
	}
	if req.Verbose {
		args = append(args, "-v")
	}
	return args
}

// WindowsInvocation runs the PowerShell implementation of the search.
type WindowsInvocation struct{}

func (WindowsInvocation) Command() string { return "powershell" }

func (WindowsInvocation) Args(req model.SearchRequest) []string {
	args := []string{"-ExecutionPolicy", "Bypass", "-File", "File-FY.ps1"}
	if path := strings.TrimSpace(req.SearchPath); path != "" {
		args = append(args, "-SearchPath", path)
	}
	if req.CaseSensitive {
		args = append(args, "-CaseSensitive")
	}
	if req.Verbose {
		args = append(args, "-Verbose")
	}
	return args
}

// ForGOOS picks the invocation for the given platform.
func ForGOOS(goos string) Invocation {
	if goos == "windows" {
		return WindowsInvocation{}
	}
	return PosixInvocation{}
}
