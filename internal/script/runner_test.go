package script

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cli/safeexec"

	"github.com/filefy/wordsearch-tui/internal/model"
)

func TestWriteListFiles(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(dir, PosixInvocation{})

	req := model.SearchRequest{
		Terms:         []string{"alpha", "beta", "gamma"},
		RegexPatterns: []string{`^foo.*$`},
	}
	if err := r.WriteListFiles(req); err != nil {
		t.Fatalf("WriteListFiles: %v", err)
	}

	terms, err := os.ReadFile(filepath.Join(dir, TermsFile))
	if err != nil {
		t.Fatalf("read terms file: %v", err)
	}
	if string(terms) != "alpha\nbeta\ngamma\n" {
		t.Errorf("terms file = %q, want one entry per line", string(terms))
	}

	regex, err := os.ReadFile(filepath.Join(dir, RegexFile))
	if err != nil {
		t.Fatalf("read regex file: %v", err)
	}
	if string(regex) != "^foo.*$\n" {
		t.Errorf("regex file = %q", string(regex))
	}
}

func TestWriteListFilesEmptySkips(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(dir, PosixInvocation{})

	if err := r.WriteListFiles(model.SearchRequest{}); err != nil {
		t.Fatalf("WriteListFiles: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, TermsFile)); !os.IsNotExist(err) {
		t.Error("empty terms should not create a terms file")
	}
	if _, err := os.Stat(filepath.Join(dir, RegexFile)); !os.IsNotExist(err) {
		t.Error("empty patterns should not create a regex file")
	}
}

func TestWriteListFilesEmptyLeavesPrevious(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(dir, PosixInvocation{})

	if err := r.WriteListFiles(model.SearchRequest{Terms: []string{"old"}}); err != nil {
		t.Fatalf("WriteListFiles: %v", err)
	}
	// Second run with no terms: previous file stays.
	if err := r.WriteListFiles(model.SearchRequest{}); err != nil {
		t.Fatalf("WriteListFiles: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, TermsFile))
	if err != nil {
		t.Fatalf("read terms file: %v", err)
	}
	if string(data) != "old\n" {
		t.Errorf("terms file = %q, want previous content preserved", string(data))
	}
}

func TestRunCapturesOutputAndExitCode(t *testing.T) {
	if _, err := safeexec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}

	dir := t.TempDir()
	script := "#!/bin/bash\necho \"found 2 matches\"\necho \"oops\" >&2\nexit 0\n"
	if err := os.WriteFile(filepath.Join(dir, "File-FY.sh"), []byte(script), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}

	r := NewRunner(dir, PosixInvocation{})
	res, err := r.Run(context.Background(), model.SearchRequest{SearchPath: "."})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if !strings.Contains(res.Stdout, "found 2 matches") {
		t.Errorf("Stdout = %q, want script output", res.Stdout)
	}
	if !strings.Contains(res.Stderr, "oops") {
		t.Errorf("Stderr = %q, want script stderr", res.Stderr)
	}
}

func TestRunNonzeroExitIsNotAnError(t *testing.T) {
	if _, err := safeexec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}

	dir := t.TempDir()
	script := "#!/bin/bash\necho \"bad path\" >&2\nexit 3\n"
	if err := os.WriteFile(filepath.Join(dir, "File-FY.sh"), []byte(script), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}

	r := NewRunner(dir, PosixInvocation{})
	res, err := r.Run(context.Background(), model.SearchRequest{})
	if err != nil {
		t.Fatalf("nonzero exit should not surface as error, got %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "bad path") {
		t.Errorf("Stderr = %q, want captured stderr", res.Stderr)
	}
}

type missingInvocation struct{}

func (missingInvocation) Command() string { return "wordsearch-no-such-interpreter" }

func (missingInvocation) Args(model.SearchRequest) []string { return nil }

func TestRunSpawnFailure(t *testing.T) {
	r := NewRunner(t.TempDir(), missingInvocation{})
	_, err := r.Run(context.Background(), model.SearchRequest{})
	if err == nil {
		t.Fatal("expected an error for a missing interpreter")
	}
	if !strings.Contains(err.Error(), "failed to run search") {
		t.Errorf("error = %q, want a failed-to-run-search wrap", err)
	}
}
