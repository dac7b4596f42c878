package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cli/safeexec"

	"github.com/filefy/wordsearch-tui/internal/model"
)

// Runner executes the platform search script inside the install
// directory and captures its output.
type Runner struct {
	dir string
	inv Invocation
}

func NewRunner(dir string, inv Invocation) *Runner {
	return &Runner{dir: dir, inv: inv}
}

func (r *Runner) Dir() string { return r.dir }

// ResultsPath is where the script leaves its CSV output.
func (r *Runner) ResultsPath() string {
	return filepath.Join(r.dir, ResultsFile)
}

// WriteListFiles persists the term and regex lists the script reads.
// An empty list leaves any existing file in place; the scripts skip
// list files that do not exist.
func (r *Runner) WriteListFiles(req model.SearchRequest) error {
	if err := r.writeList(TermsFile, req.Terms); err != nil {
		return err
	}
	return r.writeList(RegexFile, req.RegexPatterns)
}

func (r *Runner) writeList(name string, entries []string) error {
	if len(entries) == 0 {
		return nil
	}
	var buf bytes.Buffer
	for _, entry := range entries {
		buf.WriteString(entry)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(filepath.Join(r.dir, name), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Run invokes the search script and waits for it to finish. A script
// that started but exited non-zero is reported through the result's
// ExitCode, not the error.
func (r *Runner) Run(ctx context.Context, req model.SearchRequest) (model.ProcessResult, error) {
	exe, err := safeexec.LookPath(r.inv.Command())
	if err != nil {
		return model.ProcessResult{}, fmt.Errorf("failed to run search: %w", err)
	}
	cmd := exec.CommandContext(ctx, exe, r.inv.Args(req)...)
	cmd.Dir = r.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return model.ProcessResult{}, fmt.Errorf("failed to run search: %w", err)
		}
	}
	return model.ProcessResult{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
