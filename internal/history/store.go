package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/filefy/wordsearch-tui/internal/model"
)

// Entry is one recorded search run.
type Entry struct {
	ID            string    `json:"-"`
	RunAt         time.Time `json:"run_at"`
	SearchPath    string    `json:"search_path"`
	Terms         []string  `json:"terms"`
	RegexPatterns []string  `json:"regex_patterns"`
	CaseSensitive bool      `json:"case_sensitive"`
	Verbose       bool      `json:"verbose"`
	Succeeded     bool      `json:"succeeded"`
	ResultCount   int       `json:"result_count"`
}

func FromRequest(req model.SearchRequest, runAt time.Time, succeeded bool, resultCount int) Entry {
	return Entry{
		RunAt:         runAt,
		SearchPath:    req.SearchPath,
		Terms:         req.Terms,
		RegexPatterns: req.RegexPatterns,
		CaseSensitive: req.CaseSensitive,
		Verbose:       req.Verbose,
		Succeeded:     succeeded,
		ResultCount:   resultCount,
	}
}

func (e Entry) Request() model.SearchRequest {
	return model.SearchRequest{
		SearchPath:    e.SearchPath,
		Terms:         e.Terms,
		RegexPatterns: e.RegexPatterns,
		CaseSensitive: e.CaseSensitive,
		Verbose:       e.Verbose,
	}
}

// Store keeps one JSON file per recorded search under dir, capped at
// max entries.
type Store struct {
	dir string
	max int
}

func NewStore(dir string, max int) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	return &Store{dir: dir, max: max}, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) Append(e Entry) error {
	name := fmt.Sprintf("search-%d.json", e.RunAt.UnixNano())
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return fmt.Errorf("write history entry: %w", err)
	}
	return s.prune()
}

// List returns every readable entry, newest first. Unreadable files
// are skipped.
func (s *Store) List() ([]Entry, error) {
	files, err := s.entryFiles()
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(s.dir, f))
		if err != nil {
			continue
		}
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			continue
		}
		e.ID = f
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RunAt.After(entries[j].RunAt)
	})
	return entries, nil
}

func (s *Store) Delete(id string) error {
	if id == "" || filepath.Base(id) != id {
		return fmt.Errorf("invalid history id: %q", id)
	}
	if err := os.Remove(filepath.Join(s.dir, id)); err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}
	return nil
}

func (s *Store) Clear() error {
	files, err := s.entryFiles()
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := os.Remove(filepath.Join(s.dir, f)); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
	}
	return nil
}

// prune drops the oldest entries once the cap is exceeded. Entry file
// names sort chronologically, so lexicographic order is enough.
func (s *Store) prune() error {
	files, err := s.entryFiles()
	if err != nil {
		return err
	}
	if len(files) <= s.max {
		return nil
	}
	sort.Strings(files)
	for _, f := range files[:len(files)-s.max] {
		os.Remove(filepath.Join(s.dir, f))
	}
	return nil
}

func (s *Store) entryFiles() ([]string, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read history dir: %w", err)
	}
	var files []string
	for _, e := range dirEntries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "search-") && strings.HasSuffix(name, ".json") {
			files = append(files, name)
		}
	}
	return files, nil
}
