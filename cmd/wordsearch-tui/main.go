package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/filefy/wordsearch-tui/internal/config"
	"github.com/filefy/wordsearch-tui/internal/history"
	"github.com/filefy/wordsearch-tui/internal/script"
	"github.com/filefy/wordsearch-tui/internal/tui"
	"github.com/filefy/wordsearch-tui/internal/ui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	scriptDir := flag.String("dir", "", "Directory holding the search scripts (default: the executable's directory)")
	themeName := flag.String("theme", "", "Color theme to start with")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("wordsearch-tui", version)
		os.Exit(0)
	}

	dir := *scriptDir
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dir = filepath.Dir(exe)
	}

	cfg := config.Default()
	cfgPath, err := config.DefaultPath()
	if err != nil {
		// No config dir available; settings stay session-only.
		cfgPath = ""
	} else {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if *themeName != "" {
		if _, ok := ui.ByName(*themeName); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", *themeName)
			if s := ui.Suggest(*themeName); s != "" {
				fmt.Fprintf(os.Stderr, "Did you mean %q?\n", s)
			}
			os.Exit(1)
		}
		cfg.Theme = *themeName
	}

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	store, err := history.NewStore(filepath.Join(cacheDir, "wordsearch-tui", "history"), cfg.HistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "History error: %v\n", err)
		os.Exit(1)
	}

	runner := script.NewRunner(dir, script.ForGOOS(runtime.GOOS))

	app := tui.NewApp(cfg, cfgPath, runner, store)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
