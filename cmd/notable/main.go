package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/notable/internal/app"
	"github.com/marcus/notable/internal/config"
	"github.com/marcus/notable/internal/note"
	"github.com/marcus/notable/internal/state"
	"github.com/marcus/notable/internal/store"
	"github.com/marcus/notable/internal/styles"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	storePath    = flag.String("store", "", "path to the notes file")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("notable version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Load persistent state (ignore errors - state is optional)
	_ = state.Init()

	if err := styles.ApplyTheme(cfg.UI.Theme.Name); err != nil {
		logger.Warn("unknown theme, using default", "theme", cfg.UI.Theme.Name)
	}

	notesPath := resolveStorePath(cfg)
	fileStore := store.NewFileStore(notesPath, logger)
	notes := note.NewModel(fileStore)

	// Watch the notes file so external edits show up live. Watching is best
	// effort; the app works without it.
	changes, stopWatch, err := store.Watch(notesPath)
	if err != nil {
		logger.Warn("store watch unavailable", "error", err)
		changes, stopWatch = nil, nil
	}

	model := app.New(cfg, notes, fileStore, changes, stopWatch, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// resolveStorePath picks the notes file location: -store flag, then config,
// then the default under ~/.config/notable.
func resolveStorePath(cfg *config.Config) string {
	if *storePath != "" {
		return config.ExpandPath(*storePath)
	}
	if cfg.Store.Path != "" {
		return config.ExpandPath(cfg.Store.Path)
	}
	return store.DefaultPath()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}

	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: notable [options]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal notes manager.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
