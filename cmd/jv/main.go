package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"jv/internal/app"
	"jv/internal/config"
	"jv/internal/document"
	"jv/internal/ui/theme"
	"jv/internal/watch"
)

var (
	flagJSON       bool
	flagTheme      string
	flagConfigPath string
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:           "jv <file>",
	Short:         "Read-only terminal viewer for JSON and plain text files",
	Args:          cobra.ExactArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "parse the file as JSON regardless of extension")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme (default, catppuccin-mocha)")
	rootCmd.Flags().StringVar(&flagConfigPath, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "log debug output to jv.log")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}
	if flagTheme != "" {
		cfg.UI.Theme = flagTheme
	}
	if flagDebug {
		cfg.Log.Level = "debug"
		if cfg.Log.File == "" {
			cfg.Log.File = "jv.log"
		}
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// Load before the TUI starts so IO and parse errors print normally.
	th := theme.GetTheme(cfg.UI.Theme)
	doc, err := document.Load(args[0], flagJSON, th.Palette())
	if err != nil {
		return err
	}

	var watcher *watch.Watcher
	if cfg.Watch.Enabled {
		watcher, err = watch.New(doc.Path, logger)
		if err != nil {
			logger.Warn("file watching unavailable", "err", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(app.New(cfg, doc, flagJSON, watcher, logger), opts...)
	_, err = p.Run()
	return err
}

// newLogger builds the file-backed logger. The TUI owns the terminal, so
// without a log file everything is discarded.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeLog := func() {}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}

	logger := log.New(out)
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger, closeLog, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
