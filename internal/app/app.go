// Package app wires the document, the viewport and the status line into the
// bubbletea program.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"jv/internal/config"
	"jv/internal/document"
	"jv/internal/jsondoc"
	"jv/internal/ui"
	"jv/internal/ui/components"
	"jv/internal/ui/theme"
	"jv/internal/view"
	"jv/internal/watch"
)

// statusRows is the number of terminal rows reserved under the viewport.
const statusRows = 1

// fileChangedMsg is sent when the viewed file was written on disk.
type fileChangedMsg struct{}

// App is the main application model
type App struct {
	cfg    *config.Config
	theme  theme.Theme
	keys   ui.KeyMap
	logger *log.Logger

	doc       *document.Document
	forceJSON bool
	vp        *view.Viewport[view.Line]
	status    *components.StatusLine
	help      help.Model
	showHelp  bool

	watcher *watch.Watcher

	width  int
	height int
}

// New creates the app around an already loaded document. watcher may be nil
// when file watching is disabled.
func New(cfg *config.Config, doc *document.Document, forceJSON bool, watcher *watch.Watcher, logger *log.Logger) *App {
	th := theme.GetTheme(cfg.UI.Theme)

	status := components.NewStatusLine(th, cfg.History.MaxEntries)
	status.SetFile(filepath.Base(doc.Path))
	status.SetPosition(0, 0)

	hm := help.New()
	hm.ShowAll = true

	return &App{
		cfg:       cfg,
		theme:     th,
		keys:      ui.DefaultKeyMap(),
		logger:    logger,
		doc:       doc,
		forceJSON: forceJSON,
		status:    status,
		help:      hm,
		watcher:   watcher,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.waitForChange()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.status.SetWidth(msg.Width)
		a.rebuildViewport()
		return a, nil

	case fileChangedMsg:
		a.reload()
		return a, a.waitForChange()

	case tea.MouseMsg:
		if a.vp == nil || a.showHelp || a.status.Mode() != components.ModeNone {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.vp.MoveUp()
		case tea.MouseButtonWheelDown:
			a.vp.MoveDown()
		}
		row, col := a.vp.Position()
		a.status.SetPosition(row, col)
		return a, nil

	case tea.KeyMsg:
		if a.status.HasError() {
			a.status.ClearError()
		}
		if a.showHelp {
			return a.updateHelp(msg)
		}
		if a.status.Mode() != components.ModeNone {
			return a.updateStatusInput(msg)
		}
		return a.updateView(msg)
	}
	return a, nil
}

// updateView handles keys while the viewport has focus.
func (a *App) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.vp == nil {
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
	case key.Matches(msg, a.keys.Up):
		a.vp.MoveUp()
	case key.Matches(msg, a.keys.Down):
		a.vp.MoveDown()
	case key.Matches(msg, a.keys.Left):
		a.vp.MoveLeft()
	case key.Matches(msg, a.keys.Right):
		a.vp.MoveRight()
	case key.Matches(msg, a.keys.SOL):
		a.vp.MoveToSOL()
	case key.Matches(msg, a.keys.EOL):
		a.vp.MoveToEOL()
	case key.Matches(msg, a.keys.PageUp):
		a.vp.PageUp()
	case key.Matches(msg, a.keys.PageDown):
		a.vp.PageDown()
	case key.Matches(msg, a.keys.Command):
		a.status.Activate(components.ModeCommand)
	case key.Matches(msg, a.keys.Query):
		if a.doc.Kind != document.KindJSON {
			a.status.Error("not a JSON document")
		} else {
			a.status.Activate(components.ModeQuery)
		}
	case key.Matches(msg, a.keys.Follow):
		a.followRef()
	case key.Matches(msg, a.keys.Yank):
		a.yank()
	}

	row, col := a.vp.Position()
	a.status.SetPosition(row, col)
	return a, nil
}

// updateStatusInput handles keys while the status line collects input.
func (a *App) updateStatusInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		mode := a.status.Mode()
		text := a.status.Submit()
		a.execute(mode, text)
	case "esc":
		a.status.Deactivate()
	case "backspace":
		if a.status.Backspace() {
			a.status.Deactivate()
		}
	case "left":
		a.status.Left()
	case "right":
		a.status.Right()
	case "up":
		a.status.HistoryPrev()
	case "down":
		a.status.HistoryNext()
	case " ":
		a.status.Insert(' ')
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				a.status.Insert(r)
			}
		}
	}

	if a.vp != nil {
		row, col := a.vp.Position()
		a.status.SetPosition(row, col)
	}
	return a, nil
}

// updateHelp handles keys while the help overlay is shown.
func (a *App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	a.showHelp = false
	return a, nil
}

// execute runs a submitted command or query.
func (a *App) execute(mode components.Mode, text string) {
	if a.vp == nil {
		return
	}
	switch mode {
	case components.ModeCommand:
		curRow, curCol := a.vp.Position()
		row, col, err := parseGoto(text, curRow, curCol)
		if err != nil {
			a.status.Error(err.Error())
			return
		}
		a.logger.Debug("goto", "row", row, "col", col)
		a.vp.Goto(row, col)
	case components.ModeQuery:
		a.gotoPath(queryKey(text))
	}
	row, col := a.vp.Position()
	a.status.SetPosition(row, col)
}

// gotoPath moves the cursor to the value a canonical path names.
func (a *App) gotoPath(path string) {
	pos, ok := a.doc.Index.Lookup(path)
	if !ok {
		a.status.Error(fmt.Sprintf("%s not found", path))
		return
	}
	a.logger.Debug("jump", "path", path, "row", pos.Row, "col", pos.Col)
	a.vp.Goto(pos.Row, pos.Col)
}

// followRef jumps to the target of the reference under the cursor.
func (a *App) followRef() {
	row, col := a.vp.Position()
	l, ok := a.vp.Line(row)
	if !ok {
		return
	}
	jl, ok := l.(*jsondoc.Line)
	if !ok {
		return
	}
	if path, ok := jl.RefAt(col); ok {
		a.gotoPath(path)
	}
}

// yank copies the current line's text to the system clipboard.
func (a *App) yank() {
	row, _ := a.vp.Position()
	l, ok := a.vp.Line(row)
	if !ok {
		return
	}

	tl, ok := l.(interface{ Text() string })
	if !ok {
		return
	}
	if err := clipboard.WriteAll(tl.Text()); err != nil {
		a.status.Error(fmt.Sprintf("yank failed: %v", err))
	}
}

// reload re-parses the file after a change on disk. A failed parse keeps the
// current document and reports on the status line.
func (a *App) reload() {
	doc, err := document.Load(a.doc.Path, a.forceJSON, a.theme.Palette())
	if err != nil {
		a.logger.Warn("reload failed", "err", err)
		a.status.Error(fmt.Sprintf("reload failed: %v", err))
		return
	}

	a.logger.Debug("reloaded", "path", doc.Path, "lines", len(doc.Lines))
	a.doc = doc
	a.rebuildViewport()
}

// rebuildViewport builds a fresh viewport for the current document and
// terminal size, restoring the cursor position.
func (a *App) rebuildViewport() {
	if a.width == 0 || a.height <= statusRows {
		return
	}

	row, col := 0, 0
	if a.vp != nil {
		row, col = a.vp.Position()
	}

	a.vp = view.New(a.width, a.height-statusRows, a.doc.Lines, a.cfg.UI.LineNumbers, a.theme.ViewStyles())
	a.vp.Goto(row, col)
	row, col = a.vp.Position()
	a.status.SetPosition(row, col)
}

// waitForChange blocks on the file watcher as a bubbletea command.
func (a *App) waitForChange() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-a.watcher.Changes(); !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// View implements tea.Model
func (a *App) View() string {
	if a.vp == nil {
		return ""
	}
	if a.showHelp {
		return lipgloss.Place(
			a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			a.help.View(a.keys),
		)
	}
	return a.vp.View() + "\n" + a.status.View()
}
