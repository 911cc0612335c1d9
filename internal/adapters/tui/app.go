package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"plovermd/internal/adapters/tui/views"
	"plovermd/internal/logger"
	"plovermd/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewForm
	ViewDelete
	ViewHelp
)

// App is the main TUI application model
type App struct {
	repo   ports.DictionaryRepository
	editor ports.EditorOpener
	log    *zap.SugaredLogger

	state   ViewState
	browser *views.BrowserModel
	form    *views.EntryFormModel
	delete  *views.DeleteModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. ed may be nil, which disables
// opening the dictionary in an editor.
func NewApp(repo ports.DictionaryRepository, ed ports.EditorOpener, log *zap.SugaredLogger) *App {
	log = logger.OrNop(log)
	return &App{
		repo:    repo,
		editor:  ed,
		log:     log,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(repo, log),
		form:    views.NewEntryFormModel(),
		delete:  views.NewDeleteModel(),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToFormMsg:
		a.state = ViewForm
		a.form.SetEntry(msg.Entry)
		return a, a.form.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.delete.SetTarget(msg.Entry)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil

	// Edits
	case views.EntrySubmitMsg:
		if err := a.browser.Apply(msg); err != nil {
			a.form.SetMessage(err.Error(), true)
			return a, nil
		}
		a.state = ViewBrowser
		return a, nil

	case views.DeleteConfirmedMsg:
		a.browser.Remove(msg.Key)
		a.state = ViewBrowser
		return a, nil

	case views.OpenEditorMsg:
		a.state = ViewBrowser
		return a, a.openEditor(msg.Path, msg.Line)

	case editorFinishedMsg:
		if msg.err != nil {
			a.browser.SetMessage(fmt.Sprintf("Editor failed: %v", msg.err), true)
		}
		return a, a.browser.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string, line int) tea.Cmd {
	if a.editor == nil {
		a.browser.SetMessage("No editor configured", true)
		return nil
	}

	cmd, err := a.editor.CommandAt(path, line)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	a.log.Debugw("Opening editor", "path", path, "line", line, "cmd", cmd.Args)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewForm:
		return a.form.View()
	case ViewDelete:
		return a.delete.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
