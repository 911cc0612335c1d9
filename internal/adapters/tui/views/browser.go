package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"plovermd/internal/adapters/tui/styles"
	"plovermd/internal/application"
	"plovermd/internal/application/commands"
	"plovermd/internal/domain"
	"plovermd/internal/logger"
	"plovermd/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Filter   key.Binding
	Clear    key.Binding
	Edit     key.Binding
	New      key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Save     key.Binding
	Open     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "previous page"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Save: key.NewBinding(
		key.WithKeys("s", "ctrl+s"),
		key.WithHelp("s", "save"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in editor"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// chrome is the number of rows taken by everything but the entry list
const chrome = 10

// maxRowLines caps how many lines of a multi-line translation the list shows
const maxRowLines = 4

// BrowserModel lists the translations of the dictionary. It holds the loaded
// document; edits stay in memory until saved.
type BrowserModel struct {
	ViewState
	repo    ports.DictionaryRepository
	log     *zap.SugaredLogger
	copyFn  func(string) error
	doc     *domain.Document
	entries []application.Entry // visible entries, filtered and ranked
	pager   *Paginator
	filter  textinput.Model

	filtering   bool
	dirty       bool
	confirmQuit bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(repo ports.DictionaryRepository, log *zap.SugaredLogger) *BrowserModel {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "strokes or translation"

	return &BrowserModel{
		repo:   repo,
		log:    logger.OrNop(log),
		copyFn: clipboard.WriteAll,
		pager:  NewPaginator(20),
		filter: filter,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadDictionary
}

func (m *BrowserModel) loadDictionary() tea.Msg {
	doc, err := commands.LoadOrNew(m.repo)
	if err != nil {
		return errMsg{err}
	}
	return dictionaryLoadedMsg{doc}
}

type dictionaryLoadedMsg struct {
	doc *domain.Document
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case dictionaryLoadedMsg:
		m.doc = msg.doc
		m.dirty = false
		m.refreshEntries()
		m.log.Debugw("Dictionary loaded", "path", m.repo.Path(), "entries", m.doc.Len())
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m, m.updateFilter(msg)
		}
		if m.doc == nil {
			if key.Matches(msg, BrowserKeys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}

		m.ClearMessage()
		if !key.Matches(msg, BrowserKeys.Quit) {
			m.confirmQuit = false
		}

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			if m.dirty && !m.confirmQuit {
				m.confirmQuit = true
				m.SetMessage("Unsaved changes: press s to save or q again to quit without saving", true)
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.PageUp):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.PageDown):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.Home):
			m.pager.Home()
			return m, nil

		case key.Matches(msg, BrowserKeys.End):
			m.pager.End()
			return m, nil

		case key.Matches(msg, BrowserKeys.Filter):
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink

		case key.Matches(msg, BrowserKeys.Clear):
			if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.refreshEntries()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			if entry := m.SelectedEntry(); entry != nil {
				return m, func() tea.Msg { return SwitchToFormMsg{Entry: entry} }
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.New):
			return m, func() tea.Msg { return SwitchToFormMsg{} }

		case key.Matches(msg, BrowserKeys.Delete):
			if entry := m.SelectedEntry(); entry != nil {
				return m, func() tea.Msg { return SwitchToDeleteMsg{Entry: *entry} }
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			if entry := m.SelectedEntry(); entry != nil {
				return m, m.copyTranslation(*entry)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Save):
			m.Save()
			return m, nil

		case key.Matches(msg, BrowserKeys.Open):
			return m, m.openEditor()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}
	}

	return m, nil
}

func (m *BrowserModel) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.refreshEntries()
		return nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refreshEntries()
	return cmd
}

func (m *BrowserModel) copyTranslation(entry application.Entry) tea.Cmd {
	return func() tea.Msg {
		if err := m.copyFn(entry.Translation); err != nil {
			return errMsg{fmt.Errorf("failed to copy: %w", err)}
		}
		return successMsg{fmt.Sprintf("Copied translation of %s", entry.Key)}
	}
}

// openEditor saves pending changes so the editor sees them, then asks the
// app to open the file on the selected entry's line
func (m *BrowserModel) openEditor() tea.Cmd {
	if m.dirty && !m.Save() {
		return nil
	}

	line := 0
	if entry := m.SelectedEntry(); entry != nil {
		line = m.doc.LineOf(entry.Key)
	}
	path := m.repo.Path()
	return func() tea.Msg { return OpenEditorMsg{Path: path, Line: line} }
}

// Apply stores a translation from the entry form
func (m *BrowserModel) Apply(msg EntrySubmitMsg) error {
	if m.doc == nil {
		return fmt.Errorf("dictionary not loaded")
	}
	if err := m.doc.Set(msg.Key, msg.Translation); err != nil {
		return err
	}
	if msg.Original != nil && *msg.Original != msg.Key {
		m.doc.Delete(*msg.Original)
	}

	m.dirty = true
	m.refreshEntries()
	m.selectKey(msg.Key)
	m.SetMessage(fmt.Sprintf("Set %s (unsaved)", msg.Key), false)
	return nil
}

// Remove deletes a translation from the loaded dictionary
func (m *BrowserModel) Remove(k application.Key) {
	if m.doc == nil || !m.doc.Delete(k) {
		return
	}
	m.dirty = true
	m.refreshEntries()
	m.SetMessage(fmt.Sprintf("Deleted %s (unsaved)", k), false)
}

// Save writes the dictionary, reporting success
func (m *BrowserModel) Save() bool {
	if m.doc == nil {
		return false
	}
	if err := m.repo.Save(m.doc); err != nil {
		m.SetMessage(fmt.Sprintf("Save failed: %v", err), true)
		return false
	}
	m.dirty = false
	m.confirmQuit = false
	m.SetMessage(fmt.Sprintf("Saved %d translations to %s", m.doc.Len(), m.repo.Path()), false)
	return true
}

// Dirty reports whether there are unsaved changes
func (m *BrowserModel) Dirty() bool {
	return m.dirty
}

// Entries returns the visible entries
func (m *BrowserModel) Entries() []application.Entry {
	return m.entries
}

// SelectedEntry returns a copy of the entry under the cursor
func (m *BrowserModel) SelectedEntry() *application.Entry {
	i := m.pager.Cursor()
	if i >= 0 && i < len(m.entries) {
		entry := m.entries[i]
		return &entry
	}
	return nil
}

func (m *BrowserModel) selectKey(k application.Key) {
	for i, e := range m.entries {
		if e.Key == k {
			m.pager.SetCursor(i)
			return
		}
	}
}

// refreshEntries rebuilds the visible list: file order without a filter,
// best fuzzy matches first with one
func (m *BrowserModel) refreshEntries() {
	if m.doc == nil {
		return
	}

	all := make([]application.Entry, 0, m.doc.Len())
	for k, v := range m.doc.All() {
		all = append(all, application.Entry{Key: k, Translation: v})
	}

	query := strings.TrimSpace(m.filter.Value())
	if query == "" {
		m.entries = all
	} else {
		results := commands.FuzzySort(all, query)
		m.entries = make([]application.Entry, len(results))
		for i, r := range results {
			m.entries[i] = r.Entry
		}
	}
	heights := make([]int, len(m.entries))
	for i, e := range m.entries {
		heights[i] = rowHeight(e.Translation)
	}
	m.pager.SetRows(heights)
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.doc == nil {
		if m.Message != "" {
			return styles.App.Render(m.RenderMessage())
		}
		return "Loading..."
	}

	var b strings.Builder

	title := styles.Title.Render("plovermd")
	if m.dirty {
		title += " " + styles.Modified.Render("[modified]")
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(m.repo.Path()))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.entries) == 0 {
		if m.filter.Value() != "" {
			b.WriteString(styles.MutedText.Render("No matches"))
		} else {
			b.WriteString(styles.MutedText.Render("No translations yet, press n to add one"))
		}
		b.WriteString("\n")
	} else {
		start, end := m.pager.VisibleRange()
		width := keyColumnWidth(m.entries[start:end])
		for i := start; i < end; i++ {
			b.WriteString(m.renderEntry(m.entries[i], width, i == m.pager.Cursor()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.StatusText.Render(fmt.Sprintf("%d of %d translations  page %d/%d",
		len(m.entries), m.doc.Len(), m.pager.CurrentPage(), m.pager.TotalPages())))
	b.WriteString("\n")

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func keyColumnWidth(entries []application.Entry) int {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key))
	}
	return min(width, 32)
}

// rowHeight is the number of lines renderEntry takes for a translation
func rowHeight(translation string) int {
	return min(strings.Count(translation, "\n")+1, maxRowLines)
}

// renderEntry writes the key and the first line of the translation on one
// line. Further lines of a multi-line translation go below it, aligned with
// the translation column.
func (m *BrowserModel) renderEntry(entry application.Entry, width int, selected bool) string {
	k := padRight(entry.Key.String(), width)
	if selected {
		k = styles.EntrySelected.Render(k)
	} else {
		k = styles.EntryKey.Render(k)
	}

	lines := []string{entry.Translation}
	if strings.Contains(entry.Translation, "\n") {
		lines = strings.Split(entry.Translation, "\n")
	}
	hidden := len(lines) - maxRowLines
	if hidden > 0 {
		lines = lines[:maxRowLines]
	}

	indent := strings.Repeat(" ", width+2)
	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(k + "  ")
		} else {
			b.WriteString("\n" + indent)
		}
		text := displayTranslation(line)
		if !selected {
			text = styles.EntryTranslation.Render(text)
		}
		b.WriteString(text)
	}
	if hidden > 0 {
		b.WriteString(styles.EntryEscape.Render(fmt.Sprintf(" (+%d lines)", hidden)))
	}
	return b.String()
}

func (m *BrowserModel) renderHelpLine() string {
	if m.filtering {
		return styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("keep filter") +
			styles.HelpSeparator.String() +
			styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("clear")
	}

	keys := []key.Binding{
		BrowserKeys.Filter,
		BrowserKeys.Edit,
		BrowserKeys.New,
		BrowserKeys.Delete,
		BrowserKeys.Copy,
		BrowserKeys.Save,
		BrowserKeys.Open,
		BrowserKeys.Help,
		BrowserKeys.Quit,
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.Help().Key),
			styles.HelpDesc.Render(k.Help().Desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetLines(max(height-chrome, 5))
	m.filter.Width = max(width-10, 20)
}

// Reload reloads the dictionary from disk, dropping unsaved changes
func (m *BrowserModel) Reload() tea.Cmd {
	return m.loadDictionary
}
