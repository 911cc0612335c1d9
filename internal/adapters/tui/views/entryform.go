package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"plovermd/internal/adapters/tui/styles"
	"plovermd/internal/application"
)

const (
	fieldStrokes = iota
	fieldTranslation
)

// EntryFormModel is the model for adding and editing a translation
type EntryFormModel struct {
	ViewState
	form     *InputForm
	original *application.Key // nil when adding
}

// NewEntryFormModel creates a new entry form
func NewEntryFormModel() *EntryFormModel {
	return &EntryFormModel{
		form: NewInputForm(
			NewInputField("Strokes", "HEL/HRO", "Separate strokes with / or spaces", 200),
			NewInputField("Translation", "hello", `Plover syntax, e.g. {^ing} or {,}`, 0),
		),
	}
}

// SetEntry prepares the form. A nil entry starts a new translation.
func (m *EntryFormModel) SetEntry(entry *application.Entry) {
	m.ClearMessage()
	m.form.Reset()

	if entry == nil {
		m.original = nil
		return
	}

	original := entry.Key
	m.original = &original
	m.form.SetValue(fieldStrokes, entry.Key.String())
	m.form.SetValue(fieldTranslation, strings.ReplaceAll(entry.Translation, "\n", `\n`))
	m.form.SetFocus(fieldTranslation)
}

// Editing reports whether the form edits an existing entry
func (m *EntryFormModel) Editing() bool {
	return m.original != nil
}

// Init initializes the form
func (m *EntryFormModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the form
func (m *EntryFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *EntryFormModel) submit() tea.Cmd {
	k, err := application.ParseStrokes("strokes", m.form.Value(fieldStrokes))
	if err != nil {
		m.SetMessage(err.Error(), true)
		m.form.SetFocus(fieldStrokes)
		return nil
	}

	// A single-line input cannot hold a newline, so \n stands for one
	translation := strings.ReplaceAll(m.form.RawValue(fieldTranslation), `\n`, "\n")
	if translation == "" {
		m.SetMessage("translation: translation is required", true)
		m.form.SetFocus(fieldTranslation)
		return nil
	}

	submit := EntrySubmitMsg{
		Original:    m.original,
		Key:         k,
		Translation: translation,
	}
	return func() tea.Msg { return submit }
}

// View renders the form
func (m *EntryFormModel) View() string {
	var b strings.Builder

	title := "New Translation"
	if m.Editing() {
		title = "Edit Translation"
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	for i := range m.form.Fields {
		b.WriteString(m.form.RenderField(i))
		b.WriteString("\n\n")
	}

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.RenderHelp("save"))

	return styles.App.Render(b.String())
}
