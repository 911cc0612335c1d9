package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"plovermd/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("plovermd Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Markdown steno dictionary browser"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine(BrowserKeys.Up, BrowserKeys.Down))
	b.WriteString(helpLine(BrowserKeys.PageUp, BrowserKeys.PageDown))
	b.WriteString(helpLine(BrowserKeys.Home, BrowserKeys.End))
	b.WriteString(helpLine(BrowserKeys.Filter))
	b.WriteString(helpLine(BrowserKeys.Clear))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Editing"))
	b.WriteString("\n")
	b.WriteString(helpLine(BrowserKeys.New))
	b.WriteString(helpLine(BrowserKeys.Edit))
	b.WriteString(helpLine(BrowserKeys.Delete))
	b.WriteString(helpLine(BrowserKeys.Copy))
	b.WriteString(helpLine(BrowserKeys.Save))
	b.WriteString(helpLine(BrowserKeys.Open))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine(BrowserKeys.Help))
	b.WriteString(helpLine(BrowserKeys.Quit))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Markers"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Saving marks changed lines (UPDATED) and removed ones (DELETED)."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  New outlines go to the last \"Added by Plover\" section."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(`  In the form, \n in a translation stands for a newline.`))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

// helpLine renders bindings that share a row, e.g. up and down
func helpLine(bindings ...key.Binding) string {
	keys := make([]string, 0, len(bindings))
	descs := make([]string, 0, len(bindings))
	for _, b := range bindings {
		keys = append(keys, b.Help().Key)
		descs = append(descs, b.Help().Desc)
	}
	return "  " + styles.HelpKey.Render(padRight(strings.Join(keys, " / "), 20)) +
		styles.HelpDesc.Render(strings.Join(descs, ", ")) + "\n"
}
