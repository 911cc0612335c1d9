package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"plovermd/internal/adapters/tui/styles"
)

// DeleteModel is the model for the delete confirmation view
type DeleteModel struct {
	ConfirmationModel
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel() *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg {
				if m.Target == nil {
					return SwitchToBrowserMsg{}
				}
				return DeleteConfirmedMsg{Key: m.Target.Key}
			},
			func() tea.Msg { return SwitchToBrowserMsg{} },
		)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete Translation"))
	b.WriteString("\n\n")

	b.WriteString(RenderTargetInfo(m.Target, "Delete"))
	b.WriteString("\n\n")

	b.WriteString(styles.MutedText.Render("  The line stays in the file, marked (DELETED), until you remove it."))
	b.WriteString("\n\n")

	b.WriteString(RenderConfirmPrompt("Are you sure?"))

	return styles.App.Render(b.String())
}
