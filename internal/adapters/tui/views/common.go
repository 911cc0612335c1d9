package views

import (
	"strings"

	"plovermd/internal/adapters/tui/styles"
	"plovermd/internal/application"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// RenderMessage renders the current message, if any
func (s *ViewState) RenderMessage() string {
	if s.Message == "" {
		return ""
	}
	if s.MessageErr {
		return styles.ErrorMsg.Render(s.Message)
	}
	return styles.Success.Render(s.Message)
}

// Messages for view switching
type SwitchToBrowserMsg struct{}

type SwitchToHelpMsg struct{}

// SwitchToFormMsg opens the entry form. A nil Entry starts a new translation.
type SwitchToFormMsg struct {
	Entry *application.Entry
}

type SwitchToDeleteMsg struct {
	Entry application.Entry
}

// OpenEditorMsg asks the app to open the dictionary in the external editor
type OpenEditorMsg struct {
	Path string
	Line int
}

// EntrySubmitMsg carries a translation from the entry form.
// Original is set when an existing entry was edited.
type EntrySubmitMsg struct {
	Original    *application.Key
	Key         application.Key
	Translation string
}

// DeleteConfirmedMsg is sent when the user confirms a deletion
type DeleteConfirmedMsg struct {
	Key application.Key
}

// displayTranslation makes newlines and edge blanks visible on a single row
func displayTranslation(t string) string {
	if t == "" {
		return styles.EntryEscape.Render("∅")
	}

	trimmed := strings.TrimLeft(t, " \t")
	lead := t[:len(t)-len(trimmed)]
	body := strings.TrimRight(trimmed, " \t")
	trail := trimmed[len(body):]

	var b strings.Builder
	if lead != "" {
		b.WriteString(styles.EntryEscape.Render(strings.Repeat("·", len(lead))))
	}
	for i, part := range strings.Split(body, "\n") {
		if i > 0 {
			b.WriteString(styles.EntryEscape.Render("↵"))
		}
		b.WriteString(part)
	}
	if trail != "" {
		b.WriteString(styles.EntryEscape.Render(strings.Repeat("·", len(trail))))
	}
	return b.String()
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
