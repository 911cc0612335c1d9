package ports

import "os/exec"

// EditorOpener defines the interface for opening a dictionary in an external editor
type EditorOpener interface {
	// OpenFile opens path in the user's editor and waits for it to exit.
	// It uses $VISUAL or $EDITOR, falling back to common editors.
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening a file in the editor,
	// for bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)

	// CommandAt is like Command but places the cursor on a 1-based line
	// when the editor supports it
	CommandAt(path string, line int) (*exec.Cmd, error)
}
