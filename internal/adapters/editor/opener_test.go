package editor

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
)

func fakeOpener(env map[string]string, installed ...string) *Opener {
	return &Opener{
		getenv: func(key string) string { return env[key] },
		lookPath: func(name string) (string, error) {
			if slices.Contains(installed, name) {
				return filepath.Join("/usr/bin", name), nil
			}
			return "", errors.New("not found")
		},
	}
}

func TestCommandAt(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		installed []string
		line      int
		wantArgs  []string
	}{
		{
			name:     "editor from env",
			env:      map[string]string{"EDITOR": "vim"},
			wantArgs: []string{"vim", "dict.md"},
		},
		{
			name:     "visual wins over editor",
			env:      map[string]string{"EDITOR": "vim", "VISUAL": "nano"},
			wantArgs: []string{"nano", "dict.md"},
		},
		{
			name:     "editor with flags",
			env:      map[string]string{"EDITOR": "code --wait"},
			line:     12,
			wantArgs: []string{"code", "--wait", "dict.md"},
		},
		{
			name:     "line for vim",
			env:      map[string]string{"EDITOR": "/opt/bin/nvim"},
			line:     12,
			wantArgs: []string{"/opt/bin/nvim", "+12", "dict.md"},
		},
		{
			name:      "fallback to installed editor",
			env:       map[string]string{},
			installed: []string{"vi", "nano"},
			wantArgs:  []string{"/usr/bin/vi", "dict.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := fakeOpener(tt.env, tt.installed...)
			cmd, err := o.CommandAt("dict.md", tt.line)
			if err != nil {
				t.Fatalf("CommandAt failed: %v", err)
			}
			if !slices.Equal(cmd.Args, tt.wantArgs) {
				t.Errorf("expected args %v, got %v", tt.wantArgs, cmd.Args)
			}
		})
	}
}

func TestCommand_NoEditor(t *testing.T) {
	o := fakeOpener(map[string]string{})
	if _, err := o.Command("dict.md"); err == nil {
		t.Error("expected an error when no editor is available")
	}
}
