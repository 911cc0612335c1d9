package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"plovermd/internal/application"
)

func TestLookupCommand(t *testing.T) {
	repo := newMemoryRepo(simpleDictionary)

	tests := []struct {
		name     string
		strokes  string
		expected string
		wantErr  error
	}{
		{name: "single stroke", strokes: "TEFT", expected: "test"},
		{name: "slash separated", strokes: "HEL/HRO", expected: "hello"},
		{name: "space separated", strokes: "  HEL HRO ", expected: "hello"},
		{name: "missing", strokes: "S-G", wantErr: application.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewLookupCommand(repo, nil, tt.strokes).Execute(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Translation != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result.Translation)
			}
		})
	}
}

func TestLookupCommand_Index(t *testing.T) {
	t.Run("fresh index answers", func(t *testing.T) {
		repo := newMemoryRepo(simpleDictionary)
		index := &memoryIndex{}
		if _, err := RefreshIndex(repo, index); err != nil {
			t.Fatalf("RefreshIndex failed: %v", err)
		}
		repo.text = "not loadable\n```\n"

		result, err := NewLookupCommand(repo, index, "HEL/HRO").Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.FromIndex || result.Translation != "hello" {
			t.Errorf("expected hello from the index, got %+v", result)
		}

		_, err = NewLookupCommand(repo, index, "S-G").Execute(context.Background())
		if !errors.Is(err, application.ErrNotFound) {
			t.Errorf("expected ErrNotFound from the index, got %v", err)
		}
	})

	t.Run("stale index falls back to the dictionary", func(t *testing.T) {
		repo := newMemoryRepo(simpleDictionary)
		index := &memoryIndex{}
		if _, err := RefreshIndex(repo, index); err != nil {
			t.Fatalf("RefreshIndex failed: %v", err)
		}
		if _, err := NewAddCommand(repo, "HEL/HRO", "hi").Execute(context.Background()); err != nil {
			t.Fatalf("AddCommand failed: %v", err)
		}

		result, err := NewLookupCommand(repo, index, "HEL/HRO").Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.FromIndex || result.Translation != "hi" {
			t.Errorf("expected hi from the dictionary, got %+v", result)
		}
	})
}

func TestLookupCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		strokes string
		errMsg  string
	}{
		{name: "empty", strokes: "", errMsg: "strokes are required"},
		{name: "blank", strokes: "   ", errMsg: "strokes are required"},
		{name: "not steno", strokes: "hello", errMsg: "invalid strokes"},
		{name: "empty stroke", strokes: "TEFT//S", errMsg: "invalid strokes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewLookupCommand(nil, nil, tt.strokes).Validate()
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.errMsg)
			}
			var valErr *application.ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("expected ValidationError, got %T", err)
			}
			if !contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestAddCommand(t *testing.T) {
	t.Run("new key goes to the added section", func(t *testing.T) {
		repo := newMemoryRepo(simpleDictionary)

		result, err := NewAddCommand(repo, "S-G", "something").Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Replaced {
			t.Error("expected a new translation")
		}
		if !result.NewSection {
			t.Error("expected a new section to be started")
		}
		if result.Message != "Added S-G: something (new section)" {
			t.Errorf("unexpected message %q", result.Message)
		}

		expected := simpleDictionary + "\n## Added by Plover\n\n```yaml\nS-G: something\n```\n"
		if repo.text != expected {
			t.Errorf("expected:\n%s\ngot:\n%s", expected, repo.text)
		}

		result, err = NewAddCommand(repo, "SKWR", "joy").Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.NewSection || result.Message != "Added SKWR: joy" {
			t.Errorf("expected the existing section to be reused, got %+v", result)
		}
		if !strings.HasSuffix(repo.text, "S-G: something\nSKWR: joy\n```\n") {
			t.Errorf("expected SKWR after S-G, got:\n%s", repo.text)
		}
	})

	t.Run("existing key is updated in place", func(t *testing.T) {
		repo := newMemoryRepo(simpleDictionary)

		result, err := NewAddCommand(repo, "TEFT", "tested").Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Replaced || result.Previous != "test" {
			t.Errorf("expected replacement of %q, got %+v", "test", result)
		}

		expected := "# Dictionary\n```yaml\n(UPDATED) TEFT: tested\nHEL/HRO: hello\n```\n"
		if repo.text != expected {
			t.Errorf("expected:\n%s\ngot:\n%s", expected, repo.text)
		}
	})

	t.Run("missing dictionary is created", func(t *testing.T) {
		repo := newMemoryRepo("")
		repo.exists = false

		if _, err := NewAddCommand(repo, "TEFT", "test").Execute(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expected := "\n## Added by Plover\n\n```yaml\nTEFT: test\n```\n"
		if repo.text != expected {
			t.Errorf("expected %q, got %q", expected, repo.text)
		}
	})

	t.Run("translation is required", func(t *testing.T) {
		repo := newMemoryRepo(simpleDictionary)

		_, err := NewAddCommand(repo, "TEFT", "").Execute(context.Background())
		if err == nil || !contains(err.Error(), "translation is required") {
			t.Errorf("expected translation error, got %v", err)
		}
		if repo.saves != 0 {
			t.Error("expected no save after a validation error")
		}
	})

	t.Run("save errors are reported", func(t *testing.T) {
		repo := newMemoryRepo(simpleDictionary)
		repo.saveErr = errors.New("disk full")

		_, err := NewAddCommand(repo, "TEFT", "x").Execute(context.Background())
		if err == nil || !contains(err.Error(), "disk full") {
			t.Errorf("expected save error, got %v", err)
		}
	})
}

func TestDeleteCommand(t *testing.T) {
	t.Run("marks the line deleted", func(t *testing.T) {
		repo := newMemoryRepo(simpleDictionary)

		result, err := NewDeleteCommand(repo, "HEL/HRO").Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Translation != "hello" {
			t.Errorf("expected deleted translation %q, got %q", "hello", result.Translation)
		}

		expected := "# Dictionary\n```yaml\nTEFT: test\n(DELETED) HEL/HRO: hello\n```\n"
		if repo.text != expected {
			t.Errorf("expected:\n%s\ngot:\n%s", expected, repo.text)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		repo := newMemoryRepo(simpleDictionary)

		_, err := NewDeleteCommand(repo, "S-G").Execute(context.Background())
		var notFound *application.NotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if notFound.Key != "S-G" {
			t.Errorf("expected key S-G, got %s", notFound.Key)
		}
		if repo.saves != 0 {
			t.Error("expected no save for a missing key")
		}
	})
}

func TestListCommand(t *testing.T) {
	repo := newMemoryRepo(simpleDictionary)

	tests := []struct {
		name     string
		filter   string
		expected []application.Key
	}{
		{name: "all in file order", filter: "", expected: []application.Key{"TEFT", "HEL/HRO"}},
		{name: "filter on key", filter: "hel", expected: []application.Key{"HEL/HRO"}},
		{name: "filter on translation", filter: "TEST", expected: []application.Key{"TEFT"}},
		{name: "no match", filter: "zzz", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := NewListCommand(repo, tt.filter).Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(entries) != len(tt.expected) {
				t.Fatalf("expected %d entries, got %d: %v", len(tt.expected), len(entries), entries)
			}
			for i, e := range entries {
				if e.Key != tt.expected[i] {
					t.Errorf("entry %d: expected %s, got %s", i, tt.expected[i], e.Key)
				}
			}
		})
	}
}
