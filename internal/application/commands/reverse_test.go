package commands

import (
	"context"
	"errors"
	"testing"

	"plovermd/internal/application"
)

func TestReverseLookupCommand(t *testing.T) {
	repo := newMemoryRepo(simpleDictionary + "```yaml\nHE/HROE: hello\n```\n")
	index := &memoryIndex{}

	result, err := NewReverseLookupCommand(repo, index, "hello").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Rebuilt {
		t.Error("expected the first lookup to build the index")
	}
	if len(result.Entries) != 2 {
		t.Fatalf("expected 2 outlines, got %v", result.Entries)
	}

	t.Run("unchanged dictionary reuses the index", func(t *testing.T) {
		result, err := NewReverseLookupCommand(repo, index, "test").Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Rebuilt || index.rebuilds != 1 {
			t.Errorf("expected no rebuild, got %d rebuilds", index.rebuilds)
		}
		if len(result.Entries) != 1 || result.Entries[0].Key != "TEFT" {
			t.Errorf("expected TEFT, got %v", result.Entries)
		}
	})

	t.Run("saved dictionary triggers a rebuild", func(t *testing.T) {
		if _, err := NewAddCommand(repo, "TEFTS", "test").Execute(context.Background()); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		result, err := NewReverseLookupCommand(repo, index, "test").Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Rebuilt {
			t.Error("expected a rebuild after save")
		}
		if len(result.Entries) != 2 {
			t.Errorf("expected 2 outlines, got %v", result.Entries)
		}
	})
}

func TestReverseLookupCommand_Validate(t *testing.T) {
	t.Run("translation is required", func(t *testing.T) {
		err := NewReverseLookupCommand(nil, &memoryIndex{}, "").Validate()
		var valErr *application.ValidationError
		if !errors.As(err, &valErr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})

	t.Run("index is required", func(t *testing.T) {
		err := NewReverseLookupCommand(nil, nil, "test").Validate()
		if !errors.Is(err, application.ErrIndexDisabled) {
			t.Errorf("expected ErrIndexDisabled, got %v", err)
		}
	})
}
