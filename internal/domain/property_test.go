package domain

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// keyGenerator generates valid multi-stroke keys
func keyGenerator() *rapid.Generator[Key] {
	return rapid.Custom(func(t *rapid.T) Key {
		strokes := rapid.SliceOfN(rapid.StringMatching(`[#*STKPWHRAOEUFBLGDZ0-9-]{1,6}`), 1, 3).Draw(t, "strokes")
		return Key(strings.Join(strokes, StrokeSeparator))
	})
}

// translationGenerator generates translations the format can carry without loss.
// A newline forces the unquoted form, which cannot also hold a literal
// backslash-n or leading and trailing blanks.
func translationGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-zA-Z0-9 \t#'"\\{}^~|!?.,\n]{0,20}`).Filter(func(s string) bool {
		if !strings.Contains(s, "\n") {
			return true
		}
		masked := strings.ReplaceAll(s, "\n", "x")
		return !strings.Contains(s, `\n`) && strings.TrimSpace(masked) == masked
	})
}

func testEntry_Roundtrip_Properties(t *rapid.T) {
	key := keyGenerator().Draw(t, "key")
	value := translationGenerator().Draw(t, "value")

	e := newEntry(key, value)
	line := e.String()

	parsed, err := ParseEntry(line)
	if err != nil {
		t.Fatalf("ParseEntry(%q) failed: %v", line, err)
	}
	if parsed.Key != key {
		t.Fatalf("key mismatch: expected %q, got %q", key, parsed.Key)
	}
	if parsed.Value.Text != value {
		t.Fatalf("value mismatch: expected %q, got %q (line %q)", value, parsed.Value.Text, line)
	}
	if again := parsed.String(); again != line {
		t.Fatalf("serialization mismatch: expected %q, got %q", line, again)
	}
}

func TestEntry_Roundtrip_Properties(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testEntry_Roundtrip_Properties)
}

func FuzzEntry_Roundtrip_Properties(f *testing.F) {
	f.Add([]byte{0x00})
	f.Fuzz(rapid.MakeFuzz(testEntry_Roundtrip_Properties))
}

func testDocument_SaveReload_Properties(t *rapid.T) {
	d, err := ParseDocument(testDictionary)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	keys := []Key{"SPWREU", "S-G", "TEFT", "HEL/HRO", "#S"}
	ops := rapid.IntRange(0, 20).Draw(t, "ops")
	for i := 0; i < ops; i++ {
		key := rapid.SampledFrom(keys).Draw(t, "key")
		switch rapid.IntRange(0, 3).Draw(t, "op") {
		case 0, 1:
			value := translationGenerator().Filter(func(s string) bool { return s != "" }).Draw(t, "value")
			if err := d.Set(key, value); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
		case 2:
			d.Delete(key)
		case 3:
			if d, err = ParseDocument(d.Save()); err != nil {
				t.Fatalf("reload failed: %v", err)
			}
		}
	}

	// Property: saving is idempotent
	first := d.Save()
	if second := d.Save(); first != second {
		t.Fatalf("repeated saves differ:\n%s\n---\n%s", first, second)
	}

	// Property: the saved text carries exactly the mapping
	reloaded, err := ParseDocument(first)
	if err != nil {
		t.Fatalf("saved text does not parse: %v\n%s", err, first)
	}
	if reloaded.Len() != d.Len() {
		t.Fatalf("expected %d translations after reload, got %d", d.Len(), reloaded.Len())
	}
	for k, v := range d.All() {
		if got, ok := reloaded.Get(k); !ok || got != v {
			t.Fatalf("translation %q: expected %q, got %q (present %v)", k, v, got, ok)
		}
	}

	// Property: an unmodified reload saves to the same text
	if again := reloaded.Save(); again != first {
		t.Fatalf("reloaded save differs:\n%s\n---\n%s", first, again)
	}
}

func TestDocument_SaveReload_Properties(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testDocument_SaveReload_Properties)
}

func FuzzDocument_SaveReload_Properties(f *testing.F) {
	f.Add([]byte{0x00})
	f.Fuzz(rapid.MakeFuzz(testDocument_SaveReload_Properties))
}
