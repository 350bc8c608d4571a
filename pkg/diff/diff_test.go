package diff

import (
	"strings"
	"testing"
)

func joinByKind(parts []Part, kind Kind) string {
	var lines []string
	for _, p := range parts {
		if p.Kind == kind {
			lines = append(lines, p.Text)
		}
	}
	return strings.Join(lines, "\n")
}

func TestCompute_IdenticalInputs(t *testing.T) {
	text := "alpha\nbeta\ngamma\n"

	parts := Compute(text, text)
	for _, p := range parts {
		if p.Kind != Unchanged {
			t.Fatalf("part %+v, want only unchanged parts", p)
		}
	}
	if got := joinByKind(parts, Unchanged); got != "alpha\nbeta\ngamma" {
		t.Errorf("unchanged concatenation = %q", got)
	}
}

func TestCompute_EmptyOldIsAllAdded(t *testing.T) {
	parts := Compute("", "one\ntwo\n")
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}
	for _, p := range parts {
		if p.Kind != Added {
			t.Fatalf("part %+v, want only added parts", p)
		}
	}
	if got := joinByKind(parts, Added); got != "one\ntwo" {
		t.Errorf("added concatenation = %q", got)
	}
}

func TestCompute_EmptyNewIsAllRemoved(t *testing.T) {
	parts := Compute("one\ntwo\n", "")
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}
	for _, p := range parts {
		if p.Kind != Removed {
			t.Fatalf("part %+v, want only removed parts", p)
		}
	}
}

func TestCompute_BothEmpty(t *testing.T) {
	if parts := Compute("", ""); len(parts) != 0 {
		t.Errorf("got %d parts, want 0", len(parts))
	}
}

func TestCompute_MixedEdit(t *testing.T) {
	old := "a\nb\nc\n"
	updated := "a\nx\nc\n"

	parts := Compute(old, updated)

	// The script must reconstruct both sides.
	var oldSide, newSide []string
	for _, p := range parts {
		switch p.Kind {
		case Unchanged:
			oldSide = append(oldSide, p.Text)
			newSide = append(newSide, p.Text)
		case Removed:
			oldSide = append(oldSide, p.Text)
		case Added:
			newSide = append(newSide, p.Text)
		}
	}
	if got := strings.Join(oldSide, "\n"); got != "a\nb\nc" {
		t.Errorf("old side reconstruction = %q", got)
	}
	if got := strings.Join(newSide, "\n"); got != "a\nx\nc" {
		t.Errorf("new side reconstruction = %q", got)
	}

	// Minimal script: one removal, one addition.
	var removed, added int
	for _, p := range parts {
		switch p.Kind {
		case Removed:
			removed++
		case Added:
			added++
		}
	}
	if removed != 1 || added != 1 {
		t.Errorf("removed=%d added=%d, want 1 and 1", removed, added)
	}
}

func TestFormat_Prefixes(t *testing.T) {
	parts := []Part{
		{Kind: Removed, Text: "old"},
		{Kind: Added, Text: "new"},
		{Kind: Unchanged, Text: "same"},
	}
	want := "-- old\n++ new\n== same\n"
	if got := Format(parts); got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestFormat_DoesNotAffectCompute(t *testing.T) {
	old := "a\nb\n"
	updated := "a\nc\n"

	before := Compute(old, updated)
	_ = Format(before)
	after := Compute(old, updated)

	if len(before) != len(after) {
		t.Fatalf("script length changed: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("part %d changed: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestFormatUnified(t *testing.T) {
	out, err := FormatUnified("a.txt", "one\ntwo\n", "one\nthree\n", 3)
	if err != nil {
		t.Fatalf("FormatUnified: %v", err)
	}
	if !strings.Contains(out, "--- a/a.txt") || !strings.Contains(out, "+++ b/a.txt") {
		t.Errorf("missing file headers:\n%s", out)
	}
	if !strings.Contains(out, "-two") || !strings.Contains(out, "+three") {
		t.Errorf("missing change lines:\n%s", out)
	}

	same, err := FormatUnified("a.txt", "x\n", "x\n", 3)
	if err != nil {
		t.Fatalf("FormatUnified identical: %v", err)
	}
	if same != "" {
		t.Errorf("identical inputs produced output %q", same)
	}
}
