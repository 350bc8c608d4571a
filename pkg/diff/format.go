package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Format renders an edit script with line prefixes:
//
//	++ added line
//	-- removed line
//	== unchanged line
//
// The rendering is presentational only; it never feeds back into Compute.
func Format(parts []Part) string {
	var b strings.Builder
	for _, p := range parts {
		switch p.Kind {
		case Added:
			fmt.Fprintf(&b, "++ %s\n", p.Text)
		case Removed:
			fmt.Fprintf(&b, "-- %s\n", p.Text)
		case Unchanged:
			fmt.Fprintf(&b, "== %s\n", p.Text)
		}
	}
	return b.String()
}

// FormatUnified renders a unified diff between oldText and newText with the
// given number of context lines. Identical inputs yield an empty string.
func FormatUnified(name, oldText, newText string, context int) (string, error) {
	if oldText == newText {
		return "", nil
	}

	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldText),
		B:        difflib.SplitLines(newText),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  context,
	}
	out, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return "", fmt.Errorf("unified diff %q: %w", name, err)
	}
	return out, nil
}
