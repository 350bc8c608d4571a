package diff

import "strings"

// Kind classifies a line in an edit script.
type Kind int

const (
	Unchanged Kind = iota // Line is present in both texts.
	Added                 // Line is present in the new text only.
	Removed               // Line is present in the old text only.
)

// Part is a single line of an edit script. Text carries the line content
// without its terminator.
type Part struct {
	Kind Kind
	Text string
}

// Compute produces a line-granularity, LCS-based edit script transforming
// oldText into newText. It is a pure function: empty oldText yields an
// all-added script, empty newText an all-removed one, and identical inputs
// an all-unchanged script reproducing the input lines.
func Compute(oldText, newText string) []Part {
	a := splitLines(oldText)
	b := splitLines(newText)

	ops := myers(a, b)

	parts := make([]Part, len(ops))
	for i, op := range ops {
		parts[i] = Part(op)
	}
	return parts
}

// splitLines splits s into lines. A trailing newline does not produce an
// extra empty element.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// myers computes the shortest edit script to transform a into b using the
// Myers diff algorithm operating on whole lines. It runs in O((N+M)*D) time
// where D is the size of the minimum edit script.
func myers(a, b []string) []Part {
	n := len(a)
	m := len(b)

	if n == 0 && m == 0 {
		return nil
	}
	if n == 0 {
		parts := make([]Part, m)
		for i, line := range b {
			parts[i] = Part{Kind: Added, Text: line}
		}
		return parts
	}
	if m == 0 {
		parts := make([]Part, n)
		for i, line := range a {
			parts[i] = Part{Kind: Removed, Text: line}
		}
		return parts
	}

	max := n + m
	size := 2*max + 1
	v := make([]int, size)

	// trace[d] holds a snapshot of v after processing edit distance d.
	var trace [][]int

	for d := 0; d <= max; d++ {
		for k := -d; k <= d; k += 2 {
			idx := k + max
			var x int
			if k == -d || (k != d && v[idx-1] < v[idx+1]) {
				x = v[idx+1] // move down (add)
			} else {
				x = v[idx-1] + 1 // move right (remove)
			}
			y := x - k

			// Follow diagonal (equal lines).
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}

			v[idx] = x

			if x >= n && y >= m {
				snap := make([]int, size)
				copy(snap, v)
				trace = append(trace, snap)
				return backtrack(trace, a, b, d)
			}
		}

		snap := make([]int, size)
		copy(snap, v)
		trace = append(trace, snap)
	}

	// Unreachable for valid inputs.
	return nil
}

// backtrack reconstructs the edit script from the trace of v snapshots.
func backtrack(trace [][]int, a, b []string, dFinal int) []Part {
	n := len(a)
	m := len(b)
	max := n + m

	x := n
	y := m

	var parts []Part

	for d := dFinal; d > 0; d-- {
		k := x - y
		idx := k + max

		vPrev := trace[d-1]

		var prevK int
		if k == -d || (k != d && vPrev[idx-1] < vPrev[idx+1]) {
			prevK = k + 1 // came from an add (down move)
		} else {
			prevK = k - 1 // came from a remove (right move)
		}

		prevX := vPrev[prevK+max]
		prevY := prevX - prevK

		// Trace back along the diagonal (equal lines).
		for x > prevX && y > prevY {
			x--
			y--
			parts = append(parts, Part{Kind: Unchanged, Text: a[x]})
		}

		if k == prevK+1 {
			x--
			parts = append(parts, Part{Kind: Removed, Text: a[x]})
		} else {
			y--
			parts = append(parts, Part{Kind: Added, Text: b[y]})
		}
	}

	// Remaining diagonal at d=0.
	for x > 0 && y > 0 {
		x--
		y--
		parts = append(parts, Part{Kind: Unchanged, Text: a[x]})
	}

	// Reverse to get forward order.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	return parts
}
