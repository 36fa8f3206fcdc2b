// Package diff renders line-based unified diffs, used to compare layout
// revisions.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Empty reports whether nothing changed.
func (s Stats) Empty() bool { return s.Added == 0 && s.Removed == 0 }

func (s Stats) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

type line struct {
	op   diffmatchpatch.Operation
	text string
}

// lineDiff compares a and b line by line.
func lineDiff(a, b string) []line {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out []line
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			out = append(out, line{op: d.Type, text: l})
		}
	}
	return out
}

// Count returns the added and removed line counts between a and b.
func Count(a, b []byte) Stats {
	var s Stats
	if bytes.Equal(a, b) {
		return s
	}
	for _, l := range lineDiff(string(a), string(b)) {
		switch l.op {
		case diffmatchpatch.DiffInsert:
			s.Added++
		case diffmatchpatch.DiffDelete:
			s.Removed++
		}
	}
	return s
}

// GenerateUnifiedDiff renders a unified diff of expected and actual with
// context lines of surrounding unchanged text per hunk. Identical input
// yields "". Output beyond 10,000 lines is truncated with a marker.
func GenerateUnifiedDiff(expected, actual []byte, expectedLabel, actualLabel string, context int) string {
	if bytes.Equal(expected, actual) {
		return ""
	}
	if context < 0 {
		context = 0
	}

	lines := lineDiff(string(expected), string(actual))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)

	for _, h := range hunks(lines, context) {
		writeHunk(&buf, lines, h)
	}

	result := buf.String()
	out := strings.Split(result, "\n")
	if len(out) > maxDiffLines {
		return strings.Join(out[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

type hunk struct{ start, end int }

// hunks groups changed lines with their context, merging groups whose
// context overlaps.
func hunks(lines []line, context int) []hunk {
	var out []hunk
	for i, l := range lines {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}
		start := max(i-context, 0)
		end := min(i+context+1, len(lines))
		if n := len(out); n > 0 && start <= out[n-1].end {
			out[n-1].end = max(out[n-1].end, end)
			continue
		}
		out = append(out, hunk{start: start, end: end})
	}
	return out
}

func writeHunk(buf *bytes.Buffer, lines []line, h hunk) {
	// 1-based line numbers on each side at the hunk start.
	oldStart, newStart := 1, 1
	for _, l := range lines[:h.start] {
		if l.op != diffmatchpatch.DiffInsert {
			oldStart++
		}
		if l.op != diffmatchpatch.DiffDelete {
			newStart++
		}
	}
	oldLen, newLen := 0, 0
	for _, l := range lines[h.start:h.end] {
		if l.op != diffmatchpatch.DiffInsert {
			oldLen++
		}
		if l.op != diffmatchpatch.DiffDelete {
			newLen++
		}
	}
	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", oldStart, oldLen, newStart, newLen)
	for _, l := range lines[h.start:h.end] {
		switch l.op {
		case diffmatchpatch.DiffEqual:
			buf.WriteString(" ")
		case diffmatchpatch.DiffDelete:
			buf.WriteString("-")
		case diffmatchpatch.DiffInsert:
			buf.WriteString("+")
		}
		buf.WriteString(l.text)
		buf.WriteString("\n")
	}
}
