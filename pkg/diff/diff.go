package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	// ContextLines is how many unchanged lines surround each hunk.
	ContextLines = 3

	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

type line struct {
	op   diffmatchpatch.Operation
	text string
}

// Unified returns a unified diff turning before into after, or an empty string
// when both are identical. Output longer than 10,000 lines is truncated with a
// marker.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	lines := diffLines(string(before), string(after))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	for _, h := range hunks(lines, ContextLines) {
		writeHunk(&buf, lines, h)
	}

	result := buf.String()
	out := strings.Split(result, "\n")
	if len(out) > maxDiffLines {
		return strings.Join(out[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

// diffLines runs a line mode diff so that every entry is a whole line.
func diffLines(before, after string) []line {
	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var out []line
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			out = append(out, line{op: d.Type, text: l})
		}
	}
	return out
}

// hunk is a half-open range of lines.
type hunk struct {
	start, end int
}

// hunks groups changed lines with context. Changes closer than twice the
// context share one hunk.
func hunks(lines []line, context int) []hunk {
	var out []hunk
	for i, l := range lines {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}
		start := max(0, i-context)
		end := min(len(lines), i+context+1)
		if n := len(out); n > 0 && start <= out[n-1].end {
			out[n-1].end = end
			continue
		}
		out = append(out, hunk{start: start, end: end})
	}
	return out
}

func writeHunk(buf *bytes.Buffer, lines []line, h hunk) {
	oldBefore, newBefore := 0, 0
	for _, l := range lines[:h.start] {
		if l.op != diffmatchpatch.DiffInsert {
			oldBefore++
		}
		if l.op != diffmatchpatch.DiffDelete {
			newBefore++
		}
	}

	oldCount, newCount := 0, 0
	for _, l := range lines[h.start:h.end] {
		if l.op != diffmatchpatch.DiffInsert {
			oldCount++
		}
		if l.op != diffmatchpatch.DiffDelete {
			newCount++
		}
	}

	fmt.Fprintf(buf, "@@ -%s +%s @@\n", hunkRange(oldBefore, oldCount), hunkRange(newBefore, newCount))
	for _, l := range lines[h.start:h.end] {
		switch l.op {
		case diffmatchpatch.DiffDelete:
			buf.WriteString("-")
		case diffmatchpatch.DiffInsert:
			buf.WriteString("+")
		default:
			buf.WriteString(" ")
		}
		buf.WriteString(l.text)
		buf.WriteString("\n")
	}
}

// hunkRange formats a hunk side. An empty side points at the line before it.
func hunkRange(before, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", before)
	}
	return fmt.Sprintf("%d,%d", before+1, count)
}
