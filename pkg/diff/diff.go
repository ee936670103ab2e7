// Package diff renders unified diffs between two text blobs.
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

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Unified compares from and to line by line. It returns an empty string when
// the inputs are identical and truncates output past 10,000 lines.
func Unified(from, to []byte, fromLabel, toLabel string) (string, Stats) {
	if bytes.Equal(from, to) {
		return "", Stats{}
	}

	diffs := lineDiffs(string(from), string(to))

	var buf bytes.Buffer
	var stats Stats
	fmt.Fprintf(&buf, "--- %s\n", fromLabel)
	fmt.Fprintf(&buf, "+++ %s\n", toLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(string(from)), countLines(string(to)))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			}
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n", stats
	}
	return result, stats
}

func lineDiffs(from, to string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, table)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(text string) int {
	return len(splitLines(text))
}
