// Package chunking splits long-form text into numbered, length-bounded thread segments
package chunking

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxLength is the hard length limit of a single formatted segment
	MaxLength = 280

	// IndicatorReserve is the room kept free for the " i/total" suffix while packing.
	// The total is unknown until packing finishes, so the reserve is sized for the widest indicator.
	IndicatorReserve = 15

	// ContentLimit is the maximum length of a chunk before its indicator is appended
	ContentLimit = MaxLength - IndicatorReserve

	// WordPreviewLength is how much of an oversized word is quoted in its warning
	WordPreviewLength = 20
)

// Length returns the length of s as counted against the limits (code points)
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Indicator formats the positional marker for the i-th (1-based) of total segments
func Indicator(i, total int) string {
	return strconv.Itoa(i) + "/" + strconv.Itoa(total)
}

// Chunk splits text into formatted segments and advisory warnings.
//
// Words are packed greedily into chunks of at most ContentLimit characters, then each
// chunk is suffixed with its indicator and checked against MaxLength. Anomalies never
// fail the call; they are reported as warnings alongside the best-effort output.
// Empty or all-whitespace input yields no segments and no warnings.
func Chunk(text string) ([]string, []string) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	chunks, warnings := Pack(words)

	total := len(chunks)
	if total == 0 {
		return nil, warnings
	}

	segments := make([]string, 0, total)
	for i, content := range chunks {
		segment := content + " " + Indicator(i+1, total)

		if n := Length(segment); n > MaxLength {
			warnings = append(warnings, fmt.Sprintf("Tweet %d/%d exceeds %d characters (%d)", i+1, total, MaxLength, n))
		}

		segments = append(segments, segment)
	}

	return segments, warnings
}

// Pack greedily groups words into space-joined chunks of at most ContentLimit characters.
// A word longer than ContentLimit is never split; it becomes a chunk of its own and a
// warning is returned for it.
func Pack(words []string) ([]string, []string) {
	var (
		chunks   []string
		warnings []string
		current  []string
		size     int // length of current joined by single spaces
	)

	for _, word := range words {
		n := Length(word)

		candidate := n
		if len(current) > 0 {
			candidate = size + 1 + n
		}

		if candidate <= ContentLimit {
			current = append(current, word)
			size = candidate
			continue
		}

		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
		}
		current = []string{word}
		size = n

		if n > ContentLimit {
			warnings = append(warnings, fmt.Sprintf("Warning: Word '%s...' is longer than content limit (%d)",
				preview(word, WordPreviewLength), ContentLimit))
		}
	}

	// Close the trailing chunk
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks, warnings
}

// preview returns at most limit leading code points of s
func preview(s string, limit int) string {
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
