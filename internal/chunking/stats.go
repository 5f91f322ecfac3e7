package chunking

import (
	"strings"

	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

// DefaultSeparator divides segments in an exported thread
const DefaultSeparator = "\n\n---\n\n"

// Stats summarizes a thread. It returns nil for an empty thread.
func Stats(segments []string) *types.ThreadStats {
	if len(segments) == 0 {
		return nil
	}

	stats := &types.ThreadStats{TotalTweets: len(segments)}
	for i, s := range segments {
		n := Length(s)
		stats.TotalCharacters += n

		if i == 0 || n > stats.MaxLength {
			stats.MaxLength = n
		}
		if i == 0 || n < stats.MinLength {
			stats.MinLength = n
		}
		if n > MaxLength {
			stats.TweetsOverLimit++
		}
	}
	stats.AvgLength = float64(stats.TotalCharacters) / float64(stats.TotalTweets)

	return stats
}

// Export joins segments into a single copy-ready string.
// An empty separator means DefaultSeparator.
func Export(segments []string, separator string) string {
	if separator == "" {
		separator = DefaultSeparator
	}
	return strings.Join(segments, separator)
}

// SplitExport reverses Export, provided no segment contains the separator itself
func SplitExport(text, separator string) []string {
	if text == "" {
		return nil
	}
	if separator == "" {
		separator = DefaultSeparator
	}
	return strings.Split(text, separator)
}
