package chunking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Empty(t *testing.T) {
	assert.Nil(t, Stats(nil))
	assert.Nil(t, Stats([]string{}))
}

func TestStats(t *testing.T) {
	long := strings.Repeat("x", 300)
	stats := Stats([]string{"abcd 1/3", "ab 2/3", long})
	require.NotNil(t, stats)

	assert.Equal(t, 3, stats.TotalTweets)
	assert.Equal(t, 8+6+300, stats.TotalCharacters)
	assert.InDelta(t, float64(314)/3, stats.AvgLength, 1e-9)
	assert.Equal(t, 300, stats.MaxLength)
	assert.Equal(t, 6, stats.MinLength)
	assert.Equal(t, 1, stats.TweetsOverLimit)
}

func TestExport(t *testing.T) {
	segments := []string{"first 1/3", "second 2/3", "third 3/3"}

	tests := []struct {
		name      string
		separator string
		want      string
	}{
		{"default", "", "first 1/3\n\n---\n\nsecond 2/3\n\n---\n\nthird 3/3"},
		{"newline", "\n", "first 1/3\nsecond 2/3\nthird 3/3"},
		{"custom", " | ", "first 1/3 | second 2/3 | third 3/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Export(segments, tt.separator)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, segments, SplitExport(got, tt.separator))
		})
	}
}

func TestExport_RoundTripChunkOutput(t *testing.T) {
	segments, _ := Chunk(strings.Repeat("round trip through the export formatter ", 60))
	require.NotEmpty(t, segments)

	exported := Export(segments, DefaultSeparator)
	assert.Equal(t, segments, SplitExport(exported, DefaultSeparator))
}

func TestExport_Empty(t *testing.T) {
	assert.Equal(t, "", Export(nil, ""))
	assert.Nil(t, SplitExport("", ""))
}
