package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shivavenkatesh/threadsplit/internal/chunking"
)

var (
	tweetStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Width(60)

	overLimitStyle = tweetStyle.BorderForeground(lipgloss.Color("196"))

	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// renderThread draws each tweet in a bordered box with a length badge
func renderThread(tweets []string) string {
	blocks := make([]string, 0, len(tweets))
	for i, tweet := range tweets {
		n := chunking.Length(tweet)

		badge := okStyle.Render(fmt.Sprintf("%d/%d", n, chunking.MaxLength))
		style := tweetStyle
		if n > chunking.MaxLength {
			badge = badStyle.Render(fmt.Sprintf("%d/%d too long", n, chunking.MaxLength))
			style = overLimitStyle
		}

		header := headerStyle.Render(fmt.Sprintf("Tweet %d", i+1)) + "  " + badge
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, header, style.Render(tweet)))
	}
	return strings.Join(blocks, "\n\n")
}
