// Package thread provides the thread service used by the CLI, HTTP API and MCP tools
package thread

import (
	"context"
	"errors"
	"time"

	"github.com/shivavenkatesh/threadsplit/internal/chunking"
	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

// ErrEmptyText is returned when a caller requires input text and none was given
var ErrEmptyText = errors.New("text is required")

// Service orchestrates thread operations for one session
type Service interface {
	// Split chunks text into a numbered thread, reusing cached results
	Split(ctx context.Context, req types.SplitRequest) (*types.SplitResponse, error)

	// Stats summarizes a thread; nil for an empty thread
	Stats(tweets []string) *types.ThreadStats

	// Export joins a thread into one copy-ready string
	Export(req types.ExportRequest) string

	// Validate lists problems that would block posting
	Validate(tweets []string) *types.ValidateResponse

	// Post validates and submits a thread through the configured submitter
	Post(ctx context.Context, tweets []string) (*types.PostResult, error)
}

// Config configures the thread service
type Config struct {
	CacheCapacity int           // Split results kept in memory
	PostDelay     time.Duration // Wait between submissions
	Separator     string        // Default export separator
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		CacheCapacity: 256,
		PostDelay:     3 * time.Second,
		Separator:     chunking.DefaultSeparator,
	}
}
