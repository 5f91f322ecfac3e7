package poster

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

// DefaultStatusURL is the URL template for posted segments; %s is the segment ID
const DefaultStatusURL = "https://twitter.com/user/status/%s"

// ConsoleSubmitter is a dry-run Submitter that prints each segment instead of publishing it
type ConsoleSubmitter struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleSubmitter creates a ConsoleSubmitter writing to out
func NewConsoleSubmitter(out io.Writer) *ConsoleSubmitter {
	return &ConsoleSubmitter{out: out}
}

// Submit prints text and returns a fresh ID for it
func (c *ConsoleSubmitter) Submit(ctx context.Context, text, replyToID string) (*types.PostedSegment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.New().String()

	c.mu.Lock()
	defer c.mu.Unlock()

	if replyToID == "" {
		_, err := fmt.Fprintf(c.out, "[%s]\n%s\n\n", id, text)
		if err != nil {
			return nil, fmt.Errorf("failed to write tweet: %w", err)
		}
	} else {
		_, err := fmt.Fprintf(c.out, "[%s -> %s]\n%s\n\n", id, replyToID, text)
		if err != nil {
			return nil, fmt.Errorf("failed to write tweet: %w", err)
		}
	}

	return &types.PostedSegment{
		ID:   id,
		Text: text,
		URL:  fmt.Sprintf(DefaultStatusURL, id),
	}, nil
}
