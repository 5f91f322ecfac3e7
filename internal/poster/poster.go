// Package poster walks a generated thread through a Submitter as a reply chain
package poster

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shivavenkatesh/threadsplit/internal/chunking"
	"github.com/shivavenkatesh/threadsplit/internal/logger"
	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

// MaxThreadLength is the longest thread accepted for posting
const MaxThreadLength = 25

// Submitter publishes a single segment, optionally as a reply to an earlier one
type Submitter interface {
	Submit(ctx context.Context, text, replyToID string) (*types.PostedSegment, error)
}

// Poster posts threads one segment at a time
type Poster struct {
	submitter Submitter
	delay     time.Duration
	log       logger.Logger
}

// New creates a Poster that waits delay between submissions
func New(s Submitter, delay time.Duration, log logger.Logger) *Poster {
	if delay < 0 {
		delay = 0
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &Poster{submitter: s, delay: delay, log: log}
}

// Validate returns every problem that blocks posting; nil means the thread can be posted
func Validate(segments []string) []string {
	if len(segments) == 0 {
		return []string{"No tweets to validate"}
	}

	var errs []string
	if len(segments) > MaxThreadLength {
		errs = append(errs, fmt.Sprintf("Thread is too long (max %d tweets recommended)", MaxThreadLength))
	}

	for i, s := range segments {
		if n := chunking.Length(s); n > chunking.MaxLength {
			errs = append(errs, fmt.Sprintf("Tweet %d exceeds %d characters (%d)", i+1, chunking.MaxLength, n))
		}
		if strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Sprintf("Tweet %d is empty", i+1))
		}
	}

	return errs
}

// PostThread validates segments and then submits them in order, each replying to the
// previous one. Validation failures are fatal and nothing is submitted. A failed
// submission halts the walk; segments posted before it are kept in the result.
func (p *Poster) PostThread(ctx context.Context, segments []string) *types.PostResult {
	result := &types.PostResult{}

	if errs := Validate(segments); len(errs) > 0 {
		result.Errors = errs
		return result
	}

	replyTo := ""
	for i, text := range segments {
		p.log.Debug("posting tweet", "index", i+1, "total", len(segments))

		posted, err := p.submitter.Submit(ctx, text, replyTo)
		if err != nil {
			msg := fmt.Sprintf("Failed to post tweet %d: %v", i+1, err)
			p.log.Error(msg)
			result.Errors = append(result.Errors, msg)
			break
		}

		result.Posted = append(result.Posted, *posted)
		result.SuccessCount++
		replyTo = posted.ID

		if i == 0 {
			result.ThreadURL = posted.URL
		}

		// No delay after the last tweet
		if i < len(segments)-1 {
			if err := p.wait(ctx); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Posting stopped after tweet %d: %v", i+1, err))
				break
			}
		}
	}

	return result
}

func (p *Poster) wait(ctx context.Context) error {
	if p.delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// EstimateDuration describes how long posting count tweets takes at the given delay
func EstimateDuration(count int, delay time.Duration) string {
	total := count * int(delay/time.Second)

	switch {
	case total < 60:
		return fmt.Sprintf("%d seconds", total)
	case total < 3600:
		return fmt.Sprintf("%dm %ds", total/60, total%60)
	default:
		return fmt.Sprintf("%dh %dm", total/3600, (total%3600)/60)
	}
}
