package poster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivavenkatesh/threadsplit/internal/logger"
	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

type call struct {
	text    string
	replyTo string
}

// fakeSubmitter records calls and fails on the configured (1-based) call
type fakeSubmitter struct {
	calls  []call
	failAt int
}

func (f *fakeSubmitter) Submit(_ context.Context, text, replyToID string) (*types.PostedSegment, error) {
	f.calls = append(f.calls, call{text: text, replyTo: replyToID})
	if len(f.calls) == f.failAt {
		return nil, errors.New("service unavailable")
	}
	id := fmt.Sprintf("id-%d", len(f.calls))
	return &types.PostedSegment{ID: id, Text: text, URL: "https://example.test/" + id}, nil
}

func TestValidate(t *testing.T) {
	assert.Equal(t, []string{"No tweets to validate"}, Validate(nil))
	assert.Empty(t, Validate([]string{"hello 1/2", "world 2/2"}))

	errs := Validate([]string{"ok 1/3", strings.Repeat("x", 281), "   "})
	assert.Equal(t, []string{
		"Tweet 2 exceeds 280 characters (281)",
		"Tweet 3 is empty",
	}, errs)

	long := make([]string, MaxThreadLength+1)
	for i := range long {
		long[i] = "t"
	}
	assert.Equal(t, []string{"Thread is too long (max 25 tweets recommended)"}, Validate(long))
}

func TestPostThread_ChainsReplies(t *testing.T) {
	sub := &fakeSubmitter{}
	p := New(sub, 0, logger.NewNop())

	res := p.PostThread(context.Background(), []string{"a 1/3", "b 2/3", "c 3/3"})

	assert.Equal(t, 3, res.SuccessCount)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "https://example.test/id-1", res.ThreadURL)
	require.Len(t, res.Posted, 3)
	assert.Equal(t, []call{
		{text: "a 1/3", replyTo: ""},
		{text: "b 2/3", replyTo: "id-1"},
		{text: "c 3/3", replyTo: "id-2"},
	}, sub.calls)
}

func TestPostThread_ValidationIsFatal(t *testing.T) {
	sub := &fakeSubmitter{}
	p := New(sub, 0, logger.NewNop())

	res := p.PostThread(context.Background(), []string{"fine", strings.Repeat("y", 300)})

	assert.Zero(t, res.SuccessCount)
	assert.Empty(t, sub.calls)
	assert.Equal(t, []string{"Tweet 2 exceeds 280 characters (300)"}, res.Errors)
}

func TestPostThread_HaltsOnFailure(t *testing.T) {
	sub := &fakeSubmitter{failAt: 2}
	p := New(sub, 0, logger.NewNop())

	res := p.PostThread(context.Background(), []string{"a", "b", "c", "d"})

	assert.Equal(t, 1, res.SuccessCount)
	assert.Len(t, res.Posted, 1)
	assert.Len(t, sub.calls, 2)
	assert.Equal(t, []string{"Failed to post tweet 2: service unavailable"}, res.Errors)
	assert.Equal(t, "https://example.test/id-1", res.ThreadURL)
}

func TestPostThread_DelayBetweenSubmissions(t *testing.T) {
	sub := &fakeSubmitter{}
	p := New(sub, 20*time.Millisecond, logger.NewNop())

	start := time.Now()
	res := p.PostThread(context.Background(), []string{"a", "b", "c"})

	assert.Equal(t, 3, res.SuccessCount)
	// two gaps, none after the last tweet
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestPostThread_CancelledDuringDelay(t *testing.T) {
	sub := &fakeSubmitter{}
	p := New(sub, time.Hour, logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res := p.PostThread(ctx, []string{"a", "b"})

	assert.Equal(t, 1, res.SuccessCount)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Posting stopped after tweet 1")
}

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		count int
		delay time.Duration
		want  string
	}{
		{5, 3 * time.Second, "15 seconds"},
		{0, 3 * time.Second, "0 seconds"},
		{25, 3 * time.Second, "1m 15s"},
		{20, 3 * time.Minute, "1h 0m"},
		{10, 7 * time.Minute, "1h 10m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateDuration(tt.count, tt.delay))
	}
}

func TestConsoleSubmitter(t *testing.T) {
	var buf bytes.Buffer
	p := New(NewConsoleSubmitter(&buf), 0, logger.NewNop())

	res := p.PostThread(context.Background(), []string{"first 1/2", "second 2/2"})

	require.Equal(t, 2, res.SuccessCount)
	first := res.Posted[0]
	assert.Equal(t, fmt.Sprintf(DefaultStatusURL, first.ID), res.ThreadURL)
	assert.NotEqual(t, first.ID, res.Posted[1].ID)

	out := buf.String()
	assert.Contains(t, out, "first 1/2")
	assert.Contains(t, out, "-> "+first.ID+"]")
}

func TestConsoleSubmitter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewConsoleSubmitter(&bytes.Buffer{}).Submit(ctx, "x", "")
	assert.ErrorIs(t, err, context.Canceled)
}
