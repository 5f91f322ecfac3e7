package thread

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivavenkatesh/threadsplit/internal/logger"
	"github.com/shivavenkatesh/threadsplit/internal/poster"
	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

func newTestService(t *testing.T, sub poster.Submitter) Service {
	t.Helper()
	cfg := DefaultConfig()
	cfg.PostDelay = 0
	svc, err := NewService(sub, cfg, logger.NewNop())
	require.NoError(t, err)
	return svc
}

func testContext() context.Context {
	return logger.ContextWithLogger(context.Background(), logger.NewNop())
}

func TestService_Split(t *testing.T) {
	svc := newTestService(t, nil)
	text := strings.Repeat("This is a test of the Twitter Thread Chunker. ", 20)

	resp, err := svc.Split(testContext(), types.SplitRequest{Text: text})
	require.NoError(t, err)

	assert.False(t, resp.Cached)
	assert.Greater(t, len(resp.Tweets), 1)
	assert.Empty(t, resp.Warnings)
	require.NotNil(t, resp.Stats)
	assert.Equal(t, len(resp.Tweets), resp.Stats.TotalTweets)

	again, err := svc.Split(testContext(), types.SplitRequest{Text: text})
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, resp.Tweets, again.Tweets)
}

func TestService_Split_Empty(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Split(testContext(), types.SplitRequest{Text: "  \n "})
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestService_Split_Warnings(t *testing.T) {
	svc := newTestService(t, nil)

	resp, err := svc.Split(testContext(), types.SplitRequest{Text: strings.Repeat("w", 300)})
	require.NoError(t, err)
	assert.Len(t, resp.Warnings, 2)
	assert.Equal(t, 1, resp.Stats.TweetsOverLimit)
}

func TestService_Export(t *testing.T) {
	svc := newTestService(t, nil)
	tweets := []string{"a 1/2", "b 2/2"}

	assert.Equal(t, "a 1/2\n\n---\n\nb 2/2", svc.Export(types.ExportRequest{Tweets: tweets}))
	assert.Equal(t, "a 1/2\nb 2/2", svc.Export(types.ExportRequest{Tweets: tweets, Separator: "\n"}))
}

func TestService_Validate(t *testing.T) {
	svc := newTestService(t, nil)

	ok := svc.Validate([]string{"fine 1/1"})
	assert.True(t, ok.Valid)
	assert.Empty(t, ok.Errors)

	bad := svc.Validate(nil)
	assert.False(t, bad.Valid)
	assert.NotEmpty(t, bad.Errors)
}

func TestService_Stats(t *testing.T) {
	svc := newTestService(t, nil)

	assert.Nil(t, svc.Stats(nil))
	assert.Equal(t, 2, svc.Stats([]string{"a", "b"}).TotalTweets)
}

func TestService_Post(t *testing.T) {
	var buf bytes.Buffer
	svc := newTestService(t, poster.NewConsoleSubmitter(&buf))

	res, err := svc.Post(testContext(), []string{"a 1/2", "b 2/2"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.SuccessCount)
	assert.Contains(t, buf.String(), "b 2/2")
}

func TestService_Post_Invalid(t *testing.T) {
	svc := newTestService(t, poster.NewConsoleSubmitter(&bytes.Buffer{}))

	res, err := svc.Post(testContext(), nil)
	require.Error(t, err)
	assert.Zero(t, res.SuccessCount)
}

func TestService_Post_NoSubmitter(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Post(testContext(), []string{"a"})
	assert.Error(t, err)
}
