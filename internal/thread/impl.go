package thread

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shivavenkatesh/threadsplit/internal/cache"
	"github.com/shivavenkatesh/threadsplit/internal/chunking"
	"github.com/shivavenkatesh/threadsplit/internal/logger"
	"github.com/shivavenkatesh/threadsplit/internal/poster"
	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

// serviceImpl implements the Service interface
type serviceImpl struct {
	cache     *cache.SplitCache
	submitter poster.Submitter
	config    Config
	log       logger.Logger
}

// NewService creates a new thread service. submitter may be nil when posting is not needed.
func NewService(sub poster.Submitter, cfg Config, log logger.Logger) (Service, error) {
	if cfg.CacheCapacity <= 0 {
		cfg.CacheCapacity = 256
	}
	if cfg.PostDelay < 0 {
		cfg.PostDelay = 0
	}
	if cfg.Separator == "" {
		cfg.Separator = chunking.DefaultSeparator
	}
	if log == nil {
		log = logger.GetDefault()
	}

	c, err := cache.NewSplitCache(cfg.CacheCapacity)
	if err != nil {
		return nil, err
	}

	return &serviceImpl{
		cache:     c,
		submitter: sub,
		config:    cfg,
		log:       log,
	}, nil
}

// Split chunks text into a numbered thread
func (s *serviceImpl) Split(ctx context.Context, req types.SplitRequest) (*types.SplitResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}
	log := logger.FromContext(ctx)

	res, cached := s.cache.Get(req.Text)
	if !cached {
		res.Tweets, res.Warnings = chunking.Chunk(req.Text)
		s.cache.Put(req.Text, res)
	}

	for _, w := range res.Warnings {
		log.Warn(w)
	}
	log.Debug("split text", "characters", chunking.Length(req.Text), "tweets", len(res.Tweets), "cached", cached)

	return &types.SplitResponse{
		Tweets:   res.Tweets,
		Warnings: res.Warnings,
		Stats:    chunking.Stats(res.Tweets),
		Cached:   cached,
	}, nil
}

// Stats summarizes a thread
func (s *serviceImpl) Stats(tweets []string) *types.ThreadStats {
	return chunking.Stats(tweets)
}

// Export joins a thread using the request separator or the configured default
func (s *serviceImpl) Export(req types.ExportRequest) string {
	sep := req.Separator
	if sep == "" {
		sep = s.config.Separator
	}
	return chunking.Export(req.Tweets, sep)
}

// Validate lists problems that would block posting
func (s *serviceImpl) Validate(tweets []string) *types.ValidateResponse {
	errs := poster.Validate(tweets)
	if errs == nil {
		errs = []string{}
	}
	return &types.ValidateResponse{Valid: len(errs) == 0, Errors: errs}
}

// Post validates and submits a thread
func (s *serviceImpl) Post(ctx context.Context, tweets []string) (*types.PostResult, error) {
	if s.submitter == nil {
		return nil, errors.New("no submitter configured")
	}

	log := logger.FromContext(ctx)
	p := poster.New(s.submitter, s.config.PostDelay, log)

	log.Info("posting thread", "tweets", len(tweets), "estimate", poster.EstimateDuration(len(tweets), s.config.PostDelay))
	res := p.PostThread(ctx, tweets)
	if res.SuccessCount == 0 && len(res.Errors) > 0 {
		return res, fmt.Errorf("failed to post thread: %s", res.Errors[0])
	}

	return res, nil
}
