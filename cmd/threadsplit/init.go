package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/shivavenkatesh/threadsplit/internal/logger"
	"github.com/shivavenkatesh/threadsplit/internal/poster"
	"github.com/shivavenkatesh/threadsplit/internal/thread"
)

// initService creates the thread service from the loaded configuration
func initService(sub poster.Submitter) (thread.Service, error) {
	svc, err := thread.NewService(sub, thread.Config{
		CacheCapacity: cfg.Cache.Capacity,
		PostDelay:     cfg.Post.Delay,
		Separator:     cfg.Export.Separator,
	}, logger.GetDefault())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize thread service: %w", err)
	}
	return svc, nil
}

// input is one piece of text to split, labeled by where it came from
type input struct {
	Source string
	Text   string
}

// readInputs collects text from files, positional args or piped stdin, in that order
func readInputs(ctx context.Context, args, files []string) ([]input, error) {
	if len(files) > 0 {
		inputs := make([]input, len(files))
		g, _ := errgroup.WithContext(ctx)
		for i, path := range files {
			g.Go(func() error {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				inputs[i] = input{Source: path, Text: string(data)}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return inputs, nil
	}

	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return []input{{Source: "args", Text: strings.Join(args, " ")}}, nil
	}

	if len(args) == 0 && isatty.IsTerminal(os.Stdin.Fd()) {
		return nil, fmt.Errorf("no input: pass text, --file, or pipe text on stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return []input{{Source: "stdin", Text: string(data)}}, nil
}
